// Package config layers defaults, a TOML file, a dotenv file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/portfolio-term/audio"
	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/input"
	"github.com/lixenwraith/portfolio-term/scene"
	"github.com/lixenwraith/portfolio-term/shell"
	"github.com/lixenwraith/portfolio-term/snake"
)

var (
	ErrInvalidValue = errors.New("invalid value")
	ErrEnvValue     = errors.New("invalid environment value")
)

// Start views
const (
	ViewScene = "scene"
	ViewShell = "shell"
)

// LogConfig controls the debug log file
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// TerminalConfig controls screen setup
type TerminalConfig struct {
	Color string `toml:"color"` // auto, truecolor, 256
	Theme string `toml:"theme"`
	View  string `toml:"view"` // scene or shell
	Mouse bool   `toml:"mouse"`
}

// Config is the complete runtime configuration
type Config struct {
	Scene    scene.Config                 `toml:"scene"`
	Snake    snake.Config                 `toml:"snake"`
	Audio    audio.Config                 `toml:"audio"`
	Log      LogConfig                    `toml:"log"`
	Terminal TerminalConfig               `toml:"terminal"`
	Keys     map[string]map[string]string `toml:"keys"`
	Bodies   []scene.BodySpec             `toml:"body"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Scene: scene.DefaultConfig(),
		Snake: snake.DefaultConfig(),
		Audio: audio.DefaultConfig(),
		Log:   LogConfig{Dir: constants.LogDir},
		Terminal: TerminalConfig{
			Color: "auto",
			Theme: shell.ThemeDefault.String(),
			View:  ViewScene,
			Mouse: true,
		},
	}
}

// Catalog returns the configured bodies, the built-in catalog when none are given
func (c *Config) Catalog() scene.Catalog {
	if len(c.Bodies) > 0 {
		return scene.Catalog(c.Bodies)
	}
	return scene.DefaultCatalog()
}

// Theme returns the parsed start theme
func (c *Config) Theme() shell.Theme {
	t, _ := shell.ParseTheme(c.Terminal.Theme)
	return t
}

// Validate checks every section, errors name the offending key
func (c *Config) Validate() error {
	if err := c.Scene.Validate(); err != nil {
		return err
	}
	if err := c.Snake.Validate(); err != nil {
		return err
	}
	if err := c.Audio.Validate(); err != nil {
		return err
	}
	if err := c.Catalog().Validate(); err != nil {
		return fmt.Errorf("body: %w", err)
	}

	switch strings.ToLower(c.Terminal.Color) {
	case "", "auto", "truecolor", "24bit", "256":
	default:
		return fmt.Errorf("terminal.color %q: %w", c.Terminal.Color, ErrInvalidValue)
	}
	if _, ok := shell.ParseTheme(c.Terminal.Theme); !ok {
		return fmt.Errorf("terminal.theme %q: %w (want one of %s)", c.Terminal.Theme, ErrInvalidValue, strings.Join(shell.ThemeNames(), ", "))
	}
	switch c.Terminal.View {
	case ViewScene, ViewShell:
	default:
		return fmt.Errorf("terminal.view %q: %w", c.Terminal.View, ErrInvalidValue)
	}

	// Dry-run key overrides against a scratch table
	if len(c.Keys) > 0 {
		if err := input.DefaultKeyTable().ApplyBindings(c.Keys); err != nil {
			return fmt.Errorf("keys: %w", err)
		}
	}
	return nil
}

// Decode overlays TOML from r onto c, unknown keys are an error
func (c *Config) Decode(r io.Reader) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("line %d column %d: %w", row, col, err)
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return fmt.Errorf("unknown keys:\n%s", serr.String())
		}
		return err
	}
	return nil
}

// LoadFile overlays the TOML file at path, a missing file is skipped unless required
func (c *Config) LoadFile(path string, required bool) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("config %s: %w", path, err)
	}
	defer f.Close()

	if err := c.Decode(f); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Options selects the layers Load reads
type Options struct {
	ConfigPath     string
	ConfigRequired bool
	EnvPath        string
	EnvRequired    bool

	// Lookup reads the process environment, nil uses os.LookupEnv
	Lookup func(string) (string, bool)
}

// Load builds the layered configuration and validates it
func Load(opts Options) (*Config, error) {
	cfg := Default()

	if opts.ConfigPath != "" {
		if err := cfg.LoadFile(opts.ConfigPath, opts.ConfigRequired); err != nil {
			return nil, err
		}
	}

	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if opts.EnvPath != "" {
		dot, err := readDotenv(opts.EnvPath, opts.EnvRequired)
		if err != nil {
			return nil, err
		}
		lookup = layered(lookup, dot)
	}

	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

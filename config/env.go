package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/portfolio-term/constants"
)

// readDotenv parses a dotenv file without touching the process environment
func readDotenv(path string, required bool) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil, nil
		}
		return nil, fmt.Errorf("env file %s: %w", path, err)
	}
	return values, nil
}

// layered resolves from primary first, then the dotenv values
func layered(primary func(string) (string, bool), dot map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := primary(key); ok {
			return v, true
		}
		v, ok := dot[key]
		return v, ok
	}
}

// ApplyEnv overrides fields from PORTFOLIO_* variables
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	p := constants.EnvPrefix

	str := func(name string, dst *string) {
		if v, ok := lookup(p + name); ok && v != "" {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) error {
		v, ok := lookup(p + name)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrEnvValue, p, name, v)
		}
		*dst = b
		return nil
	}
	integer := func(name string, dst *int) error {
		v, ok := lookup(p + name)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrEnvValue, p, name, v)
		}
		*dst = n
		return nil
	}

	if err := boolean("DEBUG", &c.Log.Debug); err != nil {
		return err
	}
	if err := boolean("MOUSE", &c.Terminal.Mouse); err != nil {
		return err
	}
	str("LOG_DIR", &c.Log.Dir)
	str("COLOR", &c.Terminal.Color)
	str("THEME", &c.Terminal.Theme)
	str("VIEW", &c.Terminal.View)

	if err := integer("FPS", &c.Scene.FPS); err != nil {
		return err
	}
	if err := integer("PARTICLES", &c.Scene.Particles); err != nil {
		return err
	}
	if err := integer("SNAKE_GRID", &c.Snake.GridSize); err != nil {
		return err
	}
	if err := integer("SNAKE_TICK_MS", &c.Snake.TickMS); err != nil {
		return err
	}

	if v, ok := lookup(p + "SEED"); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q", ErrEnvValue, p, v)
		}
		c.Scene.Seed = seed
		c.Snake.Seed = seed
	}

	c.Audio.ApplyEnv(p, lookup)
	return nil
}

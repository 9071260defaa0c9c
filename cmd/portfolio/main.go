package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-term/app"
	"github.com/lixenwraith/portfolio-term/audio"
	"github.com/lixenwraith/portfolio-term/config"
	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/core"
)

var (
	configFlag = flag.String("config", constants.DefaultConfigFile, "TOML config file")
	envFlag    = flag.String("env", constants.DefaultEnvFile, "dotenv file with "+constants.EnvPrefix+"* overrides")
	debugFlag  = flag.Bool("debug", false, "write debug log under the log dir")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256")
	viewFlag   = flag.String("view", "", "Start view: scene or shell")
	seedFlag   = flag.Uint64("seed", 0, "Random seed for scene and snake, 0 picks one")
)

func main() {
	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	logDir = cfg.Log.Dir
	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		if errors.Is(err, audio.ErrAudioDisabled) {
			log.Printf("audio: disabled")
		} else {
			log.Printf("audio: %v (continuing without audio)", err)
		}
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.RegisterScreen(screen)

	a, err := app.New(cfg, screen, app.Options{Sound: sound})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		log.Printf("app: %v", err)
	}
}

// loadConfig layers file, dotenv and environment, then applies explicit flags
// Paths passed on the command line must exist
func loadConfig() (*config.Config, error) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.Load(config.Options{
		ConfigPath:     *configFlag,
		ConfigRequired: set["config"],
		EnvPath:        *envFlag,
		EnvRequired:    set["env"],
	})
	if err != nil {
		return nil, err
	}

	if set["debug"] {
		cfg.Log.Debug = *debugFlag
	}
	if set["color"] {
		cfg.Terminal.Color = *colorFlag
	}
	if set["view"] {
		cfg.Terminal.View = *viewFlag
	}
	if set["seed"] {
		cfg.Scene.Seed = *seedFlag
		cfg.Snake.Seed = *seedFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

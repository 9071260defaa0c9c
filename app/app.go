// Package app owns the single-threaded host loop: input events, the scene frame
// clock and the snake interval all arrive on one select and mutate state in order.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-term/audio"
	"github.com/lixenwraith/portfolio-term/config"
	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/core"
	"github.com/lixenwraith/portfolio-term/engine"
	"github.com/lixenwraith/portfolio-term/input"
	"github.com/lixenwraith/portfolio-term/render"
	"github.com/lixenwraith/portfolio-term/scene"
	"github.com/lixenwraith/portfolio-term/shell"
	"github.com/lixenwraith/portfolio-term/snake"
)

// Player is the sound surface the loop needs
type Player interface {
	Play(s audio.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	Cleanup()
}

// Options injects collaborators, zero values use real implementations
type Options struct {
	Sound        Player
	TimeProvider engine.TimeProvider
}

// silentPlayer is used when no sound manager is given
type silentPlayer struct{ muted bool }

func (p *silentPlayer) Play(audio.SoundType) bool { return false }
func (p *silentPlayer) ToggleMute() bool          { p.muted = !p.muted; return p.muted }
func (p *silentPlayer) IsMuted() bool             { return p.muted }
func (p *silentPlayer) Cleanup()                  {}

// App wires the subsystems to a tcell screen
type App struct {
	cfg       *config.Config
	screen    tcell.Screen
	colorMode render.ColorMode

	scene *scene.Scene
	snake *snake.Game
	shell *shell.Shell

	input *input.Machine
	sound Player

	clock     *engine.FrameClock
	frames    *engine.Interval
	snakeTick *engine.Interval

	buf           *render.RenderBuffer
	sceneRenderer *render.SceneRenderer
	shellRenderer *render.ShellRenderer
	snakeRenderer *render.SnakeRenderer
	sceneSnap     scene.Snapshot
	snakeSnap     snake.Snapshot

	events chan tcell.Event
	quit   chan struct{}
	done   chan struct{}

	// Last pointer cell during a drag
	dragX, dragY int
	showHint     bool
}

// New builds every subsystem from cfg, a zero seed is replaced by a time-based one
func New(cfg *config.Config, screen tcell.Screen, opts Options) (*App, error) {
	colorMode, err := render.ParseColorMode(cfg.Terminal.Color)
	if err != nil {
		return nil, fmt.Errorf("terminal.color: %w", err)
	}

	sceneCfg := cfg.Scene
	if sceneCfg.Seed == 0 {
		sceneCfg.Seed = uint64(time.Now().UnixNano())
	}
	snakeCfg := cfg.Snake
	if snakeCfg.Seed == 0 {
		snakeCfg.Seed = uint64(time.Now().UnixNano()) ^ 0x9e3779b97f4a7c15
	}

	sc, err := scene.New(sceneCfg, cfg.Catalog())
	if err != nil {
		return nil, err
	}
	game, err := snake.New(snakeCfg, nil)
	if err != nil {
		return nil, err
	}
	game.Stop()

	machine := input.NewMachine()
	if err := machine.KeyTable().ApplyBindings(cfg.Keys); err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}

	sound := opts.Sound
	if sound == nil {
		sound = &silentPlayer{}
	}

	w, h := screen.Size()
	a := &App{
		cfg:           cfg,
		screen:        screen,
		colorMode:     colorMode,
		scene:         sc,
		snake:         game,
		shell:         shell.New(cfg.Theme(), constants.ShellMaxHistory),
		input:         machine,
		sound:         sound,
		clock:         engine.NewFrameClock(opts.TimeProvider, constants.MaxFrameDelta),
		frames:        engine.NewInterval(time.Second / time.Duration(sceneCfg.FPS)),
		snakeTick:     engine.NewInterval(snakeCfg.TickInterval()),
		buf:           render.NewRenderBuffer(w, h, render.RgbBackground),
		sceneRenderer: render.NewSceneRenderer(),
		shellRenderer: render.NewShellRenderer(),
		snakeRenderer: render.NewSnakeRenderer(),
		events:        make(chan tcell.Event, 256),
		quit:          make(chan struct{}),
		done:          make(chan struct{}),
	}

	if cfg.Terminal.View == config.ViewShell {
		a.setMode(input.ModeShell)
	}
	return a, nil
}

// Run drives the loop until ctx is cancelled or a quit intent arrives
// Teardown stops the frame interval, the snake interval and the input reader together
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Terminal.Mouse {
		a.screen.EnableMouse()
	}
	core.RegisterScreen(a.screen)

	a.frames.Start()
	defer a.teardown()

	core.Go(a.readInput)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-a.quit:
			return nil
		case ev := <-a.events:
			a.handleEvent(ev)
		case <-a.frames.C():
			a.frame()
		case <-a.snakeTick.C():
			a.snakeStep()
		}
	}
}

func (a *App) teardown() {
	a.frames.Stop()
	a.snakeTick.Stop()
	close(a.done)
	log.Printf("app: stopped after %d frames", a.clock.Frames())
}

// readInput forwards screen events until the screen closes or the loop ends
func (a *App) readInput() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.done:
			return
		}
	}
}

// Quit asks the loop to exit, safe to call more than once
func (a *App) Quit() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
}

// Mode returns the focused view
func (a *App) Mode() input.InputMode {
	return a.input.Mode()
}

// Scene exposes the scene for inspection
func (a *App) Scene() *scene.Scene { return a.scene }

// Snake exposes the snake game for inspection
func (a *App) Snake() *snake.Game { return a.snake }

// Shell exposes the shell for inspection
func (a *App) Shell() *shell.Shell { return a.shell }

// SnakeTicking reports whether the snake interval is delivering ticks
func (a *App) SnakeTicking() bool { return a.snakeTick.Running() }

// setMode moves focus, the scene clock only runs while the scene is shown
func (a *App) setMode(m input.InputMode) {
	a.input.SetMode(m)
	if m == input.ModeScene {
		a.clock.Resume()
	} else {
		a.clock.Pause()
		a.scene.EndDrag()
	}
}

// sceneViewport is the drawable scene area above the HUD
func (a *App) sceneViewport() render.Viewport {
	w, h := a.buf.Size()
	return render.Viewport{W: w, H: max(h-constants.HUDRows, 1)}
}

// frame advances the scene and draws the focused view
func (a *App) frame() {
	dt := a.clock.Tick()
	if a.Mode() == input.ModeScene {
		a.scene.Tick(dt)
	}
	a.draw()
}

func (a *App) draw() {
	a.buf.Clear()
	switch a.Mode() {
	case input.ModeScene:
		a.sceneSnap = a.scene.Snapshot(&a.sceneSnap)
		a.sceneRenderer.Render(a.buf, &a.sceneSnap, a.sceneViewport(), render.HUDStatus{Muted: a.sound.IsMuted()})
	case input.ModeShell:
		a.shellRenderer.Render(a.buf, a.shell)
	case input.ModeSnake:
		a.snakeSnap = a.snake.Snapshot(&a.snakeSnap)
		a.snakeRenderer.Render(a.buf, &a.snakeSnap, a.shell.Theme())
	}
	a.buf.FlushToScreen(a.screen, a.colorMode)
	a.screen.Show()
}

// snakeStep applies one fixed tick and stops the interval on a terminal outcome
func (a *App) snakeStep() {
	switch a.snake.Tick() {
	case snake.OutcomeAte:
		a.sound.Play(audio.SoundEat)
	case snake.OutcomeCrashed:
		a.sound.Play(audio.SoundCrash)
		a.snakeTick.Stop()
		log.Printf("snake: game over, score %d", a.snake.Score())
	case snake.OutcomeBoardFull:
		a.sound.Play(audio.SoundEat)
		a.snakeTick.Stop()
		log.Printf("snake: board cleared, score %d", a.snake.Score())
	case snake.OutcomeNone:
		a.snakeTick.Stop()
	}
}

// startSnake opens a fresh game and hands it keyboard focus
func (a *App) startSnake() {
	a.snake.Reset()
	a.setMode(input.ModeSnake)
	a.snakeTick.Restart()
	log.Printf("snake: started %dx%d", a.snake.Size(), a.snake.Size())
}

// exitSnake stops the interval before returning focus, no tick lands after this
func (a *App) exitSnake() {
	a.snakeTick.Stop()
	a.snake.Stop()
	a.setMode(input.ModeShell)
}

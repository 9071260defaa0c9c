package app

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-term/audio"
	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/input"
	"github.com/lixenwraith/portfolio-term/scene"
	"github.com/lixenwraith/portfolio-term/shell"
)

// handleEvent parses ev for the focused view and applies the resulting intent
func (a *App) handleEvent(ev tcell.Event) {
	intent := a.input.Process(ev)
	if intent == nil {
		return
	}
	a.apply(intent)
}

func (a *App) apply(in *input.Intent) {
	switch in.Type {
	case input.IntentQuit:
		a.Quit()

	case input.IntentToggleMute:
		muted := a.sound.ToggleMute()
		log.Printf("audio: muted=%v", muted)

	case input.IntentResize:
		a.screen.Sync()
		w, h := a.screen.Size()
		a.buf.Resize(w, h)

	case input.IntentToggleView:
		if a.Mode() == input.ModeScene {
			a.setMode(input.ModeShell)
		} else if a.Mode() == input.ModeShell {
			a.setMode(input.ModeScene)
		}

	case input.IntentEscape:
		switch a.Mode() {
		case input.ModeScene:
			if a.scene.Deselect() {
				a.sound.Play(audio.SoundSelect)
			}
		case input.ModeShell:
			a.setMode(input.ModeScene)
		case input.ModeSnake:
			a.exitSnake()
		}

	default:
		switch a.Mode() {
		case input.ModeScene:
			a.applyScene(in)
		case input.ModeSnake:
			a.applySnake(in)
		case input.ModeShell:
			a.applyShell(in)
		}
	}
}

func (a *App) applyScene(in *input.Intent) {
	cfg := a.scene.Config()

	switch in.Type {
	case input.IntentSelectBody:
		if a.scene.View() != scene.ViewSolar {
			return
		}
		bodies := a.scene.Bodies()
		if in.Index < 0 || in.Index >= len(bodies) {
			return
		}
		a.selectBody(bodies[in.Index].Key)

	case input.IntentOrbit:
		a.scene.NudgeCamera(in.DX*constants.KeyOrbitStep, in.DY*constants.KeyOrbitStep)

	case input.IntentZoom:
		if in.Mod {
			a.scene.ZoomCamera(in.Delta * cfg.WheelStep)
		} else {
			a.scene.ZoomCamera(in.Delta * constants.KeyZoomStep)
		}

	case input.IntentCameraReset:
		a.scene.ResetCamera()

	case input.IntentToggleHint:
		a.showHint = !a.showHint
		a.scene.SetShowControls(a.showHint)

	case input.IntentClick:
		hit := a.hitAt(in.X, in.Y)
		if hit.Kind == scene.HitPlanet {
			a.selectBody(hit.BodyKey)
		}

	case input.IntentHover:
		vp := a.sceneViewport()
		nx, ny := vp.ToNDC(in.X, in.Y)
		a.scene.SetPointer(nx, ny)
		a.scene.SetHover(a.hitAt(in.X, in.Y))
		if a.input.Dragging() {
			// Re-anchor so orbiting resumes from here once the modifier returns
			a.dragX, a.dragY = in.X, in.Y
		}
		if in.Mod && !a.showHint {
			a.showHint = true
			a.scene.SetShowControls(true)
		}

	case input.IntentDragBegin:
		a.scene.BeginDrag()
		a.showHint = false
		a.dragX, a.dragY = in.X, in.Y

	case input.IntentDragMove:
		dx := float64(in.X - a.dragX)
		dy := float64(in.Y - a.dragY)
		a.dragX, a.dragY = in.X, in.Y
		// Rows are twice as tall as columns
		a.scene.OrbitCamera(-dx*cfg.DragStep, -dy*2*cfg.DragStep)

	case input.IntentDragEnd:
		a.scene.EndDrag()
	}
}

// hitAt picks at cell x,y, rows under the HUD miss
func (a *App) hitAt(x, y int) scene.Hit {
	vp := a.sceneViewport()
	if !vp.Contains(x, y) {
		return scene.Hit{}
	}
	nx, ny := vp.ToNDC(x, y)
	return a.scene.HitTest(nx, ny, vp.Aspect())
}

func (a *App) selectBody(key string) {
	if a.scene.SelectBody(key) {
		a.sound.Play(audio.SoundSelect)
		log.Printf("scene: select %s", key)
	}
}

func (a *App) applySnake(in *input.Intent) {
	switch in.Type {
	case input.IntentSnakeDir:
		a.snake.SetDirection(in.Dir)
	case input.IntentSnakeRestart:
		if a.snake.GameOver() || a.snake.Won() {
			a.snake.Reset()
			a.snakeTick.Restart()
		}
	}
}

func (a *App) applyShell(in *input.Intent) {
	switch in.Type {
	case input.IntentTextChar:
		a.shell.InsertRune(in.Char)
		a.sound.Play(audio.SoundKey)
	case input.IntentTextBackspace:
		a.shell.Backspace()
	case input.IntentTextDelete:
		a.shell.Delete()
	case input.IntentTextNav:
		switch in.Nav {
		case input.NavLeft:
			a.shell.MoveCursor(-1)
		case input.NavRight:
			a.shell.MoveCursor(1)
		case input.NavHome:
			a.shell.Home()
		case input.NavEnd:
			a.shell.End()
		}
	case input.IntentHistoryPrev:
		a.shell.HistoryPrev()
	case input.IntentHistoryNext:
		a.shell.HistoryNext()
	case input.IntentTextSubmit:
		res := a.shell.Submit()
		switch res.Action {
		case shell.ActionLaunchSnake:
			a.startSnake()
		case shell.ActionTheme:
			log.Printf("shell: theme %s", res.Theme)
		}
	}
}

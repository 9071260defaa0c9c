package app

import (
	"context"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-term/audio"
	"github.com/lixenwraith/portfolio-term/config"
	"github.com/lixenwraith/portfolio-term/engine"
	"github.com/lixenwraith/portfolio-term/input"
	"github.com/lixenwraith/portfolio-term/render"
	"github.com/lixenwraith/portfolio-term/scene"
)

// fakePlayer records played sounds
type fakePlayer struct {
	mu     sync.Mutex
	played []audio.SoundType
	muted  bool
}

func (p *fakePlayer) Play(s audio.SoundType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted {
		return false
	}
	p.played = append(p.played, s)
	return true
}
func (p *fakePlayer) ToggleMute() bool { p.muted = !p.muted; return p.muted }
func (p *fakePlayer) IsMuted() bool    { return p.muted }
func (p *fakePlayer) Cleanup()         {}

func (p *fakePlayer) count(s audio.SoundType) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, got := range p.played {
		if got == s {
			n++
		}
	}
	return n
}

type testApp struct {
	*App
	screen tcell.SimulationScreen
	player *fakePlayer
	clock  *engine.MockTimeProvider
}

func newTestApp(t *testing.T, w, h int) *testApp {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Scene.Seed = 1
	cfg.Snake.Seed = 1
	cfg.Terminal.Color = "truecolor"

	player := &fakePlayer{}
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	a, err := New(cfg, screen, Options{Sound: player, TimeProvider: clock})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return &testApp{App: a, screen: screen, player: player, clock: clock}
}

func (ta *testApp) key(k tcell.Key) {
	ta.handleEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func (ta *testApp) press(r rune) {
	ta.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func (ta *testApp) typeLine(s string) {
	for _, r := range s {
		ta.press(r)
	}
	ta.key(tcell.KeyEnter)
}

// screenText joins the simulation screen rows
func (ta *testApp) screenText() string {
	cells, w, h := ta.screen.GetContents()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) == 0 {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteRune(c.Runes[0])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// settle runs the scene past any view transition
func (ta *testApp) settle() {
	ta.scene.Tick(2 * time.Second)
}

func TestNewRejectsBadColorMode(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	cfg := config.Default()
	cfg.Terminal.Color = "sepia"
	if _, err := New(cfg, screen, Options{}); err == nil {
		t.Error("expected color mode error")
	}
}

func TestStartViewFromConfig(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	cfg := config.Default()
	cfg.Terminal.View = config.ViewShell
	a, err := New(cfg, screen, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if a.Mode() != input.ModeShell {
		t.Errorf("mode = %s, want shell", a.Mode())
	}
}

func TestToggleViewPausesSceneClock(t *testing.T) {
	ta := newTestApp(t, 100, 30)

	ta.frame()
	ta.clock.Advance(50 * time.Millisecond)
	ta.frame()
	angle := ta.scene.Bodies()[0].Angle

	ta.key(tcell.KeyTab)
	if ta.Mode() != input.ModeShell {
		t.Fatalf("mode = %s, want shell", ta.Mode())
	}
	ta.clock.Advance(time.Second)
	ta.frame()
	if got := ta.scene.Bodies()[0].Angle; got != angle {
		t.Errorf("scene advanced while hidden: %f -> %f", angle, got)
	}

	ta.key(tcell.KeyTab)
	if ta.Mode() != input.ModeScene {
		t.Fatalf("mode = %s, want scene", ta.Mode())
	}
	ta.clock.Advance(50 * time.Millisecond)
	ta.frame()
	if got := ta.scene.Bodies()[0].Angle; got == angle {
		t.Error("scene did not resume")
	}
}

func TestSelectBodyByNumber(t *testing.T) {
	ta := newTestApp(t, 100, 30)
	want := ta.scene.Bodies()[1].Key

	ta.press('2')
	if got := ta.scene.View().String(); got != want {
		t.Fatalf("view = %s, want %s", got, want)
	}
	if ta.player.count(audio.SoundSelect) != 1 {
		t.Error("select sound not played")
	}

	// Another number is ignored outside the solar view
	ta.settle()
	ta.press('1')
	if got := ta.scene.View().String(); got != want {
		t.Errorf("view changed to %s", got)
	}

	ta.key(tcell.KeyEscape)
	if ta.scene.View() != scene.ViewSolar {
		t.Errorf("escape left view %s", ta.scene.View())
	}

	// Out of range index is ignored
	ta.settle()
	ta.press('9')
	if ta.scene.View() != scene.ViewSolar {
		t.Errorf("view = %s after out of range select", ta.scene.View())
	}
}

func TestClickSelectsPlanet(t *testing.T) {
	ta := newTestApp(t, 160, 50)
	vp := ta.sceneViewport()
	cam := ta.scene.Camera().State()

	for _, b := range ta.scene.Bodies() {
		p, ok := cam.Project(b.Position, vp.Aspect())
		if !ok {
			continue
		}
		cx, cy := vp.ToCell(p.X, p.Y)
		x, y := int(cx), int(cy)
		if !vp.Contains(x, y) {
			continue
		}
		ta.handleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
		ta.handleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
		if ta.scene.View() == scene.ViewSolar {
			t.Fatalf("click at %d,%d on %s did not select", x, y, b.Key)
		}
		return
	}
	t.Fatal("no body projected on screen")
}

func TestClickOnHUDMisses(t *testing.T) {
	ta := newTestApp(t, 100, 30)
	if hit := ta.hitAt(50, 29); hit.Kind != scene.HitNone {
		t.Errorf("HUD row hit %s", hit.Kind)
	}
}

func TestModifierDragOrbitsCamera(t *testing.T) {
	ta := newTestApp(t, 100, 30)
	before := ta.scene.Camera().Offset

	ta.handleEvent(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModCtrl))
	if !ta.scene.Dragging() {
		t.Fatal("drag not started")
	}
	ta.handleEvent(tcell.NewEventMouse(20, 12, tcell.Button1, tcell.ModCtrl))
	ta.handleEvent(tcell.NewEventMouse(20, 12, tcell.ButtonNone, tcell.ModCtrl))
	if ta.scene.Dragging() {
		t.Error("drag not ended")
	}

	after := ta.scene.Camera().Offset
	if after.Theta >= before.Theta {
		t.Errorf("theta %f -> %f, want decrease for rightward drag", before.Theta, after.Theta)
	}
	if after.Phi >= before.Phi {
		t.Errorf("phi %f -> %f, want decrease for downward drag", before.Phi, after.Phi)
	}
}

func TestDragPausesWhenModifierReleased(t *testing.T) {
	ta := newTestApp(t, 100, 30)
	before := ta.scene.Camera().Offset
	step := ta.scene.Config().DragStep

	ta.handleEvent(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModCtrl))
	ta.handleEvent(tcell.NewEventMouse(20, 12, tcell.Button1, tcell.ModNone))
	if ta.scene.Camera().Offset != before {
		t.Fatal("camera orbited after modifier release")
	}
	if !ta.scene.Dragging() {
		t.Fatal("drag ended while button held")
	}

	// Orbit resumes from the last pointer cell, not the drag start
	ta.handleEvent(tcell.NewEventMouse(22, 12, tcell.Button1, tcell.ModCtrl))
	after := ta.scene.Camera().Offset
	if want := before.Theta - 2*step; math.Abs(after.Theta-want) > 1e-9 {
		t.Errorf("theta = %f, want %f", after.Theta, want)
	}
	if after.Phi != before.Phi {
		t.Errorf("phi %f -> %f on horizontal move", before.Phi, after.Phi)
	}

	ta.handleEvent(tcell.NewEventMouse(22, 12, tcell.ButtonNone, tcell.ModNone))
	if ta.scene.Dragging() {
		t.Error("drag not ended on release")
	}
}

func TestKeyOrbitKeepsHint(t *testing.T) {
	ta := newTestApp(t, 100, 30)
	before := ta.scene.Camera().Offset

	ta.press('?')
	ta.key(tcell.KeyRight)
	if ta.scene.Dragging() {
		t.Error("key orbit left a drag open")
	}
	if got := ta.scene.Camera().Offset.Theta; got <= before.Theta {
		t.Errorf("theta %f -> %f, want increase", before.Theta, got)
	}

	ta.frame()
	if !strings.Contains(ta.screenText(), "Ctrl+drag to orbit") {
		t.Error("controls hint hidden by key orbit")
	}
}

func TestPlainDragDoesNotOrbit(t *testing.T) {
	ta := newTestApp(t, 100, 30)
	before := ta.scene.Camera().Offset

	ta.handleEvent(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	ta.handleEvent(tcell.NewEventMouse(30, 15, tcell.Button1, tcell.ModNone))
	ta.handleEvent(tcell.NewEventMouse(30, 15, tcell.ButtonNone, tcell.ModNone))

	if ta.scene.Camera().Offset != before {
		t.Error("camera moved without modifier")
	}
}

func TestWheelZoomNeedsModifier(t *testing.T) {
	ta := newTestApp(t, 100, 30)
	r0 := ta.scene.Camera().Offset.Radius

	ta.handleEvent(tcell.NewEventMouse(5, 5, tcell.WheelUp, tcell.ModNone))
	if got := ta.scene.Camera().Offset.Radius; got != r0 {
		t.Errorf("plain wheel zoomed: %f -> %f", r0, got)
	}

	ta.handleEvent(tcell.NewEventMouse(5, 5, tcell.WheelUp, tcell.ModCtrl))
	if got := ta.scene.Camera().Offset.Radius; got != r0-ta.scene.Config().WheelStep {
		t.Errorf("radius = %f, want %f", got, r0-ta.scene.Config().WheelStep)
	}
}

func TestModifierHoverRevealsHint(t *testing.T) {
	ta := newTestApp(t, 100, 30)
	ta.handleEvent(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModCtrl))
	ta.frame()
	if !strings.Contains(ta.screenText(), "Ctrl+drag to orbit") {
		t.Error("controls hint not shown after modifier hover")
	}
}

func TestSceneFrameDrawsHUD(t *testing.T) {
	ta := newTestApp(t, 100, 30)
	ta.frame()
	text := ta.screenText()
	if !strings.Contains(text, "SKILLSETS") {
		t.Error("HUD view name missing")
	}
	if strings.Contains(text, "muted") {
		t.Error("muted shown while unmuted")
	}

	ta.press('m')
	ta.frame()
	if !strings.Contains(ta.screenText(), "muted") {
		t.Error("muted indicator missing")
	}
}

func TestShellTypingAndTheme(t *testing.T) {
	ta := newTestApp(t, 100, 30)
	ta.key(tcell.KeyTab)

	ta.typeLine("theme matrix")
	if got := ta.shell.Theme().String(); got != "matrix" {
		t.Errorf("theme = %s, want matrix", got)
	}
	if ta.player.count(audio.SoundKey) != len("theme matrix") {
		t.Errorf("key clicks = %d", ta.player.count(audio.SoundKey))
	}

	ta.frame()
	if !strings.Contains(ta.screenText(), "Theme changed to matrix!") {
		t.Error("theme output not drawn")
	}

	// q is text in the shell, not quit
	ta.press('q')
	select {
	case <-ta.quit:
		t.Fatal("q quit from the shell")
	default:
	}
	if ta.shell.Input() != "q" {
		t.Errorf("input = %q", ta.shell.Input())
	}

	ta.key(tcell.KeyEscape)
	if ta.Mode() != input.ModeScene {
		t.Errorf("escape from shell: mode %s", ta.Mode())
	}
}

func TestSnakeLaunchAndEscape(t *testing.T) {
	ta := newTestApp(t, 100, 30)
	ta.key(tcell.KeyTab)
	ta.typeLine("snake")

	if ta.Mode() != input.ModeSnake {
		t.Fatalf("mode = %s, want snake", ta.Mode())
	}
	if !ta.SnakeTicking() || !ta.snake.Running() {
		t.Fatal("snake not running after launch")
	}

	ta.frame()
	if !strings.Contains(ta.screenText(), render.SnakeTitle) {
		t.Error("snake board not drawn")
	}

	ta.key(tcell.KeyEscape)
	if ta.Mode() != input.ModeShell {
		t.Errorf("mode = %s, want shell", ta.Mode())
	}
	if ta.SnakeTicking() {
		t.Error("interval still running after escape")
	}
	if ta.snake.Running() {
		t.Error("game still running after escape")
	}
}

func TestSnakeCrashStopsInterval(t *testing.T) {
	ta := newTestApp(t, 100, 30)
	ta.startSnake()
	ta.press('w')

	for i := 0; i < 64 && ta.SnakeTicking(); i++ {
		ta.snakeStep()
	}
	if ta.SnakeTicking() {
		t.Fatal("interval still running")
	}
	if !ta.snake.GameOver() {
		t.Fatal("expected wall crash")
	}
	if ta.player.count(audio.SoundCrash) != 1 {
		t.Error("crash sound not played")
	}

	ta.frame()
	if !strings.Contains(ta.screenText(), "Game Over!") {
		t.Error("game over footer missing")
	}

	ta.press('r')
	if ta.snake.GameOver() || !ta.SnakeTicking() {
		t.Error("restart did not reset the game")
	}
}

func TestResizeUpdatesBuffer(t *testing.T) {
	ta := newTestApp(t, 100, 30)
	ta.screen.SetSize(60, 20)
	ta.handleEvent(tcell.NewEventResize(60, 20))
	if w, h := ta.buf.Size(); w != 60 || h != 20 {
		t.Errorf("buffer %dx%d, want 60x20", w, h)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	ta := newTestApp(t, 80, 24)

	errc := make(chan error, 1)
	go func() { errc <- ta.Run(context.Background()) }()

	ta.screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not exit on q")
	}
	if ta.SnakeTicking() {
		t.Error("snake interval running after teardown")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ta := newTestApp(t, 80, 24)
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() { errc <- ta.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-errc:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not exit on cancel")
	}
}

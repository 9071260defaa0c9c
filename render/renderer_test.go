package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/scene"
	"github.com/lixenwraith/portfolio-term/shell"
	"github.com/lixenwraith/portfolio-term/snake"
	"github.com/lixenwraith/portfolio-term/vmath"
)

// rowText reads row y of buf as a string, empty cells as spaces
func rowText(buf *RenderBuffer, y int) string {
	w, _ := buf.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r := buf.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func bufferContains(buf *RenderBuffer, s string) bool {
	_, h := buf.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(buf, y), s) {
			return true
		}
	}
	return false
}

// frontCamera looks down -Z at the origin from distance d
func frontCamera(d float64) scene.CameraState {
	return scene.CameraState{
		Position: vmath.V3F(0, 0, d),
		FOV:      constants.CameraFOVDegrees * 3.141592653589793 / 180,
	}
}

func sunOnlySnapshot() scene.Snapshot {
	return scene.Snapshot{
		View:            scene.ViewSolar,
		SunRadius:       constants.SunRadius,
		SunScale:        1,
		SunLabel:        vmath.Vec3F{Y: constants.SunLabelY},
		SunLabelVisible: true,
		Camera:          frontCamera(30),
	}
}

func TestSceneRendersSunAtCenter(t *testing.T) {
	buf := NewRenderBuffer(80, 24, RgbBackground)
	vp := Viewport{W: 80, H: 24 - constants.HUDRows}
	snap := sunOnlySnapshot()

	NewSceneRenderer().Render(buf, &snap, vp, HUDStatus{})

	center := buf.Get(vp.W/2, vp.H/2)
	if luma(center.Bg) < 0.5 {
		t.Errorf("sun center too dark: %v", center.Bg)
	}
	corner := buf.Get(0, 0)
	if corner.Bg != RgbBackground {
		t.Errorf("corner painted: %v", corner.Bg)
	}
	if !bufferContains(buf, constants.SunLabel) {
		t.Error("sun label missing")
	}
}

func TestScenePaintersOrder(t *testing.T) {
	buf := NewRenderBuffer(80, 24, RgbBackground)
	vp := Viewport{W: 80, H: 22}
	snap := sunOnlySnapshot()
	snap.Bodies = []scene.BodyState{{
		Key:      "near",
		Name:     "Near",
		Position: vmath.V3F(0, 0, 15),
		Radius:   1.5,
		Colors:   [3]uint32{0x0000ff, 0x0000ff, 0x0000ff},
	}}

	NewSceneRenderer().Render(buf, &snap, vp, HUDStatus{})

	// The nearer blue body covers the sun center
	c := buf.Get(vp.W/2, vp.H/2).Bg
	if c.B <= c.R || c.B <= c.G {
		t.Errorf("center %v, want the near blue body over the sun", c)
	}
}

func TestSceneBehindCameraSkipped(t *testing.T) {
	buf := NewRenderBuffer(40, 12, RgbBackground)
	vp := Viewport{W: 40, H: 10}
	snap := sunOnlySnapshot()
	snap.Camera = scene.CameraState{
		Position: vmath.V3F(0, 0, 30),
		LookAt:   vmath.V3F(0, 0, 60),
		FOV:      1,
	}
	snap.SunLabelVisible = false

	NewSceneRenderer().Render(buf, &snap, vp, HUDStatus{})

	for y := 0; y < vp.H; y++ {
		for x := 0; x < vp.W; x++ {
			if c := buf.Get(x, y); c.Rune != 0 && c.Rune != ' ' {
				t.Fatalf("cell %d,%d drawn (%q) for a sun behind the camera", x, y, c.Rune)
			}
		}
	}
}

func TestSceneHoverCardAndHUD(t *testing.T) {
	buf := NewRenderBuffer(100, 30, RgbBackground)
	vp := Viewport{W: 100, H: 28}
	snap := sunOnlySnapshot()
	snap.View = "backend"
	snap.Bodies = []scene.BodyState{{Key: "backend", Name: "Backend", Position: vmath.V3F(20, 0, 0), Radius: 1.5}}
	snap.Hover = scene.Hit{Kind: scene.HitMoon, BodyKey: "backend", Skill: scene.Skill{Name: "Go", Level: 80}}
	snap.ShowControls = true

	NewSceneRenderer().Render(buf, &snap, vp, HUDStatus{Muted: true})

	if !strings.Contains(rowText(buf, 2), "Go") {
		t.Errorf("hover card title missing: %q", rowText(buf, 2))
	}
	if !strings.Contains(rowText(buf, 3), " 80%") {
		t.Errorf("hover card level missing: %q", rowText(buf, 3))
	}
	if !strings.Contains(rowText(buf, 1), "Ctrl+drag") {
		t.Errorf("controls hint missing: %q", rowText(buf, 1))
	}
	hud := rowText(buf, vp.H)
	if !strings.Contains(hud, "BACKEND") || !strings.Contains(hud, "esc back") {
		t.Errorf("HUD row %q", hud)
	}
	if !strings.Contains(rowText(buf, vp.H+1), "muted") {
		t.Error("mute indicator missing")
	}
}

func TestLevelBar(t *testing.T) {
	f, e := LevelBar(50, 10)
	if len([]rune(f)) != 5 || len([]rune(e)) != 5 {
		t.Errorf("50%%: %q %q", f, e)
	}
	f, e = LevelBar(130, 10)
	if len([]rune(f)) != 10 || e != "" {
		t.Errorf("clamped: %q %q", f, e)
	}
}

func TestShellRendersTranscriptAndPrompt(t *testing.T) {
	sh := shell.New(shell.ThemeMatrix, 0)
	sh.Process("help")
	for _, r := range "abo" {
		sh.InsertRune(r)
	}

	buf := NewRenderBuffer(100, 40, RGBBlack)
	NewShellRenderer().Render(buf, sh)

	if !bufferContains(buf, "engineer@portfolio: ~") {
		t.Error("title bar missing")
	}
	if !bufferContains(buf, shell.Prompt()+"help") {
		t.Error("submitted command missing from transcript")
	}
	if !bufferContains(buf, shell.Prompt()+"abo") {
		t.Error("input line missing")
	}

	pal := PaletteFor(shell.ThemeMatrix)
	cursors := 0
	_, h := buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < 100; x++ {
			if buf.Get(x, y).Bg == pal.Text {
				cursors++
			}
		}
	}
	if cursors != 1 {
		t.Errorf("found %d cursor cells, want 1", cursors)
	}
}

func TestShellTranscriptBottomAligned(t *testing.T) {
	sh := shell.New(shell.ThemeDefault, 0)
	for i := 0; i < 30; i++ {
		sh.Process("contact")
	}
	buf := NewRenderBuffer(80, 12, RGBBlack)
	NewShellRenderer().Render(buf, sh)

	_, y0, _, wh := WindowRect(80, 12)
	last := rowText(buf, y0+wh-2)
	if !strings.Contains(last, shell.Prompt()) {
		t.Errorf("last body row %q, want prompt", last)
	}
}

func TestWindowRectBounds(t *testing.T) {
	x, _, w, _ := WindowRect(200, 50)
	if w != constants.ShellMaxWidth || x != (200-w)/2 {
		t.Errorf("wide: x=%d w=%d", x, w)
	}
	_, _, w, _ = WindowRect(30, 20)
	if w != 30 {
		t.Errorf("narrow: w=%d, want screen width", w)
	}
}

func TestSnakeRender(t *testing.T) {
	g, err := snake.New(snake.DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	snap := g.Snapshot(nil)

	buf := NewRenderBuffer(80, 30, RGBBlack)
	r := NewSnakeRenderer()
	r.Render(buf, &snap, shell.ThemeDefault)

	if !bufferContains(buf, SnakeTitle) || !bufferContains(buf, "Score: 0") {
		t.Error("title or score missing")
	}
	if !bufferContains(buf, SnakeHelpFooter) {
		t.Error("help footer missing")
	}

	pal := PaletteFor(shell.ThemeDefault)
	head := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 80; x++ {
			if buf.Get(x, y).Bg == pal.SnakeHead {
				head++
			}
		}
	}
	if head != constants.SnakeCellWidth {
		t.Errorf("head spans %d columns, want %d", head, constants.SnakeCellWidth)
	}

	snap.GameOver = true
	snap.Running = false
	snap.Score = 7
	r.Render(buf, &snap, shell.ThemeDefault)
	if !bufferContains(buf, "Game Over! Score: 7. Press ESC to exit.") {
		t.Error("game over footer missing")
	}
}

func TestFlushToSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(20, 3)

	buf := NewRenderBuffer(20, 3, RGBBlack)
	buf.WriteString(2, 1, "hello", RGBWhite, tcell.AttrBold)
	buf.FlushToScreen(screen, ColorModeTrueColor)
	screen.Show()

	cells, w, _ := screen.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteString(string(cells[w+x].Runes))
	}
	if got := strings.TrimSpace(sb.String()); got != "hello" {
		t.Errorf("row 1 = %q", got)
	}
	if _, _, attrs := cells[w+2].Style.Decompose(); attrs&tcell.AttrBold == 0 {
		t.Error("bold attribute lost")
	}
}

// luma returns Rec. 601 brightness in [0,1]
func luma(c RGB) float64 {
	return (float64(c.R)*0.299 + float64(c.G)*0.587 + float64(c.B)*0.114) / 255
}

package render

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/scene"
	"github.com/lixenwraith/portfolio-term/vmath"
)

// Precomputed screen-space lighting, light from upper left toward the viewer
var lightX, lightY, lightZ float64

func init() {
	lx, ly, lz := -0.5, -0.6, 0.65
	mag := math.Sqrt(lx*lx + ly*ly + lz*lz)
	lightX, lightY, lightZ = lx/mag, ly/mag, lz/mag
}

type drawableKind uint8

const (
	kindSun drawableKind = iota
	kindPlanet
	kindMoon
)

type drawable struct {
	kind    drawableKind
	p       projected
	radius  float64 // world units
	stops   [3]RGB
	spin    float64
	hovered bool
}

// HUDStatus is host state shown in the status rows
type HUDStatus struct {
	Muted bool
}

// SceneRenderer draws a scene snapshot with painter's ordering
type SceneRenderer struct {
	drawables []drawable
}

// NewSceneRenderer creates a scene renderer
func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{}
}

// Render draws snap into the top vp.H rows of buf and the HUD into the rows below
func (r *SceneRenderer) Render(buf *RenderBuffer, snap *scene.Snapshot, vp Viewport, status HUDStatus) {
	cam := snap.Camera

	r.renderParticles(buf, snap, vp)
	for _, ring := range snap.Orbits {
		renderRing(buf, cam, vp, ring, constants.OrbitRingSamples, RgbOrbitRing)
	}
	for _, ring := range snap.MoonRings {
		renderRing(buf, cam, vp, ring, constants.MoonRingSamples, RgbMoonRing)
	}

	r.collect(snap, vp)
	// Painter's algorithm: far to near
	sort.SliceStable(r.drawables, func(i, j int) bool {
		return r.drawables[i].p.depth > r.drawables[j].p.depth
	})
	for i := range r.drawables {
		renderSphere(buf, &r.drawables[i], snap.Time, vp)
	}

	renderLabels(buf, snap, vp)
	renderHoverCard(buf, snap, vp)
	if snap.ShowControls {
		renderControlsHint(buf, vp)
	}
	renderHUD(buf, snap, vp, status)
}

func (r *SceneRenderer) renderParticles(buf *RenderBuffer, snap *scene.Snapshot, vp Viewport) {
	for _, p := range snap.Particles {
		pr, ok := vp.project(snap.Camera, p)
		if !ok {
			continue
		}
		x, y := int(pr.cx), int(pr.cy)
		if pr.cx < 0 || pr.cy < 0 || !vp.Contains(x, y) {
			continue
		}
		near := vmath.Clamp(1.4-pr.depth/160, 0.25, 1)
		glyph := '·'
		if near > 0.8 {
			glyph = '•'
		}
		buf.SetFgOnly(x, y, glyph, Scale(RgbParticle, near), tcell.AttrNone)
	}
}

// renderRing samples a horizontal circle and plots it with dots
func renderRing(buf *RenderBuffer, cam scene.CameraState, vp Viewport, ring scene.RingState, samples int, color RGB) {
	for i := 0; i < samples; i++ {
		a := float64(i) / float64(samples) * (2 * math.Pi)
		s, c := math.Sincos(a)
		p := vmath.V3FAdd(ring.Center, vmath.V3F(c*ring.Radius, 0, s*ring.Radius))
		pr, ok := vp.project(cam, p)
		if !ok || pr.cx < 0 || pr.cy < 0 {
			continue
		}
		x, y := int(pr.cx), int(pr.cy)
		if !vp.Contains(x, y) {
			continue
		}
		fade := vmath.Clamp(1.3-pr.depth/140, 0.35, 1)
		buf.SetFgOnly(x, y, '·', Scale(color, fade), tcell.AttrNone)
	}
}

func stops3(c [3]uint32) [3]RGB {
	return [3]RGB{Hex(c[0]), Hex(c[1]), Hex(c[2])}
}

func stops2(c [2]uint32) [3]RGB {
	a, b := Hex(c[0]), Hex(c[1])
	return [3]RGB{a, Lerp(a, b, 0.5), b}
}

// collect projects the sun, bodies and visible satellites
func (r *SceneRenderer) collect(snap *scene.Snapshot, vp Viewport) {
	r.drawables = r.drawables[:0]
	cam := snap.Camera

	if p, ok := vp.project(cam, vmath.Vec3F{}); ok {
		r.drawables = append(r.drawables, drawable{
			kind:   kindSun,
			p:      p,
			radius: snap.SunRadius * snap.SunScale,
			stops:  [3]RGB{RgbSunCore, RgbSunMid, RgbSunEdge},
			spin:   snap.SunSpin,
		})
	}

	for _, b := range snap.Bodies {
		p, ok := vp.project(cam, b.Position)
		if !ok {
			continue
		}
		r.drawables = append(r.drawables, drawable{
			kind:    kindPlanet,
			p:       p,
			radius:  b.Radius,
			stops:   stops3(b.Colors),
			spin:    b.Spin,
			hovered: snap.Hover.Kind == scene.HitPlanet && snap.Hover.BodyKey == b.Key,
		})
	}

	for _, s := range snap.Satellites {
		p, ok := vp.project(cam, s.Position)
		if !ok {
			continue
		}
		r.drawables = append(r.drawables, drawable{
			kind:    kindMoon,
			p:       p,
			radius:  s.Size,
			stops:   stops2(s.Colors),
			hovered: snap.Hover.Kind == scene.HitMoon && snap.Hover.BodyKey == s.BodyKey && snap.Hover.Skill == s.Skill,
		})
	}
}

// renderSphere shades a disc with a vertical three-stop gradient, a drifting shimmer band,
// lambert and specular terms and a screen-blended glow halo
func renderSphere(buf *RenderBuffer, d *drawable, t float64, vp Viewport) {
	rows := d.radius * d.p.rows
	cols := rows * 2
	if rows <= 0 {
		return
	}

	// Sub-cell spheres collapse to a single glyph
	if rows < 0.45 {
		x, y := int(d.p.cx), int(d.p.cy)
		if d.p.cx >= 0 && d.p.cy >= 0 && vp.Contains(x, y) {
			c := d.stops[1]
			if d.hovered {
				c = RgbHover
			}
			buf.SetFgOnly(x, y, '●', c, tcell.AttrBold)
		}
		return
	}

	glow := 1.6
	if d.kind == kindSun {
		glow = 2.2
	}
	minX := max(0, int(d.p.cx-cols*glow-1))
	maxX := min(vp.W-1, int(d.p.cx+cols*glow+1))
	minY := max(0, int(d.p.cy-rows*glow-1))
	maxY := min(vp.H-1, int(d.p.cy+rows*glow+1))

	depthBright := vmath.Clamp(1.25-d.p.depth/200, 0.55, 1)
	glowLimit := glow * glow

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float64(sx) + 0.5 - d.p.cx) / cols
			ny := (float64(sy) + 0.5 - d.p.cy) / rows
			distSq := nx*nx + ny*ny
			if distSq > glowLimit {
				continue
			}

			if distSq > 1 {
				// Outer glow, exponential falloff
				falloff := math.Exp(-(math.Sqrt(distSq)-1)*3) * 0.55 * depthBright
				if d.kind == kindSun {
					falloff *= 1.4
				}
				if d.hovered {
					falloff = math.Min(1, falloff*1.8)
				}
				buf.Set(sx, sy, 0, RGB{}, Scale(d.stops[1], falloff), BlendScreenBg, 1, tcell.AttrNone)
				continue
			}

			nz := math.Sqrt(1 - distSq)
			var c RGB
			switch d.kind {
			case kindSun:
				// Emissive: hot core to orange limb with slow swirl
				swirl := 0.08 * math.Sin(d.spin*3+nx*5+ny*4+t*6)
				c = Gradient3(d.stops, vmath.Clamp(math.Sqrt(distSq)+swirl, 0, 1))
			default:
				// Gradient runs top to bottom, shimmer band drifts with spin and shader time
				g := (ny + 1) / 2
				g += 0.12 * math.Sin(nx*4+d.spin*2+t*3)
				base := Gradient3(d.stops, vmath.Clamp(g, 0, 1))

				lambert := math.Max(0, nx*lightX+ny*lightY+nz*lightZ)
				spec := math.Pow(lambert, 24) * 0.7
				rim := (1 - nz) * (1 - nz) * 0.5

				intensity := (0.35 + 0.65*lambert + rim*0.4) * depthBright
				c = Scale(base, intensity)
				c = Add(c, Scale(RGBWhite, spec), 1)
			}

			if d.hovered && distSq > 0.75 {
				c = Screen(c, RgbHover, 0.55)
			}
			buf.SetWithBg(sx, sy, ' ', c, c)
		}
	}
}

// drawLabel centers text on the projected anchor
func drawLabel(buf *RenderBuffer, cam scene.CameraState, vp Viewport, anchor vmath.Vec3F, text string, fg RGB, attrs tcell.AttrMask) {
	pr, ok := vp.project(cam, anchor)
	if !ok || pr.cy < 0 {
		return
	}
	y := int(pr.cy)
	if y < 0 || y >= vp.H {
		return
	}
	n := len([]rune(text))
	x := int(math.Round(pr.cx)) - n/2
	for i, r := range []rune(text) {
		if vp.Contains(x+i, y) {
			buf.SetFgOnly(x+i, y, r, fg, attrs)
		}
	}
}

func renderLabels(buf *RenderBuffer, snap *scene.Snapshot, vp Viewport) {
	cam := snap.Camera
	if snap.SunLabelVisible {
		drawLabel(buf, cam, vp, snap.SunLabel, constants.SunLabel, RgbSunMid, tcell.AttrBold)
	}
	for _, b := range snap.Bodies {
		if !b.LabelVisible {
			continue
		}
		fg, attrs := RgbLabel, tcell.AttrNone
		if snap.Hover.Kind == scene.HitPlanet && snap.Hover.BodyKey == b.Key {
			fg, attrs = RgbHover, tcell.AttrBold
		}
		drawLabel(buf, cam, vp, b.Label, b.Name, fg, attrs)
	}
	for _, s := range snap.Satellites {
		fg, attrs := RgbLabelDim, tcell.AttrNone
		if snap.Hover.Kind == scene.HitMoon && snap.Hover.Skill == s.Skill {
			fg, attrs = RgbHover, tcell.AttrBold
		}
		drawLabel(buf, cam, vp, s.Label, s.Skill.Name, fg, attrs)
	}
}

func bodyByKey(snap *scene.Snapshot, key string) *scene.BodyState {
	for i := range snap.Bodies {
		if snap.Bodies[i].Key == key {
			return &snap.Bodies[i]
		}
	}
	return nil
}

// LevelBar renders a width-cell progress bar for level 0-100
func LevelBar(level, width int) (filled, empty string) {
	n := int(math.Round(float64(vmath.Clamp(float64(level), 0, 100)) / 100 * float64(width)))
	return strings.Repeat("█", n), strings.Repeat("░", width-n)
}

// renderHoverCard draws the hovered body or skill in a box at the top right
func renderHoverCard(buf *RenderBuffer, snap *scene.Snapshot, vp Viewport) {
	h := snap.Hover
	if h.Kind == scene.HitNone {
		return
	}

	var title, line string
	var level = -1
	switch h.Kind {
	case scene.HitPlanet:
		b := bodyByKey(snap, h.BodyKey)
		if b == nil {
			return
		}
		title = b.Name
		line = "click to explore"
	case scene.HitMoon:
		title = h.Skill.Name
		level = h.Skill.Level
	}

	w := constants.HoverCardWidth
	x := vp.W - w - 1
	y := 1
	if x < 0 {
		return
	}
	drawBox(buf, x, y, w, 4, RgbCardBorder, RgbCardBg)
	buf.WriteString(x+2, y+1, truncate(title, w-4), RgbLabel, tcell.AttrBold)
	if level >= 0 {
		barW := w - 10
		filled, empty := LevelBar(level, barW)
		n := buf.WriteString(x+2, y+2, filled, RgbLevelFill, tcell.AttrNone)
		n += buf.WriteString(x+2+n, y+2, empty, RgbLevelEmpty, tcell.AttrNone)
		buf.WriteString(x+3+n, y+2, fmt.Sprintf("%3d%%", level), RgbHUDText, tcell.AttrNone)
	} else {
		buf.WriteString(x+2, y+2, truncate(line, w-4), RgbHUDText, tcell.AttrNone)
	}
}

func renderControlsHint(buf *RenderBuffer, vp Viewport) {
	msg := " Ctrl+drag to orbit · Ctrl+wheel to zoom "
	w := len([]rune(msg)) + 2
	x := (vp.W - w) / 2
	if x < 0 {
		return
	}
	drawBox(buf, x, 0, w, 3, RgbHintText, RgbCardBg)
	buf.WriteString(x+1, 1, msg, RgbHintText, tcell.AttrNone)
}

// renderHUD draws the two status rows below the viewport
func renderHUD(buf *RenderBuffer, snap *scene.Snapshot, vp Viewport, status HUDStatus) {
	w, _ := buf.Size()
	top := vp.H
	buf.FillRect(0, top, w, constants.HUDRows, RgbHUDBg)

	view := " " + constants.SunLabel + " "
	if snap.View != scene.ViewSolar {
		if b := bodyByKey(snap, snap.View.String()); b != nil {
			view = " " + strings.ToUpper(b.Name) + " "
		}
	}
	n := buf.WriteString(0, top, view, RgbHUDAccent, tcell.AttrBold|tcell.AttrReverse)

	hint := "  esc back · tab terminal · r reset · ? controls · q quit"
	if snap.View == scene.ViewSolar {
		hint = fmt.Sprintf("  1-%d select · tab terminal · ? controls · q quit", len(snap.Bodies))
	}
	buf.WriteString(n, top, truncate(hint, w-n), RgbHUDText, tcell.AttrNone)

	var line string
	switch {
	case snap.Transitioning:
		line = " ..."
	case snap.Hover.Kind == scene.HitMoon:
		line = fmt.Sprintf(" %s · %d%%", snap.Hover.Skill.Name, snap.Hover.Skill.Level)
	case snap.Hover.Kind == scene.HitPlanet:
		if b := bodyByKey(snap, snap.Hover.BodyKey); b != nil {
			line = " " + b.Name
		}
	}
	buf.WriteString(0, top+1, truncate(line, w), RgbLabel, tcell.AttrNone)

	if status.Muted {
		buf.WriteString(w-7, top+1, " muted", RgbLabelDim, tcell.AttrNone)
	}
}

// drawBox fills a bordered rectangle
func drawBox(buf *RenderBuffer, x, y, w, h int, border, bg RGB) {
	buf.FillRect(x, y, w, h, bg)
	for i := 1; i < w-1; i++ {
		buf.SetFgOnly(x+i, y, '─', border, tcell.AttrNone)
		buf.SetFgOnly(x+i, y+h-1, '─', border, tcell.AttrNone)
	}
	for j := 1; j < h-1; j++ {
		buf.SetFgOnly(x, y+j, '│', border, tcell.AttrNone)
		buf.SetFgOnly(x+w-1, y+j, '│', border, tcell.AttrNone)
	}
	buf.SetFgOnly(x, y, '╭', border, tcell.AttrNone)
	buf.SetFgOnly(x+w-1, y, '╮', border, tcell.AttrNone)
	buf.SetFgOnly(x, y+h-1, '╰', border, tcell.AttrNone)
	buf.SetFgOnly(x+w-1, y+h-1, '╯', border, tcell.AttrNone)
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

package render

import (
	"github.com/lixenwraith/portfolio-term/scene"
	"github.com/lixenwraith/portfolio-term/vmath"
)

// Viewport maps between terminal cells and normalized device coordinates
// Cells are twice as tall as wide, Aspect folds that in so spheres stay round
type Viewport struct {
	W, H int
}

// Aspect is the world-space width/height ratio of the viewport
func (v Viewport) Aspect() float64 {
	if v.H <= 0 {
		return 1
	}
	return float64(v.W) / float64(2*v.H)
}

// ToNDC converts a cell center to NDC, +Y up
func (v Viewport) ToNDC(x, y int) (float64, float64) {
	if v.W <= 0 || v.H <= 0 {
		return 0, 0
	}
	nx := (float64(x)+0.5)/float64(v.W)*2 - 1
	ny := 1 - (float64(y)+0.5)/float64(v.H)*2
	return nx, ny
}

// ToCell converts NDC to fractional cell coordinates
func (v Viewport) ToCell(ndcX, ndcY float64) (float64, float64) {
	return (ndcX + 1) / 2 * float64(v.W), (1 - ndcY) / 2 * float64(v.H)
}

// Contains reports whether cell x,y is inside the viewport
func (v Viewport) Contains(x, y int) bool {
	return x >= 0 && x < v.W && y >= 0 && y < v.H
}

// projected is a world point placed on the grid
type projected struct {
	cx, cy float64 // fractional cell position
	rows   float64 // world unit in rows at this depth
	depth  float64
}

// project places p using cam, ok false when behind the camera
func (v Viewport) project(cam scene.CameraState, p vmath.Vec3F) (projected, bool) {
	pr, ok := cam.Project(p, v.Aspect())
	if !ok {
		return projected{}, false
	}
	cx, cy := v.ToCell(pr.X, pr.Y)
	return projected{
		cx:    cx,
		cy:    cy,
		rows:  pr.Scale * float64(v.H) / 2,
		depth: pr.Depth,
	}, true
}

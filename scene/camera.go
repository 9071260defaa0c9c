package scene

import (
	"math"

	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/vmath"
)

// Camera orbits either the origin (free) or a followed body (follow)
// Offset is the user-controlled spherical offset; Position/LookAt ease toward Goal/GoalLookAt
type Camera struct {
	Offset vmath.Spherical

	Position   vmath.Vec3F
	LookAt     vmath.Vec3F
	Goal       vmath.Vec3F
	GoalLookAt vmath.Vec3F

	FOV float64 // radians, vertical
}

// NewCamera creates a camera parked at the overview position
func NewCamera(fovDeg float64) *Camera {
	c := &Camera{FOV: fovDeg * math.Pi / 180}
	c.Reset()
	return c
}

func defaultOffset() vmath.Spherical {
	return vmath.Spherical{
		Theta:  constants.CameraDefaultTheta,
		Phi:    constants.CameraDefaultPhi,
		Radius: constants.CameraDefaultRadius,
	}
}

func overview() vmath.Vec3F {
	return vmath.Vec3F{X: constants.CameraOverviewX, Y: constants.CameraOverviewY, Z: constants.CameraOverviewZ}
}

// Reset snaps the camera to the overview, the only path that skips smoothing
func (c *Camera) Reset() {
	c.Offset = defaultOffset()
	c.Goal = overview()
	c.GoalLookAt = vmath.Vec3F{}
	c.Position = c.Goal
	c.LookAt = c.GoalLookAt
}

// ResetGoal restores the default offset and overview goal, current pose eases there
func (c *Camera) ResetGoal() {
	c.Offset = defaultOffset()
	c.Goal = overview()
	c.GoalLookAt = vmath.Vec3F{}
}

// Orbit applies azimuth and polar deltas, polar is kept inside (0, π)
func (c *Camera) Orbit(dTheta, dPhi float64) {
	c.Offset.Theta += dTheta
	c.Offset.Phi = vmath.Clamp(c.Offset.Phi+dPhi, constants.CameraMinPhi, constants.CameraMaxPhi)
}

// Zoom changes orbit radius within [CameraMinRadius, CameraMaxRadius]
func (c *Camera) Zoom(dRadius float64) {
	c.Offset.Radius = vmath.Clamp(c.Offset.Radius+dRadius, constants.CameraMinRadius, constants.CameraMaxRadius)
}

// update recomputes goals from offset and eases current pose toward them
// follow is nil in free mode
func (c *Camera) update(dt float64, follow *vmath.Vec3F) {
	if follow != nil {
		off := c.Offset
		off.Radius *= constants.CameraFollowScale
		goal := vmath.V3FAdd(*follow, off.ToCartesian())
		goal.Y = math.Max(goal.Y, constants.CameraFollowMinY)
		c.Goal = goal
		c.GoalLookAt = *follow
	} else {
		goal := c.Offset.ToCartesian()
		goal.Y = math.Max(goal.Y, constants.CameraFreeMinY)
		c.Goal = goal
	}

	f := vmath.SmoothFactor(constants.CameraSmoothPerFrame, constants.SceneRefFPS, dt)
	c.Position = vmath.V3FLerp(c.Position, c.Goal, f)
	c.LookAt = vmath.V3FLerp(c.LookAt, c.GoalLookAt, f)
}

// State returns the read-only projection view of the camera
func (c *Camera) State() CameraState {
	return CameraState{Position: c.Position, LookAt: c.LookAt, FOV: c.FOV, Offset: c.Offset}
}

// CameraState is the renderer-facing camera, shared by projection and picking
type CameraState struct {
	Position vmath.Vec3F
	LookAt   vmath.Vec3F
	FOV      float64
	Offset   vmath.Spherical
}

// basis returns forward, right and up unit vectors
func (cs CameraState) basis() (fwd, right, up vmath.Vec3F) {
	fwd = vmath.V3FNormalize(vmath.V3FSub(cs.LookAt, cs.Position))
	if fwd == (vmath.Vec3F{}) {
		fwd = vmath.Vec3F{Z: -1}
	}
	right = vmath.V3FNormalize(vmath.V3FCross(fwd, vmath.Vec3F{Y: 1}))
	if right == (vmath.Vec3F{}) {
		right = vmath.Vec3F{X: 1}
	}
	up = vmath.V3FCross(right, fwd)
	return fwd, right, up
}

// Ray builds a pick ray through normalized device coordinates
// ndcX, ndcY in [-1, 1] with +Y up, aspect is viewport width/height in world units
func (cs CameraState) Ray(ndcX, ndcY, aspect float64) vmath.Ray {
	fwd, right, up := cs.basis()
	tanHalf := math.Tan(cs.FOV / 2)
	dir := vmath.V3FAdd(fwd, vmath.V3FAdd(
		vmath.V3FScale(right, ndcX*tanHalf*aspect),
		vmath.V3FScale(up, ndcY*tanHalf),
	))
	return vmath.Ray{Origin: cs.Position, Dir: vmath.V3FNormalize(dir)}
}

// Projection is a world point mapped to normalized device coordinates
type Projection struct {
	X, Y  float64 // NDC, +Y up
	Depth float64 // distance along view axis
	Scale float64 // NDC-Y units per world unit at this depth
}

// Project maps p to NDC, ok is false when p is behind the near plane
func (cs CameraState) Project(p vmath.Vec3F, aspect float64) (Projection, bool) {
	fwd, right, up := cs.basis()
	d := vmath.V3FSub(p, cs.Position)
	z := vmath.V3FDot(d, fwd)
	if z < constants.CameraNear {
		return Projection{}, false
	}
	tanHalf := math.Tan(cs.FOV / 2)
	inv := 1 / (z * tanHalf)
	return Projection{
		X:     vmath.V3FDot(d, right) * inv / aspect,
		Y:     vmath.V3FDot(d, up) * inv,
		Depth: z,
		Scale: inv,
	}, true
}

package scene

import (
	"math"

	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/vmath"
)

// Skill is the label payload carried by a satellite
type Skill struct {
	Name  string
	Level int // 0-100
}

// Body is a planet on a circular orbit around the origin
type Body struct {
	Key    string
	Name   string
	Radius float64
	Orbit  float64
	Speed  float64
	Colors [3]uint32

	Angle    float64 // [0, 2π)
	Spin     float64 // self rotation, cosmetic
	Position vmath.Vec3F

	LabelVisible bool
	OrbitVisible bool
	MoonsVisible bool

	Satellites []*Satellite
}

// Satellite is a moon orbiting its parent body
type Satellite struct {
	BodyKey     string
	Index       int
	Skill       Skill
	Size        float64
	OrbitRadius float64
	Speed       float64
	Tilt        float64
	Colors      [2]uint32

	Angle    float64 // [0, 2π)
	Position vmath.Vec3F
	Visible  bool
}

// advance moves the body along its orbit by dt seconds
func (b *Body) advance(dt float64) {
	b.Angle = vmath.WrapAngle(b.Angle + b.Speed*constants.PlanetAngleScale*dt)
	b.Spin = vmath.WrapAngle(b.Spin + constants.PlanetSpinRate*dt)
	b.place()
}

// place derives position from angle, orbit plane is y=0
func (b *Body) place() {
	s, c := math.Sincos(b.Angle)
	b.Position = vmath.Vec3F{X: b.Orbit * c, Y: 0, Z: b.Orbit * s}
}

// LabelAnchor is the world point the body's name is drawn at
func (b *Body) LabelAnchor() vmath.Vec3F {
	return vmath.Vec3F{X: b.Position.X, Y: b.Radius + constants.PlanetLabelLift, Z: b.Position.Z}
}

// Offset is the satellite displacement from its parent, a function of its own angle, radius and tilt only
func (s *Satellite) Offset() vmath.Vec3F {
	sa, ca := math.Sincos(s.Angle)
	st, ct := math.Sincos(s.Tilt)
	r := s.OrbitRadius
	return vmath.Vec3F{
		X: ca * r,
		Y: sa * r * st * constants.MoonTiltYScale,
		Z: sa * r * ct,
	}
}

// advance steps the satellite angle by dt seconds and re-anchors it to parent
func (s *Satellite) advance(parent vmath.Vec3F, dt float64) {
	s.Angle = vmath.WrapAngle(s.Angle + s.Speed*constants.MoonAngleScale*dt)
	s.attach(parent)
}

func (s *Satellite) attach(parent vmath.Vec3F) {
	s.Position = vmath.V3FAdd(parent, s.Offset())
}

// LabelAnchor is the world point the skill name is drawn at
func (s *Satellite) LabelAnchor() vmath.Vec3F {
	return vmath.Vec3F{X: s.Position.X, Y: s.Position.Y + constants.MoonLabelLift, Z: s.Position.Z}
}

// newBody builds a body and its satellites from spec using rng for angle and speed jitter
func newBody(spec BodySpec, rng randSource) *Body {
	b := &Body{
		Key:          spec.Key,
		Name:         spec.Name,
		Radius:       spec.Radius,
		Orbit:        spec.Orbit,
		Speed:        spec.Speed,
		Colors:       spec.Colors,
		Angle:        rng.Float64() * vmath.TwoPi,
		LabelVisible: true,
		OrbitVisible: true,
	}
	b.place()

	n := len(spec.Skills)
	b.Satellites = make([]*Satellite, n)
	for i, sk := range spec.Skills {
		orbit := constants.MoonOrbitRadii[i%len(constants.MoonOrbitRadii)]
		colors := sk.Colors
		if colors == ([2]uint32{}) {
			colors = [2]uint32{spec.Colors[0], spec.Colors[1]}
		}
		sat := &Satellite{
			BodyKey:     spec.Key,
			Index:       i,
			Skill:       Skill{Name: sk.Name, Level: sk.Level},
			Size:        constants.MoonBaseSize + float64(sk.Level)/100*constants.MoonLevelSize,
			OrbitRadius: orbit,
			Speed:       constants.MoonBaseSpeed - orbit*constants.MoonRadiusSpeed + rng.Float64()*constants.MoonSpeedJitter,
			Tilt:        float64(i%3) * constants.MoonTiltStep,
			Colors:      colors,
			Angle:       float64(i) / float64(n) * vmath.TwoPi,
		}
		sat.attach(b.Position)
		b.Satellites[i] = sat
	}
	return b
}

// randSource is the subset of x/exp/rand.Rand used for scene seeding
type randSource interface {
	Float64() float64
}

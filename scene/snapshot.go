package scene

import (
	"math"

	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/vmath"
)

// BodyState is the renderer view of a body
type BodyState struct {
	Key          string
	Name         string
	Position     vmath.Vec3F
	Radius       float64
	Orbit        float64
	Angle        float64
	Spin         float64
	Colors       [3]uint32
	Label        vmath.Vec3F
	LabelVisible bool
	OrbitVisible bool
}

// SatelliteState is the renderer view of a visible satellite
type SatelliteState struct {
	BodyKey  string
	Skill    Skill
	Position vmath.Vec3F
	Size     float64
	Colors   [2]uint32
	Label    vmath.Vec3F
}

// RingState is a horizontal circle to draw (orbit rings, moon rings)
type RingState struct {
	Center vmath.Vec3F
	Radius float64
}

// Snapshot is a read-only copy of everything a renderer needs for one frame
type Snapshot struct {
	View          View
	Transitioning bool
	Time          float64

	SunRadius       float64
	SunScale        float64
	SunSpin         float64
	SunLabel        vmath.Vec3F
	SunLabelVisible bool

	Camera     CameraState
	Bodies     []BodyState
	Satellites []SatelliteState
	Orbits     []RingState
	MoonRings  []RingState
	Particles  []vmath.Vec3F

	Hover        Hit
	Dragging     bool
	ShowControls bool
}

// Snapshot copies current state, reusing prev's slices when given
func (s *Scene) Snapshot(prev *Snapshot) Snapshot {
	var snap Snapshot
	if prev != nil {
		snap.Bodies = prev.Bodies[:0]
		snap.Satellites = prev.Satellites[:0]
		snap.Orbits = prev.Orbits[:0]
		snap.MoonRings = prev.MoonRings[:0]
		snap.Particles = prev.Particles[:0]
	}

	snap.View = s.view
	snap.Transitioning = s.transitioning
	snap.Time = s.time
	snap.SunRadius = constants.SunRadius
	snap.SunScale = 1 + math.Sin(s.time*2)*constants.SunPulseAmplitude
	snap.SunSpin = s.sunSpin
	snap.SunLabel = vmath.Vec3F{Y: constants.SunLabelY}
	snap.SunLabelVisible = s.sunLabelVisible
	snap.Camera = s.camera.State()
	snap.Hover = s.hover
	snap.Dragging = s.dragging
	snap.ShowControls = s.showControls

	for _, b := range s.bodies {
		snap.Bodies = append(snap.Bodies, BodyState{
			Key:          b.Key,
			Name:         b.Name,
			Position:     b.Position,
			Radius:       b.Radius,
			Orbit:        b.Orbit,
			Angle:        b.Angle,
			Spin:         b.Spin,
			Colors:       b.Colors,
			Label:        b.LabelAnchor(),
			LabelVisible: b.LabelVisible,
			OrbitVisible: b.OrbitVisible,
		})
		if b.OrbitVisible {
			snap.Orbits = append(snap.Orbits, RingState{Radius: b.Orbit})
		}
		if b.MoonsVisible {
			for _, r := range constants.MoonOrbitRadii {
				snap.MoonRings = append(snap.MoonRings, RingState{Center: b.Position, Radius: r})
			}
		}
		for _, sat := range b.Satellites {
			if !sat.Visible {
				continue
			}
			snap.Satellites = append(snap.Satellites, SatelliteState{
				BodyKey:  sat.BodyKey,
				Skill:    sat.Skill,
				Position: sat.Position,
				Size:     sat.Size,
				Colors:   sat.Colors,
				Label:    sat.LabelAnchor(),
			})
		}
	}

	snap.Particles = s.particles.Positions(snap.Particles)
	return snap
}

package scene

import (
	"math"

	"github.com/lixenwraith/portfolio-term/vmath"
)

// HitKind discriminates what a pick ray landed on
type HitKind uint8

const (
	HitNone HitKind = iota
	HitPlanet
	HitMoon
)

func (k HitKind) String() string {
	switch k {
	case HitPlanet:
		return "planet"
	case HitMoon:
		return "moon"
	default:
		return "none"
	}
}

// Hit is a tagged pick result, Skill is set only for HitMoon
type Hit struct {
	Kind     HitKind
	BodyKey  string
	Skill    Skill
	Distance float64
}

// HitTest casts a ray through pointer NDC and returns the nearest pickable sphere
// Solar view picks bodies, a body view picks that body's visible satellites
// Bounding spheres are the drawn radius times PickScale (the glow halo)
func (s *Scene) HitTest(ndcX, ndcY, aspect float64) Hit {
	ray := s.camera.State().Ray(ndcX, ndcY, aspect)
	best := Hit{Distance: math.Inf(1)}

	if s.view == ViewSolar {
		for _, b := range s.bodies {
			if t, ok := vmath.RaySphere(ray, b.Position, b.Radius*s.cfg.PickScale); ok && t < best.Distance {
				best = Hit{Kind: HitPlanet, BodyKey: b.Key, Distance: t}
			}
		}
	} else if b := s.index[s.view.String()]; b != nil {
		for _, sat := range b.Satellites {
			if !sat.Visible {
				continue
			}
			if t, ok := vmath.RaySphere(ray, sat.Position, sat.Size*s.cfg.PickScale); ok && t < best.Distance {
				best = Hit{Kind: HitMoon, BodyKey: b.Key, Skill: sat.Skill, Distance: t}
			}
		}
	}

	if best.Kind == HitNone {
		return Hit{}
	}
	return best
}

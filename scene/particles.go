package scene

import (
	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/vmath"
)

// ParticleField is a seeded shell of points rotated as a whole
type ParticleField struct {
	base []vmath.Vec3F

	RotX, RotY float64

	// Pointer-follow targets
	targetX, targetY float64
}

// NewParticleField samples count points uniformly on shells between inner and outer radius
func NewParticleField(count int, inner, outer float64, rng randSource) *ParticleField {
	if count < 0 {
		count = 0
	}
	pf := &ParticleField{base: make([]vmath.Vec3F, count)}
	for i := range pf.base {
		r := inner + rng.Float64()*(outer-inner)
		pf.base[i] = vmath.SphericalFromUnit(rng.Float64(), rng.Float64(), r)
	}
	return pf
}

// Len returns particle count
func (pf *ParticleField) Len() int {
	return len(pf.base)
}

// SetPointer sets the follow target from pointer NDC
func (pf *ParticleField) SetPointer(ndcX, ndcY float64) {
	pf.targetX = ndcX * constants.ParticleFollowRange
	pf.targetY = ndcY * constants.ParticleFollowRange
}

// tick applies idle spin then eases rotation toward the pointer target
func (pf *ParticleField) tick(dt float64) {
	pf.RotX += dt * constants.ParticleSpinX
	pf.RotY += dt * constants.ParticleSpinY

	f := vmath.SmoothFactor(constants.ParticleFollowPerFrame, constants.SceneRefFPS, dt)
	pf.RotX += (pf.targetY - pf.RotX) * f
	pf.RotY += (pf.targetX - pf.RotY) * f
}

// Positions writes rotated world positions into dst, reusing its storage
func (pf *ParticleField) Positions(dst []vmath.Vec3F) []vmath.Vec3F {
	dst = dst[:0]
	for _, p := range pf.base {
		dst = append(dst, vmath.V3FRotateY(vmath.V3FRotateX(p, pf.RotX), pf.RotY))
	}
	return dst
}

package vmath

import "math"

// Ray is a half-line with normalized direction
type Ray struct {
	Origin Vec3F
	Dir    Vec3F
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3F {
	return V3FAdd(r.Origin, V3FScale(r.Dir, t))
}

// RaySphere returns the nearest non-negative hit distance of r against a sphere
// Origin inside the sphere reports the exit distance
func RaySphere(r Ray, center Vec3F, radius float64) (float64, bool) {
	oc := V3FSub(r.Origin, center)
	b := V3FDot(oc, r.Dir)
	c := V3FMagSq(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

package vmath

import "math"

// TwoPi is a full turn in radians
const TwoPi = 2 * math.Pi

// Spherical is a camera-style spherical coordinate
// Theta: azimuth around Y, Phi: polar angle from +Y, Radius: distance from center
type Spherical struct {
	Theta  float64
	Phi    float64
	Radius float64
}

// ToCartesian returns the offset vector described by s
func (s Spherical) ToCartesian() Vec3F {
	sinPhi, cosPhi := math.Sincos(s.Phi)
	sinTheta, cosTheta := math.Sincos(s.Theta)
	return Vec3F{
		X: s.Radius * sinPhi * cosTheta,
		Y: s.Radius * cosPhi,
		Z: s.Radius * sinPhi * sinTheta,
	}
}

// SphericalFromUnit samples a point on a sphere of given radius from two uniform variates in [0, 1)
// Uses acos for phi so samples are area-uniform
func SphericalFromUnit(u, v, radius float64) Vec3F {
	theta := u * TwoPi
	phi := math.Acos(v*2 - 1)
	sinPhi, cosPhi := math.Sincos(phi)
	sinTheta, cosTheta := math.Sincos(theta)
	return Vec3F{
		X: radius * sinPhi * cosTheta,
		Y: radius * sinPhi * sinTheta,
		Z: radius * cosPhi,
	}
}

// WrapAngle folds a into [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SmoothFactor converts a per-frame lerp factor at refFPS into the factor for dt seconds
// Keeps exponential smoothing frame-rate independent: two half steps equal one full step
func SmoothFactor(perFrame, refFPS, dt float64) float64 {
	if dt <= 0 || perFrame <= 0 {
		return 0
	}
	if perFrame >= 1 {
		return 1
	}
	return 1 - math.Pow(1-perFrame, dt*refFPS)
}

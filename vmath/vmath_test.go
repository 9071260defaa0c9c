package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestSphericalToCartesian(t *testing.T) {
	// Polar angle zero points straight up regardless of azimuth
	up := Spherical{Theta: 1.3, Phi: 0, Radius: 10}.ToCartesian()
	if !near(up.X, 0) || !near(up.Y, 10) || !near(up.Z, 0) {
		t.Errorf("phi=0 expected (0,10,0), got %+v", up)
	}

	eq := Spherical{Theta: 0, Phi: math.Pi / 2, Radius: 2}.ToCartesian()
	if !near(eq.X, 2) || !near(eq.Y, 0) || !near(eq.Z, 0) {
		t.Errorf("equator expected (2,0,0), got %+v", eq)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{TwoPi, 0},
		{TwoPi + 0.5, 0.5},
		{-0.5, TwoPi - 0.5},
		{3 * TwoPi, 0},
	}
	for _, tt := range tests {
		if got := WrapAngle(tt.in); !near(got, tt.want) {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWrapAngleForwardDelta(t *testing.T) {
	d := WrapAngle(0.2 - (TwoPi - 0.1))
	if !near(d, 0.3) {
		t.Errorf("expected forward delta 0.3, got %v", d)
	}
}

func TestRaySphere(t *testing.T) {
	r := Ray{Origin: V3F(0, 0, -10), Dir: V3F(0, 0, 1)}

	dist, hit := RaySphere(r, V3F(0, 0, 0), 1)
	if !hit || !near(dist, 9) {
		t.Errorf("expected hit at 9, got %v %v", dist, hit)
	}

	if _, hit := RaySphere(r, V3F(5, 0, 0), 1); hit {
		t.Error("expected miss for offset sphere")
	}

	// Sphere behind origin
	if _, hit := RaySphere(r, V3F(0, 0, -20), 1); hit {
		t.Error("expected miss for sphere behind ray")
	}

	// Origin inside sphere reports exit distance
	inside := Ray{Origin: V3F(0, 0, 0), Dir: V3F(1, 0, 0)}
	dist, hit = RaySphere(inside, V3F(0, 0, 0), 2)
	if !hit || !near(dist, 2) {
		t.Errorf("expected exit at 2, got %v %v", dist, hit)
	}
}

func TestSmoothFactorFrameIndependent(t *testing.T) {
	full := SmoothFactor(0.05, 60, 1.0/60)
	if !near(full, 0.05) {
		t.Fatalf("one reference frame should equal per-frame factor, got %v", full)
	}

	// Two half frames compose to one full frame
	half := SmoothFactor(0.05, 60, 1.0/120)
	composed := 1 - (1-half)*(1-half)
	if !near(composed, full) {
		t.Errorf("half steps compose to %v, want %v", composed, full)
	}

	if SmoothFactor(0.05, 60, 0) != 0 {
		t.Error("zero dt must not move")
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := V3F(1, 2, 3)
	for _, a := range []float64{0.1, 1, -2.5} {
		if !near(V3FMag(V3FRotateX(v, a)), V3FMag(v)) {
			t.Errorf("RotateX(%v) changed magnitude", a)
		}
		if !near(V3FMag(V3FRotateY(v, a)), V3FMag(v)) {
			t.Errorf("RotateY(%v) changed magnitude", a)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp out of bounds")
	}
}

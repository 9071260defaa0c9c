package scene

import (
	"math"
	"testing"

	"github.com/lixenwraith/portfolio-term/vmath"
)

func newSoloScene(t *testing.T) *Scene {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.Particles = 0
	s, err := New(cfg, singleBodyCatalog())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

// aim parks the camera at target+offset looking at target without smoothing
func aim(s *Scene, target, offset vmath.Vec3F) {
	cam := s.Camera()
	cam.Position = vmath.V3FAdd(target, offset)
	cam.LookAt = target
}

func TestHitTestPlanet(t *testing.T) {
	s := newSoloScene(t)
	b := s.Body("solo")
	aim(s, b.Position, vmath.V3F(0, 0, 30))

	hit := s.HitTest(0, 0, 1)
	if hit.Kind != HitPlanet || hit.BodyKey != "solo" {
		t.Fatalf("center ray: got %+v, want planet solo", hit)
	}
	want := 30 - b.Radius*s.Config().PickScale
	if math.Abs(hit.Distance-want) > 1e-9 {
		t.Errorf("hit distance %v, want %v", hit.Distance, want)
	}

	if miss := s.HitTest(0.9, 0.9, 1); miss.Kind != HitNone {
		t.Errorf("corner ray: got %+v, want miss", miss)
	}
}

func TestHitTestMoonOnlyInBodyView(t *testing.T) {
	s := newSoloScene(t)
	b := s.Body("solo")
	sat := b.Satellites[0]

	// Solar view ignores satellites even when the ray crosses one
	aim(s, vmath.V3FAdd(b.Position, sat.Offset()), vmath.V3F(0, 0, 20))
	if hit := s.HitTest(0, 0, 1); hit.Kind == HitMoon {
		t.Fatal("moon picked in solar view")
	}

	if !s.SelectBody("solo") {
		t.Fatal("SelectBody rejected")
	}
	aim(s, sat.Position, vmath.V3F(0, 0, 20))

	hit := s.HitTest(0, 0, 1)
	if hit.Kind != HitMoon {
		t.Fatalf("got %+v, want moon", hit)
	}
	if hit.Skill != sat.Skill || hit.BodyKey != "solo" {
		t.Errorf("got skill %+v of %s, want %+v of solo", hit.Skill, hit.BodyKey, sat.Skill)
	}
}

func TestHitKindString(t *testing.T) {
	cases := map[HitKind]string{HitNone: "none", HitPlanet: "planet", HitMoon: "moon"}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

func TestProjectAndRayAgree(t *testing.T) {
	cs := CameraState{
		Position: vmath.V3F(0, 35, 45),
		LookAt:   vmath.Vec3F{},
		FOV:      math.Pi / 3,
	}
	aspect := 2.0

	center, ok := cs.Project(vmath.Vec3F{}, aspect)
	if !ok {
		t.Fatal("look-at point not projectable")
	}
	if math.Abs(center.X) > 1e-9 || math.Abs(center.Y) > 1e-9 {
		t.Errorf("look-at projects to (%v,%v), want origin", center.X, center.Y)
	}

	right, _ := cs.Project(vmath.V3F(10, 0, 0), aspect)
	if right.X <= 0 {
		t.Errorf("+X world point projects to x=%v, want > 0", right.X)
	}

	if _, ok := cs.Project(vmath.V3F(0, 70, 90), aspect); ok {
		t.Error("point behind camera reported visible")
	}

	p := vmath.V3F(4, 2, -6)
	proj, ok := cs.Project(p, aspect)
	if !ok {
		t.Fatal("point not projectable")
	}
	ray := cs.Ray(proj.X, proj.Y, aspect)
	tHit, hit := vmath.RaySphere(ray, p, 0.01)
	if !hit {
		t.Fatalf("ray through projected NDC misses source point")
	}
	if math.Abs(vmath.V3FDist(ray.At(tHit), p)-0.01) > 1e-6 {
		t.Errorf("ray hit at wrong distance")
	}
}

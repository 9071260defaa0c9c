// Package scene holds the orbital skills system: bodies on circular orbits, satellites
// shown for the focused body, an idle-rotating particle field and a smoothed follow camera.
// All state lives in Scene and advances only through Tick; renderers read Snapshot.
package scene

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/vmath"
)

// View is the active selection: ViewSolar or a body key
type View string

const ViewSolar View = constants.ViewSolarName

func (v View) String() string { return string(v) }

// Config tunes the scene, zero values fall back to defaults in New
type Config struct {
	FPS           int     `toml:"fps"`
	Particles     int     `toml:"particles"`
	ParticleInner float64 `toml:"particle_inner"`
	ParticleOuter float64 `toml:"particle_outer"`
	Seed          uint64  `toml:"seed"`
	FOV           float64 `toml:"fov"`
	PickScale     float64 `toml:"pick_scale"`
	DragStep      float64 `toml:"drag_step"`
	WheelStep     float64 `toml:"wheel_step"`
}

// DefaultConfig returns the terminal-tuned scene configuration
func DefaultConfig() Config {
	return Config{
		FPS:           constants.DefaultSceneFPS,
		Particles:     constants.DefaultParticles,
		ParticleInner: constants.ParticleInner,
		ParticleOuter: constants.ParticleOuter,
		FOV:           constants.CameraFOVDegrees,
		PickScale:     constants.PickScale,
		DragStep:      constants.DragRadPerCell,
		WheelStep:     constants.WheelRadiusStep,
	}
}

// Validate rejects values that would break the simulation
func (c Config) Validate() error {
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("scene.fps %d outside 1-240", c.FPS)
	}
	if c.Particles < 0 {
		return fmt.Errorf("scene.particles must be >= 0")
	}
	if c.ParticleInner < 0 || c.ParticleOuter < c.ParticleInner {
		return fmt.Errorf("scene.particle_inner/outer must satisfy 0 <= inner <= outer")
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("scene.fov %v outside (0, 180)", c.FOV)
	}
	if c.PickScale < 1 {
		return fmt.Errorf("scene.pick_scale must be >= 1")
	}
	return nil
}

// Scene owns every piece of animated state, single goroutine only
type Scene struct {
	cfg Config

	bodies    []*Body
	index     map[string]*Body
	particles *ParticleField
	camera    *Camera

	view   View
	follow string

	transitioning  bool
	transitionLeft float64 // seconds

	time    float64 // shader clock
	sunSpin float64

	sunLabelVisible bool
	dragging        bool
	showControls    bool
	hover           Hit
}

// New builds a scene from catalog, seeding angles, satellite speeds and particles from cfg.Seed
func New(cfg Config, catalog Catalog) (*Scene, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("scene catalog: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	s := &Scene{
		cfg:             cfg,
		index:           make(map[string]*Body, len(catalog)),
		camera:          NewCamera(cfg.FOV),
		view:            ViewSolar,
		sunLabelVisible: true,
	}
	for _, spec := range catalog {
		b := newBody(spec, rng)
		s.bodies = append(s.bodies, b)
		s.index[b.Key] = b
	}
	s.particles = NewParticleField(cfg.Particles, cfg.ParticleInner, cfg.ParticleOuter, rng)
	return s, nil
}

// Tick advances the simulation by dt, deterministic for equal state and dt
func (s *Scene) Tick(dt time.Duration) {
	sec := dt.Seconds()
	if sec <= 0 {
		return
	}

	if s.transitioning {
		s.transitionLeft -= sec
		if s.transitionLeft <= 0 {
			s.transitioning = false
			s.transitionLeft = 0
		}
	}

	s.time += constants.ShaderTimeRate * sec
	s.sunSpin = vmath.WrapAngle(s.sunSpin + constants.SunSpinRate*sec)

	for _, b := range s.bodies {
		b.advance(sec)
		for _, sat := range b.Satellites {
			if sat.Visible {
				sat.advance(b.Position, sec)
			}
		}
	}

	s.particles.tick(sec)

	var follow *vmath.Vec3F
	if b := s.index[s.follow]; b != nil {
		p := b.Position
		follow = &p
	}
	s.camera.update(sec, follow)
}

// SelectBody focuses key: solar -> key
// Rejected while a transition runs, outside the solar view or for unknown keys
func (s *Scene) SelectBody(key string) bool {
	if s.transitioning || s.view != ViewSolar {
		return false
	}
	target := s.index[key]
	if target == nil {
		return false
	}

	s.view = View(key)
	s.follow = key
	s.hover = Hit{}

	for _, b := range s.bodies {
		b.LabelVisible = b == target
		b.OrbitVisible = false
	}
	target.MoonsVisible = true
	for _, sat := range target.Satellites {
		sat.Visible = true
		sat.attach(target.Position)
	}
	s.sunLabelVisible = false

	s.startTransition(constants.SelectTransition)
	return true
}

// Deselect returns to the solar view and eases the camera back to the overview
func (s *Scene) Deselect() bool {
	if s.transitioning || s.view == ViewSolar {
		return false
	}

	s.follow = ""
	s.hover = Hit{}
	s.camera.ResetGoal()

	for _, b := range s.bodies {
		b.LabelVisible = true
		b.OrbitVisible = true
		b.MoonsVisible = false
		for _, sat := range b.Satellites {
			sat.Visible = false
		}
	}
	s.sunLabelVisible = true
	s.view = ViewSolar

	s.startTransition(constants.DeselectTransition)
	return true
}

func (s *Scene) startTransition(d time.Duration) {
	s.transitioning = true
	s.transitionLeft = d.Seconds()
}

// BeginDrag starts a modifier-held orbit gesture
func (s *Scene) BeginDrag() {
	s.dragging = true
	s.showControls = false
}

// EndDrag ends the orbit gesture
func (s *Scene) EndDrag() {
	s.dragging = false
}

// Dragging reports whether an orbit gesture is active
func (s *Scene) Dragging() bool {
	return s.dragging
}

// OrbitCamera rotates the camera offset, only while dragging
// Polar angle is clamped away from the poles, azimuth is unbounded
func (s *Scene) OrbitCamera(dAzimuth, dPolar float64) bool {
	if !s.dragging {
		return false
	}
	s.camera.Orbit(dAzimuth, dPolar)
	return true
}

// NudgeCamera rotates the camera offset by a discrete step, no drag gesture or hint change
func (s *Scene) NudgeCamera(dAzimuth, dPolar float64) {
	s.camera.Orbit(dAzimuth, dPolar)
}

// ZoomCamera changes the camera radius, clamped to the zoom range
func (s *Scene) ZoomCamera(dRadius float64) {
	s.camera.Zoom(dRadius)
}

// ResetCamera snaps the camera to the overview pose
func (s *Scene) ResetCamera() {
	s.camera.Reset()
	if b := s.index[s.follow]; b != nil {
		// Keep following, next tick eases from the overview toward the body
		s.camera.GoalLookAt = b.Position
	}
}

// SetPointer feeds pointer NDC to the particle follow
func (s *Scene) SetPointer(ndcX, ndcY float64) {
	s.particles.SetPointer(ndcX, ndcY)
}

// SetHover records the hover target shown by the HUD
func (s *Scene) SetHover(h Hit) {
	s.hover = h
}

// SetShowControls toggles the camera controls hint
func (s *Scene) SetShowControls(show bool) {
	s.showControls = show
}

// View returns the active selection
func (s *Scene) View() View {
	return s.view
}

// Transitioning reports whether the view lock is held
func (s *Scene) Transitioning() bool {
	return s.transitioning
}

// Config returns the scene configuration
func (s *Scene) Config() Config {
	return s.cfg
}

// Body returns the body for key or nil
func (s *Scene) Body(key string) *Body {
	return s.index[key]
}

// Bodies returns bodies in catalog order
func (s *Scene) Bodies() []*Body {
	return s.bodies
}

// Camera exposes the camera for inspection
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Particles exposes the particle field
func (s *Scene) Particles() *ParticleField {
	return s.particles
}

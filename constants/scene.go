package constants

import (
	"math"
	"time"
)

// Reference frame rate the per-frame animation rates were tuned at
const SceneRefFPS = 60.0

// Angular rates, expressed per second (per-frame rate * SceneRefFPS)
const (
	// PlanetAngleScale multiplies each body's speed to get radians per second
	PlanetAngleScale = 0.006 * SceneRefFPS

	// MoonAngleScale multiplies each satellite's speed to get radians per second
	MoonAngleScale = 0.012 * SceneRefFPS

	// ShaderTimeRate is the cosmetic shimmer clock advance per second
	ShaderTimeRate = 0.008 * SceneRefFPS

	// PlanetSpinRate is the self rotation of a body in radians per second
	PlanetSpinRate = 0.008 * SceneRefFPS

	// SunSpinRate is the sun group rotation in radians per second
	SunSpinRate = 0.002 * SceneRefFPS

	// SunPulseAmplitude scales the sun by 1 + A*sin(2t)
	SunPulseAmplitude = 0.05
)

// Particle field idle motion
const (
	ParticleSpinX = 0.05 // rad/s
	ParticleSpinY = 0.08 // rad/s

	// ParticleFollowPerFrame pulls field rotation toward the pointer target at reference fps
	ParticleFollowPerFrame = 0.02

	// ParticleFollowRange maps pointer NDC [-1,1] to target rotation
	ParticleFollowRange = math.Pi / 10
)

// Camera
const (
	CameraSmoothPerFrame = 0.05

	CameraDefaultTheta  = 0.5
	CameraDefaultPhi    = 0.8
	CameraDefaultRadius = 55.0

	CameraMinPhi    = 0.1
	CameraMaxPhi    = math.Pi - 0.1
	CameraMinRadius = 15.0
	CameraMaxRadius = 100.0

	// CameraFollowScale shrinks the orbit radius while following a body
	CameraFollowScale = 0.15
	CameraFollowMinY  = 2.0
	CameraFreeMinY    = 5.0

	CameraFOVDegrees = 60.0
	CameraNear       = 0.1

	// PickScale grows hit spheres to cover the drawn glow halo
	PickScale = 1.6
)

// Overview camera goal used when returning to the solar view
const (
	CameraOverviewX = 0.0
	CameraOverviewY = 35.0
	CameraOverviewZ = 45.0
)

// View transition locks
const (
	SelectTransition   = 1000 * time.Millisecond
	DeselectTransition = 1200 * time.Millisecond
)

// Satellite layout
var MoonOrbitRadii = [3]float64{3, 4, 5}

const (
	MoonTiltStep     = 0.15
	MoonTiltYScale   = 0.3
	MoonBaseSize     = 0.2
	MoonLevelSize    = 0.15
	MoonBaseSpeed    = 0.6
	MoonRadiusSpeed  = 0.1
	MoonSpeedJitter  = 0.1
	MoonLabelLift    = 0.9
	PlanetLabelLift  = 2.8
	SunRadius        = 3.0
	SunLabelY        = 6.0
	SunLabel         = "SKILLSETS"
	ViewSolarName    = "solar"
	DragRadPerCell   = 0.05
	WheelRadiusStep  = 2.5
	KeyOrbitStep     = 0.08
	KeyZoomStep      = 5.0
	DefaultParticles = 600
	ParticleInner    = 60.0
	ParticleOuter    = 140.0
	DefaultSceneFPS  = 30
	MaxFrameDelta    = 100 * time.Millisecond
	OrbitRingSamples = 96
	MoonRingSamples  = 48
)

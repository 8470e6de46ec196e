package config

import "image/color"

// VehicleConfig contains the vehicle tuning values
type VehicleConfig struct {
	// Dimensions
	Width  float64
	Height float64

	// Movement
	MaxSpeed     float64
	Acceleration float64
	Friction     float64
	TurnSpeed    float64 // degrees per tick at full steering authority

	// Acceleration tapers toward max speed by this share
	AccelTaper float64
	// Friction grows with speed by this factor
	FrictionSpeedScale float64
	BrakeForwardScale  float64 // braking while moving forward
	BrakeReverseScale  float64 // reversing from standstill
	StopThreshold      float64 // |speed| below this snaps to zero

	// Steering
	FullSteerSpeed    float64 // speed at which steering reaches full authority
	HandbrakeTurnMult float64
	HandbrakeGrip     float64

	// Drift
	DriftMagnitude    float64
	DriftMinSpeed     float64 // handbrake turns only drift above this speed
	DriftDecay        float64
	DriftCutoff       float64
	DriftAngleDegrees float64 // heading offset at full drift

	// Effects
	TrailMinSpeed    float64
	MaxTrailLength   int
	SkidMinSpeed     float64
	SkidChance       float64
	SkidWidthRatio   float64
	ExhaustChance    float64
	DriftSmokeChance float64 // multiplied by |drift|

	// Damage
	MaxHealth         float64
	DamageFlashFrames int
}

// TrackConfig describes the elliptical circuit
type TrackConfig struct {
	Name         string
	CenterX      float64
	CenterY      float64
	OuterRadiusX float64
	OuterRadiusY float64
	InnerRadiusX float64
	InnerRadiusY float64

	// Start/finish line position
	FinishX float64
	FinishY float64

	// Vehicle start pose (center)
	StartX       float64
	StartY       float64
	StartHeading float64

	Checkpoints []CheckpointSpawn
}

// CheckpointSpawn is a fixed checkpoint position loaded from the track layout
type CheckpointSpawn struct {
	Name string
	X    float64
	Y    float64
}

// RaceConfig contains race rule values
type RaceConfig struct {
	MaxLaps             int
	CheckpointRadius    float64
	CheckpointCount     int
	CheckpointRingScale float64 // randomized checkpoints sit on this share of the outer radii
	RandomCheckpoints   bool
	StartSpeed          float64
	TickRate            int
	MaxDelta            float64 // seconds; larger frame gaps are clamped
	RecentResults       int     // race results shown in the garage
}

// CollisionConfig contains wall contact values
type CollisionConfig struct {
	ImpactScale     float64
	MaxDamage       float64
	BounceScale     float64
	MaxPushback     float64
	BaseSparks      int
	DebrisEvery     int
	SensorSize      float64 // broadphase box around the vehicle for checkpoint queries
	MarkerSize      float64
	SpaceCellSize   int
	SpaceMarginSize float64
}

// ParticleSpec describes one class of spawned particles
type ParticleSpec struct {
	Color  color.RGBA
	Life   int
	Spread float64 // velocity is uniform in [-Spread/2, Spread/2)
	Count  int
}

// EffectsConfig contains particle and skid mark values
type EffectsConfig struct {
	MaxSkidMarks   int
	SkidMarkLife   int
	SkidFadeFrames float64

	Exhaust    ParticleSpec
	DriftSmoke ParticleSpec
	Crash      ParticleSpec
	Debris     ParticleSpec
	Checkpoint ParticleSpec
	RaceStart  ParticleSpec
	CarChange  ParticleSpec

	CheckpointJitter float64
	RaceStartJitterY float64
	ExhaustOffset    float64
	ExhaustAngle     float64 // degrees of random spread behind the car
	ExhaustSpeed     float64
	DriftSmokeOffset float64 // share of the car's dimensions

	MinParticleSize   float64
	ParticleSizeRange float64
	MaxRotationSpeed  float64

	FlashBrightness float32
	FlashSeconds    float32
}

// DecorationConfig controls cosmetic track scenery generation
type DecorationConfig struct {
	RoadSegments  int
	OuterCount    int
	InnerCount    int
	OuterMinGap   float64
	OuterGapRange float64
	InnerMinGap   float64
	InnerGapRange float64
	Types         int
}

// HUDConfig contains HUD layout and color values
type HUDConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	Margin          float64
	MinimapSize     float64
	SpeedScale      float64 // displayed speed = |speed| * SpeedScale

	GrassColor     color.RGBA
	VergeColor     color.RGBA
	RoadColor      color.RGBA
	LineColor      color.RGBA
	PendingColor   color.RGBA
	PassedColor    color.RGBA
	BestTimeColor  color.RGBA
	DriftColor     color.RGBA
	HandbrakeColor color.RGBA
	PanelColor     color.RGBA
	SkidColor      color.RGBA
}

// MessageConfig contains transient banner values
type MessageConfig struct {
	DisplayFrames int
	BoxPadding    float64
	TopMargin     float64
	BoxColor      color.RGBA
	TextColor     color.RGBA

	// Labels substituted for {placeholder} tokens per input device
	KeyboardLabels map[string]string
	GamepadLabels  map[string]string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip the garage and go directly to the race
	ShowSpace    bool // Draw resolv broadphase objects
	Seed         uint64
	FixedTrack   bool // Keep the layout checkpoints instead of randomizing
	RecordsAddr  string
	RecordsStore string
	DataDir      string
}

// Global configuration instances
var C *Config
var Vehicle VehicleConfig
var Track TrackConfig
var Race RaceConfig
var Collision CollisionConfig
var Effects EffectsConfig
var Decorations DecorationConfig
var HUD HUDConfig
var Message MessageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0x44, G: 0xff, B: 0x44, A: 255}
	Yellow    = color.RGBA{R: 0xff, G: 0xff, B: 0x44, A: 255}
	Red       = color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 255}
	SparkRed  = color.RGBA{R: 0xff, G: 0x66, B: 0x66, A: 255}
	SmokeGray = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 255}
	DriftGray = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 255}
	Overlay   = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1000,
		Height: 700,
	}

	Vehicle = VehicleConfig{
		Width:  32,
		Height: 24,

		MaxSpeed:     7,
		Acceleration: 0.15,
		Friction:     0.05,
		TurnSpeed:    3,

		AccelTaper:         0.6,
		FrictionSpeedScale: 0.1,
		BrakeForwardScale:  1.5,
		BrakeReverseScale:  0.5,
		StopThreshold:      0.01,

		FullSteerSpeed:    2,
		HandbrakeTurnMult: 1.8,
		HandbrakeGrip:     0.3,

		DriftMagnitude:    0.8,
		DriftMinSpeed:     1,
		DriftDecay:        0.9,
		DriftCutoff:       0.1,
		DriftAngleDegrees: 15,

		TrailMinSpeed:    1,
		MaxTrailLength:   15,
		SkidMinSpeed:     2,
		SkidChance:       0.4,
		SkidWidthRatio:   0.6,
		ExhaustChance:    0.3,
		DriftSmokeChance: 0.64,

		MaxHealth:         100,
		DamageFlashFrames: 10,
	}

	Track = TrackConfig{
		Name:         "oval",
		CenterX:      500,
		CenterY:      350,
		OuterRadiusX: 420,
		OuterRadiusY: 320,
		InnerRadiusX: 180,
		InnerRadiusY: 120,
		FinishX:      80,
		FinishY:      300,
		StartX:       136,
		StartY:       302,
		StartHeading: 0,
		Checkpoints: []CheckpointSpawn{
			{Name: "North Turn", X: 400, Y: 80},
			{Name: "East Straight", X: 720, Y: 300},
			{Name: "South Turn", X: 400, Y: 520},
			{Name: "Start/Finish", X: 80, Y: 300},
		},
	}

	Race = RaceConfig{
		MaxLaps:             3,
		CheckpointRadius:    30,
		CheckpointCount:     4,
		CheckpointRingScale: 0.8,
		RandomCheckpoints:   true,
		StartSpeed:          1,
		TickRate:            60,
		MaxDelta:            0.25,
		RecentResults:       5,
	}

	Collision = CollisionConfig{
		ImpactScale:     10,
		MaxDamage:       30,
		BounceScale:     0.5,
		MaxPushback:     5,
		BaseSparks:      10,
		DebrisEvery:     3,
		SensorSize:      64,
		MarkerSize:      2,
		SpaceCellSize:   16,
		SpaceMarginSize: 64,
	}

	Effects = EffectsConfig{
		MaxSkidMarks:   60,
		SkidMarkLife:   300,
		SkidFadeFrames: 100,

		Exhaust:    ParticleSpec{Color: SmokeGray, Life: 20, Spread: 2, Count: 1},
		DriftSmoke: ParticleSpec{Color: DriftGray, Life: 20, Spread: 2, Count: 1},
		Crash:      ParticleSpec{Color: SparkRed, Life: 30, Spread: 8},
		Debris:     ParticleSpec{Life: 45, Spread: 4},
		Checkpoint: ParticleSpec{Color: Green, Life: 40, Spread: 4, Count: 15},
		RaceStart:  ParticleSpec{Color: White, Life: 60, Spread: 3, Count: 30},
		CarChange:  ParticleSpec{Life: 40, Spread: 5, Count: 20},

		CheckpointJitter: 20,
		RaceStartJitterY: 40,
		ExhaustOffset:    15,
		ExhaustAngle:     30,
		ExhaustSpeed:     2,
		DriftSmokeOffset: 0.3,

		MinParticleSize:   1,
		ParticleSizeRange: 3,
		MaxRotationSpeed:  0.1,

		FlashBrightness: 1.5,
		FlashSeconds:    0.2,
	}

	Decorations = DecorationConfig{
		RoadSegments:  300,
		OuterCount:    20,
		InnerCount:    5,
		OuterMinGap:   30,
		OuterGapRange: 100,
		InnerMinGap:   30,
		InnerGapRange: 50,
		Types:         6,
	}

	HUD = HUDConfig{
		HealthBarWidth:  150,
		HealthBarHeight: 15,
		Margin:          10,
		MinimapSize:     120,
		SpeedScale:      20,

		GrassColor:     color.RGBA{R: 0x1a, G: 0x4a, B: 0x3a, A: 255},
		VergeColor:     color.RGBA{R: 0x2d, G: 0x5a, B: 0x2d, A: 255},
		RoadColor:      color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 255},
		LineColor:      White,
		PendingColor:   color.RGBA{R: 255, G: 255, B: 68, A: 178},
		PassedColor:    color.RGBA{R: 68, G: 255, B: 68, A: 178},
		BestTimeColor:  color.RGBA{R: 0x06, G: 0xa5, B: 0x0c, A: 255},
		DriftColor:     color.RGBA{R: 0xff, G: 0x99, B: 0x00, A: 255},
		HandbrakeColor: Red,
		PanelColor:     Overlay,
		SkidColor:      color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 255},
	}

	Message = MessageConfig{
		DisplayFrames: 90,
		BoxPadding:    10,
		TopMargin:     60,
		BoxColor:      color.RGBA{R: 0, G: 0, B: 0, A: 180},
		TextColor:     White,
		KeyboardLabels: map[string]string{
			"start":  "ENTER",
			"reset":  "R",
			"car":    "C",
			"drive":  "WASD or Arrow Keys",
			"handbr": "SPACE",
		},
		GamepadLabels: map[string]string{
			"start":  "START",
			"reset":  "BACK",
			"car":    "Y",
			"drive":  "the left stick",
			"handbr": "B",
		},
	}

	Debug = DebugConfig{
		RecordsStore: "gdata",
	}
}

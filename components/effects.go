package components

import (
	"image/color"
	"math"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ParticleKind selects the per-tick motion rule of a particle
type ParticleKind int

const (
	ParticleBasic ParticleKind = iota
	ParticleSmoke
	ParticleSpark
	ParticleDebris
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleSmoke:
		return "smoke"
	case ParticleSpark:
		return "spark"
	case ParticleDebris:
		return "debris"
	default:
		return "basic"
	}
}

// ParticleData is a short-lived visual record, destroyed when Life reaches zero
type ParticleData struct {
	Kind          ParticleKind
	Position      dmath.Vec2
	Velocity      dmath.Vec2
	Life          int
	MaxLife       int
	Size          float64
	Rotation      float64
	RotationSpeed float64
	Color         color.RGBA
}

var Particle = donburi.NewComponentType[ParticleData]()

// Alpha is the render opacity, fading linearly over the particle's life.
func (p *ParticleData) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, float64(p.Life)/float64(p.MaxLife))
}

// SkidMarkData is a tire mark left by a drifting car
type SkidMarkData struct {
	X, Y      float64
	Angle     float64 // radians
	Width     float64
	Intensity float64
	Life      int
	Seq       uint64 // spawn order, lowest is evicted first
}

var SkidMark = donburi.NewComponentType[SkidMarkData]()

// Alpha fades the mark over its last fade frames, scaled by intensity.
func (s *SkidMarkData) Alpha(fadeFrames float64) float64 {
	return math.Min(1, float64(s.Life)/fadeFrames) * s.Intensity
}

// ScreenFlashData brightens the whole frame briefly after a car change
type ScreenFlashData struct {
	Tween      *gween.Tween
	Brightness float32
}

var ScreenFlash = donburi.NewComponentType[ScreenFlashData]()

// Active reports whether the flash is still brightening the screen.
func (f *ScreenFlashData) Active() bool {
	return f.Tween != nil && f.Brightness > 1
}

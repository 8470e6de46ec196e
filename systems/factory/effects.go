package factory

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/automoto/driftcircuit/archetypes"
	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpawnParticle creates one particle with a random size and spin.
func SpawnParticle(w donburi.World, kind components.ParticleKind, x, y, vx, vy float64, c color.RGBA, life int) *donburi.Entry {
	rng := components.Rand(w)
	fx := cfg.Effects

	entry := archetypes.Particle.Spawn(w)
	components.Particle.SetValue(entry, components.ParticleData{
		Kind:          kind,
		Position:      dmath.Vec2{X: x, Y: y},
		Velocity:      dmath.Vec2{X: vx, Y: vy},
		Life:          life,
		MaxLife:       life,
		Size:          fx.MinParticleSize + rng.Float64()*fx.ParticleSizeRange,
		Rotation:      rng.Float64() * 2 * math.Pi,
		RotationSpeed: (rng.Float64()*2 - 1) * fx.MaxRotationSpeed,
		Color:         c,
	})
	return entry
}

// jitter returns a uniform value in [-spread/2, spread/2).
func jitter(rng *rand.Rand, spread float64) float64 {
	return (rng.Float64() - 0.5) * spread
}

// SpawnBurst emits spec.Count particles from around (x, y).
func SpawnBurst(w donburi.World, kind components.ParticleKind, x, y, jitterX, jitterY float64, spec cfg.ParticleSpec) {
	rng := components.Rand(w)
	for i := 0; i < spec.Count; i++ {
		SpawnParticle(w, kind,
			x+jitter(rng, jitterX), y+jitter(rng, jitterY),
			jitter(rng, spec.Spread), jitter(rng, spec.Spread),
			spec.Color, spec.Life)
	}
}

// SpawnExhaust puffs smoke out of the back of the car.
func SpawnExhaust(w donburi.World, v *components.VehicleData) {
	rng := components.Rand(w)
	fx := cfg.Effects

	rad := gamemath.DegToRad(v.Heading + 180 + jitter(rng, fx.ExhaustAngle))
	SpawnParticle(w, components.ParticleSmoke,
		v.X-math.Sin(rad)*fx.ExhaustOffset,
		v.Y+math.Cos(rad)*fx.ExhaustOffset,
		-math.Sin(rad)*fx.ExhaustSpeed+jitter(rng, fx.Exhaust.Spread),
		math.Cos(rad)*fx.ExhaustSpeed+jitter(rng, fx.Exhaust.Spread),
		fx.Exhaust.Color, fx.Exhaust.Life)
}

// SpawnDriftSmoke puffs smoke on the side the car is sliding toward.
func SpawnDriftSmoke(w donburi.World, v *components.VehicleData) {
	rng := components.Rand(w)
	fx := cfg.Effects

	side := 1.0
	if v.DriftFactor > 0 {
		side = -1
	}
	SpawnParticle(w, components.ParticleSmoke,
		v.X+side*cfg.Vehicle.Width*fx.DriftSmokeOffset,
		v.Y+cfg.Vehicle.Height*fx.DriftSmokeOffset,
		jitter(rng, fx.DriftSmoke.Spread), jitter(rng, fx.DriftSmoke.Spread),
		fx.DriftSmoke.Color, fx.DriftSmoke.Life)
}

// SpawnCrash emits sparks proportional to the impact, with a debris chunk
// in the car's color on every third spark.
func SpawnCrash(w donburi.World, x, y, impact float64, body color.RGBA) {
	rng := components.Rand(w)
	fx := cfg.Effects

	count := int(math.Floor(float64(cfg.Collision.BaseSparks) + impact))
	for i := 0; i < count; i++ {
		SpawnParticle(w, components.ParticleSpark, x, y,
			jitter(rng, fx.Crash.Spread), jitter(rng, fx.Crash.Spread),
			fx.Crash.Color, fx.Crash.Life)

		if i%cfg.Collision.DebrisEvery == 0 {
			SpawnParticle(w, components.ParticleDebris, x, y,
				jitter(rng, fx.Debris.Spread), jitter(rng, fx.Debris.Spread),
				body, fx.Debris.Life)
		}
	}
}

// SpawnCheckpointBurst celebrates a passed checkpoint.
func SpawnCheckpointBurst(w donburi.World, x, y float64) {
	j := cfg.Effects.CheckpointJitter
	SpawnBurst(w, components.ParticleBasic, x, y, j, j, cfg.Effects.Checkpoint)
}

// SpawnRaceStart throws sparks across the start/finish line.
func SpawnRaceStart(w donburi.World, x, y float64) {
	SpawnBurst(w, components.ParticleSpark, x, y, 0, cfg.Effects.RaceStartJitterY, cfg.Effects.RaceStart)
}

// SpawnCarChange sparks around the car in its new color.
func SpawnCarChange(w donburi.World, x, y float64, body color.RGBA) {
	spec := cfg.Effects.CarChange
	spec.Color = body
	SpawnBurst(w, components.ParticleSpark, x, y, 0, 0, spec)
}

// SpawnSkidMark lays a tire mark, evicting the oldest marks beyond the cap.
func SpawnSkidMark(w donburi.World, x, y, angle, width, intensity float64) *donburi.Entry {
	var seq uint64
	if e, ok := components.Session.First(w); ok {
		s := components.Session.Get(e)
		s.SkidSeq++
		seq = s.SkidSeq
	}

	entry := archetypes.SkidMark.Spawn(w)
	components.SkidMark.SetValue(entry, components.SkidMarkData{
		X:         x,
		Y:         y,
		Angle:     angle,
		Width:     width,
		Intensity: intensity,
		Life:      cfg.Effects.SkidMarkLife,
		Seq:       seq,
	})

	evictSkidMarks(w, cfg.Effects.MaxSkidMarks)
	return entry
}

var skidMarkQuery = donburi.NewQuery(filter.Contains(components.SkidMark))

func evictSkidMarks(w donburi.World, limit int) {
	for skidMarkQuery.Count(w) > limit {
		var oldest *donburi.Entry
		var oldestSeq uint64 = math.MaxUint64
		components.SkidMark.Each(w, func(e *donburi.Entry) {
			if s := components.SkidMark.Get(e); s.Seq < oldestSeq {
				oldest = e
				oldestSeq = s.Seq
			}
		})
		if oldest == nil {
			return
		}
		w.Remove(oldest.Entity())
	}
}

// ClearParticles removes every particle.
func ClearParticles(w donburi.World) {
	removeAll(w, components.Particle.Each)
}

// ClearSkidMarks removes every skid mark.
func ClearSkidMarks(w donburi.World) {
	removeAll(w, components.SkidMark.Each)
}

func removeAll(w donburi.World, each func(donburi.World, func(*donburi.Entry))) {
	var toRemove []*donburi.Entry
	each(w, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})
	for _, e := range toRemove {
		w.Remove(e.Entity())
	}
}

// StartScreenFlash brightens the frame and fades back to normal.
func StartScreenFlash(w donburi.World) {
	e, ok := components.ScreenFlash.First(w)
	if !ok {
		return
	}
	fx := cfg.Effects
	components.ScreenFlash.SetValue(e, components.ScreenFlashData{
		Tween:      gween.New(fx.FlashBrightness, 1, fx.FlashSeconds, ease.Linear),
		Brightness: fx.FlashBrightness,
	})
}

package systems

import (
	"github.com/automoto/driftcircuit/components"
	"github.com/yohamta/donburi"
)

// particleStepper applies the kind-specific part of a particle's tick
type particleStepper func(p *components.ParticleData)

var particleSteppers = map[components.ParticleKind]particleStepper{
	components.ParticleBasic: func(p *components.ParticleData) {
		p.Velocity.X *= 0.98
		p.Velocity.Y *= 0.98
	},
	components.ParticleSmoke: func(p *components.ParticleData) {
		p.Size += 0.05
		p.Velocity.X *= 0.97
		p.Velocity.Y *= 0.97
	},
	components.ParticleSpark: func(p *components.ParticleData) {
		p.Velocity.X *= 0.96
		p.Velocity.Y *= 0.96
		p.Velocity.Y += 0.05
	},
	components.ParticleDebris: func(p *components.ParticleData) {
		p.Velocity.X *= 0.98
		p.Velocity.Y *= 0.98
		p.Velocity.Y += 0.1
		// debris tumbles at twice its spin rate
		p.Rotation += p.RotationSpeed
	},
}

// UpdateEffects ages every particle and skid mark by one tick
func UpdateEffects(w donburi.World) {
	UpdateParticles(w)
	UpdateSkidMarks(w)
}

// StepParticle advances one particle by a single tick.
func StepParticle(p *components.ParticleData) {
	p.Position.X += p.Velocity.X
	p.Position.Y += p.Velocity.Y
	p.Life--
	p.Rotation += p.RotationSpeed

	step, ok := particleSteppers[p.Kind]
	if !ok {
		step = particleSteppers[components.ParticleBasic]
	}
	step(p)
}

// UpdateParticles moves particles and removes the ones that have expired
func UpdateParticles(w donburi.World) {
	var toDestroy []*donburi.Entry

	components.Particle.Each(w, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		StepParticle(p)
		if p.Life <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		w.Remove(e.Entity())
	}
}

// UpdateSkidMarks fades skid marks and removes the ones that have expired
func UpdateSkidMarks(w donburi.World) {
	var toDestroy []*donburi.Entry

	components.SkidMark.Each(w, func(e *donburi.Entry) {
		s := components.SkidMark.Get(e)
		s.Life--
		if s.Life <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		w.Remove(e.Entity())
	}
}

// UpdateScreenFlash advances the car-change flash tween by dt seconds
func UpdateScreenFlash(w donburi.World, dt float64) {
	e, ok := components.ScreenFlash.First(w)
	if !ok {
		return
	}
	flash := components.ScreenFlash.Get(e)
	if flash.Tween == nil {
		return
	}

	value, done := flash.Tween.Update(float32(dt))
	flash.Brightness = value
	if done {
		flash.Tween = nil
		flash.Brightness = 1
	}
}

package systems

import (
	"testing"

	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	dmath "github.com/yohamta/donburi/features/math"
)

var skidQuery = donburi.NewQuery(filter.Contains(components.SkidMark))

func TestStepParticleByKind(t *testing.T) {
	tests := []struct {
		kind    components.ParticleKind
		vel     dmath.Vec2
		size    float64
		rot     float64
		wantVel dmath.Vec2
	}{
		{kind: components.ParticleBasic, vel: dmath.Vec2{X: 1, Y: 1}, size: 2, rot: 0.1, wantVel: dmath.Vec2{X: 0.98, Y: 0.98}},
		{kind: components.ParticleSmoke, vel: dmath.Vec2{X: 1, Y: 1}, size: 2.05, rot: 0.1, wantVel: dmath.Vec2{X: 0.97, Y: 0.97}},
		{kind: components.ParticleSpark, vel: dmath.Vec2{X: 1, Y: 1}, size: 2, rot: 0.1, wantVel: dmath.Vec2{X: 0.96, Y: 1.01}},
		{kind: components.ParticleDebris, vel: dmath.Vec2{X: 1, Y: 1}, size: 2, rot: 0.2, wantVel: dmath.Vec2{X: 0.98, Y: 1.08}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := components.ParticleData{
				Kind:          tt.kind,
				Position:      dmath.Vec2{X: 10, Y: 10},
				Velocity:      tt.vel,
				Life:          5,
				MaxLife:       5,
				Size:          2,
				RotationSpeed: 0.1,
			}

			StepParticle(&p)

			assert.InDelta(t, 11.0, p.Position.X, 1e-9)
			assert.InDelta(t, 11.0, p.Position.Y, 1e-9)
			assert.Equal(t, 4, p.Life)
			assert.InDelta(t, tt.size, p.Size, 1e-9)
			assert.InDelta(t, tt.rot, p.Rotation, 1e-9)
			assert.InDelta(t, tt.wantVel.X, p.Velocity.X, 1e-9)
			assert.InDelta(t, tt.wantVel.Y, p.Velocity.Y, 1e-9)
			assert.InDelta(t, 0.8, p.Alpha(), 1e-9)
		})
	}
}

func TestParticlesExpire(t *testing.T) {
	w, _ := newRaceWorld(t)
	factory.SpawnParticle(w, components.ParticleBasic, 0, 0, 0, 0, cfg.White, 1)
	factory.SpawnParticle(w, components.ParticleBasic, 0, 0, 0, 0, cfg.White, 2)

	UpdateParticles(w)
	assert.Equal(t, 1, particleQuery.Count(w))

	UpdateParticles(w)
	assert.Zero(t, particleQuery.Count(w))
}

func TestSkidMarksAreCappedOldestFirst(t *testing.T) {
	w, _ := newRaceWorld(t)

	for i := 0; i < cfg.Effects.MaxSkidMarks+5; i++ {
		factory.SpawnSkidMark(w, float64(i), 0, 0, 20, 1)
	}

	require.Equal(t, cfg.Effects.MaxSkidMarks, skidQuery.Count(w))
	minX := 1e9
	components.SkidMark.Each(w, func(e *donburi.Entry) {
		if x := components.SkidMark.Get(e).X; x < minX {
			minX = x
		}
	})
	assert.InDelta(t, 5.0, minX, 1e-9)
}

func TestSkidMarksFadeAndExpire(t *testing.T) {
	w, _ := newRaceWorld(t)
	e := factory.SpawnSkidMark(w, 0, 0, 0, 20, 0.5)
	mark := components.SkidMark.Get(e)
	assert.InDelta(t, 0.5, mark.Alpha(cfg.Effects.SkidFadeFrames), 1e-9)

	for i := 0; i < cfg.Effects.SkidMarkLife-50; i++ {
		UpdateSkidMarks(w)
	}
	assert.InDelta(t, 0.25, components.SkidMark.Get(e).Alpha(cfg.Effects.SkidFadeFrames), 1e-9)

	for i := 0; i < 50; i++ {
		UpdateSkidMarks(w)
	}
	assert.Zero(t, skidQuery.Count(w))
}

func TestEffectsAgeWhileIdle(t *testing.T) {
	w, _ := newRaceWorld(t)
	factory.MustSession(w).Running = false
	factory.SpawnParticle(w, components.ParticleSmoke, 0, 0, 0, 0, cfg.White, 1)

	UpdateEffects(w)

	assert.Zero(t, particleQuery.Count(w))
}

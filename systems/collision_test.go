package systems

import (
	"testing"

	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestNoCollisionOnTheRoad(t *testing.T) {
	w, e := newRaceWorld(t)
	v := components.Vehicle.Get(e)
	v.Speed = 4

	assert.False(t, ResolveCollision(w, e))
	assert.InDelta(t, cfg.Vehicle.MaxHealth, v.Health, 1e-9)
	assert.InDelta(t, 4.0, v.Speed, 1e-9)
}

func TestOuterWallImpact(t *testing.T) {
	w, e := newRaceWorld(t)
	v := components.Vehicle.Get(e)
	v.X, v.Y = 950, 350
	v.Speed = 4

	var got []components.CollisionEventData
	components.CollisionEvent.Subscribe(w, func(_ donburi.World, ev components.CollisionEventData) {
		got = append(got, ev)
	})

	require.True(t, ResolveCollision(w, e))
	ProcessEvents(w)

	assert.InDelta(t, 70.0, v.Health, 1e-9)
	assert.InDelta(t, -2.0, v.Speed, 1e-9)
	assert.Equal(t, cfg.Vehicle.DamageFlashFrames, v.DamageFlash)
	assert.Greater(t, v.X, 950.0, "pushed away from the center")
	assert.LessOrEqual(t, v.X, 950+cfg.Collision.MaxPushback+1e-9)

	require.Len(t, got, 1)
	assert.InDelta(t, 40.0, got[0].Impact, 1e-9)
	assert.InDelta(t, 30.0, got[0].Damage, 1e-9)

	// 50 sparks plus debris on every third one
	assert.Equal(t, 50+17, particleQuery.Count(w))
}

func TestHealthNeverDropsBelowZero(t *testing.T) {
	w, e := newRaceWorld(t)
	v := components.Vehicle.Get(e)

	for i := 0; i < 10; i++ {
		v.X, v.Y = 950, 350
		v.Speed = 7
		prev := v.Health
		ResolveCollision(w, e)
		assert.LessOrEqual(t, v.Health, prev)
		assert.GreaterOrEqual(t, v.Health, 0.0)
	}
	assert.Zero(t, v.Health)
}

func TestUpdateCollisionsDebrisUsesCarColor(t *testing.T) {
	w, e := newRaceWorld(t)
	v := components.Vehicle.Get(e)
	v.X, v.Y = 500, 350 // inside the infield
	v.Speed = 1

	UpdateCollisions(w)

	debris := 0
	components.Particle.Each(w, func(p *donburi.Entry) {
		if pd := components.Particle.Get(p); pd.Kind == components.ParticleDebris {
			debris++
			assert.Equal(t, cfg.Style(0).Primary, pd.Color)
		}
	})
	assert.Positive(t, debris)
}

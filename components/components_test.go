package components

import (
	"testing"

	cfg "github.com/automoto/driftcircuit/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestPushTrailEvictsOldest(t *testing.T) {
	var v VehicleData
	for i := 0; i < 5; i++ {
		v.PushTrail(float64(i), 0, 3)
	}

	assert.Len(t, v.Trail, 3)
	assert.InDelta(t, 2.0, v.Trail[0].X, 1e-9)
	assert.InDelta(t, 4.0, v.Trail[2].X, 1e-9)
}

func TestSessionLapDisplay(t *testing.T) {
	s := SessionData{Lap: 4, MaxLaps: 3}
	assert.Equal(t, 3, s.DisplayLap())
	assert.False(t, s.Finished())

	s.Outcome = OutcomeNewRecord
	assert.True(t, s.Finished())

	s.Running = true
	assert.False(t, s.Finished())
}

func TestInputEdges(t *testing.T) {
	var in InputData
	in.Current[cfg.ActionStartRace] = true
	in.Current[cfg.ActionAccelerate] = true
	in.Previous[cfg.ActionAccelerate] = true

	ctrl := ControlFromInput(&in)
	assert.True(t, ctrl.StartRequested)
	assert.True(t, ctrl.Accelerate)
	assert.False(t, ctrl.ResetRequested)

	in.Previous = in.Current
	ctrl = ControlFromInput(&in)
	assert.False(t, ctrl.StartRequested, "held keys only fire once")
	assert.True(t, ctrl.Accelerate)
}

func TestParticleAlpha(t *testing.T) {
	assert.InDelta(t, 0.5, (&ParticleData{Life: 10, MaxLife: 20}).Alpha(), 1e-9)
	assert.Zero(t, (&ParticleData{Life: -1, MaxLife: 20}).Alpha())
	assert.Zero(t, (&ParticleData{}).Alpha())
}

func TestRandFallback(t *testing.T) {
	w := donburi.NewWorld()
	assert.NotNil(t, Rand(w))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "new-record", OutcomeNewRecord.String())
	assert.Equal(t, "race-complete", OutcomeRaceComplete.String())
	assert.Equal(t, "none", OutcomeNone.String())
}

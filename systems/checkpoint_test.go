package systems

import (
	"testing"

	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func park(e *donburi.Entry, x, y float64) {
	v := components.Vehicle.Get(e)
	v.X, v.Y, v.Speed = x, y, 0
	factory.SyncVehicleObject(e)
}

func driveLap(w donburi.World, e *donburi.Entry) {
	for _, sp := range cfg.Track.Checkpoints {
		park(e, sp.X, sp.Y)
		UpdateCheckpoints(w)
	}
}

func passedCount(w donburi.World) int {
	n := 0
	components.Checkpoint.Each(w, func(e *donburi.Entry) {
		if components.Checkpoint.Get(e).Passed {
			n++
		}
	})
	return n
}

func TestCheckpointPassIsIdempotent(t *testing.T) {
	w, e := newRaceWorld(t)

	var events []components.CheckpointEventData
	components.CheckpointEvent.Subscribe(w, func(_ donburi.World, ev components.CheckpointEventData) {
		events = append(events, ev)
	})

	first := cfg.Track.Checkpoints[0]
	park(e, first.X+10, first.Y)
	UpdateCheckpoints(w)
	UpdateCheckpoints(w)
	ProcessEvents(w)

	assert.Equal(t, 1, passedCount(w))
	require.Len(t, events, 1)
	assert.Equal(t, 0, events[0].Index)
	assert.Equal(t, first.Name, events[0].Name)
	assert.Equal(t, cfg.Effects.Checkpoint.Count, particleQuery.Count(w))
}

func TestCheckpointRadiusIsExclusive(t *testing.T) {
	w, e := newRaceWorld(t)

	first := cfg.Track.Checkpoints[0]
	park(e, first.X+cfg.Race.CheckpointRadius, first.Y)
	UpdateCheckpoints(w)

	assert.Zero(t, passedCount(w))
}

func TestLapCompletesOncePerCycle(t *testing.T) {
	w, e := newRaceWorld(t)
	session := factory.MustSession(w)

	var laps []components.LapEventData
	components.LapEvent.Subscribe(w, func(_ donburi.World, ev components.LapEventData) {
		laps = append(laps, ev)
	})

	session.Elapsed = 12
	driveLap(w, e)
	ProcessEvents(w)

	assert.Equal(t, 2, session.Lap)
	assert.True(t, session.Running)
	assert.Zero(t, passedCount(w), "flags reset after a lap")
	require.Len(t, laps, 1)
	assert.Equal(t, 1, laps[0].Lap)
	assert.InDelta(t, 12.0, laps[0].Split, 1e-9)

	// passing the same checkpoint again only counts toward the new lap
	last := cfg.Track.Checkpoints[len(cfg.Track.Checkpoints)-1]
	park(e, last.X, last.Y)
	UpdateCheckpoints(w)
	assert.Equal(t, 2, session.Lap)
	assert.Equal(t, 1, passedCount(w))
}

func TestRaceFinishesAfterFinalLap(t *testing.T) {
	w, e := newRaceWorld(t)
	session := factory.MustSession(w)

	var finished []components.RaceFinishedEventData
	components.RaceFinishedEvent.Subscribe(w, func(_ donburi.World, ev components.RaceFinishedEventData) {
		finished = append(finished, ev)
	})

	for lap := 1; lap <= cfg.Race.MaxLaps; lap++ {
		session.Elapsed = float64(lap) * 10
		driveLap(w, e)
	}
	ProcessEvents(w)

	assert.False(t, session.Running)
	assert.Equal(t, cfg.Race.MaxLaps+1, session.Lap)
	assert.Equal(t, []float64{10, 10, 10}, session.LapSplits)
	assert.True(t, session.HasBest)
	assert.InDelta(t, 30.0, session.BestTime, 1e-9)
	assert.Equal(t, components.OutcomeNewRecord, session.Outcome)
	assert.True(t, session.Finished())

	require.Len(t, finished, 1)
	assert.Equal(t, components.OutcomeNewRecord, finished[0].Outcome)
	assert.InDelta(t, 30.0, finished[0].Time, 1e-9)
}

func TestBestTimeRequiresStrictImprovement(t *testing.T) {
	tests := []struct {
		name     string
		best     float64
		elapsed  float64
		outcome  components.RaceOutcome
		wantBest float64
	}{
		{name: "faster", best: 40, elapsed: 39.5, outcome: components.OutcomeNewRecord, wantBest: 39.5},
		{name: "equal", best: 40, elapsed: 40, outcome: components.OutcomeRaceComplete, wantBest: 40},
		{name: "slower", best: 40, elapsed: 41, outcome: components.OutcomeRaceComplete, wantBest: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newRaceWorld(t)
			session := factory.MustSession(w)
			session.BestTime = tt.best
			session.HasBest = true
			session.Elapsed = tt.elapsed

			finishRace(w, session)

			assert.Equal(t, tt.outcome, session.Outcome)
			assert.InDelta(t, tt.wantBest, session.BestTime, 1e-9)
			assert.False(t, session.Running)
		})
	}
}

package systems

import (
	"sort"

	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/shared/gamemath"
	"github.com/automoto/driftcircuit/systems/factory"
	"github.com/automoto/driftcircuit/tags"
	"github.com/yohamta/donburi"
)

// UpdateCheckpoints marks checkpoints the car is close to, completes laps
// once the whole ring has been passed and finishes the race after the last
// lap.
func UpdateCheckpoints(w donburi.World) {
	vehicleEntry, ok := tags.Vehicle.First(w)
	if !ok {
		return
	}
	sessionEntry, ok := components.Session.First(w)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	v := components.Vehicle.Get(vehicleEntry)

	for _, e := range checkpointCandidates(w, vehicleEntry) {
		cp := components.Checkpoint.Get(e)
		if cp.Passed {
			continue
		}
		if gamemath.Distance(v.X, v.Y, cp.X, cp.Y) >= cfg.Race.CheckpointRadius {
			continue
		}

		cp.Passed = true
		factory.SpawnCheckpointBurst(w, cp.X, cp.Y)
		components.CheckpointEvent.Publish(w, components.CheckpointEventData{
			Index: cp.Index,
			Name:  cp.Name,
			Lap:   session.Lap,
		})

		if allCheckpointsPassed(w) {
			completeLap(w, session)
		}
	}
}

// checkpointCandidates returns the checkpoints near the car in ring order.
// The resolv space narrows the search when the car has a sensor object.
func checkpointCandidates(w donburi.World, vehicleEntry *donburi.Entry) []*donburi.Entry {
	var candidates []*donburi.Entry

	obj := components.Object.Get(vehicleEntry)
	if obj.Object != nil && obj.Space != nil {
		if check := obj.Check(0, 0, tags.ResolvCheckpoint); check != nil {
			for _, o := range check.ObjectsByTags(tags.ResolvCheckpoint) {
				if e, ok := o.Data.(*donburi.Entry); ok && e.Valid() {
					candidates = append(candidates, e)
				}
			}
		}
	} else {
		tags.Checkpoint.Each(w, func(e *donburi.Entry) {
			candidates = append(candidates, e)
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return components.Checkpoint.Get(candidates[i]).Index < components.Checkpoint.Get(candidates[j]).Index
	})
	return candidates
}

func allCheckpointsPassed(w donburi.World) bool {
	all := true
	count := 0
	components.Checkpoint.Each(w, func(e *donburi.Entry) {
		count++
		if !components.Checkpoint.Get(e).Passed {
			all = false
		}
	})
	return all && count > 0
}

func completeLap(w donburi.World, session *components.SessionData) {
	split := session.Elapsed - session.LapStart
	session.LapSplits = append(session.LapSplits, split)
	session.LapStart = session.Elapsed

	components.LapEvent.Publish(w, components.LapEventData{
		Lap:   session.Lap,
		Split: split,
	})

	session.Lap++
	factory.ResetCheckpoints(w)

	if session.Lap > session.MaxLaps {
		finishRace(w, session)
	}
}

// finishRace stops the clock and commits a new best time only when none is
// recorded yet or the run was strictly faster.
func finishRace(w donburi.World, session *components.SessionData) {
	session.Running = false

	if !session.HasBest || session.Elapsed < session.BestTime {
		session.BestTime = session.Elapsed
		session.HasBest = true
		session.Outcome = components.OutcomeNewRecord
	} else {
		session.Outcome = components.OutcomeRaceComplete
	}

	splits := make([]float64, len(session.LapSplits))
	copy(splits, session.LapSplits)

	components.RaceFinishedEvent.Publish(w, components.RaceFinishedEventData{
		Outcome:    session.Outcome,
		Time:       session.Elapsed,
		LapSplits:  splits,
		StyleIndex: session.StyleIndex,
	})
}

package sim

import (
	"sort"

	"github.com/automoto/driftcircuit/components"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Snapshot is a detached copy of the race state
type Snapshot struct {
	Vehicle     components.VehicleData
	Session     components.SessionData
	Checkpoints []components.CheckpointData
	Particles   []components.ParticleData
	SkidMarks   []components.SkidMarkData
	Flash       float32
	Banner      string
}

// Snapshot copies the current state. Nothing in the result aliases the world.
func (s *Simulation) Snapshot() Snapshot {
	var snap Snapshot
	w := s.world

	if e, ok := components.Vehicle.First(w); ok {
		snap.Vehicle = *components.Vehicle.Get(e)
		snap.Vehicle.Trail = append([]dmath.Vec2(nil), snap.Vehicle.Trail...)
	}
	if e, ok := components.Session.First(w); ok {
		snap.Session = *components.Session.Get(e)
		snap.Session.LapSplits = append([]float64(nil), snap.Session.LapSplits...)
	}
	if e, ok := components.ScreenFlash.First(w); ok {
		snap.Flash = components.ScreenFlash.Get(e).Brightness
	}
	if e, ok := components.Banner.First(w); ok {
		if b := components.Banner.Get(e); b.Visible() {
			snap.Banner = b.Text
		}
	}

	components.Checkpoint.Each(w, func(e *donburi.Entry) {
		snap.Checkpoints = append(snap.Checkpoints, *components.Checkpoint.Get(e))
	})
	sort.Slice(snap.Checkpoints, func(i, j int) bool {
		return snap.Checkpoints[i].Index < snap.Checkpoints[j].Index
	})

	components.Particle.Each(w, func(e *donburi.Entry) {
		snap.Particles = append(snap.Particles, *components.Particle.Get(e))
	})
	components.SkidMark.Each(w, func(e *donburi.Entry) {
		snap.SkidMarks = append(snap.SkidMarks, *components.SkidMark.Get(e))
	})
	sort.Slice(snap.SkidMarks, func(i, j int) bool {
		return snap.SkidMarks[i].Seq < snap.SkidMarks[j].Seq
	})

	return snap
}

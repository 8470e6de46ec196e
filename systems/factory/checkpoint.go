package factory

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/automoto/driftcircuit/archetypes"
	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateCheckpoint creates a checkpoint entity with a broadphase marker
func CreateCheckpoint(w donburi.World, index int, name string, x, y float64) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(w)

	size := cfg.Collision.MarkerSize
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvCheckpoint)
	obj.Data = checkpoint

	components.Object.SetValue(checkpoint, components.ObjectData{Object: obj})
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		Index: index,
		X:     x,
		Y:     y,
		Name:  name,
	})

	if s := space(w); s != nil {
		s.Add(obj)
	}

	return checkpoint
}

// PlaceCheckpoints replaces the checkpoint ring with the given positions.
func PlaceCheckpoints(w donburi.World, spawns []cfg.CheckpointSpawn) {
	ClearCheckpoints(w)
	for i, sp := range spawns {
		CreateCheckpoint(w, i, sp.Name, sp.X, sp.Y)
	}
}

// RandomCheckpointSpawns picks n positions at uniform random angles on an
// ellipse scaled down from the outer boundary.
func RandomCheckpointSpawns(track *components.TrackData, rng *rand.Rand, n int) []cfg.CheckpointSpawn {
	ring := track.Bounds.Outer.Scaled(cfg.Race.CheckpointRingScale)
	spawns := make([]cfg.CheckpointSpawn, 0, n)
	for i := 0; i < n; i++ {
		x, y := ring.Point(rng.Float64() * 2 * math.Pi)
		spawns = append(spawns, cfg.CheckpointSpawn{
			Name: fmt.Sprintf("Checkpoint %d", i+1),
			X:    x,
			Y:    y,
		})
	}
	return spawns
}

// RandomizeCheckpoints replaces the ring with a fresh random layout.
func RandomizeCheckpoints(w donburi.World, rng *rand.Rand) {
	track := MustTrack(w)
	PlaceCheckpoints(w, RandomCheckpointSpawns(track, rng, cfg.Race.CheckpointCount))
}

// ClearCheckpoints removes every checkpoint entity and its marker.
func ClearCheckpoints(w donburi.World) {
	var toRemove []*donburi.Entry
	tags.Checkpoint.Each(w, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})
	for _, e := range toRemove {
		removeObject(w, e)
		w.Remove(e.Entity())
	}
}

// ResetCheckpoints clears every passed flag.
func ResetCheckpoints(w donburi.World) {
	components.Checkpoint.Each(w, func(e *donburi.Entry) {
		components.Checkpoint.Get(e).Passed = false
	})
}

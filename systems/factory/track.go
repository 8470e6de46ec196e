package factory

import (
	"github.com/automoto/driftcircuit/archetypes"
	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateTrack spawns the singleton track entity from a layout.
func CreateTrack(w donburi.World, t cfg.TrackConfig) *donburi.Entry {
	track := archetypes.Track.Spawn(w)

	layout := make([]cfg.CheckpointSpawn, len(t.Checkpoints))
	copy(layout, t.Checkpoints)

	components.Track.SetValue(track, components.TrackData{
		Name: t.Name,
		Bounds: gamemath.Annulus{
			Outer: gamemath.Ellipse{CX: t.CenterX, CY: t.CenterY, RX: t.OuterRadiusX, RY: t.OuterRadiusY},
			Inner: gamemath.Ellipse{CX: t.CenterX, CY: t.CenterY, RX: t.InnerRadiusX, RY: t.InnerRadiusY},
		},
		FinishX:      t.FinishX,
		FinishY:      t.FinishY,
		StartX:       t.StartX,
		StartY:       t.StartY,
		StartHeading: t.StartHeading,
		Layout:       layout,
	})

	return track
}

// MustTrack returns the track data or panics when the world was built without one.
func MustTrack(w donburi.World) *components.TrackData {
	e, ok := components.Track.First(w)
	if !ok {
		panic("track entity not found")
	}
	return components.Track.Get(e)
}

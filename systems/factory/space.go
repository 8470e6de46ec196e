package factory

import (
	"math"

	"github.com/automoto/driftcircuit/archetypes"
	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateTrackSpace sizes the broadphase to cover both the screen and the
// outer ellipse of the track.
func CreateTrackSpace(w donburi.World, track *components.TrackData) *donburi.Entry {
	outer := track.Bounds.Outer
	margin := cfg.Collision.SpaceMarginSize
	width := math.Max(float64(cfg.C.Width), outer.CX+outer.RX+margin)
	height := math.Max(float64(cfg.C.Height), outer.CY+outer.RY+margin)
	cell := cfg.Collision.SpaceCellSize
	return CreateSpace(w, int(width), int(height), cell, cell)
}

func space(w donburi.World) *resolv.Space {
	if e, ok := components.Space.First(w); ok {
		return components.Space.Get(e)
	}
	return nil
}

func removeObject(w donburi.World, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	if s := space(w); s != nil {
		s.Remove(obj.Object)
	}
}

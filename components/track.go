package components

import (
	"github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Decoration is cosmetic scenery placed around the circuit
type Decoration struct {
	X, Y  float64
	Type  int
	Scale float64
}

// RoadSegment is one tile of the road surface along the centerline
type RoadSegment struct {
	X, Y   float64
	Angle  float64 // radians
	Width  float64
	Height float64
	Type   int
}

// TrackData is the immutable circuit geometry plus generated scenery.
type TrackData struct {
	Name   string
	Bounds gamemath.Annulus

	FinishX, FinishY float64
	StartX, StartY   float64
	StartHeading     float64

	// Layout is the fixed checkpoint ring from the track file
	Layout []config.CheckpointSpawn

	Decorations  []Decoration
	RoadSegments []RoadSegment
}

var Track = donburi.NewComponentType[TrackData]()

// ContainsPoint reports whether (x, y) is on the drivable surface.
func (t *TrackData) ContainsPoint(x, y float64) bool {
	return t.Bounds.Contains(x, y)
}

// EdgeDistance approximates the signed distance from (x, y) to the nearest edge.
func (t *TrackData) EdgeDistance(x, y float64) float64 {
	return t.Bounds.EdgeDistance(x, y)
}

// Center returns the shared center of both ellipses.
func (t *TrackData) Center() (float64, float64) {
	return t.Bounds.Outer.CX, t.Bounds.Outer.CY
}

// Decorated reports whether scenery has been generated.
func (t *TrackData) Decorated() bool {
	return len(t.RoadSegments) > 0
}

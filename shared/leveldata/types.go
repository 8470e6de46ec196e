// Package leveldata parses TMX track layouts into plain configuration.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import "errors"

// Object names recognized in the Track object group.
const (
	TrackGroup       = "Track"
	OuterObject      = "outer"
	InnerObject      = "inner"
	StartObject      = "start"
	FinishObject     = "finish"
	CheckpointObject = "checkpoint"
)

var (
	// ErrIncompleteTrack is returned when a required object is missing.
	ErrIncompleteTrack = errors.New("incomplete track layout")
	// ErrInvalidTrack is returned when the geometry cannot be raced on.
	ErrInvalidTrack = errors.New("invalid track layout")
)

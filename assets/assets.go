package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/shared/leveldata"
)

// DefaultTrack is the layout raced when no other is selected.
const DefaultTrack = "oval"

var (
	//go:embed all:tracks
	trackFS embed.FS
)

// Tracks exposes the embedded track layouts.
func Tracks() fs.FS {
	return trackFS
}

// LoadTrack parses the embedded layout with the given stem name.
func LoadTrack(name string) (config.TrackConfig, error) {
	track, err := leveldata.LoadTrack(trackFS, path.Join("tracks", name+".tmx"))
	if err != nil {
		return config.TrackConfig{}, fmt.Errorf("track %q: %w", name, err)
	}
	return track, nil
}

// TrackNames lists the embedded layouts in sorted order.
func TrackNames() ([]string, error) {
	_, names, err := leveldata.LoadAllTracks(trackFS, "tracks")
	return names, err
}

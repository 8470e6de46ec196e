package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// centerTolerance is how far apart, in pixels, the two ellipse centers may be.
const centerTolerance = 0.5

type orderedCheckpoint struct {
	order int
	spawn config.CheckpointSpawn
}

// LoadTrack parses a TMX file into a track layout. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadTrack(fsys fs.FS, tmxPath string) (config.TrackConfig, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return config.TrackConfig{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	track := config.TrackConfig{
		Name: levelMap.Properties.GetString("name"),
	}
	if track.Name == "" {
		track.Name = strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	}

	var hasOuter, hasInner, hasStart, hasFinish bool
	var outer, inner gamemath.Ellipse
	var checkpoints []orderedCheckpoint

	for _, og := range levelMap.ObjectGroups {
		if og.Name != TrackGroup {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case OuterObject:
				outer, hasOuter = objectEllipse(o), true
			case InnerObject:
				inner, hasInner = objectEllipse(o), true
			case StartObject:
				track.StartX, track.StartY = o.X, o.Y
				track.StartHeading = o.Properties.GetFloat("heading")
				hasStart = true
			case FinishObject:
				track.FinishX, track.FinishY = o.X, o.Y
				hasFinish = true
			case CheckpointObject:
				name := o.Properties.GetString("name")
				if name == "" {
					name = fmt.Sprintf("Checkpoint %d", len(checkpoints)+1)
				}
				checkpoints = append(checkpoints, orderedCheckpoint{
					order: o.Properties.GetInt("order"),
					spawn: config.CheckpointSpawn{Name: name, X: o.X, Y: o.Y},
				})
			}
		}
	}

	switch {
	case !hasOuter:
		return config.TrackConfig{}, fmt.Errorf("%s: %w: no %q ellipse", tmxPath, ErrIncompleteTrack, OuterObject)
	case !hasInner:
		return config.TrackConfig{}, fmt.Errorf("%s: %w: no %q ellipse", tmxPath, ErrIncompleteTrack, InnerObject)
	case !hasStart:
		return config.TrackConfig{}, fmt.Errorf("%s: %w: no %q point", tmxPath, ErrIncompleteTrack, StartObject)
	}
	if !hasFinish {
		track.FinishX, track.FinishY = track.StartX, track.StartY
	}

	if math.Abs(outer.CX-inner.CX) > centerTolerance || math.Abs(outer.CY-inner.CY) > centerTolerance {
		return config.TrackConfig{}, fmt.Errorf("%s: %w: ellipses are not concentric", tmxPath, ErrInvalidTrack)
	}
	if inner.RX <= 0 || inner.RY <= 0 {
		return config.TrackConfig{}, fmt.Errorf("%s: %w: ellipse radii must be positive", tmxPath, ErrInvalidTrack)
	}
	if inner.RX >= outer.RX || inner.RY >= outer.RY {
		return config.TrackConfig{}, fmt.Errorf("%s: %w: inner ellipse does not fit inside outer", tmxPath, ErrInvalidTrack)
	}

	if len(checkpoints) == 0 {
		return config.TrackConfig{}, fmt.Errorf("%s: %w: no %q points", tmxPath, ErrInvalidTrack, CheckpointObject)
	}

	bounds := gamemath.Annulus{Outer: outer, Inner: inner}
	if !bounds.Contains(track.StartX, track.StartY) {
		return config.TrackConfig{}, fmt.Errorf("%s: %w: start is off the road", tmxPath, ErrInvalidTrack)
	}

	track.CenterX, track.CenterY = outer.CX, outer.CY
	track.OuterRadiusX, track.OuterRadiusY = outer.RX, outer.RY
	track.InnerRadiusX, track.InnerRadiusY = inner.RX, inner.RY

	sort.SliceStable(checkpoints, func(i, j int) bool {
		return checkpoints[i].order < checkpoints[j].order
	})
	for _, cp := range checkpoints {
		track.Checkpoints = append(track.Checkpoints, cp.spawn)
	}

	return track, nil
}

// objectEllipse converts a Tiled bounding box into center and radii.
func objectEllipse(o *tiled.Object) gamemath.Ellipse {
	return gamemath.Ellipse{
		CX: o.X + o.Width/2,
		CY: o.Y + o.Height/2,
		RX: o.Width / 2,
		RY: o.Height / 2,
	}
}

// LoadAllTracks discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllTracks(fsys fs.FS, dir string) (map[string]config.TrackConfig, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	tracks := make(map[string]config.TrackConfig, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		track, err := LoadTrack(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		tracks[stem] = track
		names = append(names, stem)
	}

	sort.Strings(names)
	return tracks, names, nil
}

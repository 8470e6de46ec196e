package leveldata

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/automoto/driftcircuit/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tmxHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="8" tileheight="8" infinite="0" nextlayerid="2" nextobjectid="9">
 <objectgroup id="1" name="Track">
`

const tmxFooter = ` </objectgroup>
</map>
`

func tmx(objects string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(tmxHeader + objects + tmxFooter)}
}

const (
	outerObj = `  <object id="1" name="outer" x="0" y="0" width="400" height="200"><ellipse/></object>
`
	innerObj = `  <object id="2" name="inner" x="100" y="50" width="200" height="100"><ellipse/></object>
`
	startObj = `  <object id="3" name="start" x="20" y="100"><properties><property name="heading" type="float" value="90"/></properties><point/></object>
`
	checkpointObj = `  <object id="6" name="checkpoint" x="380" y="100"><point/></object>
`
)

func TestLoadBundledOval(t *testing.T) {
	track, err := LoadTrack(os.DirFS("../../assets"), "tracks/oval.tmx")
	require.NoError(t, err)

	assert.Equal(t, config.Track, track)
}

func TestLoadTrackOrdersCheckpoints(t *testing.T) {
	fsys := fstest.MapFS{
		"tracks/ring.tmx": tmx(outerObj + innerObj + startObj + `
  <object id="4" name="checkpoint" x="200" y="20"><properties><property name="name" value="Top"/><property name="order" type="int" value="1"/></properties><point/></object>
  <object id="5" name="checkpoint" x="380" y="100"><properties><property name="order" type="int" value="0"/></properties><point/></object>
`),
	}

	track, err := LoadTrack(fsys, "tracks/ring.tmx")
	require.NoError(t, err)

	assert.Equal(t, "ring", track.Name, "falls back to the file stem")
	assert.InDelta(t, 200.0, track.CenterX, 1e-9)
	assert.InDelta(t, 100.0, track.CenterY, 1e-9)
	assert.InDelta(t, 200.0, track.OuterRadiusX, 1e-9)
	assert.InDelta(t, 50.0, track.InnerRadiusY, 1e-9)
	assert.InDelta(t, 90.0, track.StartHeading, 1e-9)
	assert.InDelta(t, 20.0, track.FinishX, 1e-9, "finish defaults to the start")

	require.Len(t, track.Checkpoints, 2)
	assert.Equal(t, "Checkpoint 2", track.Checkpoints[0].Name)
	assert.InDelta(t, 380.0, track.Checkpoints[0].X, 1e-9)
	assert.Equal(t, "Top", track.Checkpoints[1].Name)
}

func TestLoadTrackRejectsBadLayouts(t *testing.T) {
	tests := []struct {
		name    string
		objects string
		want    error
	}{
		{name: "no outer", objects: innerObj + startObj + checkpointObj, want: ErrIncompleteTrack},
		{name: "no inner", objects: outerObj + startObj + checkpointObj, want: ErrIncompleteTrack},
		{name: "no start", objects: outerObj + innerObj + checkpointObj, want: ErrIncompleteTrack},
		{name: "no checkpoints", objects: outerObj + innerObj + startObj, want: ErrInvalidTrack},
		{
			name: "flat inner",
			objects: outerObj + startObj + checkpointObj +
				`  <object id="2" name="inner" x="100" y="100" width="200" height="0"><ellipse/></object>
`,
			want: ErrInvalidTrack,
		},
		{
			name: "negative radii",
			objects: startObj + checkpointObj +
				`  <object id="1" name="outer" x="400" y="200" width="-400" height="-200"><ellipse/></object>
  <object id="2" name="inner" x="300" y="150" width="-200" height="-100"><ellipse/></object>
`,
			want: ErrInvalidTrack,
		},
		{
			name: "off center",
			objects: outerObj + startObj + checkpointObj +
				`  <object id="2" name="inner" x="120" y="50" width="200" height="100"><ellipse/></object>
`,
			want: ErrInvalidTrack,
		},
		{
			name: "inner too big",
			objects: outerObj + startObj + checkpointObj +
				`  <object id="2" name="inner" x="-10" y="50" width="420" height="100"><ellipse/></object>
`,
			want: ErrInvalidTrack,
		},
		{
			name: "start in the infield",
			objects: outerObj + innerObj + checkpointObj +
				`  <object id="3" name="start" x="200" y="100"><point/></object>
`,
			want: ErrInvalidTrack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"t.tmx": tmx(tt.objects)}
			_, err := LoadTrack(fsys, "t.tmx")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadTrackMissingFile(t *testing.T) {
	_, err := LoadTrack(fstest.MapFS{}, "nope.tmx")
	assert.Error(t, err)
}

func TestLoadAllTracks(t *testing.T) {
	fsys := fstest.MapFS{
		"tracks/b.tmx": tmx(outerObj + innerObj + startObj + checkpointObj),
		"tracks/a.tmx": tmx(outerObj + innerObj + startObj + checkpointObj),
	}

	tracks, names, err := LoadAllTracks(fsys, "tracks")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Contains(t, tracks, "a")

	_, _, err = LoadAllTracks(fstest.MapFS{}, "tracks")
	assert.Error(t, err)
}

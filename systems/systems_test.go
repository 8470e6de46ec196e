package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var particleQuery = donburi.NewQuery(filter.Contains(components.Particle))

// newRaceWorld builds a running race on the default oval with the fixed
// checkpoint layout.
func newRaceWorld(t *testing.T) (donburi.World, *donburi.Entry) {
	t.Helper()
	w := donburi.NewWorld()

	track := components.Track.Get(factory.CreateTrack(w, cfg.Track))
	factory.CreateTrackSpace(w, track)
	factory.CreateSession(w, rand.New(rand.NewPCG(1, 1)))
	vehicle := factory.CreateVehicle(w, track)
	factory.PlaceCheckpoints(w, track.Layout)
	factory.MustSession(w).Running = true

	return w, vehicle
}

func TestWhileRacingSkipsWhenStopped(t *testing.T) {
	w, _ := newRaceWorld(t)
	calls := 0
	sys := WhileRacing(func(donburi.World) { calls++ })

	sys(w)
	factory.MustSession(w).Running = false
	sys(w)

	assert.Equal(t, 1, calls)
}

func TestAdvanceClock(t *testing.T) {
	w, _ := newRaceWorld(t)

	AdvanceClock(w, 0.5)
	AdvanceClock(w, 0.25)
	assert.InDelta(t, 0.75, factory.MustSession(w).Elapsed, 1e-9)

	factory.MustSession(w).Running = false
	AdvanceClock(w, 1)
	assert.InDelta(t, 0.75, factory.MustSession(w).Elapsed, 1e-9)
}

func TestUpdateVehicleReadsControl(t *testing.T) {
	w, e := newRaceWorld(t)
	sessionEntry, _ := components.Session.First(w)
	components.Control.SetValue(sessionEntry, components.ControlData{Accelerate: true})

	UpdateVehicle(w)

	v := components.Vehicle.Get(e)
	assert.InDelta(t, cfg.Vehicle.Acceleration, v.Speed, 1e-9)
	assert.Less(t, v.Y, factory.MustTrack(w).StartY, "heading 0 drives up the screen")
}

package factory

import (
	"math/rand/v2"

	"github.com/automoto/driftcircuit/archetypes"
	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/yohamta/donburi"
)

// CreateSession spawns the race state singleton with its control snapshot
// and random source.
func CreateSession(w donburi.World, rng *rand.Rand) *donburi.Entry {
	session := archetypes.Session.Spawn(w)

	components.Session.SetValue(session, components.SessionData{
		Lap:     1,
		MaxLaps: cfg.Race.MaxLaps,
	})
	components.Random.SetValue(session, components.RandomData{Rand: rng})
	components.ScreenFlash.SetValue(session, components.ScreenFlashData{Brightness: 1})

	return session
}

// MustSession returns the race state or panics when the world has none.
func MustSession(w donburi.World) *components.SessionData {
	e, ok := components.Session.First(w)
	if !ok {
		panic("session entity not found")
	}
	return components.Session.Get(e)
}

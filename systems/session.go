package systems

import (
	"github.com/automoto/driftcircuit/components"
	"github.com/yohamta/donburi"
)

// AdvanceClock adds dt seconds to the race clock while a race is running.
func AdvanceClock(w donburi.World, dt float64) {
	e, ok := components.Session.First(w)
	if !ok {
		return
	}
	session := components.Session.Get(e)
	if !session.Running {
		return
	}
	session.Elapsed += dt
}

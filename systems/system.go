package systems

import (
	"github.com/automoto/driftcircuit/components"
	"github.com/yohamta/donburi"
)

// System advances one concern of the simulation by a single tick.
type System func(w donburi.World)

// WhileRacing wraps a system to skip execution when no race is running.
func WhileRacing(system System) System {
	return func(w donburi.World) {
		if !IsRacing(w) {
			return
		}
		system(w)
	}
}

// IsRacing reports whether the race clock is running.
func IsRacing(w donburi.World) bool {
	e, ok := components.Session.First(w)
	if !ok {
		return false
	}
	return components.Session.Get(e).Running
}

func control(w donburi.World) components.ControlData {
	if e, ok := components.Control.First(w); ok {
		return *components.Control.Get(e)
	}
	return components.ControlData{}
}

package systems

import (
	"github.com/automoto/driftcircuit/components"
	"github.com/yohamta/donburi"
)

// ProcessEvents delivers every event queued during the tick to its subscribers
func ProcessEvents(w donburi.World) {
	components.CollisionEvent.ProcessEvents(w)
	components.CheckpointEvent.ProcessEvents(w)
	components.LapEvent.ProcessEvents(w)
	components.RaceFinishedEvent.ProcessEvents(w)
}

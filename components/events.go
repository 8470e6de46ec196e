package components

import "github.com/yohamta/donburi/features/events"

// CollisionEventData is published when the car footprint leaves the track
type CollisionEventData struct {
	Impact float64
	Damage float64
	Health float64
}

var CollisionEvent = events.NewEventType[CollisionEventData]()

// CheckpointEventData is published when a checkpoint is passed
type CheckpointEventData struct {
	Index int
	Name  string
	Lap   int
}

var CheckpointEvent = events.NewEventType[CheckpointEventData]()

// LapEventData is published when every checkpoint of a lap has been passed
type LapEventData struct {
	Lap   int // the lap that was just completed
	Split float64
}

var LapEvent = events.NewEventType[LapEventData]()

// RaceFinishedEventData is published once when the final lap completes
type RaceFinishedEventData struct {
	Outcome    RaceOutcome
	Time       float64
	LapSplits  []float64
	StyleIndex int
}

var RaceFinishedEvent = events.NewEventType[RaceFinishedEventData]()

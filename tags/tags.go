package tags

import "github.com/yohamta/donburi"

var (
	Vehicle    = donburi.NewTag().SetName("Vehicle")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
)

// Resolv tags for broadphase queries
const (
	ResolvVehicle    = "vehicle"
	ResolvCheckpoint = "checkpoint"
)

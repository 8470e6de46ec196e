package components

import "github.com/yohamta/donburi"

type CheckpointData struct {
	Index  int // position in the ring, passage is tracked per lap
	X, Y   float64
	Passed bool
	Name   string
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()

package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// VehicleData is the kinematic state of the player's car. X and Y are the
// center of the footprint in track space.
type VehicleData struct {
	X, Y        float64
	Heading     float64 // degrees, 0 = up the screen, clockwise positive
	Speed       float64 // signed, along the heading
	DriftFactor float64 // [-1, 1], negative slides left
	Drifting    bool
	Handbrake   bool
	Grip        float64
	Health      float64
	DamageFlash int // frames remaining

	// Trail holds recent centers, oldest first
	Trail []dmath.Vec2
}

var Vehicle = donburi.NewComponentType[VehicleData]()

// PushTrail appends a trail sample, evicting the oldest beyond capacity.
func (v *VehicleData) PushTrail(x, y float64, capacity int) {
	v.Trail = append(v.Trail, dmath.Vec2{X: x, Y: y})
	if over := len(v.Trail) - capacity; over > 0 {
		v.Trail = append(v.Trail[:0], v.Trail[over:]...)
	}
}

// Flashing reports whether the damage flash is on for this frame.
func (v *VehicleData) Flashing() bool {
	return v.DamageFlash > 0 && v.DamageFlash%2 == 0
}

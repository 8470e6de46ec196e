package factory

import (
	"github.com/automoto/driftcircuit/archetypes"
	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateVehicle spawns the player's car at the track start pose.
func CreateVehicle(w donburi.World, track *components.TrackData) *donburi.Entry {
	vehicle := archetypes.Vehicle.Spawn(w)

	size := cfg.Collision.SensorSize
	obj := resolv.NewObject(track.StartX-size/2, track.StartY-size/2, size, size, tags.ResolvVehicle)
	obj.Data = vehicle
	components.Object.SetValue(vehicle, components.ObjectData{Object: obj})

	if s := space(w); s != nil {
		s.Add(obj)
	}

	ResetVehicle(vehicle, track, 0)
	return vehicle
}

// ResetVehicle puts the car back on the start pose with full health.
func ResetVehicle(vehicle *donburi.Entry, track *components.TrackData, speed float64) {
	v := components.Vehicle.Get(vehicle)
	*v = components.VehicleData{
		X:       track.StartX,
		Y:       track.StartY,
		Heading: track.StartHeading,
		Speed:   speed,
		Grip:    1,
		Health:  cfg.Vehicle.MaxHealth,
		Trail:   v.Trail[:0],
	}
	SyncVehicleObject(vehicle)
}

// SyncVehicleObject centers the broadphase sensor on the car.
func SyncVehicleObject(vehicle *donburi.Entry) {
	v := components.Vehicle.Get(vehicle)
	obj := components.Object.Get(vehicle)
	if obj.Object == nil {
		return
	}
	obj.X = v.X - obj.W/2
	obj.Y = v.Y - obj.H/2
	obj.Update()
}

// MustVehicle returns the car entry or panics when the world has none.
func MustVehicle(w donburi.World) *donburi.Entry {
	e, ok := tags.Vehicle.First(w)
	if !ok {
		panic("vehicle entity not found")
	}
	return e
}

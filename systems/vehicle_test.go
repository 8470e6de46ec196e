package systems

import (
	"testing"

	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/stretchr/testify/assert"
)

func TestAccelerationTapers(t *testing.T) {
	w, e := newRaceWorld(t)
	v := components.Vehicle.Get(e)
	v.Speed = 5

	stepVehicle(w, v, components.ControlData{Accelerate: true})

	assert.InDelta(t, 5+0.15*(1-0.6*5.0/7.0), v.Speed, 1e-9)
}

func TestFrictionThenBrake(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		want  float64
	}{
		{name: "forward", speed: 2, want: 2 - 0.05*(1+2*0.1) - 0.15*1.5},
		{name: "standstill reverses", speed: 0, want: -0.15 * 0.5},
		{name: "reversing", speed: -1, want: -1 + 0.05*(1+1*0.1) - 0.15*0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, e := newRaceWorld(t)
			v := components.Vehicle.Get(e)
			v.Speed = tt.speed

			stepVehicle(w, v, components.ControlData{Brake: true})

			assert.InDelta(t, tt.want, v.Speed, 1e-9)
		})
	}
}

func TestFrictionStopsWithoutOscillating(t *testing.T) {
	w, e := newRaceWorld(t)
	v := components.Vehicle.Get(e)
	v.Speed = 0.03

	stepVehicle(w, v, components.ControlData{})
	assert.Zero(t, v.Speed)

	stepVehicle(w, v, components.ControlData{})
	assert.Zero(t, v.Speed)
}

func TestSpeedIsClamped(t *testing.T) {
	w, e := newRaceWorld(t)
	v := components.Vehicle.Get(e)

	for i := 0; i < 500; i++ {
		stepVehicle(w, v, components.ControlData{Accelerate: true})
		assert.LessOrEqual(t, v.Speed, cfg.Vehicle.MaxSpeed)
	}
	assert.InDelta(t, cfg.Vehicle.MaxSpeed, v.Speed, 1e-9)

	for i := 0; i < 500; i++ {
		stepVehicle(w, v, components.ControlData{Brake: true})
		assert.GreaterOrEqual(t, v.Speed, -cfg.Vehicle.MaxSpeed/2)
	}
	assert.InDelta(t, -cfg.Vehicle.MaxSpeed/2, v.Speed, 1e-9)
}

func TestSteeringScalesWithSpeed(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		ctrl  components.ControlData
		want  float64
	}{
		{name: "stationary cannot turn", speed: 0, ctrl: components.ControlData{SteerRight: true}, want: 0},
		{name: "half authority", speed: 1, ctrl: components.ControlData{SteerRight: true}, want: 1.5},
		{name: "full authority", speed: 4, ctrl: components.ControlData{SteerRight: true}, want: 3},
		{name: "left wins", speed: 4, ctrl: components.ControlData{SteerLeft: true, SteerRight: true}, want: -3},
		{name: "handbrake sharpens", speed: 4, ctrl: components.ControlData{SteerLeft: true, Handbrake: true}, want: -3 * 1.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, e := newRaceWorld(t)
			v := components.Vehicle.Get(e)
			v.Speed = tt.speed
			v.Handbrake = tt.ctrl.Handbrake

			steer(w, v, tt.ctrl)

			assert.InDelta(t, tt.want, v.Heading, 1e-9)
		})
	}
}

func TestHandbrakeTurnStartsDrift(t *testing.T) {
	w, e := newRaceWorld(t)
	v := components.Vehicle.Get(e)
	v.Speed = 3

	stepVehicle(w, v, components.ControlData{SteerRight: true, Handbrake: true})

	assert.True(t, v.Drifting)
	assert.InDelta(t, cfg.Vehicle.DriftMagnitude, v.DriftFactor, 1e-9)
	assert.True(t, v.Handbrake)
	assert.InDelta(t, cfg.Vehicle.HandbrakeGrip, v.Grip, 1e-9)
}

func TestSlowHandbrakeTurnDoesNotDrift(t *testing.T) {
	w, e := newRaceWorld(t)
	v := components.Vehicle.Get(e)
	v.Speed = 0.5
	v.Handbrake = true

	steer(w, v, components.ControlData{SteerLeft: true, Handbrake: true})

	assert.False(t, v.Drifting)
	assert.Zero(t, v.DriftFactor)
}

func TestDriftDecaysWithoutSteering(t *testing.T) {
	w, e := newRaceWorld(t)
	v := components.Vehicle.Get(e)
	v.DriftFactor = 0.8
	v.Drifting = true

	want := 0.8
	for i := 0; i < 19; i++ {
		stepVehicle(w, v, components.ControlData{})
		want *= 0.9
		assert.InDelta(t, want, v.DriftFactor, 1e-9)
		assert.True(t, v.Drifting)
	}

	stepVehicle(w, v, components.ControlData{})
	assert.Zero(t, v.DriftFactor)
	assert.False(t, v.Drifting)
}

func TestDriftHoldsWhileSteering(t *testing.T) {
	w, e := newRaceWorld(t)
	v := components.Vehicle.Get(e)
	v.DriftFactor = 0.8
	v.Drifting = true

	stepVehicle(w, v, components.ControlData{SteerLeft: true})

	assert.InDelta(t, 0.8, v.DriftFactor, 1e-9)
}

func TestTrailIsBounded(t *testing.T) {
	w, e := newRaceWorld(t)
	v := components.Vehicle.Get(e)
	v.Speed = 3

	for i := 0; i < 40; i++ {
		v.Speed = 3
		stepVehicle(w, v, components.ControlData{})
	}

	assert.Len(t, v.Trail, cfg.Vehicle.MaxTrailLength)
}

func TestDamageFlashCountsDown(t *testing.T) {
	w, e := newRaceWorld(t)
	v := components.Vehicle.Get(e)
	v.DamageFlash = 3

	stepVehicle(w, v, components.ControlData{})
	assert.True(t, v.Flashing())
	stepVehicle(w, v, components.ControlData{})
	assert.False(t, v.Flashing(), "blinks on alternate frames")
	stepVehicle(w, v, components.ControlData{})
	stepVehicle(w, v, components.ControlData{})
	assert.Zero(t, v.DamageFlash)
	assert.False(t, v.Flashing())
}

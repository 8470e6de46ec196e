package systems

import (
	"math"

	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/shared/gamemath"
	"github.com/automoto/driftcircuit/systems/factory"
	"github.com/automoto/driftcircuit/tags"
	"github.com/yohamta/donburi"
)

// UpdateVehicle applies one tick of throttle, braking, steering and drift
// from the control snapshot, then moves the car. The step order matters:
// speed is settled and clamped before the heading offset is applied.
func UpdateVehicle(w donburi.World) {
	ctrl := control(w)
	tags.Vehicle.Each(w, func(e *donburi.Entry) {
		v := components.Vehicle.Get(e)
		stepVehicle(w, v, ctrl)
		factory.SyncVehicleObject(e)
	})
}

func stepVehicle(w donburi.World, v *components.VehicleData, ctrl components.ControlData) {
	vc := cfg.Vehicle
	rng := components.Rand(w)

	v.Handbrake = ctrl.Handbrake
	v.Grip = 1
	if v.Handbrake {
		v.Grip = vc.HandbrakeGrip
	}

	if ctrl.Accelerate {
		v.Speed += vc.Acceleration * (1 - math.Abs(v.Speed)/vc.MaxSpeed*vc.AccelTaper)
		if rng.Float64() < vc.ExhaustChance {
			factory.SpawnExhaust(w, v)
		}
	} else {
		v.Speed = gamemath.ApplyFriction(v.Speed, vc.Friction*(1+math.Abs(v.Speed)*vc.FrictionSpeedScale))
	}

	if ctrl.Brake {
		if v.Speed > 0 {
			v.Speed -= vc.Acceleration * vc.BrakeForwardScale
		} else {
			v.Speed -= vc.Acceleration * vc.BrakeReverseScale
		}
	}

	steer(w, v, ctrl)

	v.Speed = gamemath.Clamp(v.Speed, -vc.MaxSpeed/2, vc.MaxSpeed)
	if math.Abs(v.Speed) < vc.StopThreshold {
		v.Speed = 0
	}

	prevX, prevY := v.X, v.Y
	dx, dy := gamemath.Forward(v.Heading + v.DriftFactor*vc.DriftAngleDegrees)
	v.X += dx * v.Speed
	v.Y += dy * v.Speed

	if v.Speed > vc.TrailMinSpeed {
		v.PushTrail(prevX, prevY, vc.MaxTrailLength)
	}

	if v.DamageFlash > 0 {
		v.DamageFlash--
	}

	if v.Drifting && rng.Float64() < math.Abs(v.DriftFactor)*vc.DriftSmokeChance {
		factory.SpawnDriftSmoke(w, v)
	}
}

// steer turns the car. Left wins when both directions are held. Drift only
// decays while no steering input is given.
func steer(w donburi.World, v *components.VehicleData, ctrl components.ControlData) {
	vc := cfg.Vehicle

	turnFactor := 1.0
	if v.Handbrake {
		turnFactor = vc.HandbrakeTurnMult
	}
	speedFactor := math.Min(1, math.Abs(v.Speed)/vc.FullSteerSpeed)
	turn := vc.TurnSpeed * speedFactor * turnFactor

	var dir float64
	switch {
	case ctrl.SteerLeft:
		dir = -1
	case ctrl.SteerRight:
		dir = 1
	default:
		v.DriftFactor *= vc.DriftDecay
		if math.Abs(v.DriftFactor) < vc.DriftCutoff {
			v.DriftFactor = 0
			v.Drifting = false
		}
		return
	}

	v.Heading += dir * turn

	if !v.Handbrake || math.Abs(v.Speed) <= vc.DriftMinSpeed {
		return
	}
	v.Drifting = true
	v.DriftFactor = dir * vc.DriftMagnitude

	rng := components.Rand(w)
	if rng.Float64() < vc.SkidChance && math.Abs(v.Speed) > vc.SkidMinSpeed {
		factory.SpawnSkidMark(w, v.X, v.Y,
			gamemath.DegToRad(v.Heading),
			cfg.Vehicle.Width*vc.SkidWidthRatio,
			math.Min(1, math.Abs(v.Speed)/vc.MaxSpeed))
	}
}

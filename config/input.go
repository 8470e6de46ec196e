package config

// ActionID represents a logical driving or menu action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionAccelerate
	ActionBrake
	ActionSteerLeft
	ActionSteerRight
	ActionHandbrake
	ActionStartRace
	ActionResetRace
	ActionChangeCar
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:       "none",
	ActionAccelerate: "accelerate",
	ActionBrake:      "brake",
	ActionSteerLeft:  "steer-left",
	ActionSteerRight: "steer-right",
	ActionHandbrake:  "handbrake",
	ActionStartRace:  "start",
	ActionResetRace:  "reset",
	ActionChangeCar:  "change-car",
	ActionMenuBack:   "back",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputConfig holds input tuning that does not depend on the device layer
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}
}

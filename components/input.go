package components

import (
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()

// Pressed reports whether the action is held this frame.
func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

// JustPressed reports whether the action went down this frame.
func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

// ControlData is the boolean snapshot consumed by one simulation tick
type ControlData struct {
	Accelerate bool
	Brake      bool
	SteerLeft  bool
	SteerRight bool
	Handbrake  bool

	// Session commands, edge triggered
	StartRequested     bool
	ResetRequested     bool
	ChangeCarRequested bool
}

var Control = donburi.NewComponentType[ControlData]()

// ControlFromInput builds a tick snapshot from polled action state.
func ControlFromInput(in *InputData) ControlData {
	return ControlData{
		Accelerate:         in.Pressed(cfg.ActionAccelerate),
		Brake:              in.Pressed(cfg.ActionBrake),
		SteerLeft:          in.Pressed(cfg.ActionSteerLeft),
		SteerRight:         in.Pressed(cfg.ActionSteerRight),
		Handbrake:          in.Pressed(cfg.ActionHandbrake),
		StartRequested:     in.JustPressed(cfg.ActionStartRace),
		ResetRequested:     in.JustPressed(cfg.ActionResetRace),
		ChangeCarRequested: in.JustPressed(cfg.ActionChangeCar),
	}
}

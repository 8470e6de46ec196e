// Package input polls the keyboard and gamepads into action state.
package input

import (
	"github.com/automoto/driftcircuit/archetypes"
	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for gamepad IDs to avoid allocations
var (
	gamepadIDs   []ebiten.GamepadID
	connectedIDs []ebiten.GamepadID
)

// Poll swaps the action buffers and reads every bound device. Call it once
// per frame before building a control snapshot.
func Poll(in *components.InputData) {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}

	connectedIDs = inpututil.AppendJustConnectedGamepadIDs(connectedIDs[:0])
	for _, id := range connectedIDs {
		log.Info().
			Int("id", int(id)).
			Str("name", ebiten.GamepadName(id)).
			Bool("standard", ebiten.IsStandardGamepadLayoutAvailable(id)).
			Msg("gamepad connected")
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge the left stick into steering
	left, right := analogSteering(gamepadIDs)
	if left {
		in.Current[cfg.ActionSteerLeft] = true
		gamepadUsed = true
	}
	if right {
		in.Current[cfg.ActionSteerRight] = true
		gamepadUsed = true
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		in.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		in.LastInputMethod = components.InputKeyboard
	}
}

// analogSteering reads the left stick from all gamepads with the configured
// deadzone.
func analogSteering(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}
	return
}

// DebugTogglePressed reports whether the broadphase overlay key went down
// this frame.
func DebugTogglePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

// UpdateInput polls devices into the world's Input singleton, creating it
// on first use.
func UpdateInput(e *ecs.ECS) *components.InputData {
	in := GetOrCreateInput(e.World)
	Poll(in)
	return in
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		// Zero-value InputData is correct (all bools false)
		entry = archetypes.Input.Spawn(w)
	}
	return components.Input.Get(entry)
}

package input

import (
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding represents the keys and buttons mapped to one action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its devices
var Bindings map[cfg.ActionID]Binding

func init() {
	Bindings = map[cfg.ActionID]Binding{
		cfg.ActionAccelerate: {
			Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			// A / Cross and right trigger
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
				ebiten.StandardGamepadButtonFrontBottomRight,
			},
		},
		cfg.ActionBrake: {
			Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			// X / Square and left trigger
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightLeft,
				ebiten.StandardGamepadButtonFrontBottomLeft,
			},
		},
		cfg.ActionSteerLeft: {
			Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			// D-pad Left (analog stick handled separately)
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftLeft,
			},
		},
		cfg.ActionSteerRight: {
			Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			// D-pad Right (analog stick handled separately)
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftRight,
			},
		},
		cfg.ActionHandbrake: {
			Keys: []ebiten.Key{ebiten.KeySpace},
			// B / Circle
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightRight,
			},
		},
		cfg.ActionStartRace: {
			Keys: []ebiten.Key{ebiten.KeyEnter},
			// Start / Options
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterRight,
			},
		},
		cfg.ActionResetRace: {
			Keys: []ebiten.Key{ebiten.KeyR},
			// Back / Share
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterLeft,
			},
		},
		cfg.ActionChangeCar: {
			Keys: []ebiten.Key{ebiten.KeyC},
			// Y / Triangle
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightTop,
			},
		},
		cfg.ActionMenuBack: {
			Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
		},
	}
}

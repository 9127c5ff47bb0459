package scenes

import (
	"github.com/automoto/tileplat/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a logical runner action bound to keys and gamepad buttons.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDash
	ActionRestart
	ActionPause
	ActionDebug
	ActionQuit
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings [ActionCount]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

var Input = InputConfig{
	AnalogDeadzone: 0.25,
	Bindings: [ActionCount]InputBinding{
		ActionMoveLeft: {
			Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		},
		ActionMoveRight: {
			Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		},
		ActionJump: {
			Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW, ebiten.KeyX},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		ActionDash: {
			Keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyZ},
			// X / Square button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
		},
		ActionRestart: {
			Keys:                   []ebiten.Key{ebiten.KeyR},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
		},
		ActionPause: {
			Keys:                   []ebiten.Key{ebiten.KeyP},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterCenter},
		},
		ActionDebug: {
			Keys: []ebiten.Key{ebiten.KeyF1},
		},
		ActionQuit: {
			Keys: []ebiten.Key{ebiten.KeyEscape},
			// Start / Options button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
		},
		ActionMenuUp: {
			Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
		},
		ActionMenuDown: {
			Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		},
		ActionMenuSelect: {
			Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
	},
}

var gamepadIDs []ebiten.GamepadID

// pressed reports whether any binding of a is held.
func pressed(a Action) bool {
	b := Input.Bindings[a]
	for _, k := range b.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

// justPressed reports whether any binding of a went down this tick.
func justPressed(a Action) bool {
	b := Input.Bindings[a]
	for _, k := range b.Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

// stickX is the left stick's horizontal axis past the deadzone, or 0.
func stickX() float64 {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if v > Input.AnalogDeadzone || v < -Input.AnalogDeadzone {
			return v
		}
	}
	return 0
}

// ReadInput samples the bindings into one tick of simulation input.
func ReadInput() simulation.Input {
	x := stickX()
	return simulation.Input{
		Left:  pressed(ActionMoveLeft) || x < 0,
		Right: pressed(ActionMoveRight) || x > 0,
		Jump:  justPressed(ActionJump),
		Dash:  justPressed(ActionDash),
	}
}

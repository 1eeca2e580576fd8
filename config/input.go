package config

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionCollect
	ActionPause
	ActionToggleInstructions
	ActionConfirm
	ActionMenuUp
	ActionMenuDown
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:               "none",
	ActionMoveLeft:           "move_left",
	ActionMoveRight:          "move_right",
	ActionJump:               "jump",
	ActionCollect:            "collect",
	ActionPause:              "pause",
	ActionToggleInstructions: "toggle_instructions",
	ActionConfirm:            "confirm",
	ActionMenuUp:             "menu_up",
	ActionMenuDown:           "menu_down",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputBinding lists the keys and standard-layout gamepad buttons that trigger one action.
type InputBinding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings, indexed by ActionID.
type InputConfig struct {
	Bindings [ActionCount]InputBinding

	// Left stick deflection (0.0 to 1.0) below which the stick is ignored
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

// Shares reports whether the two bindings have a key or gamepad button in common.
func (b InputBinding) Shares(other InputBinding) bool {
	for _, k := range b.Keys {
		if slices.Contains(other.Keys, k) {
			return true
		}
	}
	for _, btn := range b.Buttons {
		if slices.Contains(other.Buttons, btn) {
			return true
		}
	}
	return false
}

func bind(keys []ebiten.Key, buttons ...ebiten.StandardGamepadButton) InputBinding {
	return InputBinding{Keys: keys, Buttons: buttons}
}

func keys(k ...ebiten.Key) []ebiten.Key { return k }

func init() {
	Input.AnalogDeadzone = 0.25

	b := &Input.Bindings
	b[ActionMoveLeft] = bind(keys(ebiten.KeyLeft), ebiten.StandardGamepadButtonLeftLeft)
	b[ActionMoveRight] = bind(keys(ebiten.KeyRight), ebiten.StandardGamepadButtonLeftRight)
	// A / Cross
	b[ActionJump] = bind(keys(ebiten.KeyUp, ebiten.KeySpace), ebiten.StandardGamepadButtonRightBottom)
	// X / Square
	b[ActionCollect] = bind(keys(ebiten.KeyA), ebiten.StandardGamepadButtonRightLeft)
	// Start / Options
	b[ActionPause] = bind(keys(ebiten.KeyEscape, ebiten.KeyX), ebiten.StandardGamepadButtonCenterRight)
	// Back / Share
	b[ActionToggleInstructions] = bind(keys(ebiten.KeyI), ebiten.StandardGamepadButtonCenterLeft)
	// A / Cross, shared with jump; dismissing a notice latches jump until released
	b[ActionConfirm] = bind(keys(ebiten.KeyEnter), ebiten.StandardGamepadButtonRightBottom)
	b[ActionMenuUp] = bind(keys(ebiten.KeyUp), ebiten.StandardGamepadButtonLeftTop)
	b[ActionMenuDown] = bind(keys(ebiten.KeyDown), ebiten.StandardGamepadButtonLeftBottom)
}

package systems

import (
	"strings"

	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reused across frames to avoid allocating
var gamepadIDs []ebiten.GamepadID

var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// Gamepad names containing any of these are shown PlayStation prompts.
var playStationNames = []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"}

// stickActions maps left stick directions onto actions.
var stickActions = [...]struct {
	axis   ebiten.StandardGamepadAxis
	sign   float64
	action cfg.ActionID
}{
	{ebiten.StandardGamepadAxisLeftStickHorizontal, -1, cfg.ActionMoveLeft},
	{ebiten.StandardGamepadAxisLeftStickHorizontal, 1, cfg.ActionMoveRight},
	{ebiten.StandardGamepadAxisLeftStickVertical, -1, cfg.ActionMenuUp},
	{ebiten.StandardGamepadAxisLeftStickVertical, 1, cfg.ActionMenuDown},
}

// UpdateInput polls keyboard and gamepads into the Input singleton.
// Must run before every other system in the frame.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	keyboardUsed := pollKeyboard(input)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	activePad, gamepadUsed := pollGamepads(input, gamepadIDs)

	releaseLatched(input)

	// A gamepad wins when both were used this frame
	switch {
	case gamepadUsed:
		input.LastInputMethod = getControllerType(activePad)
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

func pollKeyboard(input *components.InputData) (used bool) {
	for id, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[id] = true
				used = true
			}
		}
	}
	return used
}

func pollGamepads(input *components.InputData, pads []ebiten.GamepadID) (active ebiten.GamepadID, used bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, pad := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(pad) {
			continue
		}

		for id, binding := range cfg.Input.Bindings {
			for _, btn := range binding.Buttons {
				if ebiten.IsStandardGamepadButtonPressed(pad, btn) {
					input.Current[id] = true
					active, used = pad, true
				}
			}
		}

		for _, s := range stickActions {
			if ebiten.StandardGamepadAxisValue(pad, s.axis)*s.sign > deadzone {
				input.Current[s.action] = true
				active, used = pad, true
			}
		}
	}

	return active, used
}

// getControllerType returns the cached prompt style for a gamepad.
func getControllerType(pad ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[pad]; ok {
		return method
	}

	method := components.InputXbox
	name := strings.ToLower(ebiten.GamepadName(pad))
	for _, n := range playStationNames {
		if strings.Contains(name, n) {
			method = components.InputPlayStation
			break
		}
	}

	controllerTypeCache[pad] = method
	return method
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// releaseLatched unlatches every action that is no longer held. The previous
// frame is cleared too so letting go does not report JustReleased.
func releaseLatched(input *components.InputData) {
	for id := range input.Latched {
		if input.Latched[id] && !input.Current[id] {
			input.Latched[id] = false
			input.Previous[id] = false
		}
	}
}

// consumeConfirm latches every held action bound to one of confirm's keys or
// buttons. Call it when a confirm press has been handled by a notice or menu.
func consumeConfirm(input *components.InputData) {
	confirm := cfg.Input.Bindings[cfg.ActionConfirm]
	for id, binding := range cfg.Input.Bindings {
		if cfg.ActionID(id) == cfg.ActionConfirm || !input.Current[id] {
			continue
		}
		if binding.Shares(confirm) {
			input.Latched[id] = true
		}
	}
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
// A latched action reads as released.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id] && !input.Latched[id]
	prev := input.Previous[id] && !input.Latched[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

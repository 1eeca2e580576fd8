package systems

import (
	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle and pause menu selection.
// This system should run AFTER UpdateInput but BEFORE the gameplay systems.
func UpdatePause(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	// Toggle pause on ESC or X
	if GetAction(input, cfg.ActionPause).JustPressed {
		if session.State == components.SessionPaused {
			session.State = components.SessionRunning
		} else {
			session.State = components.SessionPaused
			pause.SelectedOption = components.MenuResume
		}
		pause.HasRequest = false
		return
	}

	// Only process menu input while paused
	if session.State != components.SessionPaused {
		pause.HasRequest = false
		return
	}

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.MenuExit) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
	}

	if GetAction(input, cfg.ActionConfirm).JustPressed {
		consumeConfirm(input)
		RequestPauseOption(ecs, pause.SelectedOption)
	}

	if !pause.HasRequest {
		return
	}
	option := pause.Requested
	pause.HasRequest = false

	switch option {
	case components.MenuResume:
		session.State = components.SessionRunning
	case components.MenuRestart:
		RestartSession(ecs)
	case components.MenuExit:
		pause.ExitRequested = true
	}
}

// RequestPauseOption queues a pause menu choice; UpdatePause applies it.
// Menu widgets call this from their click handlers.
func RequestPauseOption(ecs *ecs.ECS, option components.PauseMenuOption) {
	pause := GetOrCreatePause(ecs)
	pause.SelectedOption = option
	pause.Requested = option
	pause.HasRequest = true
}

// IsPaused reports whether the session is paused.
func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreateSession(ecs).State == components.SessionPaused
}

// ExitRequested reports whether Exit was chosen from the pause menu.
func ExitRequested(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).ExitRequested
}

// DrawPauseHint renders the navigation hint under the pause menu.
func DrawPauseHint(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(ecs) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	input := getOrCreateInput(ecs)
	hint := getPauseHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or while
// a blocking notice is showing.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(func(e *ecs.ECS) {
		if NoticeActive(e) {
			return
		}
		system(e)
	})
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

// GetOrCreateSession returns the singleton Session component, creating if needed.
func GetOrCreateSession(ecs *ecs.ECS) *components.SessionData {
	if _, ok := components.Session.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Session, components.Progress))
		components.Session.SetValue(ent, components.SessionData{
			State: components.SessionRunning,
		})
	}

	ent, _ := components.Session.First(ecs.World)
	return components.Session.Get(ent)
}

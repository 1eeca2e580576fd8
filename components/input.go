package components

import (
	cfg "github.com/automoto/canteenrun/config"
	"github.com/yohamta/donburi"
)

// InputMethod selects which button prompts the HUD and menus show.
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

func (m InputMethod) String() string {
	switch m {
	case InputKeyboard:
		return "keyboard"
	case InputXbox:
		return "xbox"
	case InputPlayStation:
		return "playstation"
	}
	return "unknown"
}

// ActionState is one action as seen by gameplay code for the current frame.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData is the polled state of every action for this frame and the last.
//
// Latched actions read as released until the player lets go of them. A
// confirm press that dismisses a notice latches the actions sharing its
// button, so the same press cannot also start a jump.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Latched  [cfg.ActionCount]bool

	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()

package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuRestart
	MenuExit
)

// PauseData stores the pause menu selection and a click waiting to be applied.
type PauseData struct {
	SelectedOption PauseMenuOption
	Requested      PauseMenuOption
	HasRequest     bool
	ExitRequested  bool
}

var Pause = donburi.NewComponentType[PauseData]()

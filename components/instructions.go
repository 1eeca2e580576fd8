package components

import "github.com/yohamta/donburi"

type InstructionsData struct {
	Visible bool
}

var Instructions = donburi.NewComponentType[InstructionsData]()

package components

import "github.com/yohamta/donburi"

// RockData is a solid obstacle; the player is pushed out of it horizontally.
// Index is its position in the level's authored list.
type RockData struct {
	Index int
}

var Rock = donburi.NewComponentType[RockData]()

// LogData is a standable platform; the player lands on its top edge.
type LogData struct {
	Index int
}

var Log = donburi.NewComponentType[LogData]()

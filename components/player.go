package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed   float64 // Horizontal pixels per frame
	Jumping bool    // Set on jump, cleared on ground or log landing
	SpawnX  float64 // Spawn of the active level
	SpawnY  float64
}

var Player = donburi.NewComponentType[PlayerData]()

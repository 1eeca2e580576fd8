package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Rock    = donburi.NewTag().SetName("Rock")
	Log     = donburi.NewTag().SetName("Log")
	Canteen = donburi.NewTag().SetName("Canteen")
	Water   = donburi.NewTag().SetName("Water")

	// LevelObject marks entities owned by the active level; LoadLevel removes them all.
	LevelObject = donburi.NewTag().SetName("LevelObject")
)

// Resolv tags for collision queries
const (
	ResolvPlayer  = "player"
	ResolvRock    = "rock"
	ResolvLog     = "log"
	ResolvCanteen = "canteen"
	ResolvWater   = "water"
)

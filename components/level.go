package components

import (
	"github.com/automoto/canteenrun/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Levels       []leveldata.Level
}

// HasNext reports whether a level follows the current one.
func (l *LevelData) HasNext() bool {
	return l.LevelIndex+1 < len(l.Levels)
}

var Level = donburi.NewComponentType[LevelData]()

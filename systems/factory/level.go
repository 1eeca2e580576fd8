package factory

import (
	"github.com/automoto/canteenrun/archetypes"
	"github.com/automoto/canteenrun/components"
	"github.com/automoto/canteenrun/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level list entity. No level objects are spawned;
// systems.LoadLevel does that.
func CreateLevel(ecs *ecs.ECS, levels []leveldata.Level, levelIndex int) *donburi.Entry {
	if len(levels) == 0 {
		panic("No levels to play")
	}

	level := archetypes.Level.Spawn(ecs)

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	levelData := &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: &levels[levelIndex],
	}

	components.Level.Set(level, levelData)

	return level
}

package systems

import (
	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazard restarts the current level when the player's bottom edge
// drops below the water line.
func UpdateHazard(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)

	waterY := cfg.WaterY()
	if waterEntry, ok := tags.Water.First(ecs.World); ok {
		waterY = components.Water.Get(waterEntry).Y
	}

	if obj.Y+obj.H <= waterY {
		return
	}

	session := GetOrCreateSession(ecs)
	session.Deaths++

	level := GetLevel(ecs)
	if level != nil {
		LoadLevel(ecs, level.LevelIndex)
	}
	ShowNotice(ecs, components.NoticeDeath, cfg.Notice.DeathText)
}

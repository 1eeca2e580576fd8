package systems

import (
	"fmt"

	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelProgress advances to the next level once every canteen of the
// current one is collected. After the last level the whole session resets.
func UpdateLevelProgress(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	if session.CanteensTotal == 0 || session.CanteensCollected < session.CanteensTotal {
		return
	}

	level := GetLevel(ecs)
	if level == nil {
		return
	}

	session.LevelsCompleted++

	if level.HasNext() {
		completed := level.LevelIndex + 1
		LoadLevel(ecs, level.LevelIndex+1)
		ShowNotice(ecs, components.NoticeLevelComplete, fmt.Sprintf(cfg.Notice.LevelCompleteFormat, completed))
		return
	}

	ResetSession(ecs)
	ShowNotice(ecs, components.NoticeSessionComplete, cfg.Notice.SessionCompleteText)
}

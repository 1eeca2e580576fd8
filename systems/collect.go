package systems

import (
	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/shared/gamemath"
	"github.com/automoto/canteenrun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollect picks up every uncollected canteen touching the player while
// the collect action is held. Canteens are tested in authored order against
// their exact hitbox, so fractional positions near a grid cell edge still count.
func UpdateCollect(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionCollect).Pressed {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerRect := components.Object.Get(playerEntry).Rect()

	session := GetOrCreateSession(ecs)
	for _, entry := range Canteens(ecs) {
		canteen := components.Canteen.Get(entry)
		if canteen.Collected {
			continue
		}
		hitbox := gamemath.CenteredRect(canteen.X, canteen.Y, cfg.Canteen.HitboxSize)
		if !gamemath.Overlaps(playerRect, hitbox) {
			continue
		}
		canteen.Collected = true
		session.CanteensCollected++
	}
}

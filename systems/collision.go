package systems

import (
	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/shared/gamemath"
	"github.com/automoto/canteenrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLogLanding lands a falling player on log tops. Logs are visited in
// authored order and a later log may override an earlier landing.
func UpdateLogLanding(ecs *ecs.ECS) {
	logs := Logs(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		for _, logEntry := range logs {
			log := components.Object.Get(logEntry).Rect()
			if !gamemath.OverlapsX(obj.Rect(), log) {
				continue
			}
			if !gamemath.LandsOnTop(obj.Y+obj.H, physics.SpeedY, log.Y, cfg.Physics.LandingTolerance) {
				continue
			}
			obj.Y = log.Y - obj.H
			physics.SpeedY = 0
			player.Jumping = false
		}

		obj.Update()
	})
}

// UpdateRockCollisions pushes the player horizontally out of every rock it
// overlaps, in authored order. Rocks never push vertically.
func UpdateRockCollisions(ecs *ecs.ECS) {
	rocks := Rocks(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)

		for _, rockEntry := range rocks {
			rock := components.Object.Get(rockEntry).Rect()
			if gamemath.Overlaps(obj.Rect(), rock) {
				obj.X = gamemath.PushOutX(obj.Rect(), rock)
			}
		}

		obj.Update()
	})
}

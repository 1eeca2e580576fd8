package systems

import (
	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies horizontal movement and jump input.
// Left and right may both be held; they cancel out.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		obj := components.Object.Get(playerEntry)

		if GetAction(input, cfg.ActionMoveRight).Pressed {
			obj.X += player.Speed
		}
		if GetAction(input, cfg.ActionMoveLeft).Pressed {
			obj.X -= player.Speed
		}

		// Holding jump re-jumps on landing
		if GetAction(input, cfg.ActionJump).Pressed && !player.Jumping {
			physics.SpeedY = -cfg.Player.JumpSpeed
			player.Jumping = true
		}

		obj.Update()
	})
}

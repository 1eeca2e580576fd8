package systems

import (
	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/shared/gamemath"
	"github.com/automoto/canteenrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates vertical motion and clamps the player to the ground
// line. The clamp applies everywhere on the level.
func UpdatePhysics(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		obj.Y, physics.SpeedY = gamemath.Integrate(obj.Y, physics.SpeedY, physics.Gravity)

		if y, grounded := gamemath.ClampToGround(obj.Y, obj.H, cfg.Physics.GroundY); grounded {
			obj.Y = y
			physics.SpeedY = 0
			player.Jumping = false
		}

		obj.Update()
	})
}

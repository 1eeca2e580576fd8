package factory

import (
	"github.com/automoto/canteenrun/archetypes"
	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/shared/gamemath"
	"github.com/automoto/canteenrun/shared/leveldata"
	"github.com/automoto/canteenrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCanteen creates a collectible. Its collision object is the pickup
// hitbox centred on the spawn point, not the drawn sprite.
func CreateCanteen(ecs *ecs.ECS, index int, spawn leveldata.CanteenSpawn) *donburi.Entry {
	canteen := archetypes.Canteen.Spawn(ecs)

	hit := gamemath.CenteredRect(spawn.X, spawn.Y, cfg.Canteen.HitboxSize)
	obj := resolv.NewObject(hit.X, hit.Y, hit.W, hit.H, tags.ResolvCanteen)
	obj.SetShape(resolv.NewRectangle(0, 0, hit.W, hit.H))
	obj.Data = canteen

	drawSize := spawn.Size
	if drawSize <= 0 {
		drawSize = cfg.Canteen.DrawSize
	}

	components.Object.SetValue(canteen, components.ObjectData{Object: obj})
	components.Canteen.SetValue(canteen, components.CanteenData{
		Index:    index,
		X:        spawn.X,
		Y:        spawn.Y,
		DrawSize: drawSize,
	})

	addToSpace(ecs, obj)

	return canteen
}

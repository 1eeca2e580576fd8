package factory

import (
	"github.com/automoto/canteenrun/archetypes"
	"github.com/automoto/canteenrun/components"
	"github.com/automoto/canteenrun/shared/leveldata"
	"github.com/automoto/canteenrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRock creates a solid obstacle. index is its position in the level's rock list.
func CreateRock(ecs *ecs.ECS, index int, r leveldata.Rect) *donburi.Entry {
	rock := archetypes.Rock.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvRock)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = rock // Link for O(1) lookup

	components.Object.SetValue(rock, components.ObjectData{Object: obj})
	components.Rock.SetValue(rock, components.RockData{Index: index})

	addToSpace(ecs, obj)

	return rock
}

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

// CreateLog creates a platform the player can stand on. Only its top edge collides.
func CreateLog(ecs *ecs.ECS, index int, r leveldata.Rect) *donburi.Entry {
	log := archetypes.Log.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvLog)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = log

	components.Object.SetValue(log, components.ObjectData{Object: obj})
	components.Log.SetValue(log, components.LogData{Index: index})

	addToSpace(ecs, obj)

	return log
}

package factory

import (
	"github.com/automoto/canteenrun/archetypes"
	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWater creates the hazard band below the ground line, spanning width pixels.
func CreateWater(ecs *ecs.ECS, width float64) *donburi.Entry {
	water := archetypes.Water.Spawn(ecs)

	y := cfg.WaterY()
	obj := resolv.NewObject(0, y, width, cfg.Water.Height, tags.ResolvWater)
	obj.SetShape(resolv.NewRectangle(0, 0, width, cfg.Water.Height))
	obj.Data = water

	components.Object.SetValue(water, components.ObjectData{Object: obj})
	components.Water.SetValue(water, components.WaterData{
		Y:      y,
		Height: cfg.Water.Height,
	})

	addToSpace(ecs, obj)

	return water
}

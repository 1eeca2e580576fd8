package archetypes

import (
	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
	)
	Rock = newArchetype(
		tags.Rock,
		tags.LevelObject,
		components.Rock,
		components.Object,
	)
	Log = newArchetype(
		tags.Log,
		tags.LevelObject,
		components.Log,
		components.Object,
	)
	Canteen = newArchetype(
		tags.Canteen,
		tags.LevelObject,
		components.Canteen,
		components.Object,
	)
	Water = newArchetype(
		tags.Water,
		components.Water,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Session = newArchetype(
		components.Session,
		components.Progress,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

package systems

import "github.com/yohamta/donburi/ecs"

// Gameplay is the per-frame simulation in execution order. Each system runs
// only while the session is running and no notice is showing.
var Gameplay = []ecs.System{
	UpdatePlayer,
	UpdatePhysics,
	UpdateLogLanding,
	UpdateRockCollisions,
	UpdateHazard,
	UpdateCollect,
	UpdateLevelProgress,
	UpdateDistance,
	UpdateTimer,
}

// Step runs one gameplay frame without polling devices. The scene registers
// the same systems with the ECS; tests drive Step directly.
func Step(e *ecs.ECS) {
	for _, system := range Gameplay {
		WithGameplayChecks(system)(e)
	}
}

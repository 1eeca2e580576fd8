package config

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in ascending order.
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
	LayerOverlay
)

// Default is the layer entities are created on.
const Default = LayerWorld

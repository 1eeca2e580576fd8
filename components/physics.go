package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedY  float64 // Positive is downward
	Gravity float64
}

var Physics = donburi.NewComponentType[PhysicsData]()

package components

import "github.com/yohamta/donburi"

// WaterData is the hazard band. Falling below Y is fatal.
type WaterData struct {
	Y      float64
	Height float64
}

var Water = donburi.NewComponentType[WaterData]()

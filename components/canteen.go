package components

import "github.com/yohamta/donburi"

type CanteenData struct {
	Index     int
	X, Y      float64 // Centre
	DrawSize  float64
	Collected bool
}

var Canteen = donburi.NewComponentType[CanteenData]()

package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ProgressData eases the drawn progress bar toward the real fill.
type ProgressData struct {
	Shown  float32
	Target float32
	Tween  *gween.Tween
}

var Progress = donburi.NewComponentType[ProgressData]()

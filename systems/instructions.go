package systems

import (
	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInstructions toggles the help panel. It runs in every session state.
func UpdateInstructions(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionToggleInstructions).JustPressed {
		panel := getOrCreateInstructions(ecs)
		panel.Visible = !panel.Visible
	}
}

// InstructionsVisible reports whether the help panel is open.
func InstructionsVisible(ecs *ecs.ECS) bool {
	entry, ok := components.Instructions.First(ecs.World)
	return ok && components.Instructions.Get(entry).Visible
}

func DrawInstructions(ecs *ecs.ECS, screen *ebiten.Image) {
	if !InstructionsVisible(ecs) {
		return
	}

	face := fonts.Regular.Get()
	lineHeight := cfg.HUD.LineHeight
	padding := cfg.HUD.Margin
	boxW := 360.0
	boxH := padding*2 + lineHeight*float64(len(cfg.Instructions.Lines))
	boxX := float64(screen.Bounds().Dx()) - boxW - cfg.HUD.Margin
	boxY := cfg.HUD.Margin + lineHeight*2

	vector.FillRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), cfg.Instructions.BoxColor, false)

	for i, line := range cfg.Instructions.Lines {
		y := boxY + padding + lineHeight*float64(i+1) - 6
		text.Draw(screen, line, face, int(boxX+padding), int(y), cfg.Instructions.TextColor)
	}
}

func getOrCreateInstructions(ecs *ecs.ECS) *components.InstructionsData {
	entry, ok := components.Instructions.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Instructions))
	}
	return components.Instructions.Get(entry)
}

package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/fonts"
	"github.com/automoto/canteenrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvRock) {
			c = color.RGBA{100, 100, 100, 255}
		} else if obj.HasTags(tags.ResolvLog) {
			c = color.RGBA{160, 100, 40, 255}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvCanteen) {
			c = color.RGBA{255, 255, 0, 255}
		} else if obj.HasTags(tags.ResolvWater) {
			c = cfg.HUD.WaterColor
		}

		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	// Ground line
	groundY := float32(cfg.Physics.GroundY)
	vector.StrokeLine(screen, 0, groundY, float32(screen.Bounds().Dx()), groundY, 1, color.RGBA{255, 0, 0, 255}, false)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	session := GetOrCreateSession(ecs)

	info := fmt.Sprintf("x=%.1f y=%.1f vy=%.2f jumping=%t state=%s dist=%.2f deaths=%d cleared=%d input=%s",
		obj.X, obj.Y, physics.SpeedY, player.Jumping, session.State, session.Distance, session.Deaths, session.LevelsCompleted,
		getOrCreateInput(ecs).LastInputMethod)
	text.Draw(screen, info, fonts.Small.Get(), 4, screen.Bounds().Dy()-28, cfg.Yellow)
}

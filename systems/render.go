package systems

import (
	"image/color"

	"github.com/automoto/canteenrun/assets"
	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// RenderCommand is one rectangle of the world picture. Sprite names an entry
// in the sprite table; Color fills the rectangle when the sprite is missing or empty.
type RenderCommand struct {
	Sprite     string
	X, Y, W, H float64
	Color      color.RGBA
}

// BuildRenderCommands lists the world in back-to-front order: background,
// rocks, logs, uncollected canteens, player.
func BuildRenderCommands(ecs *ecs.ECS) []RenderCommand {
	var cmds []RenderCommand

	level := CurrentLevel(ecs)
	background := ""
	if level != nil {
		background = level.Background
	}
	cmds = append(cmds, RenderCommand{
		Sprite: background,
		W:      float64(cfg.C.Width),
		H:      float64(cfg.C.Height),
		Color:  cfg.HUD.SkyColor,
	})

	for _, entry := range Rocks(ecs) {
		o := components.Object.Get(entry)
		cmds = append(cmds, RenderCommand{Sprite: assets.SpriteRock, X: o.X, Y: o.Y, W: o.W, H: o.H, Color: cfg.HUD.FallbackColor})
	}
	for _, entry := range Logs(ecs) {
		o := components.Object.Get(entry)
		cmds = append(cmds, RenderCommand{Sprite: assets.SpriteLog, X: o.X, Y: o.Y, W: o.W, H: o.H, Color: cfg.HUD.FallbackColor})
	}

	for _, entry := range Canteens(ecs) {
		c := components.Canteen.Get(entry)
		if c.Collected {
			continue
		}
		cmds = append(cmds, RenderCommand{
			Sprite: assets.SpriteCanteen,
			X:      c.X - c.DrawSize/2,
			Y:      c.Y - c.DrawSize/2,
			W:      c.DrawSize,
			H:      c.DrawSize,
			Color:  cfg.HUD.FallbackColor,
		})
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		o := components.Object.Get(playerEntry)
		cmds = append(cmds, RenderCommand{Sprite: assets.SpritePlayer, X: o.X, Y: o.Y, W: o.W, H: o.H, Color: cfg.HUD.FallbackColor})
	}

	return cmds
}

// NewDrawWorld returns a renderer that draws the world from a sprite table
// resolved once up front.
func NewDrawWorld(sprites assets.Sprites) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		for _, cmd := range BuildRenderCommands(ecs) {
			drawCommand(screen, sprites, cmd)
		}
	}
}

func drawCommand(screen *ebiten.Image, sprites assets.Sprites, cmd RenderCommand) {
	if cmd.W <= 0 || cmd.H <= 0 {
		return
	}

	img := sprites.Get(cmd.Sprite)
	if cmd.Sprite == "" || img == nil {
		vector.FillRect(screen, float32(cmd.X), float32(cmd.Y), float32(cmd.W), float32(cmd.H), cmd.Color, false)
		return
	}

	bounds := img.Bounds()
	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(cmd.W/float64(bounds.Dx()), cmd.H/float64(bounds.Dy()))
	drawOp.GeoM.Translate(cmd.X, cmd.Y)
	screen.DrawImage(img, drawOp)
}

package systems

import (
	"image/color"

	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowNotice raises a blocking notice. Gameplay systems are skipped until it is dismissed.
func ShowNotice(ecs *ecs.ECS, kind components.NoticeKind, message string) {
	notice := getOrCreateNotice(ecs)
	notice.Active = true
	notice.Kind = kind
	notice.Text = message
	notice.FramesLeft = cfg.Notice.DurationFrames
	notice.Alpha = 0
	notice.Fade = gween.New(0, 1, cfg.Notice.FadeSeconds, ease.OutQuad)
}

// ClearNotice dismisses the current notice, if any.
func ClearNotice(ecs *ecs.ECS) {
	notice := getOrCreateNotice(ecs)
	*notice = components.NoticeData{}
}

// NoticeActive reports whether a blocking notice is showing.
func NoticeActive(ecs *ecs.ECS) bool {
	entry, ok := components.Notice.First(ecs.World)
	if !ok {
		return false
	}
	return components.Notice.Get(entry).Active
}

// CurrentNotice returns the notice singleton.
func CurrentNotice(ecs *ecs.ECS) *components.NoticeData {
	return getOrCreateNotice(ecs)
}

// UpdateNotice fades the notice in and dismisses it on confirm or timeout.
// Wrap with WithPauseCheck so the countdown stops while paused.
func UpdateNotice(ecs *ecs.ECS) {
	notice := getOrCreateNotice(ecs)
	if !notice.Active {
		return
	}

	if notice.Fade != nil {
		alpha, done := notice.Fade.Update(1 / float32(cfg.C.TPS))
		notice.Alpha = alpha
		if done {
			notice.Fade = nil
		}
	}

	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionConfirm).JustPressed {
		consumeConfirm(input)
		ClearNotice(ecs)
		return
	}

	if notice.FramesLeft > 0 {
		notice.FramesLeft--
		if notice.FramesLeft == 0 {
			ClearNotice(ecs)
		}
	}
}

// DrawNotice renders the active notice as a banner across the middle of the screen.
func DrawNotice(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Notice.First(ecs.World)
	if !ok {
		return
	}
	notice := components.Notice.Get(entry)
	if !notice.Active {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	boxHeight := cfg.Notice.BoxHeight
	boxY := (height - boxHeight) / 2

	vector.FillRect(
		screen,
		0, float32(boxY),
		float32(width), float32(boxHeight),
		scaleAlpha(cfg.Notice.BoxColor, notice.Alpha),
		false,
	)

	titleFont := fonts.Bold.Get()
	bounds := text.BoundString(titleFont, notice.Text) //nolint:staticcheck // TODO: migrate to text/v2
	x := int((width - float64(bounds.Dx())) / 2)
	y := int(boxY + boxHeight/2)
	text.Draw(screen, notice.Text, titleFont, x, y, scaleAlpha(cfg.Notice.TextColor, notice.Alpha))

	hintFont := fonts.Small.Get()
	hint := cfg.Notice.DismissHint
	hintBounds := text.BoundString(hintFont, hint) //nolint:staticcheck // TODO: migrate to text/v2
	hintX := int((width - float64(hintBounds.Dx())) / 2)
	text.Draw(screen, hint, hintFont, hintX, y+28, scaleAlpha(cfg.Notice.HintColor, notice.Alpha))
}

// scaleAlpha multiplies every channel of a premultiplied color by a.
func scaleAlpha(c color.RGBA, a float32) color.RGBA {
	if a >= 1 {
		return c
	}
	if a <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

// getOrCreateNotice returns the singleton Notice component
func getOrCreateNotice(ecs *ecs.ECS) *components.NoticeData {
	entry, ok := components.Notice.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Notice))
	}
	return components.Notice.Get(entry)
}

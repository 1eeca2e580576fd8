package systems

import (
	"fmt"

	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the timer, canteen counter and level label down the
// top-left corner with the distance bar beneath them.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(ecs)
	face := fonts.Regular.Get()

	margin := cfg.HUD.Margin
	lineHeight := cfg.HUD.LineHeight

	lines := []string{TimerText(session), ScoreText(session), LevelText(ecs)}
	for i, line := range lines {
		y := int(margin + lineHeight*float64(i+1) - 6)
		// Shadow first so the label stays readable over bright backgrounds
		text.Draw(screen, line, face, int(margin)+1, y+1, cfg.HUD.TextShadow)
		text.Draw(screen, line, face, int(margin), y, cfg.HUD.TextColor)
	}

	barY := margin + lineHeight*float64(len(lines)) + 6
	vector.FillRect(screen,
		float32(margin), float32(barY),
		float32(cfg.HUD.BarWidth), float32(cfg.HUD.BarHeight),
		cfg.HUD.BarBgColor, false)

	shown := getOrCreateProgress(ecs).Shown
	vector.FillRect(screen,
		float32(margin), float32(barY),
		float32(cfg.HUD.BarWidth)*shown, float32(cfg.HUD.BarHeight),
		cfg.HUD.BarFgColor, false)
}

// LevelText is the 1-based level label.
func LevelText(ecs *ecs.ECS) string {
	level := GetLevel(ecs)
	if level == nil {
		return "Level 1"
	}
	return fmt.Sprintf("Level %d", level.LevelIndex+1)
}

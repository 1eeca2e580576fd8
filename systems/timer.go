package systems

import (
	"fmt"

	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimer counts frames of active play.
func UpdateTimer(ecs *ecs.ECS) {
	GetOrCreateSession(ecs).ElapsedFrames++
}

// ElapsedSeconds converts the session's frame count to whole seconds.
func ElapsedSeconds(session *components.SessionData) int {
	return session.ElapsedFrames / cfg.C.TPS
}

// FormatElapsed renders seconds as M:SS.
func FormatElapsed(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// TimerText is the HUD timer label.
func TimerText(session *components.SessionData) string {
	return "Time: " + FormatElapsed(ElapsedSeconds(session))
}

// ScoreText is the HUD canteen counter.
func ScoreText(session *components.SessionData) string {
	return fmt.Sprintf("Canteens: %d / %d", session.CanteensCollected, session.CanteensTotal)
}

package systems

import (
	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Fill changes larger than this are eased instead of applied directly.
const progressEaseThreshold = 0.05

// UpdateDistance grows the travelled distance toward the goal.
func UpdateDistance(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	session.Distance = gamemath.Approach(session.Distance, cfg.Progress.DistancePerFrame, cfg.Progress.DistanceGoal)
}

// ProgressFill returns distance / goal in [0, 1].
func ProgressFill(session *components.SessionData) float64 {
	return gamemath.Ratio(session.Distance, cfg.Progress.DistanceGoal)
}

// UpdateProgressBar moves the drawn bar fill toward the real fill.
// Small steps snap; jumps such as a session reset are tweened.
func UpdateProgressBar(ecs *ecs.ECS) {
	progress := getOrCreateProgress(ecs)
	target := float32(ProgressFill(GetOrCreateSession(ecs)))

	if target != progress.Target {
		diff := target - progress.Shown
		if diff < 0 {
			diff = -diff
		}
		if diff > progressEaseThreshold {
			progress.Tween = gween.New(progress.Shown, target, cfg.Progress.EaseSeconds, ease.OutCubic)
		} else if progress.Tween == nil {
			progress.Shown = target
		}
		progress.Target = target
	}

	if progress.Tween != nil {
		shown, done := progress.Tween.Update(1 / float32(cfg.C.TPS))
		progress.Shown = shown
		if done {
			progress.Tween = nil
			progress.Shown = progress.Target
		}
	}
}

func resetProgress(ecs *ecs.ECS) {
	progress := getOrCreateProgress(ecs)
	progress.Target = 0
	progress.Tween = gween.New(progress.Shown, 0, cfg.Progress.EaseSeconds, ease.OutCubic)
}

func getOrCreateProgress(ecs *ecs.ECS) *components.ProgressData {
	GetOrCreateSession(ecs)
	entry, _ := components.Session.First(ecs.World)
	return components.Progress.Get(entry)
}

package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/canteenrun/assets"
	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/systems"
	factory2 "github.com/automoto/canteenrun/systems/factory"
	"github.com/automoto/canteenrun/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	pauseUI      *ui.PauseUI
	watcher      *assets.LevelWatcher
	once         sync.Once
}

// NewPlatformerScene creates a new platformer scene starting at cfg.Debug.StartLevel
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.IsPaused(ps.ecs) {
		ps.pauseUI.Update()
	}

	// Pause menu Exit returns to the title menu
	if systems.ExitRequested(ps.ecs) {
		ps.close()
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
		return
	}

	ps.reloadChangedLevels()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if systems.IsPaused(ps.ecs) {
		ps.pauseUI.Draw(screen, systems.GetOrCreatePause(ps.ecs).SelectedOption)
	}
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateInstructions)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateNotice))

	// Gameplay runs only while the session is running and no notice is up
	ecs.AddSystem(systems.Step)

	ecs.AddSystem(systems.UpdateProgressBar)

	// Add renderers
	ecs.AddRenderer(cfg.LayerWorld, systems.NewDrawWorld(assets.LoadSprites()))
	ecs.AddRenderer(cfg.LayerWorld, systems.DrawDebug)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawInstructions)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawNotice)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawPauseHint)

	ps.ecs = ecs

	levels := assets.LoadLevels(cfg.Debug.LevelsDir)

	// Create the level entity first so the space can use the level's dimensions.
	level := factory2.CreateLevel(ps.ecs, levels, cfg.Debug.StartLevel)
	levelData := components.Level.Get(level)

	width := max(levelData.CurrentLevel.Width, cfg.C.Width)
	height := max(levelData.CurrentLevel.Height, cfg.C.Height)
	cell := cfg.Physics.SpaceCellSize
	factory2.CreateSpace(ps.ecs, width, height, cell, cell)

	factory2.CreateSession(ps.ecs)
	factory2.CreateWater(ps.ecs, float64(width))
	factory2.CreatePlayer(ps.ecs, cfg.Player.SpawnX, cfg.Player.SpawnY)

	systems.LoadLevel(ps.ecs, levelData.LevelIndex)

	ps.pauseUI = ui.NewPauseUI(func(option components.PauseMenuOption) {
		systems.RequestPauseOption(ps.ecs, option)
	})

	if cfg.Debug.LevelsDir != "" {
		watcher, err := assets.NewLevelWatcher(cfg.Debug.LevelsDir)
		if err != nil {
			log.Printf("Warning: level hot reload disabled: %v", err)
		} else {
			ps.watcher = watcher
		}
	}
}

// reloadChangedLevels swaps in edited levels from disk and restarts the current one.
func (ps *PlatformerScene) reloadChangedLevels() {
	if ps.watcher == nil {
		return
	}

	changed, err := ps.watcher.Poll()
	if err != nil {
		log.Printf("Warning: level watcher: %v", err)
	}
	if !changed {
		return
	}

	levels, err := assets.LoadLevelsFromDir(cfg.Debug.LevelsDir)
	if err != nil {
		log.Printf("Warning: keeping current levels, reload failed: %v", err)
		return
	}

	levelData := systems.GetLevel(ps.ecs)
	levelData.Levels = levels
	systems.LoadLevel(ps.ecs, levelData.LevelIndex)
	log.Printf("Reloaded %d levels from %s", len(levels), cfg.Debug.LevelsDir)
}

func (ps *PlatformerScene) close() {
	if ps.watcher != nil {
		if err := ps.watcher.Close(); err != nil {
			log.Printf("Warning: closing level watcher: %v", err)
		}
		ps.watcher = nil
	}
}

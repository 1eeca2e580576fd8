package config

import "image/color"

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // Added to vertical speed every frame, uncapped
	GroundY float64 `yaml:"ground_y"`

	// Log landing
	LandingTolerance float64 `yaml:"landing_tolerance"` // Pixels below a log top that still count as landing

	// Broadphase
	SpaceCellSize int `yaml:"space_cell_size"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed     float64 `yaml:"speed"`
	JumpSpeed float64 `yaml:"jump_speed"` // Applied as -JumpSpeed when a jump starts

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Fallback spawn when a level has none
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// WaterConfig contains the water hazard band configuration
type WaterConfig struct {
	OffsetBelowGround float64 `yaml:"offset_below_ground"`
	Height            float64 `yaml:"height"`
}

// CanteenConfig contains collectible configuration
type CanteenConfig struct {
	HitboxSize float64 `yaml:"hitbox_size"`
	DrawSize   float64 `yaml:"draw_size"` // Used when the level object has no size
}

// ProgressConfig contains the distance/progress bar configuration
type ProgressConfig struct {
	DistanceGoal     float64 `yaml:"distance_goal"`
	DistancePerFrame float64 `yaml:"distance_per_frame"`
	EaseSeconds      float32 `yaml:"ease_seconds"` // Bar fill tween length
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin        float64
	LineHeight    float64
	BarWidth      float64
	BarHeight     float64
	BarBgColor    color.RGBA
	BarFgColor    color.RGBA
	TextColor     color.RGBA
	TextShadow    color.RGBA
	WaterColor    color.RGBA // Debug outline of the water hazard
	SkyColor      color.RGBA
	FallbackColor color.RGBA // Sprite placeholder when an image is missing
}

// NoticeConfig contains blocking notice banner configuration
type NoticeConfig struct {
	DurationFrames int     // Auto dismiss after this many frames (0 = wait for confirm)
	FadeSeconds    float32 // Banner fade-in length
	BoxColor       color.RGBA
	TextColor      color.RGBA
	HintColor      color.RGBA
	BoxHeight      float64

	DeathText           string
	LevelCompleteFormat string // Formatted with the 1-based level number
	SessionCompleteText string
	DismissHint         string
}

// InstructionsConfig contains the help panel configuration
type InstructionsConfig struct {
	BoxColor  color.RGBA
	TextColor color.RGBA
	Lines     []string
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	ButtonIdleColor   color.RGBA
	ButtonHoverColor  color.RGBA
	ButtonPressColor  color.RGBA
	TextColorNormal   color.RGBA
	TextColorDisabled color.RGBA
	ButtonWidth       int
	ButtonHeight      int
	ButtonSpacing     int
	FontSize          float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Water WaterConfig
var Canteen CanteenConfig
var Progress ProgressConfig
var HUD HUDConfig
var Notice NoticeConfig
var Instructions InstructionsConfig
var Pause PauseConfig
var Menu MenuConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool   // Skip menu and go directly to game
	ShowColliders bool   // Outline resolv objects
	StartLevel    int    // 0-based level index to start from
	LevelsDir     string // Load levels from disk and hot reload them (empty = embedded)
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	SteelBlue    = color.RGBA{R: 70, G: 130, B: 180, A: 255} // #4682b4
	SkyBlue      = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	Grey         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  1024,
		Height: 576,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:          0.6,
		GroundY:          440,
		LandingTolerance: 10,
		SpaceCellSize:    32,
	}

	Player = PlayerConfig{
		Speed:     4,
		JumpSpeed: 10,
		Width:     50,
		Height:    60,
		SpawnX:    80,
		SpawnY:    380,
	}

	Water = WaterConfig{
		OffsetBelowGround: 20,
		Height:            100,
	}

	Canteen = CanteenConfig{
		HitboxSize: 20,
		DrawSize:   32,
	}

	Progress = ProgressConfig{
		DistanceGoal:     37,
		DistancePerFrame: 0.03,
		EaseSeconds:      0.25,
	}

	HUD = HUDConfig{
		Margin:        16,
		LineHeight:    24,
		BarWidth:      200,
		BarHeight:     14,
		BarBgColor:    color.RGBA{R: 40, G: 40, B: 40, A: 200},
		BarFgColor:    BrightGreen,
		TextColor:     White,
		TextShadow:    color.RGBA{R: 0, G: 0, B: 0, A: 160},
		WaterColor:    SteelBlue,
		SkyColor:      SkyBlue,
		FallbackColor: Magenta,
	}

	Notice = NoticeConfig{
		DurationFrames: 150, // 2.5 seconds at 60fps
		FadeSeconds:    0.3,
		BoxColor:       color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:      White,
		HintColor:      color.RGBA{R: 200, G: 200, B: 200, A: 255},
		BoxHeight:      90,

		DeathText:           "You fell into dirty water! Restarting level...",
		LevelCompleteFormat: "Level %d complete!",
		SessionCompleteText: "Congratulations! You've completed all levels!",
		DismissHint:         "Press ENTER to continue",
	}

	Instructions = InstructionsConfig{
		BoxColor:  color.RGBA{R: 0, G: 0, B: 0, A: 190},
		TextColor: White,
		Lines: []string{
			"Left / Right: move",
			"Up or Space: jump",
			"Hold A: collect canteens",
			"Esc or X: pause menu",
			"I: toggle these instructions",
			"Collect every canteen to finish the level.",
			"Don't fall into the dirty water!",
		},
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		ButtonIdleColor:   DarkBlue,
		ButtonHoverColor:  LightBlue,
		ButtonPressColor:  BrightOrange,
		TextColorNormal:   White,
		TextColorDisabled: Grey,
		ButtonWidth:       220,
		ButtonHeight:      44,
		ButtonSpacing:     14,
		FontSize:          20,
		MenuOptions:       []string{"Resume", "Restart", "Exit"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "CANTEEN RUN",
		TitleY:            180,
		MenuStartY:        280,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Start", "Exit"},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}

// WaterY returns the top of the water band.
func WaterY() float64 {
	return Physics.GroundY + Water.OffsetBelowGround
}

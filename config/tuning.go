package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of configuration that can be overridden from a YAML file.
// Keys missing from the file keep their current values.
type Tuning struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Water    WaterConfig    `yaml:"water"`
	Canteen  CanteenConfig  `yaml:"canteen"`
	Progress ProgressConfig `yaml:"progress"`
}

// CurrentTuning snapshots the live tuning values.
func CurrentTuning() Tuning {
	return Tuning{
		Physics:  Physics,
		Player:   Player,
		Water:    Water,
		Canteen:  Canteen,
		Progress: Progress,
	}
}

// ParseTuning overlays YAML data on the current tuning values and validates the result.
func ParseTuning(data []byte) (Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", t.Physics.Gravity))
	}
	if t.Physics.SpaceCellSize <= 0 {
		errs = append(errs, fmt.Errorf("physics.space_cell_size must be positive, got %d", t.Physics.SpaceCellSize))
	}
	if t.Player.Width <= 0 || t.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", t.Player.Width, t.Player.Height))
	}
	if t.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player.speed must not be negative, got %v", t.Player.Speed))
	}
	if t.Player.JumpSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.jump_speed must be positive, got %v", t.Player.JumpSpeed))
	}
	if t.Water.Height <= 0 {
		errs = append(errs, fmt.Errorf("water.height must be positive, got %v", t.Water.Height))
	}
	if t.Canteen.HitboxSize <= 0 {
		errs = append(errs, fmt.Errorf("canteen.hitbox_size must be positive, got %v", t.Canteen.HitboxSize))
	}
	if t.Progress.DistanceGoal <= 0 {
		errs = append(errs, fmt.Errorf("progress.distance_goal must be positive, got %v", t.Progress.DistanceGoal))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tuning: %w", errors.Join(errs...))
	}
	return nil
}

// Apply copies the tuning values into the global configuration.
func (t Tuning) Apply() {
	Physics = t.Physics
	Player = t.Player
	Water = t.Water
	Canteen = t.Canteen
	Progress = t.Progress
}

// LoadTuning reads a YAML tuning file and applies it.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	t.Apply()
	return nil
}

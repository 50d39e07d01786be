// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Field      TetrisField      `yaml:"field"`
	Gravity    TetrisGravity    `yaml:"gravity"`
	Scoring    TetrisScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisField defines the playfield size. Width includes the two border
// columns; the sentinel floor row is added below Height.
type TetrisField struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisGravity defines how fast pieces fall.
type TetrisGravity struct {
	FallIntervalMs    int `yaml:"fall_interval_ms"`     // Gravity step at difficulty 0
	MinFallIntervalMs int `yaml:"min_fall_interval_ms"` // Gravity step at difficulty 1
	ClearFlashMs      int `yaml:"clear_flash_ms"`       // How long full rows flash before collapsing
}

// TetrisScoring defines point values.
type TetrisScoring struct {
	LockPoints     int `yaml:"lock_points"`      // Awarded for every locked piece
	LineBasePoints int `yaml:"line_base_points"` // Clearing n rows awards (1<<n) * base
	SoftDropPoints int `yaml:"soft_drop_points"` // Awarded per row moved down by the player
}

// Validate reports configuration values the game cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Field.Width < 6 {
		errs = append(errs, fmt.Errorf("field.width %d is below 6", c.Field.Width))
	}
	if c.Field.Height < 4 {
		errs = append(errs, fmt.Errorf("field.height %d is below 4", c.Field.Height))
	}
	if c.Gravity.FallIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("gravity.fall_interval_ms must be positive"))
	}
	if c.Gravity.MinFallIntervalMs <= 0 || c.Gravity.MinFallIntervalMs > c.Gravity.FallIntervalMs {
		errs = append(errs, fmt.Errorf("gravity.min_fall_interval_ms must be in (0, fall_interval_ms]"))
	}
	return errors.Join(errs...)
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Gameplay   SnakeGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGameplay defines Snake rules.
type SnakeGameplay struct {
	StartLength         int `yaml:"start_length"`
	MinMoveEveryTicks   int `yaml:"min_move_every_ticks"`   // Fastest move interval difficulty can reach
	LevelClearMs        int `yaml:"level_clear_ms"`         // Level-cleared banner duration
	EndlessFoodPerLevel int `yaml:"endless_food_per_level"` // Food before endless mode rotates the map
}

// Validate reports configuration values the game cannot run with.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Gameplay.StartLength < 1 {
		errs = append(errs, fmt.Errorf("gameplay.start_length must be at least 1"))
	}
	if c.Gameplay.MinMoveEveryTicks < 1 {
		errs = append(errs, fmt.Errorf("gameplay.min_move_every_ticks must be at least 1"))
	}
	if c.Gameplay.EndlessFoodPerLevel < 1 {
		errs = append(errs, fmt.Errorf("gameplay.endless_food_per_level must be at least 1"))
	}
	return errors.Join(errs...)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies a difficulty config based on a preset.
// The empty preset leaves the config untouched.
func ApplyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}

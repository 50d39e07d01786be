package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Field: TetrisField{
			Width:  12,
			Height: 18,
		},
		Gravity: TetrisGravity{
			FallIntervalMs:    1000,
			MinFallIntervalMs: 100,
			ClearFlashMs:      400,
		},
		Scoring: TetrisScoring{
			LockPoints:     25,
			LineBasePoints: 100,
			SoftDropPoints: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10000,
			},
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Gameplay: SnakeGameplay{
			StartLength:         3,
			MinMoveEveryTicks:   2,
			LevelClearMs:        1500,
			EndlessFoodPerLevel: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}

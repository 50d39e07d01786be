package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LoadTetris loads Tetris configuration.
// Search order: customPath -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	return load("tetris", customPath, defaultTetrisYAML, DefaultTetrisConfig)
}

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.arcade/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake", customPath, defaultSnakeYAML, DefaultSnakeConfig)
}

// load resolves a game config. Files are decoded over the hard-coded defaults
// so a partial YAML only overrides the keys it names. Only an explicit
// customPath can fail; broken files on the search path are skipped.
func load[T validator](gameID, customPath string, embedded []byte, defaults func() T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg, err := decodeFile(customPath, defaults)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		if cfg, err := decodeFile(path, defaults); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || cfg.Validate() != nil {
		return defaults(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

func decodeFile[T any](path string, defaults func() T) (T, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gravity.FallIntervalMs = cfg.Gravity.FallIntervalMs * 3 / 2
	case DifficultyHard:
		cfg.Gravity.FallIntervalMs = max(cfg.Gravity.MinFallIntervalMs, cfg.Gravity.FallIntervalMs/2)
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)
}

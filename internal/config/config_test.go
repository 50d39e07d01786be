package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var tetris TetrisConfig
	if err := yaml.Unmarshal(GetDefaultYAML("tetris"), &tetris); err != nil {
		t.Fatalf("embedded tetris.yaml does not parse: %v", err)
	}
	if tetris != DefaultTetrisConfig() {
		t.Errorf("embedded tetris.yaml = %+v, expected %+v", tetris, DefaultTetrisConfig())
	}

	var snake SnakeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("snake"), &snake); err != nil {
		t.Fatalf("embedded snake.yaml does not parse: %v", err)
	}
	if snake != DefaultSnakeConfig() {
		t.Errorf("embedded snake.yaml = %+v, expected %+v", snake, DefaultSnakeConfig())
	}

	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no embedded default")
	}
}

func TestLoadTetrisCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("field:\n  width: 14\nscoring:\n  lock_points: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.Field.Width != 14 {
		t.Errorf("Field.Width = %d, expected 14", cfg.Field.Width)
	}
	if cfg.Scoring.LockPoints != 10 {
		t.Errorf("LockPoints = %d, expected 10", cfg.Scoring.LockPoints)
	}
	// Keys absent from the file keep their defaults
	if cfg.Field.Height != 18 {
		t.Errorf("Field.Height = %d, expected default 18", cfg.Field.Height)
	}
	if cfg.Gravity.FallIntervalMs != 1000 {
		t.Errorf("FallIntervalMs = %d, expected default 1000", cfg.Gravity.FallIntervalMs)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTetris(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("field: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(broken); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("field:\n  width: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTetris(invalid); err == nil {
		t.Error("too narrow field should fail validation")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultTetrisConfig().Validate(); err != nil {
		t.Errorf("default tetris config invalid: %v", err)
	}
	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Errorf("default snake config invalid: %v", err)
	}

	cfg := DefaultTetrisConfig()
	cfg.Gravity.MinFallIntervalMs = cfg.Gravity.FallIntervalMs + 1
	if err := cfg.Validate(); err == nil {
		t.Error("min fall interval above base should fail")
	}

	snake := DefaultSnakeConfig()
	snake.Gameplay.StartLength = 0
	if err := snake.Validate(); err == nil {
		t.Error("zero start length should fail")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Gravity.FallIntervalMs != 500 {
		t.Errorf("hard preset fall interval = %d, expected 500", cfg.Gravity.FallIntervalMs)
	}

	cfg = DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, "")
	if cfg != DefaultTetrisConfig() {
		t.Error("empty preset should not change the config")
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); got < tc.expected-1e-9 || got > tc.expected+1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	dm.SetEnabled(false)
	if got := dm.Level(100, 0); got != 0.2 {
		t.Errorf("disabled Level = %v, expected initial 0.2", got)
	}
}

func TestDifficultyInterval(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 1000},
	})

	if got := dm.Interval(1000, 100, 0, 0); got != 1000 {
		t.Errorf("Interval at start = %d, expected 1000", got)
	}
	if got := dm.Interval(1000, 100, 0, 500); got != 550 {
		t.Errorf("Interval halfway = %d, expected 550", got)
	}
	if got := dm.Interval(1000, 100, 0, 5000); got != 100 {
		t.Errorf("Interval at max = %d, expected 100", got)
	}
	// fastest above slowest collapses to a constant
	if got := dm.Interval(10, 20, 0, 1000); got != 10 {
		t.Errorf("Interval with inverted bounds = %d, expected 10", got)
	}
}

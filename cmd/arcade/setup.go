package main

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/block-arcade/internal/config"
	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/games/snake"
	"github.com/vovakirdan/block-arcade/internal/games/tetris"
)

// runtimeConfig builds the runtime config from the global flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// configureGame hands the --config and --difficulty flags to the game
// package before the game is created. A config file that fails to load is
// reported and the game falls back to its defaults.
func configureGame(gameID, path string, preset config.DifficultyPreset) {
	var err error
	switch gameID {
	case "tetris":
		_, err = config.LoadTetris(path)
		tetris.SetConfigPath(path)
		tetris.SetDifficultyPreset(string(preset))
	case "snake", "snake_endless":
		_, err = config.LoadSnake(path)
		snake.SetConfigPath(path)
		snake.SetDifficultyPreset(string(preset))
	}
	if err != nil {
		logger.Warn("using default config", "game", gameID, "error", err)
	}
}

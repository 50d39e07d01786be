package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-arcade/internal/config"
	"github.com/vovakirdan/block-arcade/internal/games/snake"
	"github.com/vovakirdan/block-arcade/internal/platform/tui"
	"github.com/vovakirdan/block-arcade/internal/platform/window"
	"github.com/vovakirdan/block-arcade/internal/registry"
	"github.com/vovakirdan/block-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (Tetris):
  Left/Right - Move
  Down       - Soft drop
  Z          - Rotate
  P          - Pause
  R          - Restart (after game over)
  Esc/Q      - Quit (closes the window with --window)

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play tetris
  arcade play tetris --window
  arcade play snake --difficulty hard
  arcade play tetris --config ./my-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	configureGame(gameID, flagConfig, preset)

	cfg := runtimeConfig()

	// The terminal gets the mode and level selector; a window starts the
	// campaign from the first level.
	if gameID == "snake" && !flagWindow {
		selection, selErr := tui.RunSnakeModeSelector(cfg)
		if selErr != nil {
			return selErr
		}
		if selection == nil {
			return nil
		}
		gameID = selection.GameID()
		snake.SetStartLevel(selection.Level)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if flagWindow {
		if err := window.Run(game, cfg, window.Options{TPS: flagFPS}); err != nil {
			return fmt.Errorf("running %s in a window: %w", gameID, err)
		}
		return nil
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("scores disabled", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

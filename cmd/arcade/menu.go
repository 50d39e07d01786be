package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-arcade/internal/config"
	"github.com/vovakirdan/block-arcade/internal/games/snake"
	"github.com/vovakirdan/block-arcade/internal/platform/tui"
	"github.com/vovakirdan/block-arcade/internal/registry"
	"github.com/vovakirdan/block-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.
Scores are kept for the session and shown on the scoreboard (Tab).

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
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

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}
		configureGame(gameID, "", preset)

		if gameID == "snake" {
			selection, selErr := tui.RunSnakeModeSelector(cfg)
			if selErr != nil {
				logger.Error("snake selector failed", "error", selErr)
				continue
			}
			if selection == nil {
				continue
			}
			gameID = selection.GameID()
			snake.SetStartLevel(selection.Level)
		}

		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("creating game", "game", gameID, "error", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			logger.Error("running game", "game", gameID, "error", err)
		}
	}
}

// Package tui runs games in the terminal with Bubble Tea: the fixed-rate
// tick loop, key mapping, screen rendering and the menus around a game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/block-arcade/internal/core"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickInterval is the time between steps at rate ticks per second. A
// non-positive rate falls back to the default tick rate.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next TickMsg.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

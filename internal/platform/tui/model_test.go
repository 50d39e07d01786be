package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/storage"
)

// recordingGame records the input of every step.
type recordingGame struct {
	inputs   []core.InputFrame
	resets   int
	score    int
	gameOver bool
}

func (g *recordingGame) ID() string {
	return "recording"
}

func (g *recordingGame) Title() string {
	return "Recording"
}

func (g *recordingGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.gameOver = false
}

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.State()}
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "recording")
}

func (g *recordingGame) State() core.GameState {
	return core.GameState{Score: g.score, Level: 3, GameOver: g.gameOver}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestKeyPressIsOneFrame(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	m = update(t, m, runeKey('z'))
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if len(g.inputs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionRotate) {
		t.Error("first tick should see rotate")
	}
	if g.inputs[1].Has(core.ActionRotate) {
		t.Error("second tick should not see rotate")
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", runeKey('q')},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &recordingGame{}
			m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

			next, cmd := m.Update(tt.msg)
			if cmd == nil {
				t.Fatal("quit should return a command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("expected tea.QuitMsg")
			}
			if next.(Model).View() != "" {
				t.Error("view should be empty after quit")
			}
		})
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})

	if g.inputs[0].Has(core.ActionRestart) {
		t.Error("restart should be dropped while the game runs")
	}
}

func TestGameOverSavesScoreOnce(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	g := &recordingGame{score: 42, gameOver: true}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	scores, err := store.TopScores("recording", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 42 || scores[0].Level != 3 {
		t.Errorf("scores = %+v", scores)
	}

	// Restart after game over resets the game
	resets := g.resets
	m = update(t, m, runeKey('r'))
	_ = update(t, m, TickMsg{})
	if g.resets != resets+1 {
		t.Errorf("expected a reset, got %d", g.resets-resets)
	}
}

func TestResizeResetsRunningGame(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if g.resets != 0 {
		t.Error("same size should not reset")
	}
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resize should reset once, got %d", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/games/snake"
)

// SnakeMode represents the selected game mode.
type SnakeMode int

const (
	SnakeModeCampaign SnakeMode = iota
	SnakeModeEndless
)

// SnakeSelection holds the user's selection from the Snake menu.
type SnakeSelection struct {
	Mode  SnakeMode
	Level int // 0 = start from beginning, 1-10 = specific level
}

// GameID returns the registry ID for the selected mode.
func (s SnakeSelection) GameID() string {
	if s.Mode == SnakeModeEndless {
		return "snake_endless"
	}
	return "snake"
}

var snakeModes = []string{
	"Campaign",
	"Endless Mode",
	"Select Level...",
}

// SnakeModeModel lets users choose game mode and starting level for Snake.
type SnakeModeModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     *SnakeSelection
	quitting      bool
	back          bool
}

// NewSnakeModeModel creates a new Snake mode selection model.
func NewSnakeModeModel(width, height int) SnakeModeModel {
	return SnakeModeModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m SnakeModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SnakeModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(m.keyMapper.MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey moves the active cursor; the level list is a second page of the
// same model.
func (m SnakeModeModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	cursor, limit := &m.cursor, len(snakeModes)
	if m.inLevelSelect {
		cursor, limit = &m.levelCursor, snake.LevelCount()
	}

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		*cursor = max(0, *cursor-1)
	case MenuActionDown:
		*cursor = min(limit-1, *cursor+1)
	case MenuActionBack:
		if m.inLevelSelect {
			m.inLevelSelect = false
			return m, nil
		}
		m.back = true
		return m, tea.Quit
	case MenuActionSelect:
		return m.choose()
	}

	return m, nil
}

func (m SnakeModeModel) choose() (tea.Model, tea.Cmd) {
	switch {
	case m.inLevelSelect:
		m.selection = &SnakeSelection{Mode: SnakeModeCampaign, Level: m.levelCursor + 1}
	case m.cursor == 0:
		m.selection = &SnakeSelection{Mode: SnakeModeCampaign}
	case m.cursor == 1:
		m.selection = &SnakeSelection{Mode: SnakeModeEndless}
	default:
		m.inLevelSelect = true
		m.levelCursor = 0
		return m, nil
	}
	return m, tea.Quit
}

// View renders the mode/level selection.
func (m SnakeModeModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	var lines []string
	cursor := m.cursor
	if m.inLevelSelect {
		b.WriteString(centerText(menuTitleStyle.Render("SELECT LEVEL"), m.width))
		for i, level := range snake.Levels {
			lines = append(lines, fmt.Sprintf("%2d. %-14s food %2d", i+1, level.Name, level.TargetFood))
		}
		cursor = m.levelCursor
	} else {
		b.WriteString(centerText(menuTitleStyle.Render("S N A K E"), m.width))
		lines = snakeModes
	}
	b.WriteString("\n\n")

	for i, line := range lines {
		if i == cursor {
			line = menuSelectedStyle.Render("> " + line + " ")
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("enter select • esc back • q quit"), m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SnakeModeModel) Selected() *SnakeSelection {
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SnakeModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SnakeModeModel) WantsBack() bool {
	return m.back
}

// RunSnakeModeSelector runs the Snake mode selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunSnakeModeSelector(cfg core.RuntimeConfig) (*SnakeSelection, error) {
	p := tea.NewProgram(
		NewSnakeModeModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SnakeModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}

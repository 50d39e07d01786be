package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/block-arcade/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 1, '#', core.ColorRed)
	s.SetColored(4, 1, '#', core.ColorRed)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "ab    " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "   ## " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != colorStyles[core.ColorDefault].Render("x") {
		t.Errorf("unknown color should render unstyled, got %q", got)
	}
}

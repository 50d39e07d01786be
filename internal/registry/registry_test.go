package registry

import (
	"testing"

	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/render"
)

type stubGame struct{ title string }

func (g *stubGame) ID() string {
	return "stub"
}

func (g *stubGame) Title() string {
	return g.title
}

func (g *stubGame) Reset(core.RuntimeConfig) {}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (g *stubGame) Render(*core.Screen) {}

func (g *stubGame) State() core.GameState {
	return core.GameState{}
}

type stubWindowGame struct{ stubGame }

func (g *stubWindowGame) WindowSize() (int, int, string) {
	return 10, 10, "stub"
}

func (g *stubWindowGame) RenderQuads(*render.Batch) {}

func (g *stubWindowGame) HUD() []string {
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_stub_a", func() Game { return &stubGame{title: "Stub A"} })
	Register("test_stub_b", func() Game { return &stubWindowGame{stubGame{title: "Stub B"}} })

	if !Exists("test_stub_a") {
		t.Fatal("registered game should exist")
	}
	if Exists("test_missing") {
		t.Error("unregistered game should not exist")
	}

	g, err := Create("test_stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub A" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Stub A")
	}

	if _, err := Create("test_missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestListReportsWindowed(t *testing.T) {
	Register("test_list_plain", func() Game { return &stubGame{title: "Plain"} })
	Register("test_list_window", func() Game { return &stubWindowGame{stubGame{title: "Window"}} })

	var plain, window *GameInfo
	games := List()
	for i := range games {
		switch games[i].ID {
		case "test_list_plain":
			plain = &games[i]
		case "test_list_window":
			window = &games[i]
		}
		if i > 0 && games[i-1].ID > games[i].ID {
			t.Errorf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}

	if plain == nil || window == nil {
		t.Fatal("List() missing registered games")
	}
	if plain.Windowed {
		t.Error("plain game should not be windowed")
	}
	if !window.Windowed {
		t.Error("quad renderer should be windowed")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", func() Game { return &stubGame{} })
}

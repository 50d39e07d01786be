// Package window runs a game in a desktop window with ebiten.
//
// The game draws itself into a render.Batch each frame; the runner converts
// the batch into ebiten vertices and draws it with one triangle call against
// a static index buffer.
package window

import (
	"errors"

	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/input"
	"github.com/vovakirdan/block-arcade/internal/registry"
)

// ErrNotWindowed is returned for games that cannot draw quads.
var ErrNotWindowed = errors.New("window: game has no quad renderer")

// Options configures the window. Zero fields fall back to the game's
// own window size and title and to the config tick rate.
type Options struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

// resolve fills zero options from the game and the runtime config.
func (o Options) resolve(qr registry.QuadRenderer, cfg core.RuntimeConfig) Options {
	w, h, title := qr.WindowSize()
	if o.Width <= 0 {
		o.Width = w
	}
	if o.Height <= 0 {
		o.Height = h
	}
	if o.Title == "" {
		o.Title = title
	}
	if o.TPS <= 0 {
		o.TPS = cfg.TickRate
	}
	if o.TPS <= 0 {
		o.TPS = 60
	}
	return o
}

// gridW and gridH stand in for the terminal size a game would otherwise
// lay itself out in. A window has no character grid, so they are large
// enough for any map to fit.
const (
	gridW = 256
	gridH = 128
)

// runtimeConfig replaces the screen size a windowed game sees. The caller's
// size usually comes from the terminal the command was started in and says
// nothing about the window.
func runtimeConfig(cfg core.RuntimeConfig, tps int) core.RuntimeConfig {
	cfg.ScreenW = gridW
	cfg.ScreenH = gridH
	cfg.TickRate = tps
	return cfg
}

// key is a keyboard key in the runner's binding table. It is the integer
// value of an ebiten.Key, kept ebiten-free so the table can be tested
// without a display.
type key int

// bindings maps keys to game actions. Movement auto-repeats, rotate is a
// held level the game debounces, pause and restart fire once per press.
func bindings(left, right, down, up, rotate, pause, restart key) []input.Binding[key] {
	return []input.Binding[key]{
		{Keys: []key{left}, Action: core.ActionLeft, Mode: input.ModeRepeat},
		{Keys: []key{right}, Action: core.ActionRight, Mode: input.ModeRepeat},
		{Keys: []key{down}, Action: core.ActionDown, Mode: input.ModeRepeat},
		{Keys: []key{up}, Action: core.ActionUp, Mode: input.ModeRepeat},
		{Keys: []key{rotate}, Action: core.ActionRotate, Mode: input.ModeLevel},
		{Keys: []key{pause}, Action: core.ActionPause, Mode: input.ModePress},
		{Keys: []key{restart}, Action: core.ActionRestart, Mode: input.ModePress},
	}
}

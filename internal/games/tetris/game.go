// Package tetris implements a Tetris clone on a bordered byte playfield.
//
// Pieces are 4x4 masks rotated by index remapping rather than stored per
// orientation. Every move or rotation is applied only if the playfield's fit
// test accepts the new placement.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/block-arcade/internal/config"
	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/registry"
)

// Piece is the falling piece: shape, orientation and the top-left anchor of
// its 4x4 box in field coordinates.
type Piece struct {
	Shape       Shape
	Orientation Orientation
	X, Y        int
}

// Game implements the Tetris game.
type Game struct {
	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	tick       uint64

	field  *Playfield
	piece  Piece
	next   Shape
	rotate core.EdgeDetector

	fallTicker int // Ticks since the last gravity step
	fallTicks  int // Gravity step interval in ticks

	clearing   []int // Rows flashing before collapse
	clearTicks int   // Ticks left in the flash

	score  int
	lines  int
	pieces int

	gameOver bool
	paused   bool
}

// Package-level settings applied on the next Reset, set by the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// New creates a Tetris game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Tetris game with a fixed configuration.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.cfg.Field.Width == 0 {
		cfg, err := config.LoadTetris(configPath)
		if err != nil {
			cfg = config.DefaultTetrisConfig()
		}
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}

	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.gameOver = false
	g.paused = false
	g.clearing = nil
	g.clearTicks = 0
	g.fallTicker = 0
	g.rotate.Reset()

	if g.field == nil || g.field.Width() != g.cfg.Field.Width || g.field.Height() != g.cfg.Field.Height {
		g.field = NewPlayfield(g.cfg.Field.Width, g.cfg.Field.Height)
	} else {
		g.field.Clear()
	}

	g.next = g.randomShape()
	g.spawn()
	g.updateFallSpeed()
}

func (g *Game) randomShape() Shape {
	return Shape(g.rng.Intn(int(ShapeCount)))
}

// spawn brings the next piece in at the top center. The game ends when it
// does not fit.
func (g *Game) spawn() {
	g.piece = Piece{
		Shape: g.next,
		X:     g.field.Width() / 2,
		Y:     0,
	}
	g.next = g.randomShape()
	g.fallTicker = 0
	if !g.field.Fits(g.piece.Shape, g.piece.Orientation, g.piece.X, g.piece.Y) {
		g.gameOver = true
	}
}

func (g *Game) updateFallSpeed() {
	ms := g.difficulty.Interval(g.cfg.Gravity.FallIntervalMs, g.cfg.Gravity.MinFallIntervalMs, g.score, int(g.tick))
	g.fallTicks = g.runtime.TicksFor(ms)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		rc := g.runtime
		rc.Seed = g.rng.Int63()
		g.Reset(rc)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	if len(g.clearing) > 0 {
		g.clearTicks--
		if g.clearTicks <= 0 {
			g.field.Collapse(g.clearing)
			g.clearing = nil
			g.spawn()
		}
		return core.StepResult{State: g.State()}
	}

	g.handleInput(input)

	g.fallTicker++
	if g.fallTicker >= g.fallTicks {
		g.fallTicker = 0
		if g.fits(g.piece.Orientation, g.piece.X, g.piece.Y+1) {
			g.piece.Y++
		} else {
			g.lock()
		}
	}

	return core.StepResult{State: g.State()}
}

// handleInput applies this frame's movement. Each attempt is gated by the
// fit test; rotation fires only on the rising edge of the rotate input.
func (g *Game) handleInput(input core.InputFrame) {
	p := &g.piece

	if input.Has(core.ActionRight) && g.fits(p.Orientation, p.X+1, p.Y) {
		p.X++
	}
	if input.Has(core.ActionLeft) && g.fits(p.Orientation, p.X-1, p.Y) {
		p.X--
	}
	if input.Has(core.ActionDown) && g.fits(p.Orientation, p.X, p.Y+1) {
		p.Y++
		g.score += g.cfg.Scoring.SoftDropPoints
	}

	if g.rotate.Update(input.Has(core.ActionRotate)) {
		next := (p.Orientation + 1).Normalize()
		if g.fits(next, p.X, p.Y) {
			p.Orientation = next
		}
	}
}

func (g *Game) fits(o Orientation, x, y int) bool {
	return g.field.Fits(g.piece.Shape, o, x, y)
}

// lock writes the piece into the field, scores it and either starts a row
// clear or spawns the next piece.
func (g *Game) lock() {
	p := g.piece
	g.field.Lock(p.Shape, p.Orientation, p.X, p.Y)
	g.pieces++
	g.score += g.cfg.Scoring.LockPoints

	rows := g.field.MarkFullRows(p.Y)
	if len(rows) > 0 {
		g.lines += len(rows)
		g.score += (1 << len(rows)) * g.cfg.Scoring.LineBasePoints
		g.clearing = rows
		g.clearTicks = g.runtime.TicksFor(g.cfg.Gravity.ClearFlashMs)
	}

	g.updateFallSpeed()

	if len(rows) == 0 {
		g.spawn()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.Level(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Level is 1 plus one for every ten cleared lines.
func (g *Game) Level() int {
	return 1 + g.lines/10
}

// Field exposes the playfield for rendering and tests.
func (g *Game) Field() *Playfield {
	return g.field
}

// Piece returns the falling piece.
func (g *Game) Piece() Piece {
	return g.piece
}

// Next returns the shape that spawns after the current piece locks.
func (g *Game) Next() Shape {
	return g.next
}

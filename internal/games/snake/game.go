// Package snake implements a campaign and endless Snake game on fixed maps.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/block-arcade/internal/config"
	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Game implements the Snake game.
type Game struct {
	mode           Mode
	cfg            config.SnakeConfig
	difficulty     *config.DifficultyManager
	runtime        core.RuntimeConfig
	rng            *rand.Rand
	tick           uint64
	score          int
	foodEaten      int // Food eaten in current level
	levelIndex     int // Current level (0-indexed)
	moveEveryTicks int
	moveTicker     int // Counts ticks until next move

	// Snake state
	snake     []core.Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move
	growing   bool      // If true, don't remove tail on next move

	// Map state
	mapWidth   int
	mapHeight  int
	walls      *intmap.Map[int, struct{}] // Keyed by y*mapWidth+x
	food       core.Point
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver     bool
	levelCleared bool
	won          bool
	paused       bool
	tooSmall     bool

	// Level clear animation
	levelClearTicks int
}

// Package-level settings applied on the next Reset, set by the CLI and menu.
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// SetStartLevel sets the starting level (1-10). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a new campaign mode Snake game.
func New() *Game {
	return &Game{
		mode: ModeCampaign,
	}
}

// NewEndless creates a new endless mode Snake game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

// NewWithConfig creates a Snake game in the given mode with a fixed configuration.
func NewWithConfig(mode Mode, cfg config.SnakeConfig) *Game {
	return &Game{mode: mode, cfg: cfg}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "snake_endless"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Snake (Endless)"
	}
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.cfg.Gameplay.StartLength == 0 {
		cfg, err := config.LoadSnake(configPath)
		if err != nil {
			cfg = config.DefaultSnakeConfig()
		}
		config.ApplySnakePreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}

	g.runtime = rc
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.foodEaten = 0
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.tooSmall = false
	g.levelClearTicks = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.hudHeight = 2 // Top HUD lines

	// Apply selected start level (campaign only)
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}

	g.loadLevel()
}

func (g *Game) key(p core.Point) int {
	return p.Y*g.mapWidth + p.X
}

// isWall reports whether p is a wall or outside the map.
func (g *Game) isWall(p core.Point) bool {
	if !core.NewRect(0, 0, g.mapWidth, g.mapHeight).Contains(p.X, p.Y) {
		return true
	}
	_, ok := g.walls.Get(g.key(p))
	return ok
}

// loadLevel loads the current level's map and spawns the snake.
func (g *Game) loadLevel() {
	level := GetLevel(g.levelIndex % LevelCount())
	if level == nil {
		return
	}

	g.updateMoveSpeed()
	g.moveTicker = 0
	g.foodEaten = 0
	g.levelCleared = false

	// Parse layout
	layout := level.Layout
	g.mapHeight = len(layout)
	g.mapWidth = 0
	for _, row := range layout {
		if len(row) > g.mapWidth {
			g.mapWidth = len(row)
		}
	}
	g.walls = intmap.New[int, struct{}](g.mapWidth * 2)

	// Check if screen is too small
	requiredW := g.mapWidth + 2
	requiredH := g.mapHeight + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// Center the map
	g.mapOffsetX = (g.screenW - g.mapWidth) / 2
	g.mapOffsetY = g.hudHeight

	for y, row := range layout {
		for x, ch := range row {
			if ch == '#' {
				g.walls.Put(g.key(core.Point{X: x, Y: y}), struct{}{})
			}
		}
	}

	g.initSnake()
	g.spawnFood()
}

// updateMoveSpeed derives the move interval from the level, the difficulty
// level and, in endless mode, the number of completed map cycles.
func (g *Game) updateMoveSpeed() {
	level := GetLevel(g.levelIndex % LevelCount())
	if level == nil {
		return
	}
	fastest := min(g.cfg.Gameplay.MinMoveEveryTicks, level.MoveEveryTicks)
	every := g.difficulty.Interval(level.MoveEveryTicks, fastest, g.score, int(g.tick))
	if g.mode == ModeEndless {
		cycle := g.levelIndex / LevelCount()
		every -= cycle
	}
	g.moveEveryTicks = max(1, every)
}

// initSnake places the snake at a safe starting position.
func (g *Game) initSnake() {
	length := max(1, g.cfg.Gameplay.StartLength)
	startX := g.mapWidth / 4
	startY := g.mapHeight / 2

	// Search for a clear spot
	for range 100 {
		clear := true
		for i := range length {
			p := core.Point{X: startX + i, Y: startY}
			if g.isWall(p) || p.X < 1 || p.X >= g.mapWidth-1 || p.Y < 1 || p.Y >= g.mapHeight-1 {
				clear = false
				break
			}
		}
		if clear {
			break
		}
		startX = 2 + g.rng.Intn(g.mapWidth/2)
		startY = 2 + g.rng.Intn(g.mapHeight-4)
	}

	// Head at front, body trailing to the left
	g.snake = make([]core.Point, length)
	for i := range length {
		g.snake[i] = core.Point{X: startX + length - 1 - i, Y: startY}
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.growing = false
}

// spawnFood places food at a random empty cell.
func (g *Game) spawnFood() {
	var emptyCells []core.Point
	for y := 1; y < g.mapHeight-1; y++ {
		for x := 1; x < g.mapWidth-1; x++ {
			p := core.Point{X: x, Y: y}
			if !g.isWall(p) && !g.isSnakeAt(p) {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		g.food = core.Point{X: -1, Y: -1}
		return
	}

	g.food = emptyCells[g.rng.Intn(len(emptyCells))]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		rc := g.runtime
		rc.Seed = g.rng.Int63()
		g.Reset(rc)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= g.runtime.TicksFor(g.cfg.Gameplay.LevelClearMs) {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Buffer direction for the next move
	g.processInput(input)

	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.moveSnake()
	}

	return core.StepResult{State: g.State()}
}

// processInput handles direction changes.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	// Prevent instant reversal
	if !newDir.Opposite(g.direction) {
		g.nextDir = newDir
	}
}

// Opposite reports whether d and o point in opposite directions.
func (d Direction) Opposite(o Direction) bool {
	return (d+2)%4 == o
}

// delta returns the unit step for a direction.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// moveSnake moves the snake one cell in the current direction.
func (g *Game) moveSnake() {
	if len(g.snake) == 0 {
		return
	}

	g.direction = g.nextDir
	newHead := g.snake[0].Add(g.direction.delta())

	if g.isWall(newHead) {
		g.gameOver = true
		return
	}

	// The tail moves out of the way unless the snake is growing
	checkLen := len(g.snake)
	if !g.growing && checkLen > 0 {
		checkLen--
	}
	for i := range checkLen {
		if g.snake[i] == newHead {
			g.gameOver = true
			return
		}
	}

	g.snake = append([]core.Point{newHead}, g.snake...)

	if newHead == g.food {
		g.score++
		g.foodEaten++
		g.growing = true
		g.spawnFood()
		g.updateMoveSpeed()
		g.checkLevelCompletion()
	}

	if g.growing {
		g.growing = false
	} else if len(g.snake) > 1 {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// checkLevelCompletion checks if the level is complete.
func (g *Game) checkLevelCompletion() {
	if g.mode == ModeCampaign {
		level := GetLevel(g.levelIndex)
		if level != nil && g.foodEaten >= level.TargetFood {
			g.levelCleared = true
			g.levelClearTicks = 0
		}
	}
	if g.mode == ModeEndless && g.foodEaten >= g.cfg.Gameplay.EndlessFoodPerLevel {
		g.levelIndex++
		g.loadLevel()
	}
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelIndex++
	if g.mode == ModeCampaign && g.levelIndex >= LevelCount() {
		g.won = true
	} else {
		g.loadLevel()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.levelIndex + 1,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Level: %d\n", g.tick, g.score, g.levelIndex+1)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", len(g.snake), g.direction)
	if len(g.snake) > 0 {
		fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", g.snake[0].X, g.snake[0].Y, g.food.X, g.food.Y)
	}
	fmt.Fprintf(&b, "GameOver: %v, Won: %v, Paused: %v\n", g.gameOver, g.won, g.paused)
	return b.String()
}

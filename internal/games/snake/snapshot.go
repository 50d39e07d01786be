package snake

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/vovakirdan/block-arcade/internal/core"
)

// Phase is the coarse state of a snake game.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseLevelCleared
	PhaseGameOver
	PhaseWon
	PhaseTooSmall
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelCleared:
		return "level_cleared"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	case PhaseTooSmall:
		return "too_small"
	default:
		return "unknown"
	}
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Mode      Mode
	Level     int // 1-based
	Score     int
	FoodEaten int
	Length    int
	Head      core.Point
	Dir       Direction
	Food      core.Point
	MoveEvery int
	BodyHash  uint64
	Phase     Phase
}

func (g *Game) phase() Phase {
	switch {
	case g.tooSmall:
		return PhaseTooSmall
	case g.won:
		return PhaseWon
	case g.gameOver:
		return PhaseGameOver
	case g.levelCleared:
		return PhaseLevelCleared
	default:
		return PhasePlaying
	}
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	f := fnv.New64a()
	var buf [8]byte
	for _, p := range g.snake {
		binary.LittleEndian.PutUint32(buf[0:4], uint32(p.X))
		binary.LittleEndian.PutUint32(buf[4:8], uint32(p.Y))
		_, _ = f.Write(buf[:])
	}

	var head core.Point
	if len(g.snake) > 0 {
		head = g.snake[0]
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      g.mode,
		Level:     g.levelIndex + 1,
		Score:     g.score,
		FoodEaten: g.foodEaten,
		Length:    len(g.snake),
		Head:      head,
		Dir:       g.direction,
		Food:      g.food,
		MoveEvery: g.moveEveryTicks,
		BodyHash:  f.Sum64(),
		Phase:     g.phase(),
	}
}

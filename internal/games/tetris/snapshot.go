package tetris

import "hash/fnv"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Score       int
	Lines       int
	Pieces      int
	Shape       Shape
	Orientation Orientation
	X, Y        int
	Next        Shape
	FieldHash   uint64
	Clearing    int
	GameOver    bool
	Paused      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	var h uint64
	if g.field != nil {
		f := fnv.New64a()
		_, _ = f.Write(g.field.cells)
		h = f.Sum64()
	}
	return Snapshot{
		Tick:        g.tick,
		Score:       g.score,
		Lines:       g.lines,
		Pieces:      g.pieces,
		Shape:       g.piece.Shape,
		Orientation: g.piece.Orientation,
		X:           g.piece.X,
		Y:           g.piece.Y,
		Next:        g.next,
		FieldHash:   h,
		Clearing:    len(g.clearing),
		GameOver:    g.gameOver,
		Paused:      g.paused,
	}
}

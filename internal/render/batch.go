// Package render accumulates colored quads into a single vertex batch that a
// platform uploads and draws with one indexed draw call per frame.
//
// It has no graphics dependency of its own: the batch is plain data, and the
// index buffer is computed once and shared by every frame.
package render

import (
	"errors"

	"github.com/vovakirdan/block-arcade/internal/core"
)

// MaxQuads is the capacity of one batch. 16-bit indices address at most
// 65536 vertices, i.e. 16384 quads.
const MaxQuads = 1 << 14

// ErrBatchFull is returned when a quad does not fit in the batch.
var ErrBatchFull = errors.New("render: batch full")

// Vertex is a single batch vertex: a position in window pixels and a color.
type Vertex struct {
	X, Y    float32
	R, G, B float32
}

// Batch is an ordered list of quad vertices, four per quad.
type Batch struct {
	vertices []Vertex
}

// NewBatch creates a batch with room for n quads before growing.
func NewBatch(n int) *Batch {
	return &Batch{vertices: make([]Vertex, 0, min(n, MaxQuads)*4)}
}

// AppendQuad adds an axis-aligned rectangle at (x, y) of size (w, h).
// Vertices wind bottom-left, bottom-right, top-right, top-left so every quad
// matches the shared index pattern.
func (b *Batch) AppendQuad(x, y, w, h float32, c core.Color) error {
	if b.Quads() >= MaxQuads {
		return ErrBatchFull
	}
	r, g, bl := c.RGB()
	b.vertices = append(b.vertices,
		Vertex{X: x, Y: y + h, R: r, G: g, B: bl},
		Vertex{X: x + w, Y: y + h, R: r, G: g, B: bl},
		Vertex{X: x + w, Y: y, R: r, G: g, B: bl},
		Vertex{X: x, Y: y, R: r, G: g, B: bl},
	)
	return nil
}

// AppendCell adds a quad for grid cell (col, row) of a grid whose top-left
// corner is at origin, with square cells of the given size and a gap on the
// right and bottom edge of each cell.
func (b *Batch) AppendCell(originX, originY float32, col, row int, size, gap float32, c core.Color) error {
	x := originX + float32(col)*size
	y := originY + float32(row)*size
	return b.AppendQuad(x, y, size-gap, size-gap, c)
}

// Vertices returns the accumulated vertices. The slice is only valid until
// the next Reset.
func (b *Batch) Vertices() []Vertex {
	return b.vertices
}

// Quads returns the number of quads in the batch.
func (b *Batch) Quads() int {
	return len(b.vertices) / 4
}

// IndexCount returns how many indices draw the current batch.
func (b *Batch) IndexCount() int {
	return b.Quads() * 6
}

// Reset empties the batch, keeping its storage.
func (b *Batch) Reset() {
	b.vertices = b.vertices[:0]
}

// QuadIndices returns the static index buffer for n quads: two triangles per
// quad as offset+{0,1,2,2,3,0}.
func QuadIndices(n int) []uint16 {
	n = min(max(n, 0), MaxQuads)
	indices := make([]uint16, n*6)
	for i, offset := 0, uint16(0); i < len(indices); i, offset = i+6, offset+4 {
		indices[i+0] = offset + 0
		indices[i+1] = offset + 1
		indices[i+2] = offset + 2
		indices[i+3] = offset + 2
		indices[i+4] = offset + 3
		indices[i+5] = offset + 0
	}
	return indices
}

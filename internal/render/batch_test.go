package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/block-arcade/internal/core"
)

func TestQuadIndicesPattern(t *testing.T) {
	indices := QuadIndices(3)
	require.Len(t, indices, 18)

	expected := []uint16{
		0, 1, 2, 2, 3, 0,
		4, 5, 6, 6, 7, 4,
		8, 9, 10, 10, 11, 8,
	}
	assert.Equal(t, expected, indices)
}

func TestQuadIndicesBounds(t *testing.T) {
	assert.Empty(t, QuadIndices(0))
	assert.Empty(t, QuadIndices(-4))

	full := QuadIndices(MaxQuads + 10)
	require.Len(t, full, MaxQuads*6)
	assert.Equal(t, uint16(MaxQuads*4-1), full[len(full)-2], "last quad must still address within 16 bits")
}

func TestAppendQuadWinding(t *testing.T) {
	b := NewBatch(4)
	require.NoError(t, b.AppendQuad(10, 20, 30, 40, core.ColorBrightWhite))

	v := b.Vertices()
	require.Len(t, v, 4)
	assert.Equal(t, Vertex{X: 10, Y: 60, R: 1, G: 1, B: 1}, v[0])
	assert.Equal(t, Vertex{X: 40, Y: 60, R: 1, G: 1, B: 1}, v[1])
	assert.Equal(t, Vertex{X: 40, Y: 20, R: 1, G: 1, B: 1}, v[2])
	assert.Equal(t, Vertex{X: 10, Y: 20, R: 1, G: 1, B: 1}, v[3])

	assert.Equal(t, 1, b.Quads())
	assert.Equal(t, 6, b.IndexCount())
}

func TestAppendCell(t *testing.T) {
	b := NewBatch(1)
	require.NoError(t, b.AppendCell(100, 50, 2, 3, 20, 2, core.ColorRed))

	v := b.Vertices()
	// top-left corner is the fourth vertex
	assert.Equal(t, float32(140), v[3].X)
	assert.Equal(t, float32(110), v[3].Y)
	// size minus gap
	assert.Equal(t, float32(158), v[1].X)
	assert.Equal(t, float32(128), v[1].Y)
}

func TestBatchResetAndCapacity(t *testing.T) {
	b := NewBatch(2)
	for i := 0; i < 5; i++ {
		require.NoError(t, b.AppendQuad(float32(i), 0, 1, 1, core.ColorGreen))
	}
	assert.Equal(t, 5, b.Quads())

	b.Reset()
	assert.Zero(t, b.Quads())
	assert.Zero(t, b.IndexCount())
}

func TestBatchFull(t *testing.T) {
	b := NewBatch(MaxQuads)
	for i := 0; i < MaxQuads; i++ {
		require.NoError(t, b.AppendQuad(0, 0, 1, 1, core.ColorDefault))
	}
	assert.ErrorIs(t, b.AppendQuad(0, 0, 1, 1, core.ColorDefault), ErrBatchFull)
	assert.Equal(t, MaxQuads, b.Quads())
}

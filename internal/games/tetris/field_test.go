package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayfieldSentinels(t *testing.T) {
	f := NewPlayfield(12, 18)
	require.Len(t, f.cells, 12*19)

	for y := 0; y <= 18; y++ {
		assert.Equal(t, CellWall, f.At(0, y), "left border row %d", y)
		assert.Equal(t, CellWall, f.At(11, y), "right border row %d", y)
	}
	for x := range 12 {
		assert.Equal(t, CellWall, f.At(x, 18), "bottom row col %d", x)
	}
	assert.Equal(t, CellEmpty, f.At(5, 5))
	assert.Equal(t, CellWall, f.At(-1, 0), "outside reads as wall")
	assert.Equal(t, CellWall, f.At(3, 40), "outside reads as wall")
}

func TestFitsEmptyField(t *testing.T) {
	f := NewPlayfield(12, 18)
	for s := range ShapeCount {
		for o := range Orientation(4) {
			assert.True(t, f.Fits(s, o, 4, 0), "shape %s orientation %d", s, o)
		}
	}
}

func TestFitsShapeJAtSpawn(t *testing.T) {
	f := NewPlayfield(12, 18)
	assert.True(t, f.Fits(ShapeJ, 0, f.Width()/2, 0))
}

func TestFitsRejectsSentinels(t *testing.T) {
	f := NewPlayfield(12, 18)

	// The vertical I occupies local column 2.
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"against left wall", -1, 0, true},
		{"into left wall", -2, 0, false},
		{"against right wall", 8, 0, true},
		{"into right wall", 9, 0, false},
		{"resting on floor", 4, 14, true},
		{"into floor", 4, 15, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Fits(ShapeI, 0, tt.x, tt.y))
		})
	}
}

func TestFitsRejectsLockedCells(t *testing.T) {
	f := NewPlayfield(12, 18)
	f.Set(6, 2, 1)
	assert.False(t, f.Fits(ShapeI, 0, 4, 0))
	assert.True(t, f.Fits(ShapeI, 0, 3, 0))
}

// A filled cell outside the stored grid never fits, on any side. Empty cells
// of the 4x4 box are not tested, so the box itself may overhang the grid.
func TestFitsOutOfGrid(t *testing.T) {
	f := NewPlayfield(12, 18)

	assert.False(t, f.Fits(ShapeI, 0, -3, 0), "filled cell left of the grid")
	assert.False(t, f.Fits(ShapeI, 0, 20, 0), "filled cell right of the grid")
	assert.False(t, f.Fits(ShapeI, 0, 4, -1), "filled cell above the grid")
	assert.False(t, f.Fits(ShapeI, 0, 4, 30), "filled cell below the grid")

	assert.True(t, f.Fits(ShapeO, 0, 4, -1), "empty top row above the grid")
	assert.True(t, f.Fits(ShapeI, 0, -1, 0), "empty columns left of the grid")
}

func TestLock(t *testing.T) {
	f := NewPlayfield(12, 18)
	f.Lock(ShapeO, 0, 4, 15)

	for _, c := range [][2]int{{5, 16}, {6, 16}, {5, 17}, {6, 17}} {
		assert.Equal(t, byte(ShapeO)+1, f.At(c[0], c[1]))
	}
	assert.False(t, f.Fits(ShapeO, 0, 4, 15))
	assert.True(t, f.Fits(ShapeO, 0, 4, 13))
}

func fillRow(f *Playfield, y int, skip ...int) {
	for x := 1; x < f.Width()-1; x++ {
		fill := true
		for _, s := range skip {
			if x == s {
				fill = false
			}
		}
		if fill {
			f.Set(x, y, 1)
		}
	}
}

func TestMarkFullRows(t *testing.T) {
	f := NewPlayfield(12, 18)
	fillRow(f, 17)
	fillRow(f, 16, 3)

	rows := f.MarkFullRows(14)
	assert.Equal(t, []int{17}, rows)
	for x := 1; x < 11; x++ {
		assert.Equal(t, CellFlash, f.At(x, 17))
	}
	assert.Equal(t, CellWall, f.At(0, 17))
	assert.Equal(t, CellWall, f.At(11, 17))

	assert.Empty(t, f.MarkFullRows(0))
}

func TestCollapse(t *testing.T) {
	f := NewPlayfield(12, 18)
	fillRow(f, 16)
	fillRow(f, 17)
	f.Set(5, 15, 2)

	rows := f.MarkFullRows(14)
	require.Equal(t, []int{16, 17}, rows)
	f.Collapse(rows)

	assert.Equal(t, byte(2), f.At(5, 17))
	for x := 1; x < 11; x++ {
		assert.Equal(t, CellEmpty, f.At(x, 16))
		assert.Equal(t, CellEmpty, f.At(x, 15))
		if x != 5 {
			assert.Equal(t, CellEmpty, f.At(x, 17))
		}
	}
	for y := 0; y <= 18; y++ {
		assert.Equal(t, CellWall, f.At(0, y))
		assert.Equal(t, CellWall, f.At(11, y))
	}
}

func TestClearRestoresField(t *testing.T) {
	f := NewPlayfield(12, 18)
	fillRow(f, 10)
	f.Clear()
	assert.Equal(t, NewPlayfield(12, 18).cells, f.cells)
}

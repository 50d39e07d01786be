package tetris

// Cell values stored in the playfield.
const (
	CellEmpty byte = 0
	CellFlash byte = 8 // Row marked for clearing
	CellWall  byte = 9 // Border sentinel
)

// Playfield is the grid of locked cells. It is width x (height+1) bytes:
// columns 0 and width-1 and row height are pre-filled with CellWall, so a
// piece can never move past them. Locked cells store shape+1.
type Playfield struct {
	width  int
	height int
	cells  []byte
}

// NewPlayfield creates an empty playfield. width counts the two border
// columns; height counts playable rows only.
func NewPlayfield(width, height int) *Playfield {
	f := &Playfield{
		width:  width,
		height: height,
		cells:  make([]byte, width*(height+1)),
	}
	f.Clear()
	return f
}

// Clear empties every playable cell and restores the border sentinels.
func (f *Playfield) Clear() {
	for y := 0; y <= f.height; y++ {
		for x := 0; x < f.width; x++ {
			v := CellEmpty
			if x == 0 || x == f.width-1 || y == f.height {
				v = CellWall
			}
			f.cells[y*f.width+x] = v
		}
	}
}

// Width returns the field width including border columns.
func (f *Playfield) Width() int {
	return f.width
}

// Height returns the number of playable rows.
func (f *Playfield) Height() int {
	return f.height
}

// inside reports whether (x, y) addresses a stored cell, sentinel row included.
func (f *Playfield) inside(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y <= f.height
}

// At returns the cell at (x, y). Coordinates outside the grid read as wall.
func (f *Playfield) At(x, y int) byte {
	if !f.inside(x, y) {
		return CellWall
	}
	return f.cells[y*f.width+x]
}

// Set writes a cell. Out-of-grid writes are ignored.
func (f *Playfield) Set(x, y int, v byte) {
	if !f.inside(x, y) {
		return
	}
	f.cells[y*f.width+x] = v
}

// Fits reports whether a piece of shape s in orientation o with its 4x4 box
// anchored at (x, y) overlaps neither locked cells nor sentinels.
//
// A filled cell that falls outside the stored grid does not fit. Only filled
// cells are tested, so the empty margin of the 4x4 box may hang past the
// border.
func (f *Playfield) Fits(s Shape, o Orientation, x, y int) bool {
	m := Mask(s, o)
	for py := range 4 {
		for px := range 4 {
			if m&(1<<(py*4+px)) == 0 {
				continue
			}
			fx, fy := x+px, y+py
			if !f.inside(fx, fy) {
				return false
			}
			if f.cells[fy*f.width+fx] != CellEmpty {
				return false
			}
		}
	}
	return true
}

// Lock writes a piece into the field as shape+1. The caller must have
// checked Fits.
func (f *Playfield) Lock(s Shape, o Orientation, x, y int) {
	m := Mask(s, o)
	for py := range 4 {
		for px := range 4 {
			if m&(1<<(py*4+px)) != 0 {
				f.Set(x+px, y+py, byte(s)+1)
			}
		}
	}
}

// rowFull reports whether every interior cell of playable row y is occupied.
func (f *Playfield) rowFull(y int) bool {
	if y < 0 || y >= f.height {
		return false
	}
	for x := 1; x < f.width-1; x++ {
		if f.cells[y*f.width+x] == CellEmpty {
			return false
		}
	}
	return true
}

// MarkFullRows scans rows [from, from+4) and marks each full one with
// CellFlash. It returns the marked rows top to bottom.
func (f *Playfield) MarkFullRows(from int) []int {
	var rows []int
	for y := from; y < from+4; y++ {
		if !f.rowFull(y) {
			continue
		}
		for x := 1; x < f.width-1; x++ {
			f.cells[y*f.width+x] = CellFlash
		}
		rows = append(rows, y)
	}
	return rows
}

// Collapse removes the given rows (top to bottom order) and shifts
// everything above them down. The top row refills empty.
func (f *Playfield) Collapse(rows []int) {
	for _, row := range rows {
		for y := row; y > 0; y-- {
			for x := 1; x < f.width-1; x++ {
				f.cells[y*f.width+x] = f.cells[(y-1)*f.width+x]
			}
		}
		for x := 1; x < f.width-1; x++ {
			f.cells[x] = CellEmpty
		}
	}
}

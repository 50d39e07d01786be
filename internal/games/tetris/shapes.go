package tetris

import "github.com/vovakirdan/block-arcade/internal/core"

// Shape identifies one of the seven tetrominoes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeT
	ShapeO
	ShapeZ
	ShapeS
	ShapeL
	ShapeJ
	ShapeCount
)

// shapeMasks holds each tetromino as a 4x4 mask read row by row:
// index row*4+col, 'X' filled, '.' empty.
var shapeMasks = [ShapeCount]string{
	ShapeI: "..X...X...X...X.",
	ShapeT: "..X..XX...X.....",
	ShapeO: ".....XX..XX.....",
	ShapeZ: "..X..XX..X......",
	ShapeS: ".X...XX...X.....",
	ShapeL: ".X...X...XX.....",
	ShapeJ: "..X...X..XX.....",
}

var shapeColors = [ShapeCount]core.Color{
	ShapeI: core.ColorCyan,
	ShapeT: core.ColorMagenta,
	ShapeO: core.ColorYellow,
	ShapeZ: core.ColorRed,
	ShapeS: core.ColorGreen,
	ShapeL: core.ColorOrange,
	ShapeJ: core.ColorBlue,
}

var shapeNames = [ShapeCount]string{"I", "T", "O", "Z", "S", "L", "J"}

// Orientation is a rotation state in [0, 4): 0, 90, 180 and 270 degrees.
type Orientation int

// Normalize reduces any orientation to [0, 4).
func (o Orientation) Normalize() Orientation {
	return ((o % 4) + 4) % 4
}

// masks[shape][orientation] has bit (py*4+px) set when local cell (px, py)
// of the rotated piece is filled. Built once from shapeMasks.
var masks [ShapeCount][4]uint16

func init() {
	for s := range ShapeCount {
		for o := range Orientation(4) {
			var m uint16
			for py := range 4 {
				for px := range 4 {
					if shapeMasks[s][Rotate(px, py, o)] == 'X' {
						m |= 1 << (py*4 + px)
					}
				}
			}
			masks[s][o] = m
		}
	}
}

// Rotate maps local coordinates (px, py) in [0, 4) of a piece in orientation
// o to the index of the unrotated mask cell that lands there.
func Rotate(px, py int, o Orientation) int {
	switch o.Normalize() {
	case 0:
		return py*4 + px
	case 1:
		return 12 + py - px*4
	case 2:
		return 15 - py*4 - px
	default:
		return 3 - py + px*4
	}
}

// Mask returns the precomputed 16-bit mask for a shape in an orientation.
func Mask(s Shape, o Orientation) uint16 {
	return masks[s][o.Normalize()]
}

// Filled reports whether local cell (px, py) of the rotated piece is filled.
func Filled(s Shape, o Orientation, px, py int) bool {
	if px < 0 || px >= 4 || py < 0 || py >= 4 {
		return false
	}
	return Mask(s, o)&(1<<(py*4+px)) != 0
}

// Color returns the display color of a shape.
func (s Shape) Color() core.Color {
	if s < 0 || s >= ShapeCount {
		return core.ColorDefault
	}
	return shapeColors[s]
}

func (s Shape) String() string {
	if s < 0 || s >= ShapeCount {
		return "?"
	}
	return shapeNames[s]
}

package tetris

import (
	"fmt"

	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/render"
)

// Window dimensions for the windowed platform.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Tetris"

	windowMargin = 40
	cellGap      = 1
)

const (
	termCellWidth = 2 // Characters per field cell
	hudHeight     = 2
	sidebarWidth  = 14
)

// cellColor maps a stored cell value to its color.
func cellColor(v byte) core.Color {
	switch {
	case v == CellWall:
		return core.ColorGray
	case v == CellFlash:
		return core.ColorBrightWhite
	case v >= 1 && v <= byte(ShapeCount):
		return Shape(v - 1).Color()
	}
	return core.ColorDefault
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.field == nil {
		return
	}

	boardW := g.field.Width() * termCellWidth
	boardH := g.field.Height() + 1
	totalW := boardW + sidebarWidth
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue")
		return
	}

	boardX := (dst.Width() - totalW) / 2
	if boardX < 0 {
		boardX = 0
	}
	boardY := hudHeight

	g.renderHUD(dst)

	for y := 0; y <= g.field.Height(); y++ {
		for x := 0; x < g.field.Width(); x++ {
			v := g.field.At(x, y)
			if v == CellEmpty {
				continue
			}
			g.setCell(dst, boardX, boardY, x, y, cellColor(v))
		}
	}

	if len(g.clearing) == 0 && !g.gameOver {
		p := g.piece
		for py := range 4 {
			for px := range 4 {
				if Filled(p.Shape, p.Orientation, px, py) {
					g.setCell(dst, boardX, boardY, p.X+px, p.Y+py, p.Shape.Color())
				}
			}
		}
	}

	g.renderSidebar(dst, boardX+boardW+2, boardY)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, boardX, boardW, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, boardX, boardW, "Paused", "Press P to continue")
	}
}

func (g *Game) setCell(dst *core.Screen, ox, oy, x, y int, c core.Color) {
	for i := range termCellWidth {
		dst.SetColored(ox+x*termCellWidth+i, oy+y, '█', c)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris - Score: %d  Lines: %d  Level: %d", g.score, g.lines, g.Level())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderSidebar shows the next piece when there is room for it.
func (g *Game) renderSidebar(dst *core.Screen, x, y int) {
	if x+4*termCellWidth >= dst.Width() {
		return
	}
	dst.DrawText(x, y, "Next:")
	for py := range 4 {
		for px := range 4 {
			if Filled(g.next, 0, px, py) {
				for i := range termCellWidth {
					dst.SetColored(x+px*termCellWidth+i, y+2+py, '█', g.next.Color())
				}
			}
		}
	}
	dst.DrawText(x, y+7, fmt.Sprintf("Pieces: %d", g.pieces))
}

func (g *Game) renderOverlay(dst *core.Screen, boardX, boardW int, title, hint string) {
	cy := hudHeight + g.field.Height()/2
	tx := boardX + (boardW-len(title))/2
	hx := boardX + (boardW-len(hint))/2
	dst.DrawHLine(boardX, cy-1, boardW, ' ')
	dst.DrawHLine(boardX, cy, boardW, ' ')
	dst.DrawHLine(boardX, cy+1, boardW, ' ')
	dst.DrawText(tx, cy-1, title)
	dst.DrawText(hx, cy+1, hint)
}

// WindowSize returns the fixed window dimensions and title.
func (g *Game) WindowSize() (width, height int, title string) {
	return WindowWidth, WindowHeight, WindowTitle
}

// layout returns the quad cell size and the top-left of the field so that
// the field plus a preview column is centered in the window.
func (g *Game) layout() (size, originX, originY float32) {
	rows := g.field.Height() + 1
	cols := g.field.Width() + 6 // field plus preview
	s := min((WindowHeight-2*windowMargin)/rows, (WindowWidth-2*windowMargin)/cols)
	size = float32(s)
	originX = float32((WindowWidth - cols*s) / 2)
	originY = float32((WindowHeight - rows*s) / 2)
	return size, originX, originY
}

// RenderQuads appends one quad per filled cell: locked cells and sentinels,
// the falling piece and the next-piece preview.
func (g *Game) RenderQuads(dst *render.Batch) {
	if g.field == nil {
		return
	}
	size, ox, oy := g.layout()

	for y := 0; y <= g.field.Height(); y++ {
		for x := 0; x < g.field.Width(); x++ {
			v := g.field.At(x, y)
			if v == CellEmpty {
				continue
			}
			if err := dst.AppendCell(ox, oy, x, y, size, cellGap, cellColor(v)); err != nil {
				return
			}
		}
	}

	if len(g.clearing) == 0 && !g.gameOver {
		p := g.piece
		for py := range 4 {
			for px := range 4 {
				if !Filled(p.Shape, p.Orientation, px, py) {
					continue
				}
				if err := dst.AppendCell(ox, oy, p.X+px, p.Y+py, size, cellGap, p.Shape.Color()); err != nil {
					return
				}
			}
		}
	}

	previewX := g.field.Width() + 1
	for py := range 4 {
		for px := range 4 {
			if Filled(g.next, 0, px, py) {
				_ = dst.AppendCell(ox, oy, previewX+px, 1+py, size, cellGap, g.next.Color())
			}
		}
	}
}

// HUD returns the status lines shown over the window.
func (g *Game) HUD() []string {
	lines := []string{
		fmt.Sprintf("Score: %d", g.score),
		fmt.Sprintf("Lines: %d  Level: %d", g.lines, g.Level()),
		"Next: " + g.next.String(),
	}
	switch {
	case g.gameOver:
		lines = append(lines, "GAME OVER - press R to restart")
	case g.paused:
		lines = append(lines, "PAUSED - press P to continue")
	}
	return lines
}

package snake

import (
	"fmt"

	"github.com/vovakirdan/block-arcade/internal/core"
	"github.com/vovakirdan/block-arcade/internal/render"
)

// Window dimensions for the windowed platform.
const (
	WindowWidth  = 640
	WindowHeight = 480
	WindowTitle  = "Snake"

	windowHUD = 48 // Pixels reserved above the map for HUD text
	cellGap   = 1
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMap(dst)
	g.renderSnake(dst)

	if g.food.X >= 0 && g.food.Y >= 0 {
		dst.SetColored(g.mapOffsetX+g.food.X, g.mapOffsetY+g.food.Y, '*', core.ColorBrightRed)
	}

	switch {
	case g.levelCleared:
		levelName := "Level"
		if level := GetLevel(g.levelIndex); level != nil {
			levelName = level.Name
		}
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.levelIndex+1), levelName)
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// hudText is the status line shared by the terminal and the window.
func (g *Game) hudText() string {
	if g.mode == ModeEndless {
		return fmt.Sprintf("Snake (Endless) - Score: %d  Speed: %d", g.score, 7-g.moveEveryTicks)
	}
	return fmt.Sprintf("Snake - Score: %d  Level: %d/%d  Food: %d", g.score, g.levelIndex+1, LevelCount(), g.foodEaten)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, g.hudText())
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMap draws walls.
func (g *Game) renderMap(dst *core.Screen) {
	g.walls.ForEach(func(k int, _ struct{}) bool {
		dst.SetColored(g.mapOffsetX+k%g.mapWidth, g.mapOffsetY+k/g.mapWidth, '#', core.ColorGray)
		return true
	})
}

// renderSnake draws the snake.
func (g *Game) renderSnake(dst *core.Screen) {
	for i, seg := range g.snake {
		r := 'o'
		if i == 0 {
			r = 'O'
		}
		dst.SetColored(g.mapOffsetX+seg.X, g.mapOffsetY+seg.Y, r, core.ColorBrightGreen)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// WindowSize returns the fixed window dimensions and title.
func (g *Game) WindowSize() (width, height int, title string) {
	return WindowWidth, WindowHeight, WindowTitle
}

// RenderQuads appends walls, the snake and the food as one quad per cell.
func (g *Game) RenderQuads(dst *render.Batch) {
	if g.tooSmall || g.mapWidth == 0 || g.mapHeight == 0 {
		return
	}

	size := min(WindowWidth/g.mapWidth, (WindowHeight-windowHUD)/g.mapHeight)
	s := float32(size)
	ox := float32((WindowWidth - g.mapWidth*size) / 2)
	oy := float32(windowHUD + (WindowHeight-windowHUD-g.mapHeight*size)/2)

	g.walls.ForEach(func(k int, _ struct{}) bool {
		return dst.AppendCell(ox, oy, k%g.mapWidth, k/g.mapWidth, s, cellGap, core.ColorGray) == nil
	})

	for i, seg := range g.snake {
		c := core.ColorGreen
		if i == 0 {
			c = core.ColorBrightGreen
		}
		if err := dst.AppendCell(ox, oy, seg.X, seg.Y, s, cellGap, c); err != nil {
			return
		}
	}

	if g.food.X >= 0 && g.food.Y >= 0 {
		_ = dst.AppendCell(ox, oy, g.food.X, g.food.Y, s, cellGap, core.ColorBrightRed)
	}
}

// HUD returns the status lines shown over the window.
func (g *Game) HUD() []string {
	lines := []string{g.hudText()}
	switch {
	case g.tooSmall:
		lines = append(lines, "Window too small")
	case g.levelCleared:
		lines = append(lines, fmt.Sprintf("Level %d cleared!", g.levelIndex+1))
	case g.won:
		lines = append(lines, fmt.Sprintf("You Win! Final Score: %d - press R", g.score))
	case g.gameOver:
		lines = append(lines, "Game Over - press R to restart")
	case g.paused:
		lines = append(lines, "Paused - press P to continue")
	}
	return lines
}

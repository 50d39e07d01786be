package snake

import "strings"

// Level describes one campaign map.
type Level struct {
	ID             int      // 1-based
	Name           string   // Display name
	TargetFood     int      // Food needed to clear the level
	MoveEveryTicks int      // Ticks between moves at difficulty 0
	Layout         []string // '#' wall, anything else floor
}

const (
	mapW = 40
	mapH = 20
)

// wallFunc reports whether an interior cell is a wall.
type wallFunc func(x, y int) bool

// buildLayout returns a bordered mapW x mapH layout with extra interior walls.
func buildLayout(walls ...wallFunc) []string {
	rows := make([]string, mapH)
	for y := range mapH {
		var b strings.Builder
		for x := range mapW {
			wall := x == 0 || y == 0 || x == mapW-1 || y == mapH-1
			for _, w := range walls {
				if w(x, y) {
					wall = true
				}
			}
			if wall {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func block(x0, y0, w, h int) wallFunc {
	return func(x, y int) bool {
		return x >= x0 && x < x0+w && y >= y0 && y < y0+h
	}
}

func hline(x0, x1, y0 int) wallFunc {
	return block(x0, y0, x1-x0+1, 1)
}

func vline(x0, y0, y1 int) wallFunc {
	return block(x0, y0, 1, y1-y0+1)
}

// Levels is the campaign, in play order.
var Levels = []Level{
	{
		ID: 1, Name: "Open Field", TargetFood: 5, MoveEveryTicks: 6,
		Layout: buildLayout(),
	},
	{
		ID: 2, Name: "Pillars", TargetFood: 6, MoveEveryTicks: 6,
		Layout: buildLayout(block(8, 4, 2, 2), block(30, 4, 2, 2), block(8, 14, 2, 2), block(30, 14, 2, 2)),
	},
	{
		ID: 3, Name: "Center Bar", TargetFood: 7, MoveEveryTicks: 5,
		Layout: buildLayout(hline(14, 26, 5), hline(14, 26, 14)),
	},
	{
		ID: 4, Name: "Gates", TargetFood: 8, MoveEveryTicks: 5,
		Layout: buildLayout(vline(20, 1, 7), vline(20, 12, 18)),
	},
	{
		ID: 5, Name: "Cross", TargetFood: 8, MoveEveryTicks: 5,
		Layout: buildLayout(hline(2, 7, 10), hline(25, 35, 10), vline(20, 2, 6), vline(20, 14, 17)),
	},
	{
		ID: 6, Name: "Corridors", TargetFood: 9, MoveEveryTicks: 4,
		Layout: buildLayout(hline(1, 30, 6), hline(9, 38, 13)),
	},
	{
		ID: 7, Name: "The Box", TargetFood: 10, MoveEveryTicks: 4,
		Layout: buildLayout(hline(14, 18, 4), hline(22, 26, 4), hline(14, 18, 15), hline(22, 26, 15),
			vline(14, 4, 7), vline(14, 12, 15), vline(26, 4, 7), vline(26, 12, 15)),
	},
	{
		ID: 8, Name: "Zigzag", TargetFood: 10, MoveEveryTicks: 4,
		Layout: buildLayout(vline(16, 1, 13), vline(24, 6, 18), vline(32, 1, 13)),
	},
	{
		ID: 9, Name: "Checkerboard", TargetFood: 12, MoveEveryTicks: 3,
		Layout: buildLayout(func(x, y int) bool {
			return x%6 == 3 && y%4 == 2 && (y != 10 || x > 16)
		}),
	},
	{
		ID: 10, Name: "Fortress", TargetFood: 12, MoveEveryTicks: 3,
		Layout: buildLayout(
			hline(4, 17, 3), hline(22, 35, 3), hline(4, 17, 16), hline(22, 35, 16),
			vline(4, 3, 8), vline(4, 11, 16), vline(35, 3, 8), vline(35, 11, 16),
		),
	},
}

// GetLevel returns the level at index i (0-based), or nil when out of range.
func GetLevel(i int) *Level {
	if i < 0 || i >= len(Levels) {
		return nil
	}
	return &Levels[i]
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, LevelCount())
	for i, level := range Levels {
		names[i] = level.Name
	}
	return names
}

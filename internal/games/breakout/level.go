package breakout

import "github.com/vovakirdan/canvas-arcade/internal/core"

// Level is a brick layout. Points holds one value per grid cell; zero marks
// an empty cell.
type Level struct {
	ID     string
	Name   string
	Width  int
	Height int
	Points [][]int
}

// Brick is one placed brick. The grid never changes during a level, only
// Visible flips.
type Brick struct {
	Rect    core.RectF
	Points  int
	Visible bool
	Row     int
}

// ParseLevel builds a Level from an ASCII map.
//
//	'#'     brick worth 10 points
//	'1'-'9' brick worth 10 * digit
//	other   empty
func ParseLevel(id, name string, lines []string) Level {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	level := Level{ID: id, Name: name, Width: width, Height: len(lines), Points: make([][]int, len(lines))}
	for row, line := range lines {
		level.Points[row] = make([]int, width)
		for col := range len(line) {
			switch ch := line[col]; {
			case ch == '#':
				level.Points[row][col] = 10
			case ch >= '1' && ch <= '9':
				level.Points[row][col] = int(ch-'0') * 10
			}
		}
	}
	return level
}

// Layout places the level's bricks into area, one row of cells per grid row
// with the columns spread evenly across the width.
func (l Level) Layout(area core.RectF) []Brick {
	if l.Width == 0 {
		return nil
	}
	w := area.W / float64(l.Width)
	bricks := make([]Brick, 0, l.Width*l.Height)
	for row, cols := range l.Points {
		for col, points := range cols {
			if points == 0 {
				continue
			}
			bricks = append(bricks, Brick{
				Rect:    core.RectF{X: area.X + float64(col)*w, Y: area.Y + float64(row), W: w, H: 1},
				Points:  points,
				Visible: true,
				Row:     row,
			})
		}
	}
	return bricks
}

// BrickCount is the number of non-empty cells.
func (l Level) BrickCount() int {
	n := 0
	for _, cols := range l.Points {
		for _, p := range cols {
			if p > 0 {
				n++
			}
		}
	}
	return n
}

// countVisible returns the number of bricks still standing.
func countVisible(bricks []Brick) int {
	n := 0
	for _, b := range bricks {
		if b.Visible {
			n++
		}
	}
	return n
}

var builtinLevels = []Level{
	ParseLevel("classic", "Classic", []string{
		"55555555555555555555",
		"44444444444444444444",
		"33333333333333333333",
		"22222222222222222222",
		"11111111111111111111",
	}),
	ParseLevel("pyramid", "Pyramid", []string{
		"........####........",
		"......########......",
		"....############....",
		"..################..",
		"####################",
	}),
	ParseLevel("checker", "Checkerboard", []string{
		"#.#.#.#.#.#.#.#.#.#.",
		".#.#.#.#.#.#.#.#.#.#",
		"#.#.#.#.#.#.#.#.#.#.",
		".#.#.#.#.#.#.#.#.#.#",
		"#.#.#.#.#.#.#.#.#.#.",
	}),
	ParseLevel("diamond", "Diamond", []string{
		".........99.........",
		"........7777........",
		".......555555.......",
		"......33333333......",
		".....##########.....",
		"......33333333......",
		".......555555.......",
		"........7777........",
		".........99.........",
	}),
	ParseLevel("invaders", "Invaders", []string{
		"..#..........#......",
		".###........###.....",
		"#####......#####....",
		"#.#.#......#.#.#....",
		"#####......#####....",
	}),
}

// BuiltinLevels returns a copy of the shipped layouts.
func BuiltinLevels() []Level {
	return append([]Level(nil), builtinLevels...)
}

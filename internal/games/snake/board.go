package snake

// Point is a board cell.
type Point struct {
	X, Y int
}

// Direction is one of the four headings, in clockwise order.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

var deltas = [...]Point{
	DirRight: {1, 0},
	DirDown:  {0, 1},
	DirLeft:  {-1, 0},
	DirUp:    {0, -1},
}

// Delta is the unit step of d.
func (d Direction) Delta() Point {
	return deltas[d&3]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

// Clockwise returns the direction after a right turn.
func (d Direction) Clockwise() Direction { return (d + 1) & 3 }

// CounterClockwise returns the direction after a left turn.
func (d Direction) CounterClockwise() Direction { return (d + 3) & 3 }

// IsOpposite reports whether o points the other way.
func (d Direction) IsOpposite(o Direction) bool {
	return d.Opposite() == o
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// directionOf maps a unit step back to a Direction.
func directionOf(dx, dy int) (Direction, bool) {
	for d, delta := range deltas {
		if delta.X == dx && delta.Y == dy {
			return Direction(d), true
		}
	}
	return DirRight, false
}

// Step returns the neighbouring cell in direction d.
func (p Point) Step(d Direction) Point {
	delta := d.Delta()
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

func manhattan(a, b Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Body is a snake, head first.
type Body []Point

// Head returns the first segment.
func (b Body) Head() Point {
	return b[0]
}

// Contains reports whether any segment occupies p.
func (b Body) Contains(p Point) bool {
	for _, seg := range b {
		if seg == p {
			return true
		}
	}
	return false
}

// Blocks reports whether the head moving onto p would hit the body. The tail
// is not counted unless the snake grows, since it moves away this step.
func (b Body) Blocks(p Point, growing bool) bool {
	n := len(b)
	if !growing && n > 0 {
		n--
	}
	for _, seg := range b[:n] {
		if seg == p {
			return true
		}
	}
	return false
}

// Advance returns the body after the head moves to head. Growing keeps the
// tail.
func (b Body) Advance(head Point, grow bool) Body {
	keep := len(b)
	if !grow && keep > 0 {
		keep--
	}
	next := make(Body, 0, keep+1)
	next = append(next, head)
	return append(next, b[:keep]...)
}

// board is the playing area.
type board struct {
	width, height int
}

func (bd board) contains(p Point) bool {
	return p.X >= 0 && p.X < bd.width && p.Y >= 0 && p.Y < bd.height
}

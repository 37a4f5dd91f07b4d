package snake

import "math/rand"

// placementAttempts bounds the random draws before falling back to a scan.
const placementAttempts = 100

// PlaceFood picks a free cell on a w×h board. It draws uniformly up to
// attempts times and then scans the board row by row, so it only fails when
// every cell is occupied.
func PlaceFood(rng *rand.Rand, w, h int, occupied func(Point) bool, attempts int) (Point, bool) {
	if w <= 0 || h <= 0 {
		return Point{}, false
	}
	for range attempts {
		p := Point{X: rng.Intn(w), Y: rng.Intn(h)}
		if !occupied(p) {
			return p, true
		}
	}
	for y := range h {
		for x := range w {
			if p := (Point{X: x, Y: y}); !occupied(p) {
				return p, true
			}
		}
	}
	return Point{}, false
}

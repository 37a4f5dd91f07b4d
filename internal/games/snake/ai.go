package snake

const (
	enemyPenalty  = 1000
	dangerPenalty = 50
)

// ChooseMove picks the rival's next heading. It considers the current
// heading, then clockwise, then counter-clockwise, drops moves that leave the
// board or run into its own body, and scores the rest as
//
//	-manhattan(head, food) - 1000·hitsEnemy - 50·dangerousNeighbours
//
// The highest score wins; ties keep the first candidate. ok is false when no
// candidate survives.
func ChooseMove(body Body, dir Direction, bd board, food Point, hasFood bool, enemy func(Point) bool) (Direction, bool) {
	best, bestScore, found := dir, 0, false
	for _, d := range [...]Direction{dir, dir.Clockwise(), dir.CounterClockwise()} {
		p := body.Head().Step(d)
		if !bd.contains(p) || body.Blocks(p, hasFood && p == food) {
			continue
		}

		score := 0
		if hasFood {
			score -= manhattan(p, food)
		}
		if enemy(p) {
			score -= enemyPenalty
		}
		score -= dangerPenalty * dangerousNeighbours(p, body, bd, enemy)

		if !found || score > bestScore {
			best, bestScore, found = d, score, true
		}
	}
	return best, found
}

// dangerousNeighbours counts the cells around p that are off the board or
// taken by either snake.
func dangerousNeighbours(p Point, body Body, bd board, enemy func(Point) bool) int {
	n := 0
	for d := DirRight; d <= DirUp; d++ {
		q := p.Step(d)
		if !bd.contains(q) || body.Contains(q) || enemy(q) {
			n++
		}
	}
	return n
}

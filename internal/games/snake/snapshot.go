package snake

// Snapshot captures the comparable game state for determinism tests.
type Snapshot struct {
	Tick       uint64
	Score      int
	SnakeLen   int
	Head       Point
	Dir        Direction
	Food       Point
	HasFood    bool
	MoveEvery  int
	RivalAlive bool
	RivalHead  Point
	RivalScore int
	Over       bool
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		SnakeLen:  len(g.snake),
		Head:      g.snake.Head(),
		Dir:       g.direction,
		Food:      g.food,
		HasFood:   g.hasFood,
		MoveEvery: g.moveEvery,
		Over:      g.over,
	}
	if r := g.rival; r != nil {
		s.RivalScore = r.Score
		if r.Alive {
			s.RivalAlive = true
			s.RivalHead = r.Body.Head()
		}
	}
	return s
}

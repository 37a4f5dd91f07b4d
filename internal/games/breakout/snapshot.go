package breakout

import (
	"math"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Snapshot is the comparable state of a game, for determinism checks.
type Snapshot struct {
	Tick            int
	PaddleX         float64
	Ball            core.Vec2
	BallVel         core.Vec2
	Attached        bool
	Score           int
	Lives           int
	LevelIndex      int
	BricksRemaining int
	Over            bool
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:            g.tickCount,
		PaddleX:         g.paddle.Pos.X,
		Ball:            g.ball.Pos,
		BallVel:         g.ball.Vel,
		Attached:        g.attached,
		Score:           g.score,
		Lives:           g.lives,
		LevelIndex:      g.levelIndex,
		BricksRemaining: countVisible(g.bricks),
		Over:            g.over,
	}
}

// Hash folds the snapshot into a single value.
func (s Snapshot) Hash() uint64 {
	h := uint64(s.Tick)
	for _, v := range []float64{s.PaddleX, s.Ball.X, s.Ball.Y, s.BallVel.X, s.BallVel.Y} {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range []int{s.Score, s.Lives, s.LevelIndex, s.BricksRemaining} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if s.Attached {
		h = h*31 + 1
	}
	if s.Over {
		h = h*31 + 2
	}
	return h
}

package pong

import "math"

// Snapshot contains the complete state of a Pong game in primitive fields,
// so two runs can be compared with ==.
type Snapshot struct {
	Tick       int
	BallX      float64
	BallY      float64
	BallVX     float64
	BallVY     float64
	PlayerY    float64
	CPUY       float64
	PlayerPts  int
	CPUPts     int
	Serving    bool
	ServeDelay int
	Over       bool
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tickCount,
		BallX:      g.ball.Pos.X,
		BallY:      g.ball.Pos.Y,
		BallVX:     g.ball.Vel.X,
		BallVY:     g.ball.Vel.Y,
		PlayerY:    g.player.Pos.Y,
		CPUY:       g.cpu.Pos.Y,
		PlayerPts:  g.playerScore,
		CPUPts:     g.cpuScore,
		Serving:    g.serving,
		ServeDelay: g.serveDelay,
		Over:       g.over,
	}
}

// Hash folds the snapshot into a single value for quick comparison.
func (s Snapshot) Hash() uint64 {
	h := uint64(s.Tick) //#nosec G115 -- hash computation
	for _, v := range []float64{s.BallX, s.BallY, s.BallVX, s.BallVY, s.PlayerY, s.CPUY} {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range []int{s.PlayerPts, s.CPUPts, s.ServeDelay} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if s.Serving {
		h = h*31 + 1
	}
	if s.Over {
		h = h*31 + 2
	}
	return h
}

package session

import (
	"context"
	"time"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Loop drives a Session at a fixed cadence outside any UI framework. Each
// iteration polls input, ticks the session once and then presents a frame.
type Loop struct {
	Session  *Session
	Input    InputSource // nil means NoInput
	Renderer Renderer    // nil renders nothing

	// TickRate is the cadence in ticks per second. Zero or less runs as fast
	// as possible, which is what tests and batch simulations want.
	TickRate int

	// MaxTicks stops the loop after that many iterations; 0 is unbounded.
	MaxTicks int

	// RenderEvery presents every Nth iteration; values below 1 mean every one.
	RenderEvery int

	// StopWhenOver ends the loop once the game reaches Over.
	StopWhenOver bool
}

// Run blocks until MaxTicks, game over (with StopWhenOver) or ctx is done.
// It returns the final state and ctx.Err() when cancelled.
func (l *Loop) Run(ctx context.Context) (core.GameState, error) {
	input := l.Input
	if input == nil {
		input = NoInput
	}
	every := max(1, l.RenderEvery)

	var tick <-chan time.Time
	if l.TickRate > 0 {
		t := time.NewTicker(time.Second / time.Duration(l.TickRate))
		defer t.Stop()
		tick = t.C
	}

	for n := 1; l.MaxTicks <= 0 || n <= l.MaxTicks; n++ {
		if err := ctx.Err(); err != nil {
			return l.Session.State(), err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return l.Session.State(), ctx.Err()
			case <-tick:
			}
		}

		st := l.Session.Tick(input.Poll())
		if l.Renderer != nil && n%every == 0 {
			l.Session.Render(l.Renderer)
		}
		if l.StopWhenOver && st.IsOver() {
			break
		}
	}
	return l.Session.State(), nil
}

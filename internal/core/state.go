package core

// RuntimeConfig is passed to a game on every reset.
type RuntimeConfig struct {
	ScreenW  int   // screen width in cells
	ScreenH  int   // screen height in cells
	TickRate int   // fixed simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the host pick one
}

// DefaultConfig returns the 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// TicksFor converts a duration in seconds to whole ticks at the configured
// rate, never less than one.
func (c RuntimeConfig) TicksFor(seconds float64) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return max(1, int(seconds*float64(rate)))
}

// Lifecycle is the phase of a play session.
type Lifecycle int

const (
	NotStarted Lifecycle = iota
	Running
	Paused
	Over
)

// String returns the lifecycle name.
func (l Lifecycle) String() string {
	switch l {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	}
	return "unknown"
}

// Outcome is how a finished game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	}
	return "none"
}

// GameState summarises a game for hosts and the session. Games only ever
// report Running or Over; the session overlays NotStarted and Paused.
type GameState struct {
	Score     int
	Lives     int // 0 for games without lives
	Level     int // 0 for games without levels
	Phase     Lifecycle
	Outcome   Outcome
	HighScore int // filled in by the session
}

// IsOver reports whether the game has finished.
func (s GameState) IsOver() bool {
	return s.Phase == Over
}

// StepResult is what a game returns from one simulation tick.
type StepResult struct {
	State GameState
}

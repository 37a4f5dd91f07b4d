package core

import "math"

// Action is a semantic game intent, decoupled from the physical key that
// produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionLaunch         // Space - start, launch the ball, spawn a burst
	ActionPause          // P
	ActionConfirm        // Enter in menus
	ActionBack           // Esc, B - leave to the menu
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionLaunch:  "Launch",
	ActionPause:   "Pause",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
}

// String returns the action name.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// GestureKind distinguishes pointer gestures.
type GestureKind int

const (
	GestureTap GestureKind = iota
	GestureSwipe
)

// Gesture is a discrete pointer event. At is the screen cell where the
// gesture started; Dir is a unit vector for swipes.
type Gesture struct {
	Kind      GestureKind
	At        Vec2
	Dir       Vec2
	Magnitude float64
}

// Swipe builds a swipe gesture from a start and an end cell.
func Swipe(from, to Vec2) Gesture {
	d := to.Sub(from)
	return Gesture{Kind: GestureSwipe, At: from, Dir: d.Normalize(), Magnitude: d.Len()}
}

// Tap builds a tap gesture at a cell.
func Tap(at Vec2) Gesture {
	return Gesture{Kind: GestureTap, At: at}
}

// Dominant reduces a swipe to its dominant axis as a unit step. Ties go to
// the horizontal axis; taps and zero swipes return (0, 0).
func (g Gesture) Dominant() (int, int) {
	if g.Kind != GestureSwipe || g.Dir == (Vec2{}) {
		return 0, 0
	}
	if math.Abs(g.Dir.X) >= math.Abs(g.Dir.Y) {
		if g.Dir.X > 0 {
			return 1, 0
		}
		return -1, 0
	}
	if g.Dir.Y > 0 {
		return 0, 1
	}
	return 0, -1
}

// InputFrame is everything a player did during one tick. Actions hold the
// keys that were active; Gestures hold pointer events in arrival order.
type InputFrame struct {
	Actions  map[Action]bool
	Gestures []Gesture
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Frame is a convenience constructor for a frame holding the given actions.
func Frame(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks action a as active.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether action a is active.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddGesture appends a gesture to the frame.
func (f *InputFrame) AddGesture(g Gesture) {
	f.Gestures = append(f.Gestures, g)
}

// Empty reports whether the frame carries no actions and no gestures.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return len(f.Gestures) == 0
}

// Taps returns the tap gestures of the frame.
func (f InputFrame) Taps() []Gesture {
	var taps []Gesture
	for _, g := range f.Gestures {
		if g.Kind == GestureTap {
			taps = append(taps, g)
		}
	}
	return taps
}

// Clear resets the frame for the next tick, keeping its allocations.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Gestures = f.Gestures[:0]
}

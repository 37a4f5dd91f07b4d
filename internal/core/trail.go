package core

// Trail is a fixed-capacity history of positions. Pushing onto a full trail
// overwrites the oldest point.
type Trail struct {
	points []Vec2
	start  int
	n      int
}

// NewTrail creates a trail holding up to capacity points.
func NewTrail(capacity int) Trail {
	if capacity < 0 {
		capacity = 0
	}
	return Trail{points: make([]Vec2, capacity)}
}

// Push records p, dropping the oldest point when the trail is full.
func (t *Trail) Push(p Vec2) {
	if len(t.points) == 0 {
		return
	}
	if t.n < len(t.points) {
		t.points[(t.start+t.n)%len(t.points)] = p
		t.n++
		return
	}
	t.points[t.start] = p
	t.start = (t.start + 1) % len(t.points)
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return t.n
}

// Cap returns the trail capacity.
func (t *Trail) Cap() int {
	return len(t.points)
}

// Points returns the stored positions, oldest first.
func (t *Trail) Points() []Vec2 {
	out := make([]Vec2, t.n)
	for i := range out {
		out[i] = t.points[(t.start+i)%len(t.points)]
	}
	return out
}

// Clear drops every point.
func (t *Trail) Clear() {
	t.start, t.n = 0, 0
}

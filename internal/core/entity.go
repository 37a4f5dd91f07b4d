package core

// Ball is a moving circle.
type Ball struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
}

// Speed returns the magnitude of the ball velocity.
func (b Ball) Speed() float64 {
	return b.Vel.Len()
}

// Move integrates the ball one tick.
func (b *Ball) Move(speedScale float64) {
	b.Pos = Integrate(b.Pos, b.Vel, speedScale)
}

// Paddle is a box steered along a single axis.
type Paddle struct {
	Pos   Vec2 // top-left corner
	W, H  float64
	Speed float64
}

// Rect returns the paddle bounds.
func (p Paddle) Rect() RectF {
	return RectF{X: p.Pos.X, Y: p.Pos.Y, W: p.W, H: p.H}
}

// CenterX returns the horizontal center of the paddle.
func (p Paddle) CenterX() float64 {
	return p.Pos.X + p.W/2
}

// CenterY returns the vertical center of the paddle.
func (p Paddle) CenterY() float64 {
	return p.Pos.Y + p.H/2
}

// ClampY keeps the paddle inside [top, bottom-H].
func (p *Paddle) ClampY(top, bottom float64) {
	p.Pos.Y = ClampF(p.Pos.Y, top, bottom-p.H)
}

// ClampX keeps the paddle inside [left, right-W].
func (p *Paddle) ClampX(left, right float64) {
	p.Pos.X = ClampF(p.Pos.X, left, right-p.W)
}

// Track moves the paddle centre by at most step along one axis towards
// target. It holds still while the gap is within step.
func Track(center, target, step float64) float64 {
	diff := target - center
	switch {
	case diff > step:
		return step
	case diff < -step:
		return -step
	}
	return 0
}

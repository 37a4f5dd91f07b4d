package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestRectFIntersects(t *testing.T) {
	a := RectF{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    RectF
		want bool
	}{
		{"overlap", RectF{X: 5, Y: 5, W: 10, H: 10}, true},
		{"inside", RectF{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching edge", RectF{X: 10, Y: 0, W: 5, H: 5}, false},
		{"apart", RectF{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, expected %v", got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("Intersects is not symmetric")
			}
		})
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	r := RectF{X: 0, Y: 0, W: 4, H: 2}
	tests := []struct {
		name   string
		center Vec2
		radius float64
		want   bool
	}{
		{"centre inside", V(2, 1), 0.5, true},
		{"touching side", V(4.5, 1), 0.5, true},
		{"clear of side", V(4.6, 1), 0.5, false},
		{"near corner but outside", V(4.4, 2.4), 0.5, false},
		{"corner within radius", V(4.3, 2.3), 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleIntersectsRect(tt.center, tt.radius, r); got != tt.want {
				t.Errorf("CircleIntersectsRect(%v) = %v, expected %v", tt.center, got, tt.want)
			}
		})
	}
}

func TestPenetrationAxis(t *testing.T) {
	brick := RectF{X: 10, Y: 10, W: 8, H: 2}
	tests := []struct {
		name   string
		center Vec2
		want   Axis
	}{
		// dx/w = 4.5/8 = 0.5625, dy/h = 0.5/2 = 0.25
		{"side hit", V(18.5, 11.5), AxisHorizontal},
		// dx/w = 1/8, dy/h = 1.5/2
		{"top hit", V(15, 9.5), AxisVertical},
		// dx/w = 4/8 = 0.5, dy/h = 1/2 = 0.5
		{"exact tie", V(18, 12), AxisVertical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PenetrationAxis(tt.center, brick); got != tt.want {
				t.Errorf("PenetrationAxis = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestBounceAngle(t *testing.T) {
	if a := BounceAngle(50, 0, 100); a != 0 {
		t.Errorf("centre hit angle = %v, expected 0", a)
	}
	if a := BounceAngle(100, 0, 100); !near(a, BounceSpread/2) {
		t.Errorf("bottom edge angle = %v, expected %v", a, BounceSpread/2)
	}
	if a := BounceAngle(0, 0, 100); !near(a, -BounceSpread/2) {
		t.Errorf("top edge angle = %v, expected %v", a, -BounceSpread/2)
	}
	if a := BounceAngle(500, 0, 100); !near(a, BounceSpread/2) {
		t.Error("contact beyond the paddle should clamp to the edge")
	}
}

func TestDeflectCentreHitIsStraight(t *testing.T) {
	v := Deflect(BounceAngle(50, 0, 100), 2, V(1, 0))
	if v.X != 2 || v.Y != 0 {
		t.Errorf("Deflect = %v, expected (2, 0)", v)
	}

	up := Deflect(0, 1, V(0, -1))
	if !near(up.X, 0) || !near(up.Y, -1) {
		t.Errorf("Deflect up = %v, expected (0, -1)", up)
	}
}

func TestDeflectKeepsSpeed(t *testing.T) {
	for _, angle := range []float64{-0.5, -0.1, 0.3, BounceSpread / 2} {
		v := Deflect(angle, 1.7, V(-1, 0))
		if !near(v.Len(), 1.7) {
			t.Errorf("angle %v: speed = %v, expected 1.7", angle, v.Len())
		}
		if v.X >= 0 {
			t.Errorf("angle %v: X = %v, expected travel along the normal", angle, v.X)
		}
	}
}

func TestGrowSpeed(t *testing.T) {
	if got := GrowSpeed(1, 1.05, 2); !near(got, 1.05) {
		t.Errorf("GrowSpeed = %v, expected 1.05", got)
	}
	if got := GrowSpeed(1.99, 1.05, 2); got != 2 {
		t.Errorf("GrowSpeed = %v, expected the cap", got)
	}
	if got := GrowSpeed(10, 2, 0); got != 20 {
		t.Errorf("GrowSpeed without cap = %v, expected 20", got)
	}
}

func TestReflect(t *testing.T) {
	b := Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 5}

	pos, vel, hit := Reflect(V(-1, 3), V(-2, 1), b, 1)
	if pos.X != 0 || vel.X != 2 || vel.Y != 1 || !hit.Has(WallLeft) {
		t.Errorf("left wall: pos=%v vel=%v hit=%v", pos, vel, hit)
	}

	pos, vel, hit = Reflect(V(11, 6), V(1, 2), b, 0.5)
	if pos != V(10, 5) || vel != V(-0.5, -1) {
		t.Errorf("corner: pos=%v vel=%v", pos, vel)
	}
	if !hit.Has(WallRight) || !hit.Has(WallBottom) {
		t.Errorf("corner: hit=%v, expected right and bottom", hit)
	}

	_, vel, hit = Reflect(V(-1, 2), V(3, 0), b, 1)
	if vel.X != 3 || !hit.Any() {
		t.Error("velocity already pointing inside must not flip")
	}

	_, _, hit = Reflect(V(5, 2), V(1, 1), b, 1)
	if hit.Any() {
		t.Error("inside the bounds nothing is hit")
	}
}

func TestVec2(t *testing.T) {
	v := V(3, 4)
	if v.Len() != 5 {
		t.Errorf("Len = %v, expected 5", v.Len())
	}
	if n := v.Normalize(); !near(n.Len(), 1) {
		t.Errorf("Normalize length = %v", n.Len())
	}
	if (Vec2{}).Normalize() != (Vec2{}) {
		t.Error("zero vector should normalise to zero")
	}
	if w := v.WithLen(10); !near(w.X, 6) || !near(w.Y, 8) {
		t.Errorf("WithLen = %v", w)
	}
	x, y := V(2.7, -0.2).Cell()
	if x != 2 || y != -1 {
		t.Errorf("Cell = (%d, %d), expected (2, -1)", x, y)
	}
}

func TestTrack(t *testing.T) {
	if Track(10, 10.4, 0.5) != 0 {
		t.Error("gap within step should hold still")
	}
	if Track(10, 20, 0.5) != 0.5 || Track(10, 0, 0.5) != -0.5 {
		t.Error("Track should move by step towards the target")
	}
}

func TestPaddleClamp(t *testing.T) {
	p := Paddle{Pos: V(2, -3), W: 1, H: 5}
	p.ClampY(1, 24)
	if p.Pos.Y != 1 {
		t.Errorf("Y = %v, expected 1", p.Pos.Y)
	}
	p.Pos.Y = 30
	p.ClampY(1, 24)
	if p.Pos.Y != 19 {
		t.Errorf("Y = %v, expected 19", p.Pos.Y)
	}
}

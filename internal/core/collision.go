package core

import "math"

// BounceSpread scales the paddle hit position (0..1, centred on 0.5) into an
// outgoing angle relative to the paddle normal.
const BounceSpread = math.Pi / 3

// Axis names one velocity component.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Integrate advances pos by vel scaled by speedScale.
func Integrate(pos, vel Vec2, speedScale float64) Vec2 {
	return pos.Add(vel.Scale(speedScale))
}

// Bounds is the box a moving point is kept inside, edges included.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// WallHit is a bit set of the walls touched by Reflect.
type WallHit uint8

const (
	WallLeft WallHit = 1 << iota
	WallRight
	WallTop
	WallBottom
)

// Has reports whether any wall in w was hit.
func (h WallHit) Has(w WallHit) bool {
	return h&w != 0
}

// Any reports whether at least one wall was touched.
func (h WallHit) Any() bool {
	return h != 0
}

// Reflect clamps pos back inside b and turns the velocity component of every
// crossed wall around, scaled by elasticity (1 keeps the full speed).
// A component already pointing back inside is left alone, so an entity that
// sits on a wall is never flipped twice.
func Reflect(pos, vel Vec2, b Bounds, elasticity float64) (Vec2, Vec2, WallHit) {
	var hit WallHit
	if pos.X < b.MinX {
		pos.X = b.MinX
		if vel.X < 0 {
			vel.X = -vel.X * elasticity
		}
		hit |= WallLeft
	} else if pos.X > b.MaxX {
		pos.X = b.MaxX
		if vel.X > 0 {
			vel.X = -vel.X * elasticity
		}
		hit |= WallRight
	}
	if pos.Y < b.MinY {
		pos.Y = b.MinY
		if vel.Y < 0 {
			vel.Y = -vel.Y * elasticity
		}
		hit |= WallTop
	} else if pos.Y > b.MaxY {
		pos.Y = b.MaxY
		if vel.Y > 0 {
			vel.Y = -vel.Y * elasticity
		}
		hit |= WallBottom
	}
	return pos, vel, hit
}

// CircleIntersectsRect tests a circle against a box using the closest point
// of the box to the circle centre.
func CircleIntersectsRect(center Vec2, radius float64, r RectF) bool {
	cx := ClampF(center.X, r.X, r.Right())
	cy := ClampF(center.Y, r.Y, r.Bottom())
	dx := center.X - cx
	dy := center.Y - cy
	return dx*dx+dy*dy <= radius*radius
}

// PenetrationAxis picks the velocity component to invert after a ball hits a
// box. Offsets from the box centre are normalised by the box size; the larger
// one is the side that was struck. Exact ties resolve to vertical.
func PenetrationAxis(center Vec2, r RectF) Axis {
	c := r.Center()
	dx := math.Abs(center.X-c.X) / r.W
	dy := math.Abs(center.Y-c.Y) / r.H
	if dx > dy {
		return AxisHorizontal
	}
	return AxisVertical
}

// BounceAngle maps a contact coordinate on a paddle spanning
// [origin, origin+extent] to an outgoing angle. The centre returns 0; the
// edges return ±BounceSpread/2.
func BounceAngle(contact, origin, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	hit := ClampF((contact-origin)/extent, 0, 1)
	return (hit - 0.5) * BounceSpread
}

// Deflect builds an outgoing velocity of the given speed along normal,
// rotated by angle towards the positive tangent. normal must be one of the
// four axis unit vectors.
func Deflect(angle, speed float64, normal Vec2) Vec2 {
	tangent := Vec2{X: math.Abs(normal.Y), Y: math.Abs(normal.X)}
	return normal.Scale(math.Cos(angle) * speed).Add(tangent.Scale(math.Sin(angle) * speed))
}

// GrowSpeed multiplies speed by factor and caps it at limit. A non-positive
// limit disables the cap.
func GrowSpeed(speed, factor, limit float64) float64 {
	next := speed * factor
	if limit > 0 && next > limit {
		return limit
	}
	return next
}

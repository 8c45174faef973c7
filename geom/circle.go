package geom

import (
	"errors"
	"math"
)

// Construction errors for geometry primitives. Validation happens at
// construction so that per-scanline queries can stay unguarded.
var (
	// ErrNegativeRadius reports a circle constructed with a negative radius.
	ErrNegativeRadius = errors.New("geom: negative radius")
	// ErrNonPositiveRadius reports a stadium constructed with a radius <= 0.
	ErrNonPositiveRadius = errors.New("geom: radius must be positive")
)

// Circle is a circle given by center and radius.
// A radius of zero is a valid, degenerate circle.
type Circle struct {
	Center Vec2
	Radius float64
}

// NewCircle returns a circle with the given center and radius.
// A negative radius is rejected.
func NewCircle(center Vec2, radius float64) (Circle, error) {
	if radius < 0 {
		return Circle{}, ErrNegativeRadius
	}
	return Circle{Center: center, Radius: radius}, nil
}

// IntersectHLine returns the x-range where the horizontal line at y crosses
// the circle. ok is false when the line misses the circle entirely.
func (c Circle) IntersectHLine(y float64) (x0, x1 float64, ok bool) {
	dy := y - c.Center.Y
	d := c.Radius*c.Radius - dy*dy
	if d < 0 {
		return 0, 0, false
	}
	r := math.Sqrt(d)
	return c.Center.X - r, c.Center.X + r, true
}

// IntersectVLine returns the y-range where the vertical line at x crosses
// the circle. ok is false when the line misses the circle entirely.
func (c Circle) IntersectVLine(x float64) (y0, y1 float64, ok bool) {
	dx := x - c.Center.X
	d := c.Radius*c.Radius - dx*dx
	if d < 0 {
		return 0, 0, false
	}
	r := math.Sqrt(d)
	return c.Center.Y - r, c.Center.Y + r, true
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p Vec2) bool {
	return p.Sub(c.Center).LengthSq() <= c.Radius*c.Radius
}

// DistanceFromCenter returns the distance from p to the circle's center.
func (c Circle) DistanceFromCenter(p Vec2) float64 {
	return p.Sub(c.Center).Length()
}

// PointAt returns the point on the perimeter at the given CCW angle.
func (c Circle) PointAt(angle float64) Vec2 {
	return Vec2{
		X: c.Center.X + c.Radius*math.Cos(angle),
		Y: c.Center.Y + c.Radius*math.Sin(angle),
	}
}

// Area returns the area of the circle.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Circumference returns the perimeter length of the circle.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

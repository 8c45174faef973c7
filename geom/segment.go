package geom

import "math"

// Segment is a bounded 2D line between two endpoints.
// The length is computed at construction and cached, since distance queries
// reuse it for every pixel of a scanline.
type Segment struct {
	P1, P2 Vec2

	length float64
}

// NewSegment returns the segment from p1 to p2.
func NewSegment(p1, p2 Vec2) Segment {
	return Segment{P1: p1, P2: p2, length: p2.Sub(p1).Length()}
}

// Length returns the cached segment length.
func (s Segment) Length() float64 {
	return s.length
}

// Vec returns the direction vector from P1 to P2.
func (s Segment) Vec() Vec2 {
	return s.P2.Sub(s.P1)
}

// Midpoint returns the point halfway between the endpoints.
func (s Segment) Midpoint() Vec2 {
	return s.P1.Add(s.P2).Div(2)
}

// IsDegenerate reports whether both endpoints coincide.
func (s Segment) IsDegenerate() bool {
	return s.P1 == s.P2
}

// IsHorizontal reports whether the segment is parallel to the x-axis.
func (s Segment) IsHorizontal() bool {
	return s.P1.Y == s.P2.Y && s.P1.X != s.P2.X
}

// IsVertical reports whether the segment is parallel to the y-axis.
func (s Segment) IsVertical() bool {
	return s.P1.X == s.P2.X && s.P1.Y != s.P2.Y
}

// DistanceTo returns the unsigned distance from p to the closest point on
// the segment. If the scalar projection of p falls within the segment the
// closest point is interior and the perpendicular distance applies;
// otherwise it is one of the endpoints.
func (s Segment) DistanceTo(p Vec2) float64 {
	if s.IsDegenerate() {
		return p.DistanceTo(s.P1)
	}
	w := p.Sub(s.P1)
	t := w.Dot(s.Vec()) / s.length
	switch {
	case t <= 0:
		return w.Length()
	case t >= s.length:
		return p.DistanceTo(s.P2)
	}
	// Pythagorean subtraction; the clamp absorbs rounding error when p is
	// almost exactly on the segment.
	d := w.LengthSq() - t*t
	if d < 0 {
		d = 0
	}
	return math.Sqrt(d)
}

// SignedDistanceTo returns the distance from p to the segment, negated when
// p lies on the clockwise side of the direction vector.
func (s Segment) SignedDistanceTo(p Vec2) float64 {
	d := s.DistanceTo(p)
	if s.Vec().Cross(p.Sub(s.P1)) < 0 {
		return -d
	}
	return d
}

// Intersect returns the intersection point of two segments.
// The 2x2 parametric system is solved for both parameters; a zero
// determinant (parallel segments) or a parameter outside [0, 1] reports no
// intersection.
func (s Segment) Intersect(other Segment) (Vec2, bool) {
	d1 := s.Vec()
	d2 := other.Vec()
	det := d1.Cross(d2)
	if math.Abs(det) < lineEpsilon {
		return Vec2{}, false
	}
	w := other.P1.Sub(s.P1)
	t1 := w.Cross(d2) / det
	t2 := w.Cross(d1) / det
	if t1 < 0 || t1 > 1 || t2 < 0 || t2 > 1 {
		return Vec2{}, false
	}
	return s.P1.Add(d1.Mul(t1)), true
}

// IntersectLine returns the point where the segment crosses an infinite
// line, or false when the segment misses it or runs parallel to it.
func (s Segment) IntersectLine(l Line2D) (Vec2, bool) {
	p, ok := intersectLines(NewLineFromPoints(s.P1, s.P2), l)
	if !ok {
		return Vec2{}, false
	}
	if !s.Contains(p) {
		return Vec2{}, false
	}
	return p, true
}

// Contains reports whether p, assumed to lie on the segment's carrier line,
// falls between the endpoints. Membership is tested by bounding both
// squared endpoint distances by the squared length.
func (s Segment) Contains(p Vec2) bool {
	lenSq := s.length * s.length
	return p.Sub(s.P1).LengthSq() <= lenSq && p.Sub(s.P2).LengthSq() <= lenSq
}

// PointAtX returns the point on the segment with the given x coordinate.
// Vertical and degenerate segments have no unique such point and report
// false, as does an x beyond the segment's extent.
func (s Segment) PointAtX(x float64) (Vec2, bool) {
	dx := s.P2.X - s.P1.X
	if dx == 0 {
		return Vec2{}, false
	}
	t := (x - s.P1.X) / dx
	p := Vec2{X: x, Y: s.P1.Y + t*(s.P2.Y-s.P1.Y)}
	if !s.Contains(p) {
		return Vec2{}, false
	}
	return p, true
}

// PointAtY returns the point on the segment with the given y coordinate.
// Horizontal and degenerate segments report false, as does a y beyond the
// segment's extent.
func (s Segment) PointAtY(y float64) (Vec2, bool) {
	dy := s.P2.Y - s.P1.Y
	if dy == 0 {
		return Vec2{}, false
	}
	t := (y - s.P1.Y) / dy
	p := Vec2{X: s.P1.X + t*(s.P2.X-s.P1.X), Y: y}
	if !s.Contains(p) {
		return Vec2{}, false
	}
	return p, true
}

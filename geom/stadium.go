package geom

import (
	"math"
	"sort"
)

// Stadium is a capsule: the set of points within Radius of the axis segment
// from P1 to P2 (the Minkowski sum of a segment and a disc).
type Stadium struct {
	P1, P2 Vec2
	Radius float64

	axis Segment
}

// NewStadium returns a stadium with the given axis endpoints and radius.
// The radius must be strictly positive.
func NewStadium(p1, p2 Vec2, radius float64) (Stadium, error) {
	if radius <= 0 {
		return Stadium{}, ErrNonPositiveRadius
	}
	return Stadium{P1: p1, P2: p2, Radius: radius, axis: NewSegment(p1, p2)}, nil
}

// Axis returns the stadium's axis segment.
func (s Stadium) Axis() Segment {
	return s.axis
}

// Contains reports whether p lies inside or on the stadium, i.e. whether
// the unsigned distance from p to the axis segment is at most the radius.
func (s Stadium) Contains(p Vec2) bool {
	return s.axis.DistanceTo(p) <= s.Radius
}

// Bounds returns the bounding box of the stadium.
func (s Stadium) Bounds() (minX, minY, maxX, maxY float64) {
	minX = math.Min(s.P1.X, s.P2.X) - s.Radius
	maxX = math.Max(s.P1.X, s.P2.X) + s.Radius
	minY = math.Min(s.P1.Y, s.P2.Y) - s.Radius
	maxY = math.Max(s.P1.Y, s.P2.Y) + s.Radius
	return minX, minY, maxX, maxY
}

// edges returns the two straight sides of the stadium: the axis segment
// offset by ±Radius along its perpendicular. A degenerate axis has no
// usable sides; the end caps cover the whole shape.
func (s Stadium) edges() (Segment, Segment, bool) {
	v := s.axis.Vec()
	if v.IsZero() {
		return Segment{}, Segment{}, false
	}
	offset := v.Perp().Normalize().Mul(s.Radius)
	return NewSegment(s.P1.Add(offset), s.P2.Add(offset)),
		NewSegment(s.P1.Sub(offset), s.P2.Sub(offset)), true
}

// IntersectHLine returns the x-range where the horizontal line at y crosses
// the stadium. Up to six candidate crossings are gathered (two per end cap,
// one per straight side); fewer than two valid candidates means the line
// misses or merely grazes the shape.
func (s Stadium) IntersectHLine(y float64) (x0, x1 float64, ok bool) {
	var candidates []float64

	if cx0, cx1, ok := (Circle{Center: s.P1, Radius: s.Radius}).IntersectHLine(y); ok {
		candidates = append(candidates, cx0, cx1)
	}
	if cx0, cx1, ok := (Circle{Center: s.P2, Radius: s.Radius}).IntersectHLine(y); ok {
		candidates = append(candidates, cx0, cx1)
	}
	if e1, e2, ok := s.edges(); ok {
		if p, ok := e1.PointAtY(y); ok {
			candidates = append(candidates, p.X)
		}
		if p, ok := e2.PointAtY(y); ok {
			candidates = append(candidates, p.X)
		}
	}

	if len(candidates) < 2 {
		return 0, 0, false
	}
	sort.Float64s(candidates)
	return candidates[0], candidates[len(candidates)-1], true
}

// IntersectVLine returns the y-range where the vertical line at x crosses
// the stadium.
func (s Stadium) IntersectVLine(x float64) (y0, y1 float64, ok bool) {
	var candidates []float64

	if cy0, cy1, ok := (Circle{Center: s.P1, Radius: s.Radius}).IntersectVLine(x); ok {
		candidates = append(candidates, cy0, cy1)
	}
	if cy0, cy1, ok := (Circle{Center: s.P2, Radius: s.Radius}).IntersectVLine(x); ok {
		candidates = append(candidates, cy0, cy1)
	}
	if e1, e2, ok := s.edges(); ok {
		if p, ok := e1.PointAtX(x); ok {
			candidates = append(candidates, p.Y)
		}
		if p, ok := e2.PointAtX(x); ok {
			candidates = append(candidates, p.Y)
		}
	}

	if len(candidates) < 2 {
		return 0, 0, false
	}
	sort.Float64s(candidates)
	return candidates[0], candidates[len(candidates)-1], true
}

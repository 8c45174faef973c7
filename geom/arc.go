package geom

import "math"

const twoPi = 2 * math.Pi

// Arc is a circle restricted to an angular window. Angles are in radians,
// measured counter-clockwise from the positive x-axis.
//
// The constructor normalizes the window: a negative sweep is converted to a
// positive one by shifting the start angle, the start angle is folded into
// [0, 2π), and a sweep of 2π or more covers the full circle.
type Arc struct {
	Circle Circle
	Start  float64
	Sweep  float64
}

// NewArc returns a normalized arc over the given circle.
func NewArc(c Circle, start, sweep float64) Arc {
	if sweep < 0 {
		start += sweep
		sweep = -sweep
	}
	start = normalizeAngle(start)
	if sweep >= twoPi {
		sweep = twoPi
	}
	return Arc{Circle: c, Start: start, Sweep: sweep}
}

// normalizeAngle folds an angle into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// IsFullCircle reports whether the arc covers the whole circle.
func (a Arc) IsFullCircle() bool {
	return a.Sweep >= twoPi
}

// AngleInRange reports whether the given angle (folded into [0, 2π)) lies
// within the arc's angular window. Windows that wrap past 2π are handled by
// testing both sides of the seam.
func (a Arc) AngleInRange(angle float64) bool {
	if a.IsFullCircle() {
		return true
	}
	angle = normalizeAngle(angle)
	end := a.Start + a.Sweep
	if end > twoPi {
		return angle >= a.Start || angle <= end-twoPi
	}
	return angle >= a.Start && angle <= end
}

// StartPoint returns the arc endpoint at the start angle.
func (a Arc) StartPoint() Vec2 {
	return a.Circle.PointAt(a.Start)
}

// EndPoint returns the arc endpoint at the end of the sweep.
func (a Arc) EndPoint() Vec2 {
	return a.Circle.PointAt(a.Start + a.Sweep)
}

// Bounds returns the bounding box of the arc. A circle extreme applies when
// the corresponding cardinal angle lies within the window; otherwise the
// extreme comes from the closer of the two endpoints.
func (a Arc) Bounds() (minX, minY, maxX, maxY float64) {
	p1 := a.StartPoint()
	p2 := a.EndPoint()
	c := a.Circle

	if a.AngleInRange(0) {
		maxX = c.Center.X + c.Radius
	} else {
		maxX = math.Max(p1.X, p2.X)
	}
	if a.AngleInRange(math.Pi / 2) {
		maxY = c.Center.Y + c.Radius
	} else {
		maxY = math.Max(p1.Y, p2.Y)
	}
	if a.AngleInRange(math.Pi) {
		minX = c.Center.X - c.Radius
	} else {
		minX = math.Min(p1.X, p2.X)
	}
	if a.AngleInRange(3 * math.Pi / 2) {
		minY = c.Center.Y - c.Radius
	} else {
		minY = math.Min(p1.Y, p2.Y)
	}
	return minX, minY, maxX, maxY
}

// IntersectHLine returns the x-range where the horizontal line at y crosses
// the arc. Circle roots whose angle falls outside the arc's window are
// discarded; ok is false when no root survives.
func (a Arc) IntersectHLine(y float64) (x0, x1 float64, ok bool) {
	cx0, cx1, ok := a.Circle.IntersectHLine(y)
	if !ok {
		return 0, 0, false
	}
	return a.clipRoots(V2(cx0, y), V2(cx1, y), cx0, cx1)
}

// IntersectVLine returns the y-range where the vertical line at x crosses
// the arc.
func (a Arc) IntersectVLine(x float64) (y0, y1 float64, ok bool) {
	cy0, cy1, ok := a.Circle.IntersectVLine(x)
	if !ok {
		return 0, 0, false
	}
	return a.clipRoots(V2(x, cy0), V2(x, cy1), cy0, cy1)
}

// clipRoots keeps the circle roots whose perimeter angle lies in the arc's
// window and returns the surviving min/max coordinate values.
func (a Arc) clipRoots(p0, p1 Vec2, v0, v1 float64) (float64, float64, bool) {
	in0 := a.AngleInRange(p0.Sub(a.Circle.Center).CCWAngle())
	in1 := a.AngleInRange(p1.Sub(a.Circle.Center).CCWAngle())
	switch {
	case in0 && in1:
		return v0, v1, true
	case in0:
		return v0, v0, true
	case in1:
		return v1, v1, true
	}
	return 0, 0, false
}

// DistanceTo returns the distance from p to the closest point on the arc.
// When p's angle lies within the window the closest point is on the swept
// perimeter; otherwise it is one of the two endpoints.
func (a Arc) DistanceTo(p Vec2) float64 {
	v := p.Sub(a.Circle.Center)
	if a.AngleInRange(v.CCWAngle()) {
		return math.Abs(a.Circle.Radius - v.Length())
	}
	return math.Min(p.DistanceTo(a.StartPoint()), p.DistanceTo(a.EndPoint()))
}

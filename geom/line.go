package geom

import "math"

// lineEpsilon is the tolerance used for algebraic zero tests on line
// equations (point membership, parallelism).
const lineEpsilon = 1e-9

// Line2D is the capability interface shared by the two line
// representations. A line is degenerate when both direction coefficients
// are zero; degenerate lines must be detected by callers before operations
// that divide by a coefficient.
type Line2D interface {
	// IsHorizontal reports whether the line is parallel to the x-axis.
	IsHorizontal() bool
	// IsVertical reports whether the line is parallel to the y-axis.
	IsVertical() bool
	// IsDegenerate reports whether the line equation describes no line
	// at all (A == 0 and B == 0).
	IsDegenerate() bool
	// ContainsPoint reports whether the point satisfies the line equation.
	ContainsPoint(p Vec2) bool
	// Coefficients returns the (A, B, C) of Ax + By + C = 0.
	Coefficients() (a, b, c float64)
}

// Line is a 2D line in general form: Ax + By + C = 0.
// The coefficients are not normalized; construction is cheap but repeated
// distance queries pay a square root. Use UnitLine when the same line is
// queried many times.
type Line struct {
	A, B, C float64
}

// NewLineFromPoints returns the line through p1 and p2.
// If p1 == p2 the result is degenerate.
func NewLineFromPoints(p1, p2 Vec2) Line {
	a := p2.Y - p1.Y
	b := p1.X - p2.X
	return Line{A: a, B: b, C: -(a*p1.X + b*p1.Y)}
}

// IsHorizontal reports whether the line is parallel to the x-axis.
func (l Line) IsHorizontal() bool {
	return l.A == 0 && l.B != 0
}

// IsVertical reports whether the line is parallel to the y-axis.
func (l Line) IsVertical() bool {
	return l.B == 0 && l.A != 0
}

// IsDegenerate reports whether both direction coefficients are zero.
func (l Line) IsDegenerate() bool {
	return l.A == 0 && l.B == 0
}

// ContainsPoint reports whether p satisfies the line equation within
// tolerance.
func (l Line) ContainsPoint(p Vec2) bool {
	return math.Abs(l.A*p.X+l.B*p.Y+l.C) < lineEpsilon
}

// Coefficients returns the raw (A, B, C) coefficients.
func (l Line) Coefficients() (a, b, c float64) {
	return l.A, l.B, l.C
}

// XAt returns the x coordinate of the line at the given y.
// The caller must check IsVertical-ness via A != 0 first: a horizontal or
// degenerate line has no unique x and the division is undefined.
func (l Line) XAt(y float64) float64 {
	return -(l.B*y + l.C) / l.A
}

// YAt returns the y coordinate of the line at the given x.
// The caller must ensure B != 0 first.
func (l Line) YAt(x float64) float64 {
	return -(l.A*x + l.C) / l.B
}

// Intersect returns the intersection point with another line.
// Parallel lines, including coincident ones, report no intersection.
func (l Line) Intersect(other Line2D) (Vec2, bool) {
	return intersectLines(l, other)
}

// SignedDistance returns the signed perpendicular distance from p to the
// line. The sign follows the direction of the normal (A, B).
func (l Line) SignedDistance(p Vec2) float64 {
	return (l.A*p.X + l.B*p.Y + l.C) / math.Hypot(l.A, l.B)
}

// IntersectsCircle reports whether the line passes through the circle.
func (l Line) IntersectsCircle(c Circle) bool {
	return math.Abs(l.SignedDistance(c.Center)) <= c.Radius
}

// Project returns the closest point on the line to p.
func (l Line) Project(p Vec2) Vec2 {
	return l.Normalize().Project(p)
}

// ReflectPoint returns p mirrored across the line.
func (l Line) ReflectPoint(p Vec2) Vec2 {
	return l.Normalize().ReflectPoint(p)
}

// ReflectionMatrix returns the affine transform that mirrors points across
// the line.
func (l Line) ReflectionMatrix() Matrix {
	return l.Normalize().ReflectionMatrix()
}

// Normalize returns the same line with a unit normal.
func (l Line) Normalize() UnitLine {
	return NewUnitLine(l.A, l.B, l.C)
}

// UnitLine is a 2D line in normalized general form: Ax + By + C = 0 with
// A² + B² = 1. Signed distance queries are a single fused multiply-add,
// which matters when the same line is tested against every pixel of a row.
type UnitLine struct {
	A, B, C float64
}

// NewUnitLine builds a normalized line from raw general-form coefficients.
// Zero direction coefficients produce a degenerate line.
func NewUnitLine(a, b, c float64) UnitLine {
	n := math.Hypot(a, b)
	if n == 0 {
		return UnitLine{A: 0, B: 0, C: c}
	}
	return UnitLine{A: a / n, B: b / n, C: c / n}
}

// NewUnitLineFromPoints returns the normalized line through p1 and p2.
func NewUnitLineFromPoints(p1, p2 Vec2) UnitLine {
	l := NewLineFromPoints(p1, p2)
	return NewUnitLine(l.A, l.B, l.C)
}

// IsHorizontal reports whether the line is parallel to the x-axis.
func (l UnitLine) IsHorizontal() bool {
	return l.A == 0 && l.B != 0
}

// IsVertical reports whether the line is parallel to the y-axis.
func (l UnitLine) IsVertical() bool {
	return l.B == 0 && l.A != 0
}

// IsDegenerate reports whether both direction coefficients are zero.
func (l UnitLine) IsDegenerate() bool {
	return l.A == 0 && l.B == 0
}

// ContainsPoint reports whether p satisfies the line equation within
// tolerance.
func (l UnitLine) ContainsPoint(p Vec2) bool {
	return math.Abs(l.A*p.X+l.B*p.Y+l.C) < lineEpsilon
}

// Coefficients returns the normalized (A, B, C) coefficients.
func (l UnitLine) Coefficients() (a, b, c float64) {
	return l.A, l.B, l.C
}

// XAt returns the x coordinate of the line at the given y.
// The caller must ensure A != 0 first.
func (l UnitLine) XAt(y float64) float64 {
	return -(l.B*y + l.C) / l.A
}

// YAt returns the y coordinate of the line at the given x.
// The caller must ensure B != 0 first.
func (l UnitLine) YAt(x float64) float64 {
	return -(l.A*x + l.C) / l.B
}

// Intersect returns the intersection point with another line.
// Parallel lines, including coincident ones, report no intersection.
func (l UnitLine) Intersect(other Line2D) (Vec2, bool) {
	return intersectLines(l, other)
}

// SignedDistance returns the signed perpendicular distance from p to the
// line. The normal is already unit length, so this is a single evaluation
// of the line equation.
func (l UnitLine) SignedDistance(p Vec2) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}

// IntersectsCircle reports whether the line passes through the circle.
func (l UnitLine) IntersectsCircle(c Circle) bool {
	return math.Abs(l.SignedDistance(c.Center)) <= c.Radius
}

// Project returns the closest point on the line to p.
func (l UnitLine) Project(p Vec2) Vec2 {
	d := l.SignedDistance(p)
	return Vec2{X: p.X - d*l.A, Y: p.Y - d*l.B}
}

// ReflectPoint returns p mirrored across the line.
func (l UnitLine) ReflectPoint(p Vec2) Vec2 {
	d := 2 * l.SignedDistance(p)
	return Vec2{X: p.X - d*l.A, Y: p.Y - d*l.B}
}

// ReflectionMatrix returns the affine transform that mirrors points across
// the line, for composition with other transforms.
func (l UnitLine) ReflectionMatrix() Matrix {
	return Matrix{
		A: 1 - 2*l.A*l.A, B: -2 * l.A * l.B, C: -2 * l.A * l.C,
		D: -2 * l.A * l.B, E: 1 - 2*l.B*l.B, F: -2 * l.B * l.C,
	}
}

// intersectLines solves the 2x2 system formed by two line equations.
// A zero determinant means the lines are parallel or coincident; both
// cases report no intersection.
func intersectLines(l1, l2 Line2D) (Vec2, bool) {
	a1, b1, c1 := l1.Coefficients()
	a2, b2, c2 := l2.Coefficients()

	det := a1*b2 - a2*b1
	if math.Abs(det) < lineEpsilon {
		return Vec2{}, false
	}
	return Vec2{
		X: (b1*c2 - b2*c1) / det,
		Y: (a2*c1 - a1*c2) / det,
	}, true
}

package geom

import "math"

// Vec2 represents a 2D vector or point.
// It is a value type: every operation returns a new value.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (the z-component of the 3D cross
// product with z=0). Useful for determining turn direction.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// DistanceTo returns the distance between two points.
func (v Vec2) DistanceTo(w Vec2) float64 {
	return v.Sub(w).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Rotate returns the vector rotated by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// CCWAngle returns the counter-clockwise angle from the positive x-axis,
// normalized to [0, 2π). The zero vector returns 0.
//
// The angle is computed by quadrant dispatch rather than math.Atan2 so that
// axis-aligned vectors map exactly onto the cardinal angles.
func (v Vec2) CCWAngle() float64 {
	switch {
	case v.X == 0 && v.Y == 0:
		return 0
	case v.X == 0:
		if v.Y > 0 {
			return math.Pi / 2
		}
		return 3 * math.Pi / 2
	case v.Y == 0:
		if v.X > 0 {
			return 0
		}
		return math.Pi
	}

	a := math.Atan(v.Y / v.X)
	switch {
	case v.X < 0:
		// Quadrants II and III.
		return a + math.Pi
	case v.Y < 0:
		// Quadrant IV.
		return a + 2*math.Pi
	}
	return a
}

// ScalarProject returns the scalar projection of v onto w.
// w must be non-zero.
func (v Vec2) ScalarProject(w Vec2) float64 {
	return v.Dot(w) / w.Length()
}

// Project returns the vector projection of v onto w.
// w must be non-zero.
func (v Vec2) Project(w Vec2) Vec2 {
	return w.Mul(v.Dot(w) / w.LengthSq())
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

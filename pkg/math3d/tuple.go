// Package math3d provides the homogeneous tuple algebra used by the tracer.
package math3d

import (
	"fmt"
	"math"
)

// Tuple represents a homogeneous 3D coordinate.
// W = 1 marks a point, W = 0 marks a vector.
type Tuple struct {
	X, Y, Z, W float64
}

// T creates a new Tuple.
func T(x, y, z, w float64) Tuple {
	return Tuple{x, y, z, w}
}

// Point creates a Tuple with W = 1.
func Point(x, y, z float64) Tuple {
	return Tuple{x, y, z, 1}
}

// Vector creates a Tuple with W = 0.
func Vector(x, y, z float64) Tuple {
	return Tuple{x, y, z, 0}
}

// Origin returns the point (0, 0, 0).
func Origin() Tuple {
	return Point(0, 0, 0)
}

// IsPoint reports whether W is 1 within Epsilon.
func (t Tuple) IsPoint() bool {
	return ApproxEqual(t.W, 1)
}

// IsVector reports whether W is 0 within Epsilon.
func (t Tuple) IsVector() bool {
	return ApproxEqual(t.W, 0)
}

// Equal reports whether every component of a and b differs by less than
// Epsilon.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Tuple) Equal(b Tuple) bool {
	return ApproxEqual(a.X, b.X) &&
		ApproxEqual(a.Y, b.Y) &&
		ApproxEqual(a.Z, b.Z) &&
		ApproxEqual(a.W, b.W)
}

// Add returns the component-wise sum a + b, W included.
// point + vector is a point, vector + vector is a vector.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a Tuple) Add(b Tuple) Tuple {
	return Tuple{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the component-wise difference a - b, W included.
// point - point is a vector, point - vector is a point.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Tuple) Sub(b Tuple) Tuple {
	return Tuple{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Negate returns the tuple with all four components negated.
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Scale returns the scalar product t * s.
func (t Tuple) Scale(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

// Div returns the scalar division t / s.
// Only an exact zero divisor yields ErrDivideByZero; tiny divisors are
// valid and may overflow to infinity.
func (t Tuple) Div(s float64) (Tuple, error) {
	if s == 0 {
		return Tuple{}, fmt.Errorf("divide %v by %g: %w", t, s, ErrDivideByZero)
	}
	return Tuple{t.X / s, t.Y / s, t.Z / s, t.W / s}, nil
}

// Magnitude returns the Euclidean norm over all four components.
// The components are scaled by the largest one first, so the result stays
// finite for every finite tuple whose norm fits in a float64.
func (t Tuple) Magnitude() float64 {
	m := t.maxAbs()
	if m == 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return m
	}
	u := t.Scale(1 / m)
	return m * math.Sqrt(u.Dot(u))
}

// Normalize returns the unit tuple in the same direction.
// A zero tuple yields ErrZeroMagnitude, an infinite or NaN component yields
// ErrNotFinite.
func (t Tuple) Normalize() (Tuple, error) {
	m := t.maxAbs()
	switch {
	case m == 0:
		return Tuple{}, fmt.Errorf("normalize %v: %w", t, ErrZeroMagnitude)
	case math.IsInf(m, 0) || math.IsNaN(m):
		return Tuple{}, fmt.Errorf("normalize %v: %w", t, ErrNotFinite)
	}
	// Dividing by m first keeps subnormal and huge tuples in range.
	u := Tuple{t.X / m, t.Y / m, t.Z / m, t.W / m}
	l := math.Sqrt(u.Dot(u))
	return Tuple{u.X / l, u.Y / l, u.Z / l, u.W / l}, nil
}

// maxAbs returns the largest absolute component, or NaN if any is NaN.
func (t Tuple) maxAbs() float64 {
	return max(math.Abs(t.X), math.Abs(t.Y), math.Abs(t.Z), math.Abs(t.W))
}

// Dot returns the dot product over all four components.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Tuple) Dot(b Tuple) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross returns the cross product a × b of the X/Y/Z parts as a vector.
//
//nolint:st1016 // a×b naming convention is clearer for vector operations
func (a Tuple) Cross(b Tuple) Tuple {
	return Vector(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// String formats the tuple as point(...), vector(...) or tuple(...).
func (t Tuple) String() string {
	switch {
	case t.IsPoint():
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	case t.IsVector():
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	default:
		return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
	}
}

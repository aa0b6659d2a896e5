package math3d

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the tolerance for every floating-point comparison in the tracer.
const Epsilon = 1e-6

// ApproxEqual reports whether a and b differ by less than Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

var (
	// ErrDivideByZero indicates a zero scalar divisor.
	ErrDivideByZero = errors.New("math3d: division by zero")

	// ErrZeroMagnitude indicates an attempt to normalize a zero-length tuple.
	// It wraps ErrDivideByZero.
	ErrZeroMagnitude = fmt.Errorf("math3d: cannot normalize zero-magnitude tuple: %w", ErrDivideByZero)

	// ErrNotFinite indicates a tuple with an infinite or NaN component.
	ErrNotFinite = errors.New("math3d: non-finite component")
)

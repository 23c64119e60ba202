package math

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the scalar type carried by vectors and matrices.
type Float interface {
	constraints.Float
}

// Radians converts degrees to radians.
func Radians[T Float](deg T) T {
	return T(math.Pi) * deg / 180
}

// Degrees converts radians to degrees.
func Degrees[T Float](rad T) T {
	return rad * 180 / T(math.Pi)
}

// Rsqrt returns 1/sqrt(x).
func Rsqrt[T Float](x T) T {
	return 1 / sqrt(x)
}

func sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

func abs[T Float](x T) T {
	return T(math.Abs(float64(x)))
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

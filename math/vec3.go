package math

import "math"

// Vec3 is a 3-element vector. All methods return new values.
type Vec3[T Float] struct {
	X, Y, Z T
}

// Vec3d and Vec3f are the double and single precision instantiations.
type (
	Vec3d = Vec3[float64]
	Vec3f = Vec3[float32]
)

var (
	Vec3Zero  = Vec3d{0, 0, 0}
	Vec3One   = Vec3d{1, 1, 1}
	Vec3Up    = Vec3d{0, 1, 0}
	Vec3Down  = Vec3d{0, -1, 0}
	Vec3Right = Vec3d{1, 0, 0}
	Vec3Left  = Vec3d{-1, 0, 0}
	Vec3Front = Vec3d{0, 0, 1}
	Vec3Back  = Vec3d{0, 0, -1}
)

func NewVec3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Vec3Splat returns a vector with v in every lane.
func Vec3Splat[T Float](v T) Vec3[T] {
	return Vec3[T]{X: v, Y: v, Z: v}
}

func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Mul is the elementwise product.
func (v Vec3[T]) Mul(other Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

// Div is the elementwise quotient.
func (v Vec3[T]) Div(other Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X / other.X, Y: v.Y / other.Y, Z: v.Z / other.Z}
}

func (v Vec3[T]) AddScalar(s T) Vec3[T] {
	return Vec3[T]{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

func (v Vec3[T]) SubScalar(s T) Vec3[T] {
	return Vec3[T]{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3[T]) DivScalar(s T) Vec3[T] {
	return Vec3[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// ScalarSub returns s - v lane by lane.
func (v Vec3[T]) ScalarSub(s T) Vec3[T] {
	return Vec3[T]{X: s - v.X, Y: s - v.Y, Z: s - v.Z}
}

// ScalarDiv returns s / v lane by lane.
func (v Vec3[T]) ScalarDiv(s T) Vec3[T] {
	return Vec3[T]{X: s / v.X, Y: s / v.Y, Z: s / v.Z}
}

func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Min returns the least lane.
func (v Vec3[T]) Min() T {
	return min(v.X, v.Y, v.Z)
}

// Max returns the greatest lane.
func (v Vec3[T]) Max() T {
	return max(v.X, v.Y, v.Z)
}

func (v Vec3[T]) Sum() T {
	return v.X + v.Y + v.Z
}

// MinScalar clamps every lane to at most s.
func (v Vec3[T]) MinScalar(s T) Vec3[T] {
	return Vec3[T]{min(v.X, s), min(v.Y, s), min(v.Z, s)}
}

// MaxScalar clamps every lane to at least s.
func (v Vec3[T]) MaxScalar(s T) Vec3[T] {
	return Vec3[T]{max(v.X, s), max(v.Y, s), max(v.Z, s)}
}

func (v Vec3[T]) Abs() Vec3[T] {
	return Vec3[T]{abs(v.X), abs(v.Y), abs(v.Z)}
}

func (v Vec3[T]) Trunc() Vec3[T] {
	return Vec3[T]{
		T(math.Trunc(float64(v.X))),
		T(math.Trunc(float64(v.Y))),
		T(math.Trunc(float64(v.Z))),
	}
}

func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3[T]) Length() T {
	return sqrt(v.LengthSqr())
}

func (v Vec3[T]) LengthSqr() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize divides by the length. A zero vector yields NaN lanes.
func (v Vec3[T]) Normalize() Vec3[T] {
	return v.DivScalar(v.Length())
}

// Project returns the projection of v onto the direction of onto.
func (v Vec3[T]) Project(onto Vec3[T]) Vec3[T] {
	n := onto.Normalize()
	return n.Scale(v.Dot(n))
}

// Reflect reflects v through the plane through the origin with normal n.
// n is expected to be unit length.
func (v Vec3[T]) Reflect(n Vec3[T]) Vec3[T] {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

func (v Vec3[T]) Distance(other Vec3[T]) T {
	return v.Sub(other).Length()
}

func (v Vec3[T]) DistanceSqr(other Vec3[T]) T {
	return v.Sub(other).LengthSqr()
}

func (v Vec3[T]) Lerp(other Vec3[T], t T) Vec3[T] {
	return v.Add(other.Sub(v).Scale(t))
}

// ApproxEqual reports whether every lane differs by at most tol.
func (v Vec3[T]) ApproxEqual(other Vec3[T], tol T) bool {
	return abs(v.X-other.X) <= tol && abs(v.Y-other.Y) <= tol && abs(v.Z-other.Z) <= tol
}

func (v Vec3[T]) ToVec4(w T) Vec4[T] {
	return Vec4[T]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

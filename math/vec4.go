package math

type Vec4[T Float] struct {
	X, Y, Z, W T
}

type (
	Vec4d = Vec4[float64]
	Vec4f = Vec4[float32]
)

func NewVec4[T Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

func Vec4Splat[T Float](v T) Vec4[T] {
	return Vec4[T]{X: v, Y: v, Z: v, W: v}
}

func (v Vec4[T]) Add(other Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z, W: v.W + other.W}
}

func (v Vec4[T]) Sub(other Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z, W: v.W - other.W}
}

func (v Vec4[T]) Mul(other Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z, W: v.W * other.W}
}

func (v Vec4[T]) Div(other Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X / other.X, Y: v.Y / other.Y, Z: v.Z / other.Z, W: v.W / other.W}
}

func (v Vec4[T]) AddScalar(s T) Vec4[T] {
	return Vec4[T]{X: v.X + s, Y: v.Y + s, Z: v.Z + s, W: v.W + s}
}

func (v Vec4[T]) SubScalar(s T) Vec4[T] {
	return Vec4[T]{X: v.X - s, Y: v.Y - s, Z: v.Z - s, W: v.W - s}
}

func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

func (v Vec4[T]) DivScalar(s T) Vec4[T] {
	return Vec4[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

func (v Vec4[T]) ScalarSub(s T) Vec4[T] {
	return Vec4[T]{X: s - v.X, Y: s - v.Y, Z: s - v.Z, W: s - v.W}
}

func (v Vec4[T]) ScalarDiv(s T) Vec4[T] {
	return Vec4[T]{X: s / v.X, Y: s / v.Y, Z: s / v.Z, W: s / v.W}
}

func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vec4[T]) Min() T {
	return min(v.X, v.Y, v.Z, v.W)
}

func (v Vec4[T]) Max() T {
	return max(v.X, v.Y, v.Z, v.W)
}

func (v Vec4[T]) Sum() T {
	return v.X + v.Y + v.Z + v.W
}

// MulMat returns m × v.
func (v Vec4[T]) MulMat(m Mat4[T]) Vec4[T] {
	return Vec4[T]{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		W: v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

func (v Vec4[T]) Dot(other Vec4[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4[T]) Length() T {
	return sqrt(v.LengthSqr())
}

func (v Vec4[T]) LengthSqr() T {
	return v.Dot(v)
}

func (v Vec4[T]) Normalize() Vec4[T] {
	return v.DivScalar(v.Length())
}

func (v Vec4[T]) Project(onto Vec4[T]) Vec4[T] {
	n := onto.Normalize()
	return n.Scale(v.Dot(n))
}

func (v Vec4[T]) Reflect(n Vec4[T]) Vec4[T] {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

func (v Vec4[T]) Distance(other Vec4[T]) T {
	return v.Sub(other).Length()
}

func (v Vec4[T]) DistanceSqr(other Vec4[T]) T {
	return v.Sub(other).LengthSqr()
}

func (v Vec4[T]) ApproxEqual(other Vec4[T], tol T) bool {
	return abs(v.X-other.X) <= tol && abs(v.Y-other.Y) <= tol &&
		abs(v.Z-other.Z) <= tol && abs(v.W-other.W) <= tol
}

func (v Vec4[T]) ToVec3() Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vec4[T]) ToVec3DivW() Vec3[T] {
	if v.W != 0 {
		return Vec3[T]{X: v.X / v.W, Y: v.Y / v.W, Z: v.Z / v.W}
	}
	return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

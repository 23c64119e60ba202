package math

import "math"

// Quaternion is a double precision quaternion with imaginary part (X, Y, Z)
// and real part W. Rotation quaternions are unit length; results of
// arithmetic need not be.
type Quaternion struct {
	X, Y, Z, W float64
}

func QuaternionIdentity() Quaternion {
	return Quaternion{X: 0, Y: 0, Z: 0, W: 1}
}

func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// QuaternionFromParts builds a quaternion from its real and imaginary parts.
func QuaternionFromParts(real float64, imag Vec3d) Quaternion {
	return Quaternion{X: imag.X, Y: imag.Y, Z: imag.Z, W: real}
}

func QuaternionFromVec4(v Vec4d) Quaternion {
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}

func (q Quaternion) Real() float64 {
	return q.W
}

func (q Quaternion) Imag() Vec3d {
	return Vec3d{q.X, q.Y, q.Z}
}

func (q Quaternion) Vec4() Vec4d {
	return Vec4d{q.X, q.Y, q.Z, q.W}
}

func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

func (q Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion{q.X - other.X, q.Y - other.Y, q.Z - other.Z, q.W - other.W}
}

func (q Quaternion) Neg() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, -q.W}
}

func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Mul is the Hamilton product q × other; applied to vectors, other acts first.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Div returns q × other⁻¹.
func (q Quaternion) Div(other Quaternion) Quaternion {
	return q.Mul(other.Inverse())
}

func (q Quaternion) Dot(other Quaternion) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

func (q Quaternion) Length() float64 {
	return math.Sqrt(q.LengthSqr())
}

func (q Quaternion) LengthSqr() float64 {
	return q.Dot(q)
}

// Normalize divides by the length; the zero quaternion yields NaN.
func (q Quaternion) Normalize() Quaternion {
	return q.Scale(1 / q.Length())
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse is the conjugate divided by the squared length.
func (q Quaternion) Inverse() Quaternion {
	lengthSqr := q.LengthSqr()
	c := q.Conjugate()
	return Quaternion{
		X: c.X / lengthSqr,
		Y: c.Y / lengthSqr,
		Z: c.Z / lengthSqr,
		W: c.W / lengthSqr,
	}
}

// RotateVector applies the rotation of a unit quaternion to v.
func (q Quaternion) RotateVector(v Vec3d) Vec3d {
	qVec := q.Imag()
	t := qVec.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(qVec.Cross(t))
}

// Equal reports exact componentwise equality.
func (q Quaternion) Equal(other Quaternion) bool {
	return q == other
}

func (q Quaternion) ApproxEqual(other Quaternion, tol float64) bool {
	return q.Vec4().ApproxEqual(other.Vec4(), tol)
}

// SameRotation reports whether q and other encode the same rotation,
// treating q and -q as equal.
func (q Quaternion) SameRotation(other Quaternion, tol float64) bool {
	return q.ApproxEqual(other, tol) || q.ApproxEqual(other.Neg(), tol)
}

func (q Quaternion) Lerp(other Quaternion, t float64) Quaternion {
	return Quaternion{
		X: q.X + (other.X-q.X)*t,
		Y: q.Y + (other.Y-q.Y)*t,
		Z: q.Z + (other.Z-q.Z)*t,
		W: q.W + (other.W-q.W)*t,
	}.Normalize()
}

// Slerp interpolates along the shortest arc between two unit quaternions.
func (q Quaternion) Slerp(other Quaternion, t float64) Quaternion {
	dot := q.Dot(other)

	if dot < 0 {
		dot = -dot
		other = other.Neg()
	}

	if dot > 0.9995 {
		return q.Lerp(other, t)
	}

	theta0 := math.Acos(dot)
	theta := theta0 * t
	sinTheta := math.Sin(theta)
	sinTheta0 := math.Sin(theta0)

	s0 := math.Cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return q.Scale(s0).Add(other.Scale(s1))
}

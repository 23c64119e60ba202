package math

import "math"

// Mat3 is a 3×3 matrix stored column-major: m[col][row].
type Mat3[T Float] [3][3]T

type (
	Mat3d = Mat3[float64]
	Mat3f = Mat3[float32]
)

func Mat3Identity[T Float]() Mat3[T] {
	return Mat3[T]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mat3Diagonal puts d on the main diagonal.
func Mat3Diagonal[T Float](d Vec3[T]) Mat3[T] {
	return Mat3[T]{
		{d.X, 0, 0},
		{0, d.Y, 0},
		{0, 0, d.Z},
	}
}

func Mat3FromColumns[T Float](c0, c1, c2 Vec3[T]) Mat3[T] {
	return Mat3[T]{
		{c0.X, c0.Y, c0.Z},
		{c1.X, c1.Y, c1.Z},
		{c2.X, c2.Y, c2.Z},
	}
}

func Mat3FromRows[T Float](r0, r1, r2 Vec3[T]) Mat3[T] {
	return Mat3[T]{
		{r0.X, r1.X, r2.X},
		{r0.Y, r1.Y, r2.Y},
		{r0.Z, r1.Z, r2.Z},
	}
}

// At returns the element in column col, row row.
func (m Mat3[T]) At(col, row int) T {
	return m[col][row]
}

func (m Mat3[T]) Col(i int) Vec3[T] {
	return Vec3[T]{m[i][0], m[i][1], m[i][2]}
}

func (m Mat3[T]) Row(i int) Vec3[T] {
	return Vec3[T]{m[0][i], m[1][i], m[2][i]}
}

func (m Mat3[T]) Add(other Mat3[T]) Mat3[T] {
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			m[c][r] += other[c][r]
		}
	}
	return m
}

func (m Mat3[T]) Sub(other Mat3[T]) Mat3[T] {
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			m[c][r] -= other[c][r]
		}
	}
	return m
}

func (m Mat3[T]) Neg() Mat3[T] {
	return m.Scale(-1)
}

func (m Mat3[T]) Scale(s T) Mat3[T] {
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			m[c][r] *= s
		}
	}
	return m
}

// Mul returns the matrix product m × other.
func (m Mat3[T]) Mul(other Mat3[T]) Mat3[T] {
	var result Mat3[T]
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			for k := 0; k < 3; k++ {
				result[c][r] += m[k][r] * other[c][k]
			}
		}
	}
	return result
}

// MulVec returns m × v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z,
		Y: m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z,
		Z: m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z,
	}
}

func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

func (m Mat3[T]) Trace() T {
	return m[0][0] + m[1][1] + m[2][2]
}

func (m Mat3[T]) Determinant() T {
	return m[0][0]*(m[1][1]*m[2][2]-m[2][1]*m[1][2]) -
		m[1][0]*(m[0][1]*m[2][2]-m[2][1]*m[0][2]) +
		m[2][0]*(m[0][1]*m[1][2]-m[1][1]*m[0][2])
}

// Inverse returns the adjugate divided by the determinant. A singular
// matrix yields Inf/NaN entries.
func (m Mat3[T]) Inverse() Mat3[T] {
	c0, c1, c2 := m.Col(0), m.Col(1), m.Col(2)
	// Rows of the inverse are the cross products of column pairs.
	r0 := c1.Cross(c2)
	r1 := c2.Cross(c0)
	r2 := c0.Cross(c1)
	invDet := 1 / c0.Dot(r0)
	return Mat3FromRows(r0, r1, r2).Scale(invDet)
}

// Mat4 embeds m in the upper-left block of an identity 4×4.
func (m Mat3[T]) Mat4() Mat4[T] {
	return Mat4[T]{
		{m[0][0], m[0][1], m[0][2], 0},
		{m[1][0], m[1][1], m[1][2], 0},
		{m[2][0], m[2][1], m[2][2], 0},
		{0, 0, 0, 1},
	}
}

func (m Mat3[T]) ApproxEqual(other Mat3[T], tol T) bool {
	for c := 0; c < 3; c++ {
		if !m.Col(c).ApproxEqual(other.Col(c), tol) {
			return false
		}
	}
	return true
}

// IsRotation reports whether m is orthonormal with determinant +1.
func (m Mat3[T]) IsRotation(tol T) bool {
	return m.Transpose().Mul(m).ApproxEqual(Mat3Identity[T](), tol) &&
		abs(m.Determinant()-1) <= tol
}

func Mat3RotationX[T Float](angle T) Mat3[T] {
	c := T(math.Cos(float64(angle)))
	s := T(math.Sin(float64(angle)))
	return Mat3[T]{
		{1, 0, 0},
		{0, c, s},
		{0, -s, c},
	}
}

func Mat3RotationY[T Float](angle T) Mat3[T] {
	c := T(math.Cos(float64(angle)))
	s := T(math.Sin(float64(angle)))
	return Mat3[T]{
		{c, 0, -s},
		{0, 1, 0},
		{s, 0, c},
	}
}

func Mat3RotationZ[T Float](angle T) Mat3[T] {
	c := T(math.Cos(float64(angle)))
	s := T(math.Sin(float64(angle)))
	return Mat3[T]{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}

// Mat3RotationAxis builds the rotation by angle about axis (Rodrigues).
// The axis is normalized first.
func Mat3RotationAxis[T Float](axis Vec3[T], angle T) Mat3[T] {
	axis = axis.Normalize()
	c := T(math.Cos(float64(angle)))
	s := T(math.Sin(float64(angle)))
	t := 1 - c

	x, y, z := axis.X, axis.Y, axis.Z

	return Mat3[T]{
		{t*x*x + c, t*x*y + s*z, t*x*z - s*y},
		{t*x*y - s*z, t*y*y + c, t*y*z + s*x},
		{t*x*z + s*y, t*y*z - s*x, t*z*z + c},
	}
}

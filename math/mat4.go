package math

// Mat4 is a 4×4 matrix stored column-major: m[col][row].
type Mat4[T Float] [4][4]T

type (
	Mat4d = Mat4[float64]
	Mat4f = Mat4[float32]
)

func Mat4Identity[T Float]() Mat4[T] {
	return Mat4[T]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4Diagonal[T Float](d Vec4[T]) Mat4[T] {
	return Mat4[T]{
		{d.X, 0, 0, 0},
		{0, d.Y, 0, 0},
		{0, 0, d.Z, 0},
		{0, 0, 0, d.W},
	}
}

func Mat4FromColumns[T Float](c0, c1, c2, c3 Vec4[T]) Mat4[T] {
	return Mat4[T]{
		{c0.X, c0.Y, c0.Z, c0.W},
		{c1.X, c1.Y, c1.Z, c1.W},
		{c2.X, c2.Y, c2.Z, c2.W},
		{c3.X, c3.Y, c3.Z, c3.W},
	}
}

func Mat4FromRows[T Float](r0, r1, r2, r3 Vec4[T]) Mat4[T] {
	return Mat4FromColumns(r0, r1, r2, r3).Transpose()
}

func (m Mat4[T]) At(col, row int) T {
	return m[col][row]
}

func (m Mat4[T]) Col(i int) Vec4[T] {
	return Vec4[T]{m[i][0], m[i][1], m[i][2], m[i][3]}
}

func (m Mat4[T]) Row(i int) Vec4[T] {
	return Vec4[T]{m[0][i], m[1][i], m[2][i], m[3][i]}
}

// Mat3 returns the upper-left 3×3 block.
func (m Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

func (m Mat4[T]) Add(other Mat4[T]) Mat4[T] {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c][r] += other[c][r]
		}
	}
	return m
}

func (m Mat4[T]) Sub(other Mat4[T]) Mat4[T] {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c][r] -= other[c][r]
		}
	}
	return m
}

func (m Mat4[T]) Neg() Mat4[T] {
	return m.Scale(-1)
}

func (m Mat4[T]) Scale(s T) Mat4[T] {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c][r] *= s
		}
	}
	return m
}

// Mul returns the matrix product m × other.
func (m Mat4[T]) Mul(other Mat4[T]) Mat4[T] {
	var result Mat4[T]
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			for k := 0; k < 4; k++ {
				result[c][r] += m[k][r] * other[c][k]
			}
		}
	}
	return result
}

func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return v.MulMat(m)
}

// MulVec3 transforms a point (w = 1) and divides by the resulting w.
func (m Mat4[T]) MulVec3(v Vec3[T]) Vec3[T] {
	return m.MulVec(v.ToVec4(1)).ToVec3DivW()
}

func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		{m[0][0], m[1][0], m[2][0], m[3][0]},
		{m[0][1], m[1][1], m[2][1], m[3][1]},
		{m[0][2], m[1][2], m[2][2], m[3][2]},
		{m[0][3], m[1][3], m[2][3], m[3][3]},
	}
}

func (m Mat4[T]) ApproxEqual(other Mat4[T], tol T) bool {
	for c := 0; c < 4; c++ {
		if !m.Col(c).ApproxEqual(other.Col(c), tol) {
			return false
		}
	}
	return true
}

func (m Mat4[T]) IsIdentity(tol T) bool {
	return m.ApproxEqual(Mat4Identity[T](), tol)
}

func Mat4Translation[T Float](translation Vec3[T]) Mat4[T] {
	m := Mat4Identity[T]()
	m[3][0] = translation.X
	m[3][1] = translation.Y
	m[3][2] = translation.Z
	return m
}

func Mat4Scale[T Float](scale Vec3[T]) Mat4[T] {
	m := Mat4Identity[T]()
	m[0][0] = scale.X
	m[1][1] = scale.Y
	m[2][2] = scale.Z
	return m
}

func Mat4RotationAxis[T Float](axis Vec3[T], angle T) Mat4[T] {
	return Mat3RotationAxis(axis, angle).Mat4()
}

// cofactors returns the adjugate of m.
func (m Mat4[T]) cofactors() Mat4[T] {
	var inv Mat4[T]

	inv[0][0] = m[1][1]*m[2][2]*m[3][3] - m[1][1]*m[2][3]*m[3][2] - m[2][1]*m[1][2]*m[3][3] + m[2][1]*m[1][3]*m[3][2] + m[3][1]*m[1][2]*m[2][3] - m[3][1]*m[1][3]*m[2][2]
	inv[1][0] = -m[1][0]*m[2][2]*m[3][3] + m[1][0]*m[2][3]*m[3][2] + m[2][0]*m[1][2]*m[3][3] - m[2][0]*m[1][3]*m[3][2] - m[3][0]*m[1][2]*m[2][3] + m[3][0]*m[1][3]*m[2][2]
	inv[2][0] = m[1][0]*m[2][1]*m[3][3] - m[1][0]*m[2][3]*m[3][1] - m[2][0]*m[1][1]*m[3][3] + m[2][0]*m[1][3]*m[3][1] + m[3][0]*m[1][1]*m[2][3] - m[3][0]*m[1][3]*m[2][1]
	inv[3][0] = -m[1][0]*m[2][1]*m[3][2] + m[1][0]*m[2][2]*m[3][1] + m[2][0]*m[1][1]*m[3][2] - m[2][0]*m[1][2]*m[3][1] - m[3][0]*m[1][1]*m[2][2] + m[3][0]*m[1][2]*m[2][1]

	inv[0][1] = -m[0][1]*m[2][2]*m[3][3] + m[0][1]*m[2][3]*m[3][2] + m[2][1]*m[0][2]*m[3][3] - m[2][1]*m[0][3]*m[3][2] - m[3][1]*m[0][2]*m[2][3] + m[3][1]*m[0][3]*m[2][2]
	inv[1][1] = m[0][0]*m[2][2]*m[3][3] - m[0][0]*m[2][3]*m[3][2] - m[2][0]*m[0][2]*m[3][3] + m[2][0]*m[0][3]*m[3][2] + m[3][0]*m[0][2]*m[2][3] - m[3][0]*m[0][3]*m[2][2]
	inv[2][1] = -m[0][0]*m[2][1]*m[3][3] + m[0][0]*m[2][3]*m[3][1] + m[2][0]*m[0][1]*m[3][3] - m[2][0]*m[0][3]*m[3][1] - m[3][0]*m[0][1]*m[2][3] + m[3][0]*m[0][3]*m[2][1]
	inv[3][1] = m[0][0]*m[2][1]*m[3][2] - m[0][0]*m[2][2]*m[3][1] - m[2][0]*m[0][1]*m[3][2] + m[2][0]*m[0][2]*m[3][1] + m[3][0]*m[0][1]*m[2][2] - m[3][0]*m[0][2]*m[2][1]

	inv[0][2] = m[0][1]*m[1][2]*m[3][3] - m[0][1]*m[1][3]*m[3][2] - m[1][1]*m[0][2]*m[3][3] + m[1][1]*m[0][3]*m[3][2] + m[3][1]*m[0][2]*m[1][3] - m[3][1]*m[0][3]*m[1][2]
	inv[1][2] = -m[0][0]*m[1][2]*m[3][3] + m[0][0]*m[1][3]*m[3][2] + m[1][0]*m[0][2]*m[3][3] - m[1][0]*m[0][3]*m[3][2] - m[3][0]*m[0][2]*m[1][3] + m[3][0]*m[0][3]*m[1][2]
	inv[2][2] = m[0][0]*m[1][1]*m[3][3] - m[0][0]*m[1][3]*m[3][1] - m[1][0]*m[0][1]*m[3][3] + m[1][0]*m[0][3]*m[3][1] + m[3][0]*m[0][1]*m[1][3] - m[3][0]*m[0][3]*m[1][1]
	inv[3][2] = -m[0][0]*m[1][1]*m[3][2] + m[0][0]*m[1][2]*m[3][1] + m[1][0]*m[0][1]*m[3][2] - m[1][0]*m[0][2]*m[3][1] - m[3][0]*m[0][1]*m[1][2] + m[3][0]*m[0][2]*m[1][1]

	inv[0][3] = -m[0][1]*m[1][2]*m[2][3] + m[0][1]*m[1][3]*m[2][2] + m[1][1]*m[0][2]*m[2][3] - m[1][1]*m[0][3]*m[2][2] - m[2][1]*m[0][2]*m[1][3] + m[2][1]*m[0][3]*m[1][2]
	inv[1][3] = m[0][0]*m[1][2]*m[2][3] - m[0][0]*m[1][3]*m[2][2] - m[1][0]*m[0][2]*m[2][3] + m[1][0]*m[0][3]*m[2][2] + m[2][0]*m[0][2]*m[1][3] - m[2][0]*m[0][3]*m[1][2]
	inv[2][3] = -m[0][0]*m[1][1]*m[2][3] + m[0][0]*m[1][3]*m[2][1] + m[1][0]*m[0][1]*m[2][3] - m[1][0]*m[0][3]*m[2][1] - m[2][0]*m[0][1]*m[1][3] + m[2][0]*m[0][3]*m[1][1]
	inv[3][3] = m[0][0]*m[1][1]*m[2][2] - m[0][0]*m[1][2]*m[2][1] - m[1][0]*m[0][1]*m[2][2] + m[1][0]*m[0][2]*m[2][1] + m[2][0]*m[0][1]*m[1][2] - m[2][0]*m[0][2]*m[1][1]

	return inv
}

func (m Mat4[T]) Determinant() T {
	inv := m.cofactors()
	return m[0][0]*inv[0][0] + m[0][1]*inv[1][0] + m[0][2]*inv[2][0] + m[0][3]*inv[3][0]
}

// Inverse returns the inverse of m, or the identity when m is singular.
func (m Mat4[T]) Inverse() Mat4[T] {
	inv := m.cofactors()

	det := m[0][0]*inv[0][0] + m[0][1]*inv[1][0] + m[0][2]*inv[2][0] + m[0][3]*inv[3][0]

	if det == 0 {
		return Mat4Identity[T]()
	}

	return inv.Scale(1 / det)
}

func Mat4RotationX[T Float](angle T) Mat4[T] { return Mat3RotationX(angle).Mat4() }
func Mat4RotationY[T Float](angle T) Mat4[T] { return Mat3RotationY(angle).Mat4() }
func Mat4RotationZ[T Float](angle T) Mat4[T] { return Mat3RotationZ(angle).Mat4() }

package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestF64RowMajor(t *testing.T) {
	m := Mat3FromRows(Vec3d{1, 2, 3}, Vec3d{4, 5, 6}, Vec3d{7, 8, 9})
	assert.Equal(t, f64.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.F64())
	assert.Equal(t, m, Mat3FromF64[float64](m.F64()))

	m4 := Mat4Translation(NewVec3(1.0, 2, 3))
	a := m4.F64()
	assert.Equal(t, []float64{1, 2, 3}, []float64{a[3], a[7], a[11]})
	assert.Equal(t, m4, Mat4FromF64[float64](a))

	v := NewVec4[float32](1, 2, 3, 4)
	assert.Equal(t, f64.Vec4{1, 2, 3, 4}, v.F64())
	assert.Equal(t, v, Vec4FromF64[float32](v.F64()))
	assert.Equal(t, Vec3f{1, 2, 3}, Vec3FromF64[float32](v.ToVec3().F64()))
}

func TestRotateVectorAgainstGonum(t *testing.T) {
	points := []Vec3d{{1, 2, 3}, {-4, 0.5, 0}, {0, 0, 1}}

	for _, axis := range testAxes {
		for _, angle := range testAngles {
			q := QuaternionFromAxisAngle(angle, axis)
			rot := r3.NewRotation(angle, axis.R3())

			for _, p := range points {
				want := Vec3FromR3(rot.Rotate(p.R3()))
				got := q.RotateVector(p)
				assert.True(t, got.ApproxEqual(want, 1e-10), "angle %v axis %v: got %v, want %v", angle, axis, got, want)
			}
		}
	}
}

func TestQuaternionMulAgainstGonum(t *testing.T) {
	a := QuaternionFromAxisAngle(0.7, NewVec3(1.0, 1, 0))
	b := NewQuaternion(4, 5, 9, 7)

	want := QuaternionFromGonum(quat.Mul(a.Gonum(), b.Gonum()))
	assert.True(t, a.Mul(b).ApproxEqual(want, 1e-12), "got %v, want %v", a.Mul(b), want)

	wantInv := QuaternionFromGonum(quat.Inv(b.Gonum()))
	assert.True(t, b.Inverse().ApproxEqual(wantInv, 1e-15))

	assert.Equal(t, b, QuaternionFromGonum(b.Gonum()))
}

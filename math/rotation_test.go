package math

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAxes = []Vec3d{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, -2, -1.5},
	{-0.3, 0.2, 0.9},
	{2, 2, 2},
	{-1, -1, 0.5},
}

var testAngles = []float64{0.1, 0.5, 1, math.Pi / 3, 2, 3, math.Pi - 0.01}

func TestQuaternionFromAxisAngleValues(t *testing.T) {
	q := QuaternionFromAxisAngle(Radians(90.0), Vec3Right)
	assert.InDelta(t, 0.7071067811865475, q.X, 1e-15)
	assert.InDelta(t, 0.0, q.Y, 1e-15)
	assert.InDelta(t, 0.0, q.Z, 1e-15)
	assert.InDelta(t, 0.7071067811865476, q.W, 1e-15)

	v := NewVec3(1.0, -2, -1.5).Normalize()
	q = QuaternionFromAxisAngle(math.Pi/3, v)
	assert.InDelta(t, math.Sqrt(3)/2, q.Real(), 1e-12)
	assert.True(t, q.Imag().ApproxEqual(v.Scale(0.5), 1e-12), "imag = %v", q.Imag())
	assert.InDelta(t, math.Pi/3, q.Angle(), 1e-12)
	assert.True(t, q.Axis().ApproxEqual(v, 1e-12), "axis = %v", q.Axis())

	// The axis is normalized before use.
	assert.True(t, QuaternionFromAxisAngle(1.2, NewVec3(0.0, 0, 5)).
		ApproxEqual(QuaternionFromAxisAngle(1.2, Vec3Front), 1e-15))
}

func TestAngleAxisCanonicalForm(t *testing.T) {
	v := NewVec3(1.0, -2, -1.5).Normalize()
	angle, axis := QuaternionFromAxisAngle(math.Pi/3, v).AngleAxis()

	assert.InDelta(t, -math.Pi/3, angle, 1e-12)
	assert.True(t, axis.ApproxEqual(v.Neg(), 1e-12), "axis = %v", axis)

	angle, axis = QuaternionIdentity().AngleAxis()
	assert.Equal(t, 0.0, angle)
	assert.Equal(t, Vec3d{}, axis)

	aa := QuaternionFromAxisAngle(math.Pi/2, Vec3Up).ToAxisAngle()
	assert.InDelta(t, math.Pi/2, aa.Angle, 1e-12)
	assert.True(t, aa.Axis.ApproxEqual(Vec3Up, 1e-12))
}

func TestAngleAndAxisRecovered(t *testing.T) {
	for _, axis := range testAxes {
		axis = axis.Normalize()
		for _, angle := range testAngles {
			q := QuaternionFromAxisAngle(angle, axis)
			assert.InDelta(t, angle, q.Angle(), 1e-10, "axis %v", axis)
			assert.True(t, q.Axis().ApproxEqual(axis, 1e-10), "angle %v: got %v, want %v", angle, q.Axis(), axis)
		}
	}
}

func TestAxisAngleRoundTrip(t *testing.T) {
	for _, axis := range testAxes {
		for _, angle := range testAngles {
			q := QuaternionFromAxisAngle(angle, axis)
			aa := q.ToAxisAngle()

			assert.InDelta(t, 1.0, aa.Axis.Length(), 1e-12)
			neg := 0
			for _, c := range []float64{aa.Axis.X, aa.Axis.Y, aa.Axis.Z} {
				if math.Signbit(c) {
					neg++
				}
			}
			assert.LessOrEqual(t, neg, 1, "axis %v has more than one negative component", aa.Axis)
			assert.LessOrEqual(t, math.Abs(aa.Angle), math.Pi+1e-12)

			back := aa.Quaternion()
			assert.True(t, back.SameRotation(q, 1e-10),
				"angle %v axis %v: got %v, want %v", angle, axis, back, q)
		}
	}
}

func TestMatrixRoundTrip(t *testing.T) {
	for _, axis := range testAxes {
		for _, angle := range testAngles {
			q := QuaternionFromAxisAngle(angle, axis)
			m := q.Mat3()
			require.True(t, m.IsRotation(1e-12), "not a rotation: %v", m)

			back := QuaternionFromMat3(m)
			assert.True(t, back.SameRotation(q, 1e-10),
				"angle %v axis %v: got %v, want %v", angle, axis, back, q)

			back = QuaternionFromMat4(Mat4Translation(NewVec3(4.0, -1, 2)).Mul(q.Mat4()))
			assert.True(t, back.SameRotation(q, 1e-10))
		}
	}
}

func TestQuaternionFromMat3Identity(t *testing.T) {
	assert.Equal(t, Quaternion{0, 0, 0, 1}, QuaternionFromMat3(Mat3Identity[float64]()))
	assert.Equal(t, QuaternionIdentity(), QuaternionFromMat4(Mat4Identity[float64]()))
}

func TestQuaternionFromMat3HalfTurn(t *testing.T) {
	axes := append([]Vec3d{{1, 2, 3}, {3, 1, -2}, {-1, 4, 0.5}}, testAxes...)
	for _, axis := range axes {
		m := Mat3RotationAxis(axis, math.Pi)
		q := QuaternionFromMat3(m)

		assert.True(t, q.Mat3().ApproxEqual(m, 1e-10), "axis %v: got %v, want %v", axis, q.Mat3(), m)
		assert.InDelta(t, 1.0, q.Length(), 1e-10)
	}
}

func TestQuaternionFromMat3SymmetricSnap(t *testing.T) {
	h := math.Sqrt2 / 2
	cases := []struct {
		name string
		m    Mat3d
		want Quaternion
	}{
		{"near identity", Mat3RotationAxis(Vec3Right, 4e-4), QuaternionIdentity()},
		{"near half turn", Mat3RotationAxis(NewVec3(1.0, 1, 0), math.Pi-4e-4),
			QuaternionFromAxisAngle(math.Pi, NewVec3(1.0, 1, 0))},
		// Diagonals of (M+I)/2 below 0.001 fall back to fixed axes.
		{"x pivot", Mat3Diagonal(NewVec3(-1+1e-4, -1, -1)), QuaternionFromAxisAngle(math.Pi, Vec3d{0, h, h})},
		{"y pivot", Mat3Diagonal(NewVec3(-1, -1+1e-4, -1)), QuaternionFromAxisAngle(math.Pi, Vec3d{h, 0, h})},
		{"negated identity", Mat3Identity[float64]().Neg(), QuaternionFromAxisAngle(math.Pi, Vec3d{h, h, 0})},
	}

	for _, c := range cases {
		q := QuaternionFromMat3(c.m)
		assert.True(t, q.SameRotation(c.want, 1e-6), "%s: got %v, want %v", c.name, q, c.want)
		if c.want != QuaternionIdentity() {
			assert.InDelta(t, math.Pi, q.Angle(), 1e-15, c.name)
		}
	}
	assert.Equal(t, QuaternionIdentity(), QuaternionFromMat3(Mat3RotationAxis(Vec3Right, 4e-4)))
}

func TestRandomAxisSharedConverter(t *testing.T) {
	conv := NewRotationConverter(NewRandomAxis(11))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, from := range testAxes {
				to := from.Neg()
				got := conv.FromTo(from, to).RotateVector(from.Normalize())
				assert.True(t, got.ApproxEqual(to.Normalize(), 1e-10), "from %v: got %v", from, got)
			}
		}()
	}
	wg.Wait()
}

func TestMat3MatchesRotationAxis(t *testing.T) {
	for _, axis := range testAxes {
		for _, angle := range testAngles {
			q := QuaternionFromAxisAngle(angle, axis)
			want := Mat3RotationAxis(axis, angle)
			assert.True(t, q.Mat3().ApproxEqual(want, 1e-12), "angle %v axis %v", angle, axis)
			assert.True(t, q.Mat4().ApproxEqual(Mat4RotationAxis(axis, angle), 1e-12))

			v := NewVec3(0.3, -7, 2)
			assert.True(t, q.RotateVector(v).ApproxEqual(want.MulVec(v), 1e-10))
		}
	}
}

func TestQuaternionFromTo(t *testing.T) {
	q := QuaternionFromTo(Vec3Right, Vec3Up)
	assert.True(t, q.ApproxEqual(QuaternionFromAxisAngle(math.Pi/2, Vec3Front), 1e-12), "got %v", q)

	pairs := [][2]Vec3d{
		{{1, 2, 3}, {-3, 0.5, 2}},
		{{0, 0, 5}, {1, 1, 0}},
		{{-1, -1, -1}, {1, 0, 0}},
		{{0.001, 0, 0}, {0, 0, -1000}},
	}
	for _, p := range pairs {
		q := QuaternionFromTo(p[0], p[1])
		got := q.RotateVector(p[0].Normalize())
		assert.True(t, got.ApproxEqual(p[1].Normalize(), 1e-10), "from %v to %v: got %v", p[0], p[1], got)
	}
}

func TestQuaternionFromToSameDirection(t *testing.T) {
	for _, v := range testAxes {
		assert.Equal(t, QuaternionIdentity(), QuaternionFromTo(v, v))
		assert.Equal(t, QuaternionIdentity(), QuaternionFromTo(v, v.Scale(3)))
	}
}

func TestQuaternionFromToDegenerate(t *testing.T) {
	assert.Equal(t, QuaternionIdentity(), QuaternionFromTo(Vec3d{}, Vec3Up))
	assert.Equal(t, QuaternionIdentity(), QuaternionFromTo(Vec3Up, Vec3d{}))
	assert.Equal(t, QuaternionIdentity(), QuaternionFromTo(Vec3Right.Scale(1e-7), Vec3Up))
}

func TestQuaternionFromToOpposite(t *testing.T) {
	converters := map[string]*RotationConverter{
		"ortho":  NewRotationConverter(nil),
		"random": NewRotationConverter(NewRandomAxis(42)),
	}

	for name, conv := range converters {
		for _, from := range testAxes {
			to := from.Scale(-2)
			q := conv.FromTo(from, to)

			// Compare through matrices: q and -q are the same rotation.
			got := q.Mat3().MulVec(from.Normalize())
			assert.True(t, got.ApproxEqual(to.Normalize(), 1e-10), "%s: from %v: got %v", name, from, got)
			assert.InDelta(t, math.Pi, q.Angle(), 1e-10, name)
			assert.InDelta(t, 0.0, q.Imag().Dot(from), 1e-10, "%s: axis not perpendicular", name)
		}
	}
}

func TestRandomAxisSameDirection(t *testing.T) {
	conv := NewRotationConverter(NewRandomAxis(7))
	for _, v := range testAxes {
		q := conv.FromTo(v, v)
		assert.Equal(t, 1.0, q.W)
		assert.Equal(t, 0.0, q.Imag().Length())
	}
}

func TestAxisSources(t *testing.T) {
	for _, from := range testAxes {
		c := OrthoAxis{}.Candidate(from)
		assert.InDelta(t, 1.0, c.Length(), 1e-12)
		assert.InDelta(t, 0.0, c.Dot(from), 1e-12)
		assert.Equal(t, c, OrthoAxis{}.Candidate(from))
	}

	a, b := NewRandomAxis(1), NewRandomAxis(1)
	for i := 0; i < 10; i++ {
		ca, cb := a.Candidate(Vec3Up), b.Candidate(Vec3Up)
		assert.Equal(t, ca, cb, "same seed should give the same sequence")
		for _, x := range []float64{ca.X, ca.Y, ca.Z} {
			assert.GreaterOrEqual(t, x, -1.0)
			assert.Less(t, x, 1.0)
		}
	}
}

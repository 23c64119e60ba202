package core

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"simdmath/math"
)

func TestNewTransform(t *testing.T) {
	tr := NewTransform()
	assert.True(t, tr.GetMatrix().IsIdentity(0))
	assert.Equal(t, math.Vec3Front, tr.GetForward())
	assert.Equal(t, math.Vec3Right, tr.GetRight())
	assert.Equal(t, math.Vec3Up, tr.GetUp())
}

func TestTransformMatrixOrder(t *testing.T) {
	tr := Transform{
		Position: math.NewVec3(1.0, 2, 3),
		Rotation: math.QuaternionFromAxisAngle(stdmath.Pi/2, math.Vec3Up),
		Scale:    math.NewVec3(2.0, 1, 1),
	}

	// (1,0,0) scales to (2,0,0), rotates to (0,0,-2), translates to (1,2,1).
	got := tr.GetMatrix().MulVec3(math.Vec3Right)
	assert.True(t, got.ApproxEqual(math.Vec3d{X: 1, Y: 2, Z: 1}, 1e-12), "got %v", got)
	assert.True(t, tr.TransformPoint(math.Vec3Right).ApproxEqual(got, 1e-12))

	dir := tr.TransformDirection(math.Vec3Right)
	assert.True(t, dir.ApproxEqual(math.Vec3Back, 1e-12), "got %v", dir)
	assert.True(t, tr.GetForward().ApproxEqual(math.Vec3Right, 1e-12), "got %v", tr.GetForward())
}

func TestTransformFromMatrix(t *testing.T) {
	cases := []Transform{
		NewTransform(),
		{
			Position: math.NewVec3(-4.0, 0.5, 10),
			Rotation: math.QuaternionFromAxisAngle(0.8, math.NewVec3(1.0, -2, 0.5)),
			Scale:    math.NewVec3(2.0, 3, 0.5),
		},
		{
			Position: math.Vec3One,
			Rotation: math.QuaternionFromAxisAngle(2.5, math.Vec3Front),
			Scale:    math.NewVec3(-1.5, 1, 1),
		},
		{
			Rotation: math.QuaternionFromAxisAngle(stdmath.Pi, math.NewVec3(1.0, 1, 0)),
			Scale:    math.Vec3Splat(4.0),
		},
	}

	for i, want := range cases {
		got := TransformFromMatrix(want.GetMatrix())
		assert.True(t, got.ApproxEqual(want, 1e-10), "case %d: got %+v, want %+v", i, got, want)
		assert.True(t, got.GetMatrix().ApproxEqual(want.GetMatrix(), 1e-10), "case %d", i)
	}
}

func TestTransformFromMatrixCollapsed(t *testing.T) {
	m := math.Mat4Scale(math.NewVec3(1.0, 0, 1))
	got := TransformFromMatrix(m)
	assert.Equal(t, math.QuaternionIdentity(), got.Rotation)
	assert.Equal(t, math.Vec3d{X: 1, Y: 0, Z: 1}, got.Scale)
}

func TestTransformLerp(t *testing.T) {
	a := NewTransform()
	b := Transform{
		Position: math.NewVec3(2.0, 0, 0),
		Rotation: math.QuaternionFromAxisAngle(stdmath.Pi/2, math.Vec3Up),
		Scale:    math.Vec3Splat(3.0),
	}

	mid := a.Lerp(b, 0.5)
	assert.Equal(t, math.Vec3d{X: 1}, mid.Position)
	assert.Equal(t, math.Vec3Splat(2.0), mid.Scale)
	assert.True(t, mid.Rotation.SameRotation(math.QuaternionFromAxisAngle(stdmath.Pi/4, math.Vec3Up), 1e-12))
	assert.True(t, a.Lerp(b, 1).ApproxEqual(b, 1e-12))
}

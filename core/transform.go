package core

import (
	"simdmath/math"
)

// Transform is a scale, then a rotation, then a translation.
type Transform struct {
	Position math.Vec3d
	Rotation math.Quaternion
	Scale    math.Vec3d
}

func NewTransform() Transform {
	return Transform{
		Position: math.Vec3Zero,
		Rotation: math.QuaternionIdentity(),
		Scale:    math.Vec3One,
	}
}

// TransformFromMatrix splits an affine matrix without shear into its
// translation, rotation and scale. A reflection is carried by a negative X
// scale. If any axis is collapsed the rotation is the identity.
func TransformFromMatrix(m math.Mat4d) Transform {
	x := m.Col(0).ToVec3()
	y := m.Col(1).ToVec3()
	z := m.Col(2).ToVec3()

	scale := math.Vec3d{X: x.Length(), Y: y.Length(), Z: z.Length()}
	if m.Mat3().Determinant() < 0 {
		scale.X = -scale.X
	}

	rotation := math.QuaternionIdentity()
	if scale.X != 0 && scale.Y != 0 && scale.Z != 0 {
		basis := math.Mat3FromColumns(x.DivScalar(scale.X), y.DivScalar(scale.Y), z.DivScalar(scale.Z))
		rotation = math.QuaternionFromMat3(basis).Normalize()
	}

	return Transform{
		Position: m.Col(3).ToVec3(),
		Rotation: rotation,
		Scale:    scale,
	}
}

func (t Transform) GetMatrix() math.Mat4d {
	translation := math.Mat4Translation(t.Position)
	rotation := t.Rotation.Mat4()
	scale := math.Mat4Scale(t.Scale)
	return translation.Mul(rotation).Mul(scale)
}

// TransformPoint applies the full transform to p.
func (t Transform) TransformPoint(p math.Vec3d) math.Vec3d {
	return t.Rotation.RotateVector(p.Mul(t.Scale)).Add(t.Position)
}

// TransformDirection rotates d, ignoring translation and scale.
func (t Transform) TransformDirection(d math.Vec3d) math.Vec3d {
	return t.Rotation.RotateVector(d)
}

// Lerp blends positions and scales linearly and rotations along the
// shortest arc.
func (t Transform) Lerp(other Transform, f float64) Transform {
	return Transform{
		Position: t.Position.Lerp(other.Position, f),
		Rotation: t.Rotation.Slerp(other.Rotation, f),
		Scale:    t.Scale.Lerp(other.Scale, f),
	}
}

// ApproxEqual compares positions and scales lane by lane and rotations up
// to sign.
func (t Transform) ApproxEqual(other Transform, tol float64) bool {
	return t.Position.ApproxEqual(other.Position, tol) &&
		t.Scale.ApproxEqual(other.Scale, tol) &&
		t.Rotation.SameRotation(other.Rotation, tol)
}

func (t Transform) GetForward() math.Vec3d {
	return t.Rotation.RotateVector(math.Vec3Front)
}

func (t Transform) GetRight() math.Vec3d {
	return t.Rotation.RotateVector(math.Vec3Right)
}

func (t Transform) GetUp() math.Vec3d {
	return t.Rotation.RotateVector(math.Vec3Up)
}

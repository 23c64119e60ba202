package math

import "math"

const (
	// degenerateLength is the vector length below which an input or a
	// computed axis is treated as zero.
	degenerateLength = 1e-6
	// colinearEpsilon bounds 1-|cos| for vectors treated as colinear, and
	// |imag| for quaternions treated as the identity.
	colinearEpsilon = 1e-8
	// singularEpsilon is the matrix tolerance for the 0° and 180° cases.
	singularEpsilon = 0.001
)

// AxisAngle is a rotation by Angle radians about the unit vector Axis.
type AxisAngle struct {
	Angle float64
	Axis  Vec3d
}

// Quaternion returns the quaternion form of the rotation.
func (aa AxisAngle) Quaternion() Quaternion {
	return QuaternionFromAxisAngle(aa.Angle, aa.Axis)
}

// QuaternionFromAxisAngle returns the rotation by angle radians about axis.
// The axis need not be unit length, but must be non-zero.
func QuaternionFromAxisAngle(angle float64, axis Vec3d) Quaternion {
	s, c := math.Sincos(angle / 2)
	axis = axis.Normalize()
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: c,
	}
}

// QuaternionFromTo returns the shortest-arc rotation taking the direction
// of from onto the direction of to, using OrthoAxis for colinear inputs.
func QuaternionFromTo(from, to Vec3d) Quaternion {
	return defaultConverter.FromTo(from, to)
}

// RotationConverter builds from/to rotations. Its AxisSource decides the
// rotation axis when the two directions are colinear.
type RotationConverter struct {
	axes AxisSource
}

var defaultConverter = NewRotationConverter(OrthoAxis{})

// NewRotationConverter returns a converter drawing fallback axes from src.
// A nil src selects OrthoAxis.
func NewRotationConverter(src AxisSource) *RotationConverter {
	if src == nil {
		src = OrthoAxis{}
	}
	return &RotationConverter{axes: src}
}

// FromTo returns the shortest-arc rotation taking from onto to. Inputs
// shorter than 1e-6 give the identity.
func (rc *RotationConverter) FromTo(from, to Vec3d) Quaternion {
	if from.Length() < degenerateLength || to.Length() < degenerateLength {
		return QuaternionIdentity()
	}
	from = from.Normalize()
	to = to.Normalize()

	s := clamp(from.Dot(to), -1, 1)
	angle := math.Acos(s)

	var axis Vec3d
	if 1-math.Abs(s) < colinearEpsilon {
		// Any axis perpendicular to from works at 0 or π.
		if s > 0 {
			angle = 0
		} else {
			angle = math.Pi
		}
		axis = rc.axes.Candidate(from)
		axis = axis.Sub(axis.Project(from))
		axis = axis.Sub(axis.Project(to))
	} else {
		axis = from.Cross(to)
	}

	if axis.Length() < degenerateLength {
		return QuaternionIdentity()
	}
	return QuaternionFromAxisAngle(angle, axis.Normalize())
}

// QuaternionFromMat3 returns a quaternion whose rotation matrix is m, up to
// sign. m must be a rotation matrix.
func QuaternionFromMat3(m Mat3d) Quaternion {
	if math.Abs(m[0][1]-m[1][0]) < singularEpsilon &&
		math.Abs(m[0][2]-m[2][0]) < singularEpsilon &&
		math.Abs(m[1][2]-m[2][1]) < singularEpsilon {
		// Symmetric: the angle is 0 or π.
		if math.Abs(m[0][1]+m[1][0]) < singularEpsilon &&
			math.Abs(m[0][2]+m[2][0]) < singularEpsilon &&
			math.Abs(m[1][2]+m[2][1]) < singularEpsilon &&
			math.Abs(m.Trace()-3) < singularEpsilon {
			return QuaternionIdentity()
		}
		return QuaternionFromAxisAngle(math.Pi, halfTurnAxis(m))
	}

	angle := math.Acos(clamp((m.Trace()-1)/2, -1, 1))
	axis := Vec3d{
		X: m[1][2] - m[2][1],
		Y: m[2][0] - m[0][2],
		Z: m[0][1] - m[1][0],
	}
	// |axis| is 2 sin(angle), non-zero away from the symmetric case.
	axis = axis.DivScalar(axis.Length())
	return QuaternionFromAxisAngle(angle, axis)
}

// QuaternionFromMat4 reads the rotation from the upper-left 3×3 block of m.
func QuaternionFromMat4(m Mat4d) Quaternion {
	return QuaternionFromMat3(m.Mat3())
}

// halfTurnAxis extracts the axis of a 180° rotation from the diagonal of
// (M+I)/2, pivoting on its largest entry.
func halfTurnAxis(m Mat3d) Vec3d {
	xx := (m[0][0] + 1) / 2
	yy := (m[1][1] + 1) / 2
	zz := (m[2][2] + 1) / 2
	xy := (m[0][1] + m[1][0]) / 4
	xz := (m[0][2] + m[2][0]) / 4
	yz := (m[1][2] + m[2][1]) / 4

	switch {
	case xx > yy && xx > zz:
		if xx < singularEpsilon {
			return Vec3d{0, math.Sqrt2 / 2, math.Sqrt2 / 2}
		}
		x := math.Sqrt(xx)
		return Vec3d{x, xy / x, xz / x}
	case yy > zz:
		if yy < singularEpsilon {
			return Vec3d{math.Sqrt2 / 2, 0, math.Sqrt2 / 2}
		}
		y := math.Sqrt(yy)
		return Vec3d{xy / y, y, yz / y}
	default:
		if zz < singularEpsilon {
			return Vec3d{math.Sqrt2 / 2, math.Sqrt2 / 2, 0}
		}
		z := math.Sqrt(zz)
		return Vec3d{xz / z, yz / z, z}
	}
}

// Mat3 returns the rotation matrix of q. For a non-unit quaternion the
// matrix is scaled by the squared length.
func (q Quaternion) Mat3() Mat3d {
	ww, xx, yy, zz := q.W*q.W, q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return Mat3FromRows(
		Vec3d{ww + xx - yy - zz, 2 * (xy - wz), 2 * (xz + wy)},
		Vec3d{2 * (xy + wz), ww - xx + yy - zz, 2 * (yz - wx)},
		Vec3d{2 * (xz - wy), 2 * (yz + wx), ww - xx - yy + zz},
	)
}

// Mat4 embeds Mat3 in a homogeneous 4×4 matrix.
func (q Quaternion) Mat4() Mat4d {
	return q.Mat3().Mat4()
}

// Angle returns the rotation angle 2·acos(w), in [0, 2π).
func (q Quaternion) Angle() float64 {
	return 2 * math.Acos(q.W)
}

// Axis returns the imaginary part divided by sin(angle/2). It is NaN for
// the identity rotation.
func (q Quaternion) Axis() Vec3d {
	return q.Imag().DivScalar(math.Sin(q.Angle() / 2))
}

// AngleAxis returns the rotation as an angle in (-π, π] and an axis with at
// most one negative component. The identity yields (0, zero vector).
func (q Quaternion) AngleAxis() (float64, Vec3d) {
	cosine := q.W
	v := q.Imag()
	if cosine < 0 {
		cosine = -cosine
		v = v.Neg()
	}

	sine := v.Length()
	if math.Abs(sine) < colinearEpsilon {
		return 0, Vec3d{}
	}

	v = v.DivScalar(sine)
	octant := math.Copysign(1, v.X) + math.Copysign(1, v.Y) + math.Copysign(1, v.Z)
	if octant < 0 {
		v = v.Neg()
		sine = -sine
	}

	return 2 * math.Atan2(sine, cosine), v
}

// ToAxisAngle is AngleAxis packed in an AxisAngle.
func (q Quaternion) ToAxisAngle() AxisAngle {
	angle, axis := q.AngleAxis()
	return AxisAngle{Angle: angle, Axis: axis}
}

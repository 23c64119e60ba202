package scene

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"

	"simdmath/math"
)

func TestRotationTweenLinear(t *testing.T) {
	from := math.QuaternionFromAxisAngle(0.3, math.Vec3Right)
	to := math.QuaternionFromAxisAngle(stdmath.Pi/2, math.Vec3Front).Mul(from)
	tw := NewRotationTween(from, to, 1, nil)

	q, done := tw.Update(0.5)
	assert.False(t, done)
	want := math.QuaternionFromAxisAngle(stdmath.Pi/4, math.Vec3Front).Mul(from)
	assert.True(t, q.SameRotation(want, 1e-6), "got %v, want %v", q, want)

	q, done = tw.Update(0.5)
	assert.True(t, done)
	assert.True(t, q.SameRotation(to, 1e-6), "got %v, want %v", q, to)

	tw.Reset()
	q, _ = tw.Update(0)
	assert.True(t, q.SameRotation(from, 1e-6))
}

func TestRotationTweenShortestArc(t *testing.T) {
	from := math.QuaternionIdentity()
	to := math.QuaternionFromAxisAngle(3*stdmath.Pi/2, math.Vec3Up)
	tw := NewRotationTween(from, to, 2, ease.InOutQuad)

	// 270° one way is 90° the other; halfway is -45°.
	q, _ := tw.Update(1)
	want := math.QuaternionFromAxisAngle(-stdmath.Pi/4, math.Vec3Up)
	assert.True(t, q.SameRotation(want, 1e-6), "got %v, want %v", q, want)

	q, done := tw.Update(5)
	assert.True(t, done)
	assert.True(t, q.SameRotation(to, 1e-6))
}

func TestRotationTweenNoMotion(t *testing.T) {
	from := math.QuaternionFromAxisAngle(1, math.NewVec3(1.0, 2, 3))
	tw := NewRotationTween(from, from, 1, ease.Linear)

	q, done := tw.Update(1)
	assert.True(t, done)
	assert.Equal(t, from, q)
}

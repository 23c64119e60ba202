package scene

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"simdmath/math"
)

// RotationTween interpolates between two rotations along the shortest arc.
// The angle travelled is driven by an easing tween.
type RotationTween struct {
	from  math.Quaternion
	axis  math.Vec3d
	tween *gween.Tween
}

// NewRotationTween returns a tween from `from` to `to` lasting duration
// (in whatever unit Update's dt uses). A nil easing means linear. The angle
// is eased in float32, so the final rotation matches to within about 1e-7.
func NewRotationTween(from, to math.Quaternion, duration float32, easing ease.TweenFunc) *RotationTween {
	if easing == nil {
		easing = ease.Linear
	}
	angle, axis := to.Mul(from.Inverse()).AngleAxis()
	return &RotationTween{
		from:  from,
		axis:  axis,
		tween: gween.New(0, float32(angle), duration, easing),
	}
}

// Update advances the tween by dt and returns the current rotation and
// whether the end has been reached.
func (rt *RotationTween) Update(dt float32) (math.Quaternion, bool) {
	angle, done := rt.tween.Update(dt)
	if rt.axis == (math.Vec3d{}) {
		return rt.from, done
	}
	return math.QuaternionFromAxisAngle(float64(angle), rt.axis).Mul(rt.from), done
}

func (rt *RotationTween) Reset() {
	rt.tween.Reset()
}

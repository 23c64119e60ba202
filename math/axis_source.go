package math

import (
	"sync"

	geo "github.com/golang/geo/r3"
	"golang.org/x/exp/rand"
)

// AxisSource supplies a candidate vector when a from/to rotation has no
// well-defined axis. The converter removes the candidate's components along
// the inputs, so the candidate only has to avoid being parallel to from.
type AxisSource interface {
	Candidate(from Vec3d) Vec3d
}

// OrthoAxis returns a fixed unit vector orthogonal to from. It is
// deterministic: equal inputs always give equal rotations.
type OrthoAxis struct{}

func (OrthoAxis) Candidate(from Vec3d) Vec3d {
	return Vec3FromGeo(geo.Vector{X: from.X, Y: from.Y, Z: from.Z}.Ortho())
}

// RandomAxis draws candidates uniformly from the cube [-1, 1)³. It is safe
// for concurrent use.
type RandomAxis struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAxis returns a RandomAxis seeded with seed.
func NewRandomAxis(seed uint64) *RandomAxis {
	return &RandomAxis{rng: rand.New(rand.NewSource(seed))}
}

func (ra *RandomAxis) Candidate(Vec3d) Vec3d {
	ra.mu.Lock()
	defer ra.mu.Unlock()
	return Vec3d{
		X: 2*ra.rng.Float64() - 1,
		Y: 2*ra.rng.Float64() - 1,
		Z: 2*ra.rng.Float64() - 1,
	}
}

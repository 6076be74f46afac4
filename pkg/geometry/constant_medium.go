package geometry

import (
	"math"

	"github.com/lumen-engine/lumen/pkg/core"
)

// ConstantMedium fills a boundary surface with a participating medium of
// uniform density. A ray entering the boundary scatters after an
// exponentially distributed free path; if the path exceeds the chord through
// the boundary the ray passes through unscattered.
type ConstantMedium struct {
	core.UnsampledSurface

	Boundary   core.Hittable
	Phase      core.Material
	negInvDens float64
}

// NewConstantMedium creates a medium of the given density inside boundary.
// The phase material controls how scattered rays are redirected, typically
// an isotropic one.
func NewConstantMedium(boundary core.Hittable, density float64, phase core.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:   boundary,
		Phase:      phase,
		negInvDens: -1.0 / density,
	}
}

// Hit samples a scattering event along the ray's chord through the boundary,
// drawing the free path from the caller's sampler so renders stay
// reproducible per seed. The boundary must be convex: the chord is found
// with two nested hits.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	// Entry point, searching the whole line so rays starting inside work
	hit1, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	// Exit point past the entry
	hit2, ok := m.Boundary.Hit(ray, hit1.T+1e-4, math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	t1 := math.Max(hit1.T, tMin)
	t2 := math.Min(hit2.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInside := (t2 - t1) * rayLength
	hitDistance := m.negInvDens * math.Log(sampler.Get1D())

	if hitDistance > distanceInside {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,
		Material:  m.Phase,
	}, true
}

// BoundingBox delegates to the boundary
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}

package geometry

import (
	"github.com/lumen-engine/lumen/pkg/core"
)

// List is a composite surface over a set of member surfaces. It aggregates
// hits by closest t, densities by unweighted average (a uniform mixture over
// the members), and direction sampling by uniform member choice.
type List struct {
	Objects []core.Hittable
}

// NewList creates a list from the given surfaces
func NewList(objects ...core.Hittable) *List {
	return &List{Objects: objects}
}

// Add appends a surface to the list
func (l *List) Add(objects ...core.Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Len returns the number of member surfaces
func (l *List) Len() int {
	return len(l.Objects)
}

// Hit returns the closest in-range intersection among all members
func (l *List) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar, sampler); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union box of all members, or false if the list is
// empty or any member is unbounded
func (l *List) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var out core.AABB
	for i, object := range l.Objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			out = box
		} else {
			out = out.Union(box)
		}
	}
	return out, true
}

// PDFValue returns the unweighted average of the members' densities
func (l *List) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		sum += weight * object.PDFValue(origin, direction)
	}
	return sum
}

// RandomDirection picks one member uniformly at random and delegates
func (l *List) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}

	index := int(sampler.Get1D() * float64(len(l.Objects)))
	if index >= len(l.Objects) {
		index = len(l.Objects) - 1
	}
	return l.Objects[index].RandomDirection(origin, sampler)
}

package geometry

import (
	"math"

	"github.com/lumen-engine/lumen/pkg/core"
)

// MovingSphere is a sphere whose center translates linearly between two
// positions over a time interval, intersected at the ray's emission time
type MovingSphere struct {
	core.UnsampledSurface

	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a sphere moving from center0 at time0 to center1
// at time1
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{
		Center0: center0, Center1: center1,
		Time0: time0, Time1: time1,
		Radius:   radius,
		Material: material,
	}
}

// CenterAt returns the center position at the given time. A degenerate
// interval pins the sphere at its starting center.
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	frac := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(frac))
}

// Hit tests if a ray intersects the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	center := s.CenterAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hit.U, hit.V = sphereUV(outwardNormal)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the union of the boxes at both ends of the interval
func (s *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(s.CenterAt(time0).Subtract(radius), s.CenterAt(time0).Add(radius))
	box1 := core.NewAABB(s.CenterAt(time1).Subtract(radius), s.CenterAt(time1).Add(radius))
	return box0.Union(box1), true
}

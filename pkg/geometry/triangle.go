package geometry

import (
	"github.com/lumen-engine/lumen/pkg/core"
)

// Triangle is a single-sided triangle intersected with the Möller–Trumbore
// algorithm
type Triangle struct {
	core.UnsampledSurface

	V0, V1, V2 core.Vec3
	Material   core.Material

	edge1, edge2 core.Vec3
}

// NewTriangle creates a triangle from three vertices in counter-clockwise
// winding order
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	return &Triangle{
		V0: v0, V1: v1, V2: v2,
		Material: material,
		edge1:    v1.Subtract(v0),
		edge2:    v2.Subtract(v0),
	}
}

// Hit tests if a ray intersects the triangle
func (tri *Triangle) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	pvec := ray.Direction.Cross(tri.edge2)
	det := tri.edge1.Dot(pvec)

	// Back-facing or near-parallel rays are rejected
	if det < 1e-8 {
		return nil, false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Subtract(tri.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return nil, false
	}

	qvec := tvec.Cross(tri.edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return nil, false
	}

	t := tri.edge2.Dot(qvec) * invDet
	if t < tMin || t > tMax {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        u,
		V:        v,
		Material: tri.Material,
	}
	hit.SetFaceNormal(ray, tri.edge1.Cross(tri.edge2).Normalize())
	return hit, true
}

// BoundingBox returns the vertex bounds, padded so axis-aligned triangles
// keep a positive extent on every axis
func (tri *Triangle) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box := core.NewAABBFromPoints(tri.V0, tri.V1, tri.V2)
	pad := core.NewVec3(aabbPad, aabbPad, aabbPad)
	return core.NewAABB(box.Min.Subtract(pad), box.Max.Add(pad)), true
}

package geometry

import (
	"math"

	"github.com/lumen-engine/lumen/pkg/core"
)

// aabbPad keeps flat primitives' bounding boxes from collapsing to zero
// thickness, which the slab test treats as a precision hazard
const aabbPad = 1e-4

// XYRect is an axis-aligned rectangle in the plane z = K
type XYRect struct {
	core.UnsampledSurface

	X0, X1, Y0, Y1 float64
	K              float64
	Material       core.Material
}

// NewXYRect creates a rectangle spanning [x0,x1]×[y0,y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, material core.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material}
}

// Hit tests if a ray intersects the rectangle
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Z) / ray.Direction.Z
	if t < tMin || t > tMax {
		return nil, false
	}

	// Inclusive form so the NaN coordinates of a plane-parallel ray fail
	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if !(x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1) {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (x - r.X0) / (r.X1 - r.X0),
		V:        (y - r.Y0) / (r.Y1 - r.Y0),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(0, 0, 1))
	return hit, true
}

// BoundingBox returns the rectangle's box, padded on the thin axis
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-aabbPad),
		core.NewVec3(r.X1, r.Y1, r.K+aabbPad),
	), true
}

// XZRect is an axis-aligned rectangle in the plane y = K. It is the
// light-sampling-capable rectangle variant: the canonical ceiling area light.
type XZRect struct {
	X0, X1, Z0, Z1 float64
	K              float64
	Material       core.Material
}

// NewXZRect creates a rectangle spanning [x0,x1]×[z0,z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, material core.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests if a ray intersects the rectangle
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if t < tMin || t > tMax {
		return nil, false
	}

	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if !(x >= r.X0 && x <= r.X1 && z >= r.Z0 && z <= r.Z1) {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (x - r.X0) / (r.X1 - r.X0),
		V:        (z - r.Z0) / (r.Z1 - r.Z0),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(0, 1, 0))
	return hit, true
}

// BoundingBox returns the rectangle's box, padded on the thin axis
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-aabbPad, r.Z0),
		core.NewVec3(r.X1, r.K+aabbPad, r.Z1),
	), true
}

// PDFValue returns the solid-angle density of sampling the direction from
// origin via RandomDirection: t²·‖direction‖² / (cosθ·A), the area-to-solid-
// angle Jacobian, when the ray hits the rectangle; zero otherwise
func (r *XZRect) PDFValue(origin, direction core.Vec3) float64 {
	hit, ok := r.Hit(core.NewRay(origin, direction, 0), 1e-4, math.Inf(1), nil)
	if !ok {
		return 0
	}

	area := (r.X1 - r.X0) * (r.Z1 - r.Z0)
	distSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal)) / direction.Length()
	if cosine < 1e-8 {
		return 0
	}

	return distSquared / (cosine * area)
}

// RandomDirection returns a direction from origin toward a uniformly
// sampled point on the rectangle
func (r *XZRect) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	point := core.NewVec3(
		r.X0+sample.X*(r.X1-r.X0),
		r.K,
		r.Z0+sample.Y*(r.Z1-r.Z0),
	)
	return point.Subtract(origin)
}

// YZRect is an axis-aligned rectangle in the plane x = K
type YZRect struct {
	core.UnsampledSurface

	Y0, Y1, Z0, Z1 float64
	K              float64
	Material       core.Material
}

// NewYZRect creates a rectangle spanning [y0,y1]×[z0,z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, material core.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests if a ray intersects the rectangle
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.X) / ray.Direction.X
	if t < tMin || t > tMax {
		return nil, false
	}

	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if !(y >= r.Y0 && y <= r.Y1 && z >= r.Z0 && z <= r.Z1) {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (y - r.Y0) / (r.Y1 - r.Y0),
		V:        (z - r.Z0) / (r.Z1 - r.Z0),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(1, 0, 0))
	return hit, true
}

// BoundingBox returns the rectangle's box, padded on the thin axis
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K-aabbPad, r.Y0, r.Z0),
		core.NewVec3(r.K+aabbPad, r.Y1, r.Z1),
	), true
}

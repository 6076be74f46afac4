package geometry

import (
	"math"

	"github.com/lumen-engine/lumen/pkg/core"
)

// Translate wraps a surface and shifts it by a fixed offset. Rays are moved
// into the wrapped surface's frame instead of moving the surface itself.
type Translate struct {
	Inner  core.Hittable
	Offset core.Vec3
}

// NewTranslate creates a translated instance of the given surface
func NewTranslate(inner core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit tests the offset ray against the wrapped surface and shifts the hit
// point back into world space
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	moved := core.NewRay(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)
	hit, ok := tr.Inner.Hit(moved, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	// Translation changes neither the normal nor the face classification
	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// BoundingBox returns the wrapped surface's box shifted by the offset
func (tr *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := tr.Inner.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(tr.Offset), box.Max.Add(tr.Offset)), true
}

// PDFValue delegates to the wrapped surface with the origin shifted into its
// frame
func (tr *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return tr.Inner.PDFValue(origin.Subtract(tr.Offset), direction)
}

// RandomDirection delegates to the wrapped surface with the origin shifted
// into its frame
func (tr *Translate) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return tr.Inner.RandomDirection(origin.Subtract(tr.Offset), sampler)
}

// RotateY wraps a surface and rotates it about the world Y axis
type RotateY struct {
	core.UnsampledSurface

	Inner    core.Hittable
	sinTheta float64
	cosTheta float64
	box      core.AABB
	hasBox   bool
}

// NewRotateY creates a rotated instance of the given surface. The angle is
// in degrees, counter-clockwise when seen from +Y.
func NewRotateY(inner core.Hittable, angleDegrees float64) *RotateY {
	radians := angleDegrees * math.Pi / 180
	r := &RotateY{
		Inner:    inner,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	box, ok := inner.BoundingBox(0, 1)
	r.hasBox = ok
	if !ok {
		return r
	}

	// Rotate all eight corners and take their bounds
	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.Max.X + float64(1-i)*box.Min.X
				y := float64(j)*box.Max.Y + float64(1-j)*box.Min.Y
				z := float64(k)*box.Max.Z + float64(1-k)*box.Min.Z

				newX := r.cosTheta*x + r.sinTheta*z
				newZ := -r.sinTheta*x + r.cosTheta*z

				min = core.NewVec3(math.Min(min.X, newX), math.Min(min.Y, y), math.Min(min.Z, newZ))
				max = core.NewVec3(math.Max(max.X, newX), math.Max(max.Y, y), math.Max(max.Z, newZ))
			}
		}
	}
	r.box = core.NewAABB(min, max)
	return r
}

func (r *RotateY) toLocal(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into the wrapped surface's frame, intersects, and
// rotates the hit point and normal back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	rotated := core.NewRay(r.toLocal(ray.Origin), r.toLocal(ray.Direction), ray.Time)
	hit, ok := r.Inner.Hit(rotated, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	// Rotation preserves dot products, so the face classification made in
	// the local frame carries over unchanged
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the rotated bounds computed at construction
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.box, r.hasBox
}

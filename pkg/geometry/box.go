package geometry

import (
	"github.com/lumen-engine/lumen/pkg/core"
)

// Box is an axis-aligned cuboid assembled from six rectangles
type Box struct {
	core.UnsampledSurface

	Min, Max core.Vec3
	sides    *List
}

// NewBox creates a box spanning the given opposite corners
func NewBox(min, max core.Vec3, material core.Material) *Box {
	sides := NewList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, material),
		NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, material),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, material),
		NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, material),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, material),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, material),
	)
	return &Box{Min: min, Max: max, sides: sides}
}

// Hit tests the ray against all six sides
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the box's own extent
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}

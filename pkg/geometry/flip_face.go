package geometry

import (
	"github.com/lumen-engine/lumen/pkg/core"
)

// FlipFace wraps a surface and inverts its front-face classification. Used
// for one-sided emitters whose fixed normal points away from the scene, such
// as a ceiling light facing down.
type FlipFace struct {
	Inner core.Hittable
}

// NewFlipFace creates a face-flipped instance of the given surface
func NewFlipFace(inner core.Hittable) *FlipFace {
	return &FlipFace{Inner: inner}
}

// Hit delegates to the wrapped surface and inverts FrontFace on the result
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	hit, ok := f.Inner.Hit(ray, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox delegates to the wrapped surface
func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Inner.BoundingBox(time0, time1)
}

// PDFValue delegates to the wrapped surface
func (f *FlipFace) PDFValue(origin, direction core.Vec3) float64 {
	return f.Inner.PDFValue(origin, direction)
}

// RandomDirection delegates to the wrapped surface
func (f *FlipFace) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return f.Inner.RandomDirection(origin, sampler)
}

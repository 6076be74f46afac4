package core

import "math"

// PDF is a sampling strategy exposing both a sampler and the density of its
// own output. Value must be the exact density of the distribution Generate
// samples from, or the estimator built on top of it is biased.
type PDF interface {
	Value(direction Vec3) float64
	Generate(sampler Sampler) Vec3
}

// CosinePDF samples directions cosine-weighted around a surface normal
type CosinePDF struct {
	basis ONB
}

// NewCosinePDF creates a cosine-weighted PDF oriented around the normal
func NewCosinePDF(normal Vec3) *CosinePDF {
	return &CosinePDF{basis: NewONB(normal)}
}

// Value returns max(0, cosθ)/π for the angle θ between direction and normal
func (p *CosinePDF) Value(direction Vec3) float64 {
	cosine := direction.Normalize().Dot(p.basis.W)
	return math.Max(0, cosine/math.Pi)
}

// Generate samples a cosine-weighted direction in the hemisphere
func (p *CosinePDF) Generate(sampler Sampler) Vec3 {
	return p.basis.Local(SampleCosineDirection(sampler.Get2D()))
}

// HittablePDF importance-samples directions toward a surface (typically the
// scene's light list) from a fixed origin
type HittablePDF struct {
	origin Vec3
	target Hittable
}

// NewHittablePDF creates a PDF targeting the given surface from origin
func NewHittablePDF(target Hittable, origin Vec3) *HittablePDF {
	return &HittablePDF{origin: origin, target: target}
}

// Value delegates to the surface's solid-angle density
func (p *HittablePDF) Value(direction Vec3) float64 {
	return p.target.PDFValue(p.origin, direction)
}

// Generate delegates to the surface's direction sampler
func (p *HittablePDF) Generate(sampler Sampler) Vec3 {
	return p.target.RandomDirection(p.origin, sampler)
}

// MixturePDF combines two sampling strategies with equal weight. This is the
// mechanism for multiple importance sampling between material-driven and
// light-driven directions.
type MixturePDF struct {
	a, b PDF
}

// NewMixturePDF creates a 50/50 mixture of two PDFs
func NewMixturePDF(a, b PDF) *MixturePDF {
	return &MixturePDF{a: a, b: b}
}

// Value returns the unweighted average of both densities
func (p *MixturePDF) Value(direction Vec3) float64 {
	return 0.5*p.a.Value(direction) + 0.5*p.b.Value(direction)
}

// Generate flips a fair coin and delegates to one of the two strategies
func (p *MixturePDF) Generate(sampler Sampler) Vec3 {
	if sampler.Get1D() < 0.5 {
		return p.a.Generate(sampler)
	}
	return p.b.Generate(sampler)
}

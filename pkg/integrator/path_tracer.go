// Package integrator estimates radiance along camera rays with recursive
// Monte Carlo path tracing. Diffuse bounces mix material-driven and
// light-driven sampling strategies through a mixture density.
package integrator

import (
	"math"

	"github.com/lumen-engine/lumen/pkg/core"
)

// hitEpsilon offsets secondary rays off their originating surface to avoid
// self-intersection
const hitEpsilon = 1e-4

// pdfFloor bounds the mixture density away from zero before dividing
const pdfFloor = 1e-5

// PathTracer is a recursive path-tracing integrator
type PathTracer struct {
	World      core.Hittable
	Lights     core.Hittable // nil disables light sampling
	Background core.Vec3
	MaxDepth   int
}

// NewPathTracer creates a path tracer over the given world. Lights may be
// nil, in which case diffuse bounces sample the material density alone.
func NewPathTracer(world, lights core.Hittable, background core.Vec3, maxDepth int) *PathTracer {
	return &PathTracer{
		World:      world,
		Lights:     lights,
		Background: background,
		MaxDepth:   maxDepth,
	}
}

// Li returns the radiance arriving along the ray. Non-finite estimates are
// discarded as black so a single degenerate sample cannot poison a pixel.
func (p *PathTracer) Li(ray core.Ray, sampler core.Sampler) core.Vec3 {
	radiance := p.trace(ray, sampler, p.MaxDepth)
	if !radiance.IsFinite() {
		return core.NewVec3(0, 0, 0)
	}
	return radiance
}

func (p *PathTracer) trace(ray core.Ray, sampler core.Sampler, depth int) core.Vec3 {
	if depth <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	hit, ok := p.World.Hit(ray, hitEpsilon, math.Inf(1), sampler)
	if !ok {
		return p.Background
	}

	emitted := core.NewVec3(0, 0, 0)
	if emitter, isEmitter := hit.Material.(core.Emitter); isEmitter {
		emitted = emitter.Emitted(ray, hit)
	}

	scatter, scattered := hit.Material.Scatter(ray, hit, sampler)
	if !scattered {
		return emitted
	}

	if scatter.IsSpecular() {
		indirect := p.trace(scatter.Specular, sampler, depth-1)
		return emitted.Add(scatter.Attenuation.MultiplyVec(indirect))
	}

	pdf := scatter.PDF
	if p.Lights != nil {
		pdf = core.NewMixturePDF(core.NewHittablePDF(p.Lights, hit.Point), scatter.PDF)
	}

	direction := pdf.Generate(sampler)
	bounce := core.NewRay(hit.Point, direction, ray.Time)

	pdfValue := math.Max(pdf.Value(direction), pdfFloor)
	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, bounce)

	indirect := p.trace(bounce, sampler, depth-1)
	return emitted.Add(scatter.Attenuation.MultiplyVec(indirect).Multiply(scatteringPDF / pdfValue))
}

package material

import (
	"github.com/lumen-engine/lumen/pkg/core"
)

// Metal is a specular reflector with an optional fuzz radius that perturbs
// the mirror direction
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64
}

// NewMetal creates a metal material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// reflect mirrors v about the normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Scatter returns the fuzzed mirror bounce, or false when fuzzing pushed the
// reflection below the surface
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Fuzz))
	}
	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Specular:    core.NewRay(hit.Point, reflected, rayIn.Time),
		Attenuation: m.Albedo,
	}, true
}

// ScatteringPDF returns zero; specular bounces carry no density
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

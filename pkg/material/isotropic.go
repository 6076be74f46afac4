package material

import (
	"github.com/lumen-engine/lumen/pkg/core"
)

// Isotropic scatters uniformly over the sphere of directions, the phase
// function of a constant-density medium
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic phase material from an albedo texture
func NewIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// NewIsotropicColor creates an isotropic phase material with a uniform albedo
func NewIsotropicColor(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// Scatter redirects the ray into a uniformly random direction
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Specular:    core.NewRay(hit.Point, core.SampleOnUnitSphere(sampler.Get2D()), rayIn.Time),
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}

// ScatteringPDF returns zero; the bounce is treated as a deterministic event
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

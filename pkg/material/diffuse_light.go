package material

import (
	"github.com/lumen-engine/lumen/pkg/core"
)

// DiffuseLight is a purely emissive material. It never scatters, and it
// emits from its front face only.
type DiffuseLight struct {
	Emission Texture
}

// NewDiffuseLight creates an emitter from an emission texture
func NewDiffuseLight(emission Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// NewDiffuseLightColor creates an emitter with uniform emission
func NewDiffuseLightColor(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// Scatter always returns false; light sources absorb incoming rays
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// ScatteringPDF returns zero
func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission color when the front face was hit, black
// otherwise
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit *core.HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.NewVec3(0, 0, 0)
	}
	return d.Emission.Value(hit.U, hit.V, hit.Point)
}

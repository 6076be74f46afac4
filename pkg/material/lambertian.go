package material

import (
	"math"

	"github.com/lumen-engine/lumen/pkg/core"
)

// Lambertian is an ideal diffuse material with cosine-weighted scattering
type Lambertian struct {
	Albedo Texture
}

// NewLambertian creates a diffuse material from an albedo texture
func NewLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// NewLambertianColor creates a diffuse material with a uniform albedo
func NewLambertianColor(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// Scatter returns a diffuse event carrying a cosine density around the
// shading normal
func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
		PDF:         core.NewCosinePDF(hit.Normal),
	}, true
}

// ScatteringPDF returns the cosine density cos θ / π, zero below the horizon
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

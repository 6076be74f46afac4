package material

import (
	"math"

	"github.com/lumen-engine/lumen/pkg/core"
)

// Dielectric is a clear refractive material such as glass or water
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric with the given index of refraction
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter refracts or reflects the ray depending on the critical angle and
// the Fresnel reflectance
func (d *Dielectric) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	refractionRatio := d.RefractiveIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Multiply(-1).Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var direction core.Vec3
	cannotRefract := refractionRatio*sinTheta > 1.0
	if cannotRefract || schlickReflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, refractionRatio)
	}

	return core.ScatterResult{
		Specular:    core.NewRay(hit.Point, direction, rayIn.Time),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// ScatteringPDF returns zero; specular bounces carry no density
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// refract bends the unit vector v through a surface with normal n by Snell's
// law, where ratio is the quotient of refractive indices
func refract(v, n core.Vec3, ratio float64) core.Vec3 {
	cosTheta := math.Min(v.Multiply(-1).Dot(n), 1.0)
	perpendicular := v.Add(n.Multiply(cosTheta)).Multiply(ratio)
	parallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - perpendicular.LengthSquared())))
	return perpendicular.Add(parallel)
}

// schlickReflectance is Schlick's polynomial approximation of the Fresnel
// reflectance
func schlickReflectance(cosine, ratio float64) float64 {
	r0 := (1 - ratio) / (1 + ratio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

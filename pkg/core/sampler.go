package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// Every render task owns its own Sampler, so there is no shared RNG state
// and no locking on the hot path.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SampleCosineDirection generates a cosine-weighted direction in the local
// z-up hemisphere via the standard disk-to-hemisphere mapping. Transform the
// result with an ONB to orient it around a surface normal.
func SampleCosineDirection(sample Vec2) Vec3 {
	phi := 2.0 * math.Pi * sample.X
	r := math.Sqrt(sample.Y)

	x := math.Cos(phi) * r
	y := math.Sin(phi) * r
	z := math.Sqrt(1.0 - sample.Y)

	return NewVec3(x, y, z)
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}

// SamplePointInUnitSphere generates a random point inside a unit sphere using
// the inverse CDF method, avoiding rejection sampling
func SamplePointInUnitSphere(sample Vec3) Vec3 {
	r := math.Pow(sample.X, 1.0/3.0)
	phi := 2 * math.Pi * sample.Y
	cosTheta := 2*sample.Z - 1
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))

	x := r * sinTheta * math.Cos(phi)
	y := r * sinTheta * math.Sin(phi)
	z := r * cosTheta

	return NewVec3(x, y, z)
}

// SampleToSphere generates a local z-up direction toward a sphere of the
// given radius whose center is distSquared away, uniform over the visible
// solid angle. Transform with an ONB whose W axis points at the center.
func SampleToSphere(radius, distSquared float64, sample Vec2) Vec3 {
	z := 1 + sample.Y*(math.Sqrt(1-radius*radius/distSquared)-1)

	phi := 2 * math.Pi * sample.X
	r := math.Sqrt(math.Max(0, 1-z*z))
	x := math.Cos(phi) * r
	y := math.Sin(phi) * r

	return NewVec3(x, y, z)
}

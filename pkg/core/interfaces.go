package core

// HitRecord contains information about a ray-surface intersection. The
// Material field is a non-owning reference into the scene's shared,
// read-only material set.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal at intersection, facing the ray
	T         float64  // Parameter t along the ray
	U, V      float64  // Surface parametrization of the hit point
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Hittable is the surface capability contract: any primitive, or composite
// of primitives (lists, the BVH, wrappers), that rays can intersect.
type Hittable interface {
	// Hit returns the closest intersection within [tMin, tMax], if any.
	// The sampler feeds stochastic surfaces (participating media); purely
	// geometric surfaces ignore it, so density queries that re-intersect
	// may pass nil.
	Hit(ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool)

	// BoundingBox returns a box enclosing the surface over the given time
	// interval. Unbounded constructs return false and must be kept out of
	// BVH membership.
	BoundingBox(time0, time1 float64) (AABB, bool)

	// PDFValue returns the solid-angle density of sampling the given
	// direction from origin via RandomDirection. Zero for surfaces that are
	// not usable as importance-sampled light sources.
	PDFValue(origin, direction Vec3) float64

	// RandomDirection returns a direction from origin toward a uniformly
	// sampled point on the surface, for light-sampling-capable surfaces.
	RandomDirection(origin Vec3, sampler Sampler) Vec3
}

// UnsampledSurface provides the default light-sampling behavior for
// surfaces that cannot be importance sampled. Embed it to satisfy the
// Hittable contract with a zero density and an arbitrary fixed direction.
type UnsampledSurface struct{}

// PDFValue returns zero; the surface is never chosen by light sampling
func (UnsampledSurface) PDFValue(origin, direction Vec3) float64 {
	return 0
}

// RandomDirection returns an arbitrary fixed direction
func (UnsampledSurface) RandomDirection(origin Vec3, sampler Sampler) Vec3 {
	return NewVec3(1, 0, 0)
}

// ScatterResult contains the result of a material scatter query: either a
// deterministic specular bounce (probability 1, nil PDF) or a diffuse event
// carrying the sampling density for the estimator.
type ScatterResult struct {
	Specular    Ray  // Deterministic bounce ray; valid only when PDF is nil
	Attenuation Vec3 // Color attenuation
	PDF         PDF  // Sampling density for diffuse events, nil for specular
}

// IsSpecular returns true if this is a deterministic specular bounce
func (s ScatterResult) IsSpecular() bool {
	return s.PDF == nil
}

// Material is the material capability contract
type Material interface {
	// Scatter produces a scatter event for the incoming ray, or false for
	// purely absorbing/emissive surfaces
	Scatter(rayIn Ray, hit *HitRecord, sampler Sampler) (ScatterResult, bool)

	// ScatteringPDF returns the density with which the material itself
	// would have generated the scattered ray. Zero for materials without a
	// directional density.
	ScatteringPDF(rayIn Ray, hit *HitRecord, scattered Ray) float64
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emitted(rayIn Ray, hit *HitRecord) Vec3
}

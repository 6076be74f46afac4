package geometry

import (
	"math"

	"github.com/lumen-engine/lumen/pkg/core"
)

// Sphere represents a sphere shape. Spheres are light-sampling capable: they
// expose a uniform density over the cone of directions subtending them.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Try the closer intersection point first
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.U, hit.V = sphereUV(outwardNormal)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// sphereUV maps a point on the unit sphere to (u, v) surface coordinates
func sphereUV(p core.Vec3) (float64, float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius)), true
}

// PDFValue returns the solid-angle density of sampling the direction from
// origin: uniform over the cone subtending the sphere, zero if the ray
// misses it. An origin inside the sphere has no subtending cone and
// reports zero.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	distSquared := s.Center.Subtract(origin).LengthSquared()
	if distSquared <= s.Radius*s.Radius {
		return 0
	}
	if _, ok := s.Hit(core.NewRay(origin, direction, 0), 1e-4, math.Inf(1), nil); !ok {
		return 0
	}

	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	if solidAngle <= 0 {
		return 0
	}
	return 1 / solidAngle
}

// RandomDirection samples a direction from origin toward the sphere,
// uniform over its subtended solid angle. From inside, every direction
// reaches the surface; the one toward the center is returned.
func (s *Sphere) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.Center.Subtract(origin)
	if direction.LengthSquared() <= s.Radius*s.Radius {
		return direction
	}
	basis := core.NewONB(direction)
	return basis.Local(core.SampleToSphere(s.Radius, direction.LengthSquared(), sampler.Get2D()))
}

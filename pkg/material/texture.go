package material

import (
	"math"

	"github.com/lumen-engine/lumen/pkg/core"
)

// Texture maps a surface parametrization and hit point to a color
type Texture interface {
	Value(u, v float64, point core.Vec3) core.Vec3
}

// SolidColor is a texture with the same color everywhere
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a uniform texture from a color
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the color regardless of position
func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates two textures in a 3D checkerboard pattern
type Checker struct {
	Even, Odd Texture
}

// NewChecker creates a checker texture from two sub-textures
func NewChecker(even, odd Texture) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// NewCheckerColors creates a checker texture from two solid colors
func NewCheckerColors(even, odd core.Vec3) *Checker {
	return &Checker{Even: NewSolidColor(even), Odd: NewSolidColor(odd)}
}

// Value picks a sub-texture by the sign of a 3D sine product
func (c *Checker) Value(u, v float64, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, point)
	}
	return c.Even.Value(u, v, point)
}

// Noise is a marble-like procedural texture built on Perlin turbulence
type Noise struct {
	perlin *perlin
	Scale  float64
}

// NewNoise creates a noise texture with the given frequency scale
func NewNoise(scale float64, sampler core.Sampler) *Noise {
	return &Noise{perlin: newPerlin(sampler), Scale: scale}
}

// Value returns a gray level modulated by a turbulence-perturbed sine
func (n *Noise) Value(u, v float64, point core.Vec3) core.Vec3 {
	phase := n.Scale*point.Z + 10*n.perlin.turbulence(point, 7)
	gray := 0.5 * (1 + math.Sin(phase))
	return core.NewVec3(gray, gray, gray)
}

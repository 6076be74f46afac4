package material

import (
	"math"

	"github.com/lumen-engine/lumen/pkg/core"
)

const perlinPointCount = 256

// perlin holds a table of random unit gradients and per-axis permutations
type perlin struct {
	gradients []core.Vec3
	permX     []int
	permY     []int
	permZ     []int
}

func newPerlin(sampler core.Sampler) *perlin {
	gradients := make([]core.Vec3, perlinPointCount)
	for i := range gradients {
		gradients[i] = core.SampleOnUnitSphere(sampler.Get2D())
	}
	return &perlin{
		gradients: gradients,
		permX:     generatePerm(sampler),
		permY:     generatePerm(sampler),
		permZ:     generatePerm(sampler),
	}
}

func generatePerm(sampler core.Sampler) []int {
	perm := make([]int, perlinPointCount)
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		j := int(sampler.Get1D() * float64(i+1))
		if j > i {
			j = i
		}
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// noise returns gradient noise in [-1, 1] at the given point
func (p *perlin) noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var cell [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				cell[di][dj][dk] = p.gradients[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterp(cell, u, v, w)
}

// turbulence sums octaves of noise with halving amplitude
func (p *perlin) turbulence(point core.Vec3, depth int) float64 {
	sum := 0.0
	weight := 1.0
	sample := point

	for i := 0; i < depth; i++ {
		sum += weight * p.noise(sample)
		weight *= 0.5
		sample = sample.Multiply(2)
	}

	return math.Abs(sum)
}

// perlinInterp is trilinear interpolation of gradient dot products with
// Hermite smoothing
func perlinInterp(cell [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	sum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				sum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					cell[i][j][k].Dot(weight)
			}
		}
	}
	return sum
}

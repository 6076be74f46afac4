package renderer

import (
	"math"

	"github.com/lumen-engine/lumen/pkg/core"
)

// Camera generates primary rays for a pinhole camera with a shutter
// interval. Ray times are jittered uniformly across the interval, which is
// what makes moving primitives blur.
type Camera struct {
	origin     core.Vec3
	lowerLeft  core.Vec3
	horizontal core.Vec3
	vertical   core.Vec3
	time0      float64
	time1      float64
}

// NewCamera creates a camera at lookFrom aimed at lookAt. The vertical field
// of view is in degrees; aspectRatio is width over height.
func NewCamera(lookFrom, lookAt, vup core.Vec3, vfovDegrees, aspectRatio, time0, time1 float64) *Camera {
	theta := vfovDegrees * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2 * halfHeight
	viewportWidth := aspectRatio * viewportHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	u := vup.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeft := lookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:     lookFrom,
		lowerLeft:  lowerLeft,
		horizontal: horizontal,
		vertical:   vertical,
		time0:      time0,
		time1:      time1,
	}
}

// Ray returns the camera ray through viewport coordinates (s, t) in [0, 1]²,
// with s running left to right and t bottom to top
func (c *Camera) Ray(s, t float64, sampler core.Sampler) core.Ray {
	direction := c.lowerLeft.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	time := c.time0
	if c.time1 > c.time0 {
		time = c.time0 + sampler.Get1D()*(c.time1-c.time0)
	}
	return core.NewRay(c.origin, direction, time)
}

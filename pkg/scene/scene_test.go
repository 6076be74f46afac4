package scene

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-engine/lumen/pkg/core"
	"github.com/lumen-engine/lumen/pkg/integrator"
	"github.com/lumen-engine/lumen/pkg/renderer"
)

func TestBuild_AllRegisteredScenes(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Build(name, 1.0)
			require.NoError(t, err)
			require.NotNil(t, s.World)
			require.NotNil(t, s.Camera)

			_, bounded := s.World.BoundingBox(0, 1)
			assert.True(t, bounded, "scene world should be bounded")
		})
	}
}

func TestBuild_UnknownScene(t *testing.T) {
	_, err := Build("nonexistent", 1.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestCornell_GeometryAndLight(t *testing.T) {
	s, err := Cornell(1.0)
	require.NoError(t, err)
	require.NotNil(t, s.Lights)

	// A ray over the boxes must reach the back wall
	ray := core.NewRay(core.NewVec3(278, 500, -800), core.NewVec3(0, 0, 1), 0)
	hit, ok := s.World.Hit(ray, 0.001, math.Inf(1), nil)
	require.True(t, ok)
	assert.InDelta(t, 555, hit.Point.Z, 1e-6, "should reach the back wall")

	// The light list must report a positive density toward the lamp
	origin := core.NewVec3(278, 100, 278)
	toward := core.NewVec3(278, 554, 278).Subtract(origin)
	assert.Greater(t, s.Lights.PDFValue(origin, toward), 0.0)

	assert.Equal(t, core.NewVec3(0, 0, 0), s.Background, "cornell is lit by its lamp only")
}

func TestCornell_LampEmitsDownward(t *testing.T) {
	s, err := Cornell(1.0)
	require.NoError(t, err)

	// Looking up at the lamp from inside the box sees the emitting face
	ray := core.NewRay(core.NewVec3(278, 100, 278), core.NewVec3(0, 1, 0), 0)
	hit, ok := s.World.Hit(ray, 0.001, math.Inf(1), nil)
	require.True(t, ok)

	emitter, isEmitter := hit.Material.(core.Emitter)
	require.True(t, isEmitter, "ray up the middle should reach the lamp")
	emitted := emitter.Emitted(ray, hit)
	assert.Equal(t, core.NewVec3(15, 15, 15), emitted)
}

func TestShowcase_HitsGround(t *testing.T) {
	s, err := Showcase(16.0 / 9.0)
	require.NoError(t, err)
	assert.Nil(t, s.Lights)

	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 0)
	hit, ok := s.World.Hit(ray, 0.001, math.Inf(1), nil)
	require.True(t, ok)
	assert.InDelta(t, 0, hit.Point.Y, 1e-6, "ground sits at y = 0")
}

func TestSmoke_MediaScatterInsideBoxes(t *testing.T) {
	s, err := Smoke(1.0)
	require.NoError(t, err)

	// Rays through a medium volume scatter somewhere inside it rather than
	// bouncing off a box face; over many trials at density 0.01 some must
	// scatter strictly inside
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(31)))
	ray := core.NewRay(core.NewVec3(278, 80, -800), core.NewVec3(0, 0, 1), 0)
	interior := 0
	for i := 0; i < 200; i++ {
		hit, ok := s.World.Hit(ray, 0.001, math.Inf(1), sampler)
		require.True(t, ok, "ray should at least reach the back wall")
		if hit.Point.Z > 1 && hit.Point.Z < 554 {
			interior++
		}
	}
	assert.Greater(t, interior, 0, "smoke should scatter rays inside the box volumes")
}

func TestSmoke_RenderDeterministicPerSeed(t *testing.T) {
	// Media draw their free paths from the per-row sampler, so even the
	// smoke scene must reproduce pixel for pixel under a fixed seed,
	// whatever the worker count
	render := func(workers int) []uint8 {
		s, err := Smoke(1.0)
		require.NoError(t, err)

		tracer := integrator.NewPathTracer(s.World, s.Lights, s.Background, 4)
		r, err := renderer.New(renderer.Options{
			Width: 12, Height: 12, SamplesPerPixel: 2, Workers: workers, Seed: 7,
		})
		require.NoError(t, err)

		img, _, err := r.Render(context.Background(), tracer, s.Camera)
		require.NoError(t, err)
		return img.Pix
	}

	first := render(1)
	second := render(3)
	assert.Equal(t, first, second)
}

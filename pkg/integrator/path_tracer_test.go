package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lumen-engine/lumen/pkg/core"
	"github.com/lumen-engine/lumen/pkg/geometry"
	"github.com/lumen-engine/lumen/pkg/material"
)

func newTestSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

func TestPathTracer_DepthExhaustedIsBlack(t *testing.T) {
	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1, material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))),
	)
	tracer := NewPathTracer(world, nil, core.NewVec3(1, 1, 1), 0)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	if got := tracer.Li(ray, newTestSampler(1)); got != core.NewVec3(0, 0, 0) {
		t.Errorf("Li at depth 0 = %v, want black", got)
	}
}

func TestPathTracer_MissReturnsExactBackground(t *testing.T) {
	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1, material.NewLambertianColor(core.NewVec3(0.5, 0.5, 0.5))),
	)
	background := core.NewVec3(0.25, 0.5, 0.75)
	tracer := NewPathTracer(world, nil, background, 10)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0)
	if got := tracer.Li(ray, newTestSampler(2)); got != background {
		t.Errorf("Li on miss = %v, want %v", got, background)
	}
}

func TestPathTracer_DirectLightHit(t *testing.T) {
	// Looking straight at the emitting face returns the emission plus
	// nothing else
	emission := core.NewVec3(3, 2, 1)
	light := geometry.NewXZRect(-1, 1, -1, 1, 2, material.NewDiffuseLightColor(emission))
	world := geometry.NewList(light)
	tracer := NewPathTracer(world, nil, core.NewVec3(0, 0, 0), 10)

	// Seen from above, the ray meets the rect's +Y normal head on: front
	// face, full emission
	ray := core.NewRay(core.NewVec3(0, 4, 0), core.NewVec3(0, -1, 0), 0)
	if got := tracer.Li(ray, newTestSampler(3)); got != emission {
		t.Errorf("Li into light = %v, want %v", got, emission)
	}

	// From below the back face is hit and emits nothing
	ray = core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0)
	if got := tracer.Li(ray, newTestSampler(4)); got != core.NewVec3(0, 0, 0) {
		t.Errorf("Li into light back face = %v, want black", got)
	}
}

func TestPathTracer_SpecularBounceSeesBackground(t *testing.T) {
	// A perfect mirror tilted 45° reflects the camera ray into the
	// background; the result is attenuation times background
	mirror := material.NewMetal(core.NewVec3(0.8, 0.6, 0.4), 0)
	world := geometry.NewList(
		geometry.NewRotateY(geometry.NewXYRect(-5, 5, -5, 5, 0, mirror), 45),
	)
	background := core.NewVec3(1, 1, 1)
	tracer := NewPathTracer(world, nil, background, 10)

	ray := core.NewRay(core.NewVec3(-3, 0, 0), core.NewVec3(1, 0, 0), 0)
	got := tracer.Li(ray, newTestSampler(5))
	want := core.NewVec3(0.8, 0.6, 0.4)
	if got.Subtract(want).Length() > 1e-9 {
		t.Errorf("Li off mirror = %v, want %v", got, want)
	}
}

func TestPathTracer_LitVersusOccluded(t *testing.T) {
	// A diffuse floor under a small bright light: a point with a clear view
	// of the light must come out brighter than one with a blocker in
	// between
	lightMat := material.NewDiffuseLightColor(core.NewVec3(15, 15, 15))
	floor := geometry.NewXZRect(-10, 10, -10, 10, 0, material.NewLambertianColor(core.NewVec3(0.7, 0.7, 0.7)))
	light := geometry.NewXZRect(-1, 1, -1, 1, 8, lightMat)

	open := geometry.NewList(floor, geometry.NewFlipFace(light))
	blocker := geometry.NewBox(core.NewVec3(-2, 3, -2), core.NewVec3(2, 4, 2),
		material.NewLambertianColor(core.NewVec3(0.1, 0.1, 0.1)))
	occluded := geometry.NewList(floor, geometry.NewFlipFace(light), blocker)

	lights := geometry.NewList(light)
	black := core.NewVec3(0, 0, 0)
	openTracer := NewPathTracer(open, lights, black, 8)
	occludedTracer := NewPathTracer(occluded, lights, black, 8)

	ray := core.NewRay(core.NewVec3(0, 5, 9), core.NewVec3(0, -5, -9).Normalize(), 0)

	const samples = 3000
	sampler := newTestSampler(6)
	var openSum, occludedSum float64
	for i := 0; i < samples; i++ {
		openSum += openTracer.Li(ray, sampler).X
		occludedSum += occludedTracer.Li(ray, sampler).X
	}

	openMean := openSum / samples
	occludedMean := occludedSum / samples
	if openMean <= occludedMean {
		t.Errorf("open view %v should be brighter than occluded %v", openMean, occludedMean)
	}
	if openMean <= 0 {
		t.Error("lit point should receive light")
	}
}

func TestPathTracer_LightSamplingAgreesWithMaterialSampling(t *testing.T) {
	// The same scene estimated with and without light sampling must
	// converge to the same radiance; mixture sampling changes variance,
	// not the mean
	lightMat := material.NewDiffuseLightColor(core.NewVec3(10, 10, 10))
	floor := geometry.NewXZRect(-20, 20, -20, 20, 0, material.NewLambertianColor(core.NewVec3(0.6, 0.6, 0.6)))
	light := geometry.NewXZRect(-3, 3, -3, 3, 6, lightMat)
	world := geometry.NewList(floor, geometry.NewFlipFace(light))
	lights := geometry.NewList(light)

	black := core.NewVec3(0, 0, 0)
	mixed := NewPathTracer(world, lights, black, 4)
	plain := NewPathTracer(world, nil, black, 4)

	ray := core.NewRay(core.NewVec3(0, 3, 10), core.NewVec3(0, -3, -10).Normalize(), 0)

	const samples = 20000
	samplerA := newTestSampler(7)
	samplerB := newTestSampler(8)
	var mixedSum, plainSum float64
	for i := 0; i < samples; i++ {
		mixedSum += mixed.Li(ray, samplerA).X
		plainSum += plain.Li(ray, samplerB).X
	}

	mixedMean := mixedSum / samples
	plainMean := plainSum / samples
	if mixedMean <= 0 || plainMean <= 0 {
		t.Fatalf("both estimators should see light: mixed %v, plain %v", mixedMean, plainMean)
	}
	relDiff := math.Abs(mixedMean-plainMean) / plainMean
	if relDiff > 0.15 {
		t.Errorf("estimators disagree: mixed %v, plain %v", mixedMean, plainMean)
	}
}

func TestPathTracer_OutputAlwaysFinite(t *testing.T) {
	// Grazing light-sample directions can produce huge ratios; the final
	// estimate must still be finite and non-negative
	lightMat := material.NewDiffuseLightColor(core.NewVec3(50, 50, 50))
	floor := geometry.NewXZRect(-10, 10, -10, 10, 0, material.NewLambertianColor(core.NewVec3(0.9, 0.9, 0.9)))
	light := geometry.NewXZRect(-5, 5, -5, 5, 0.01, lightMat)
	world := geometry.NewList(floor, geometry.NewFlipFace(light))
	lights := geometry.NewList(light)

	tracer := NewPathTracer(world, lights, core.NewVec3(0, 0, 0), 6)
	sampler := newTestSampler(9)
	ray := core.NewRay(core.NewVec3(0, 2, 8), core.NewVec3(0, -2, -8).Normalize(), 0)

	for i := 0; i < 2000; i++ {
		radiance := tracer.Li(ray, sampler)
		if !radiance.IsFinite() {
			t.Fatal("Li returned a non-finite estimate")
		}
		if radiance.X < 0 || radiance.Y < 0 || radiance.Z < 0 {
			t.Fatalf("Li returned negative radiance %v", radiance)
		}
	}
}

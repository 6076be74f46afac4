package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lumen-engine/lumen/pkg/core"
)

func TestRects_Hit(t *testing.T) {
	xy := NewXYRect(-1, 1, -1, 1, -3, nil)
	xz := NewXZRect(-1, 1, -1, 1, 2, nil)
	yz := NewYZRect(-1, 1, -1, 1, 4, nil)

	tests := []struct {
		name    string
		surface core.Hittable
		ray     core.Ray
		wantHit bool
		wantT   float64
	}{
		{
			name:    "xy head on",
			surface: xy,
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0),
			wantHit: true,
			wantT:   3,
		},
		{
			name:    "xy outside bounds",
			surface: xy,
			ray:     core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -1), 0),
			wantHit: false,
		},
		{
			name:    "xz from below",
			surface: xz,
			ray:     core.NewRay(core.NewVec3(0.5, 0, 0.5), core.NewVec3(0, 1, 0), 0),
			wantHit: true,
			wantT:   2,
		},
		{
			name:    "yz head on",
			surface: yz,
			ray:     core.NewRay(core.NewVec3(0, 0.2, -0.2), core.NewVec3(1, 0, 0), 0),
			wantHit: true,
			wantT:   4,
		},
		{
			name:    "parallel ray",
			surface: xy,
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), 0),
			wantHit: false,
		},
		{
			// Plane-parallel with the plane ahead: t is +Inf and the
			// in-plane coordinates are NaN, which must read as a miss
			name:    "parallel ray below plane",
			surface: xz,
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), 0),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tt.surface.Hit(tt.ray, 0.001, math.Inf(1), nil)
			if ok != tt.wantHit {
				t.Fatalf("Hit() = %v, want %v", ok, tt.wantHit)
			}
			if ok && math.Abs(hit.T-tt.wantT) > 1e-9 {
				t.Errorf("T = %v, want %v", hit.T, tt.wantT)
			}
		})
	}
}

func TestRect_UVCoordinates(t *testing.T) {
	r := NewXYRect(0, 2, 0, 4, 0, nil)
	ray := core.NewRay(core.NewVec3(1, 3, 1), core.NewVec3(0, 0, -1), 0)

	hit, ok := r.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.U-0.5) > 1e-9 || math.Abs(hit.V-0.75) > 1e-9 {
		t.Errorf("(U, V) = (%v, %v), want (0.5, 0.75)", hit.U, hit.V)
	}
}

func TestRect_BoundingBoxPadded(t *testing.T) {
	r := NewXZRect(0, 5, 0, 5, 2, nil)
	box, ok := r.BoundingBox(0, 1)
	if !ok {
		t.Fatal("rect should be bounded")
	}
	if box.Max.Y <= box.Min.Y {
		t.Error("flat axis should carry positive thickness")
	}
	if box.Min.Y > 2 || box.Max.Y < 2 {
		t.Error("padding should straddle the plane")
	}
}

func TestXZRect_PDFValueMatchesGeometry(t *testing.T) {
	// Unit-area rectangle at y=1, viewed straight on from one unit below:
	// distance² / (cosθ · area) = 1 / (1 · 1) = 1
	r := NewXZRect(-0.5, 0.5, -0.5, 0.5, 1, nil)
	origin := core.NewVec3(0, 0, 0)

	pdf := r.PDFValue(origin, core.NewVec3(0, 1, 0))
	if math.Abs(pdf-1) > 1e-9 {
		t.Errorf("PDFValue = %v, want 1", pdf)
	}

	// Doubling the distance quadruples the density
	r2 := NewXZRect(-0.5, 0.5, -0.5, 0.5, 2, nil)
	pdf2 := r2.PDFValue(origin, core.NewVec3(0, 1, 0))
	if math.Abs(pdf2-4) > 1e-9 {
		t.Errorf("PDFValue at double distance = %v, want 4", pdf2)
	}

	// Miss gives zero
	if got := r.PDFValue(origin, core.NewVec3(1, 0, 0)); got != 0 {
		t.Errorf("PDFValue on miss = %v, want 0", got)
	}
}

func TestXZRect_RandomDirectionLandsOnRect(t *testing.T) {
	r := NewXZRect(1, 3, -2, 2, 5, nil)
	origin := core.NewVec3(0, 0, 0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(11)))

	for i := 0; i < 200; i++ {
		dir := r.RandomDirection(origin, sampler)
		hit, ok := r.Hit(core.NewRay(origin, dir, 0), 0.001, math.Inf(1), nil)
		if !ok {
			t.Fatalf("sampled direction %v misses the rectangle", dir)
		}
		if r.PDFValue(origin, dir) <= 0 {
			t.Fatalf("sampled direction %v has non-positive density", dir)
		}
		_ = hit
	}
}

func TestXZRect_PDFNormalization(t *testing.T) {
	// Integrating the density over the sphere of directions must give 1.
	// Estimate with uniform sphere samples.
	r := NewXZRect(-1, 1, -1, 1, 2, nil)
	origin := core.NewVec3(0, 0, 0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))

	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		dir := core.SampleOnUnitSphere(sampler.Get2D())
		sum += r.PDFValue(origin, dir)
	}
	integral := sum / n * 4 * math.Pi

	if math.Abs(integral-1) > 0.05 {
		t.Errorf("density integrates to %v, want 1", integral)
	}
}

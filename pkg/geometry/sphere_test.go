package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lumen-engine/lumen/pkg/core"
)

func TestSphere_Hit(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, -2), 1, nil)

	tests := []struct {
		name    string
		ray     core.Ray
		wantHit bool
		wantT   float64
	}{
		{
			name:    "head on",
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0),
			wantHit: true,
			wantT:   1,
		},
		{
			name:    "miss",
			ray:     core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, 0, -1), 0),
			wantHit: false,
		},
		{
			name:    "grazing through center plane",
			ray:     core.NewRay(core.NewVec3(-5, 0, -2), core.NewVec3(1, 0, 0), 0),
			wantHit: true,
			wantT:   4,
		},
		{
			name:    "from inside takes far root",
			ray:     core.NewRay(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, -1), 0),
			wantHit: true,
			wantT:   1,
		},
		{
			name:    "behind origin",
			ray:     core.NewRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, -1), 0),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := s.Hit(tt.ray, 0.001, math.Inf(1), nil)
			if ok != tt.wantHit {
				t.Fatalf("Hit() = %v, want %v", ok, tt.wantHit)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-tt.wantT) > 1e-9 {
				t.Errorf("T = %v, want %v", hit.T, tt.wantT)
			}
		})
	}
}

func TestSphere_HitRecordGeometry(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, -2), 1, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)

	hit, ok := s.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("expected hit")
	}

	if !hit.FrontFace {
		t.Error("ray from outside should hit a front face")
	}
	wantNormal := core.NewVec3(0, 0, 1)
	if hit.Normal.Subtract(wantNormal).Length() > 1e-9 {
		t.Errorf("Normal = %v, want %v", hit.Normal, wantNormal)
	}

	// From inside the normal flips against the ray
	inside := core.NewRay(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, -1), 0)
	hit, ok = s.Hit(inside, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("expected hit from inside")
	}
	if hit.FrontFace {
		t.Error("ray from inside should hit a back face")
	}
	if hit.Normal.Dot(inside.Direction) >= 0 {
		t.Error("normal should face against the ray")
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		point      core.Vec3
		wantU, wantV float64
	}{
		{core.NewVec3(1, 0, 0), 0.5, 0.5},
		{core.NewVec3(-1, 0, 0), 0, 0.5},
		{core.NewVec3(0, 1, 0), 0.5, 1},
		{core.NewVec3(0, -1, 0), 0.5, 0},
		{core.NewVec3(0, 0, 1), 0.25, 0.5},
		{core.NewVec3(0, 0, -1), 0.75, 0.5},
	}

	for _, tt := range tests {
		u, v := sphereUV(tt.point)
		if math.Abs(u-tt.wantU) > 1e-9 || math.Abs(v-tt.wantV) > 1e-9 {
			t.Errorf("sphereUV(%v) = (%v, %v), want (%v, %v)", tt.point, u, v, tt.wantU, tt.wantV)
		}
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	s := NewSphere(core.NewVec3(1, 2, 3), 2, nil)
	box, ok := s.BoundingBox(0, 1)
	if !ok {
		t.Fatal("sphere should be bounded")
	}

	wantMin := core.NewVec3(-1, 0, 1)
	wantMax := core.NewVec3(3, 4, 5)
	if box.Min != wantMin || box.Max != wantMax {
		t.Errorf("box = [%v, %v], want [%v, %v]", box.Min, box.Max, wantMin, wantMax)
	}
}

func TestSphere_PDFConsistency(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, -5), 1, nil)
	origin := core.NewVec3(0, 0, 0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))

	// Every generated direction must carry positive density
	for i := 0; i < 200; i++ {
		dir := s.RandomDirection(origin, sampler)
		if s.PDFValue(origin, dir) <= 0 {
			t.Fatalf("generated direction %v has non-positive density", dir)
		}
	}

	// A direction that misses has zero density
	if pdf := s.PDFValue(origin, core.NewVec3(0, 0, 1)); pdf != 0 {
		t.Errorf("PDFValue away from sphere = %v, want 0", pdf)
	}
}

func TestSphere_PDFFromInside(t *testing.T) {
	// The cone formula has no meaning for an interior origin; the density
	// must read zero, never NaN
	s := NewSphere(core.NewVec3(0, 0, 0), 2, nil)
	origin := core.NewVec3(0.5, 0, 0)

	pdf := s.PDFValue(origin, core.NewVec3(1, 0, 0))
	if math.IsNaN(pdf) {
		t.Fatal("interior density is NaN")
	}
	if pdf != 0 {
		t.Errorf("interior density = %v, want 0", pdf)
	}

	// Direction sampling from inside still reaches the surface
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(13)))
	dir := s.RandomDirection(origin, sampler)
	if !dir.IsFinite() {
		t.Fatalf("interior direction %v not finite", dir)
	}
	if _, ok := s.Hit(core.NewRay(origin, dir, 0), 1e-4, math.Inf(1), nil); !ok {
		t.Error("interior direction should reach the sphere surface")
	}
}

func TestMovingSphere_CenterInterpolation(t *testing.T) {
	s := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), 0, 1, 0.5, nil)

	if got := s.CenterAt(0); got != core.NewVec3(0, 0, 0) {
		t.Errorf("CenterAt(0) = %v", got)
	}
	if got := s.CenterAt(0.5); got != core.NewVec3(1, 0, 0) {
		t.Errorf("CenterAt(0.5) = %v", got)
	}
	if got := s.CenterAt(1); got != core.NewVec3(2, 0, 0) {
		t.Errorf("CenterAt(1) = %v", got)
	}
}

func TestMovingSphere_DegenerateInterval(t *testing.T) {
	// A zero-length interval must not divide by zero; the sphere stays at
	// its starting center
	s := NewMovingSphere(core.NewVec3(0, 0, -2), core.NewVec3(9, 9, 9), 1, 1, 1, nil)

	center := s.CenterAt(1)
	if !center.IsFinite() {
		t.Fatalf("CenterAt = %v, want a finite center", center)
	}
	if center != core.NewVec3(0, 0, -2) {
		t.Errorf("CenterAt = %v, want the starting center", center)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 1)
	hit, ok := s.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("expected hit at the pinned center")
	}
	if math.Abs(hit.T-1) > 1e-9 {
		t.Errorf("T = %v, want 1", hit.T)
	}
}

func TestMovingSphere_HitAtRayTime(t *testing.T) {
	s := NewMovingSphere(core.NewVec3(0, 0, -2), core.NewVec3(10, 0, -2), 0, 1, 1, nil)

	// At time 0 the sphere sits on the axis, at time 1 it has moved away
	early := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	if _, ok := s.Hit(early, 0.001, math.Inf(1), nil); !ok {
		t.Error("expected hit at time 0")
	}

	late := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 1)
	if _, ok := s.Hit(late, 0.001, math.Inf(1), nil); ok {
		t.Error("expected miss at time 1")
	}
}

func TestMovingSphere_BoundingBoxCoversPath(t *testing.T) {
	s := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(4, 0, 0), 0, 1, 1, nil)
	box, ok := s.BoundingBox(0, 1)
	if !ok {
		t.Fatal("moving sphere should be bounded")
	}

	if box.Min.X > -1 || box.Max.X < 5 {
		t.Errorf("box [%v, %v] does not cover the motion", box.Min, box.Max)
	}
}

// Package scene assembles worlds: primitives, materials, lights and a
// camera, with the primitives packed into a BVH.
package scene

import (
	"fmt"
	"sort"

	"github.com/lumen-engine/lumen/pkg/core"
	"github.com/lumen-engine/lumen/pkg/renderer"
)

// Scene bundles everything the render loop needs
type Scene struct {
	World      core.Hittable
	Lights     core.Hittable // nil when the scene has no sampled lights
	Camera     *renderer.Camera
	Background core.Vec3
}

// Builder constructs a scene for the given aspect ratio
type Builder func(aspectRatio float64) (*Scene, error)

var builders = map[string]Builder{
	"cornell":  Cornell,
	"showcase": Showcase,
	"smoke":    Smoke,
}

// Names returns the registered scene names, sorted
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named scene
func Build(name string, aspectRatio float64) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (have %v)", name, Names())
	}
	return builder(aspectRatio)
}

package scene

import (
	"fmt"

	"github.com/lumen-engine/lumen/pkg/core"
	"github.com/lumen-engine/lumen/pkg/geometry"
	"github.com/lumen-engine/lumen/pkg/material"
	"github.com/lumen-engine/lumen/pkg/renderer"
)

// Cornell builds the classic Cornell box: a 555-unit cube with a red and a
// green wall, two rotated boxes and a ceiling area light
func Cornell(aspectRatio float64) (*Scene, error) {
	red := material.NewLambertianColor(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertianColor(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLightColor(core.NewVec3(15, 15, 15))

	lamp := geometry.NewXZRect(213, 343, 227, 332, 554, light)

	primitives := []core.Hittable{
		geometry.NewYZRect(0, 555, 0, 555, 555, green),
		geometry.NewYZRect(0, 555, 0, 555, 0, red),
		// The lamp's fixed normal points up; flipping makes the
		// downward-facing side the emitting front face
		geometry.NewFlipFace(lamp),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),
		geometry.NewXZRect(0, 555, 0, 555, 555, white),
		geometry.NewXYRect(0, 555, 0, 555, 555, white),
		geometry.NewTranslate(
			geometry.NewRotateY(
				geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
			core.NewVec3(265, 0, 295)),
		geometry.NewTranslate(
			geometry.NewRotateY(
				geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), -18),
			core.NewVec3(130, 0, 65)),
	}

	world, err := core.NewBVH(primitives, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("building cornell world: %w", err)
	}

	camera := renderer.NewCamera(
		core.NewVec3(278, 278, -800),
		core.NewVec3(278, 278, 0),
		core.NewVec3(0, 1, 0),
		40, aspectRatio, 0, 1,
	)

	return &Scene{
		World:      world,
		Lights:     geometry.NewList(lamp),
		Camera:     camera,
		Background: core.NewVec3(0, 0, 0),
	}, nil
}

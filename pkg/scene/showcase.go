package scene

import (
	"fmt"
	"math/rand"

	"github.com/lumen-engine/lumen/pkg/core"
	"github.com/lumen-engine/lumen/pkg/geometry"
	"github.com/lumen-engine/lumen/pkg/material"
	"github.com/lumen-engine/lumen/pkg/renderer"
)

// Showcase builds an open-sky arrangement exercising the texture and
// material variety: checker ground, marble, glass, metal, a motion-blurred
// sphere and a mirror triangle
func Showcase(aspectRatio float64) (*Scene, error) {
	textureSampler := core.NewRandomSampler(rand.New(rand.NewSource(1923)))

	ground := material.NewLambertian(material.NewCheckerColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))
	marble := material.NewLambertian(material.NewNoise(4, textureSampler))
	glass := material.NewDielectric(1.5)
	steel := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.05)
	matte := material.NewLambertianColor(core.NewVec3(0.4, 0.2, 0.1))

	primitives := []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, marble),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, steel),
		geometry.NewMovingSphere(
			core.NewVec3(-2, 0.4, 2), core.NewVec3(-2, 0.7, 2), 0, 1, 0.4, matte),
		geometry.NewTriangle(
			core.NewVec3(1, 0, 2.5),
			core.NewVec3(3, 0, 2.5),
			core.NewVec3(2, 1.6, 2.5),
			material.NewMetal(core.NewVec3(0.9, 0.8, 0.6), 0)),
	}

	world, err := core.NewBVH(primitives, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("building showcase world: %w", err)
	}

	camera := renderer.NewCamera(
		core.NewVec3(13, 2, 3),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		20, aspectRatio, 0, 1,
	)

	return &Scene{
		World:      world,
		Lights:     nil, // sky-lit, nothing to importance sample
		Camera:     camera,
		Background: core.NewVec3(0.7, 0.8, 1.0),
	}, nil
}

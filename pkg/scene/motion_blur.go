package scene

import (
	"math/rand"

	"github.com/marrach/gotracer/pkg/camera"
	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/hittable"
	"github.com/marrach/gotracer/pkg/material"
	"github.com/marrach/gotracer/pkg/texture"
)

// NewMotionBlurScene scatters moving spheres with a wide-open shutter over
// a checkered ground plane, exercising the camera's shutter sampling and
// MovingSphere's time interpolation end to end.
func NewMotionBlurScene(width, height int, random *rand.Rand) *Scene {
	checker := texture.NewCheckerTextures(
		texture.NewSolidColor(core.NewVec3(0.2, 0.3, 0.1)),
		texture.NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)),
	)
	ground := material.NewLambertianTexture(checker)

	world := hittable.NewList(hittable.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -5; a < 5; a++ {
		for b := -5; b < 5; b++ {
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			albedo := randomVec(random).MultiplyVec(randomVec(random))
			mat := material.NewLambertian(albedo)
			drop := core.NewVec3(0, -random.Float64()*0.3, 0)
			world.Add(hittable.NewMovingSphere(center, center.Add(drop), 0, 1, 0.2, mat))
		}
	}

	world.Add(hittable.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(hittable.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(hittable.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	bvh := hittable.NewBVH(world.Items, core.TimeRange{Start: 0, End: 1})

	cam := camera.New(camera.Config{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		VerticalFOV: 20,
		AspectRatio: float64(width) / float64(height),
		Aperture:    0.1,
		FocusDist:   10,
		Shutter:     core.TimeRange{Start: 0, End: 1},
	})

	return &Scene{
		World:           bvh,
		Camera:          cam,
		Background:      core.NewVec3(0.7, 0.8, 1.0),
		Width:           width,
		Height:          height,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

package scene

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/marrach/gotracer/pkg/camera"
	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/hittable"
	"github.com/marrach/gotracer/pkg/material"
	"github.com/marrach/gotracer/pkg/texture"
)

// NewMaterialShowcaseScene lines up one sphere per material kind above a
// marble-textured ground plane, useful for visually spot-checking each
// Material/Texture implementation in isolation.
func NewMaterialShowcaseScene(width, height int, random *rand.Rand) *Scene {
	marble := material.NewLambertianTexture(texture.NewMarbleScale(random, 4))
	ground := hittable.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble)

	lambertian := material.NewLambertian(core.NewVec3(0.7, 0.2, 0.2))
	metalPolished := material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0)
	metalBrushed := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.6)
	glass := material.NewDielectric(1.5)
	lightSphere := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	checker := texture.NewCheckerTextures(
		texture.NewSolidColor(core.NewVec3(0.1, 0.1, 0.6)),
		texture.NewSolidColor(core.NewVec3(0.95, 0.95, 0.95)),
	)
	checkerSphere := material.NewLambertianTexture(checker)
	imageSphere := material.NewLambertianTexture(texture.NewImageTextureFromImage(stripeImage()))

	world := hittable.NewList(
		ground,
		hittable.NewSphere(core.NewVec3(-4, 1, 0), 1, lambertian),
		hittable.NewSphere(core.NewVec3(-2, 1, 0), 1, metalPolished),
		hittable.NewSphere(core.NewVec3(0, 1, 0), 1, metalBrushed),
		hittable.NewSphere(core.NewVec3(2, 1, 0), 1, glass),
		hittable.NewSphere(core.NewVec3(2, 1, 0), -0.95, glass), // hollow-glass inner surface
		hittable.NewSphere(core.NewVec3(4, 1, 0), 1, checkerSphere),
		hittable.NewSphere(core.NewVec3(6, 1, 0), 1, imageSphere),
		hittable.NewSphere(core.NewVec3(-6, 1.5, 0), 0.5, lightSphere),
	)

	bvh := hittable.NewBVH(world.Items, core.TimeRange{Start: 0, End: 0})

	cam := camera.New(camera.Config{
		LookFrom:    core.NewVec3(0, 3, 13),
		LookAt:      core.NewVec3(0, 1, 0),
		VerticalFOV: 30,
		AspectRatio: float64(width) / float64(height),
		Aperture:    0.05,
		FocusDist:   13,
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

// stripeImage generates a small in-memory striped raster so the showcase
// scene can exercise ImageTexture without depending on an on-disk asset.
func stripeImage() image.Image {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/8+y/8)%2 == 0 {
				img.Set(x, y, color.RGBA{R: 220, G: 170, B: 40, A: 255})
			} else {
				img.Set(x, y, color.RGBA{R: 30, G: 40, B: 90, A: 255})
			}
		}
	}
	return img
}

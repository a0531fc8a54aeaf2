package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marrach/gotracer/pkg/camera"
	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/hittable"
	"github.com/marrach/gotracer/pkg/material"
	"github.com/marrach/gotracer/pkg/scene"
)

func redMaterial() material.Material {
	return material.NewLambertian(core.NewVec3(0.9, 0.1, 0.1))
}

func TestRender_EmptyWorldFillsBackgroundExactly(t *testing.T) {
	sc := &scene.Scene{
		World: hittable.NewList(),
		Camera: camera.New(camera.Config{
			LookFrom:    core.NewVec3(0, 0, 0),
			LookAt:      core.NewVec3(0, 0, -1),
			AspectRatio: 1,
		}),
		Background:      core.NewVec3(0.5, 0.7, 1.0),
		Width:           4,
		Height:          4,
		SamplesPerPixel: 1,
		MaxDepth:        5,
	}

	raster := Render(sc, nil)
	img := raster.ToImage()

	for y := 0; y < sc.Height; y++ {
		for x := 0; x < sc.Width; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			assert.Equal(t, uint32(128<<8|128), r)
			assert.Equal(t, uint32(179<<8|179), g)
			assert.Equal(t, uint32(255<<8|255), b)
		}
	}
}

func TestRender_RedSphereCenterPixelDominatedByRed(t *testing.T) {
	sc := &scene.Scene{
		World: hittable.NewList(
			hittable.NewSphere(core.NewVec3(0, 0, -1), 0.5, redMaterial()),
		),
		Camera: camera.New(camera.Config{
			LookFrom:    core.NewVec3(0, 0, 3),
			LookAt:      core.NewVec3(0, 0, 0),
			AspectRatio: 1,
			VerticalFOV: 40,
		}),
		Background:      core.Vec3{},
		Width:           1,
		Height:          1,
		SamplesPerPixel: 1,
		MaxDepth:        1,
	}

	raster := Render(sc, nil)
	img := raster.ToImage()

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Greater(t, r, g)
	assert.Greater(t, r, b)
	assert.Greater(t, r, uint32(0))
}

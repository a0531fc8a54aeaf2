package scene

import (
	"math/rand"

	"github.com/marrach/gotracer/pkg/camera"
	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/hittable"
	"github.com/marrach/gotracer/pkg/material"
)

// NewCornellScene builds the classic Cornell box: five colored walls, an
// overhead area light, a tall rotated cuboid, and a short cuboid replaced by
// an equivalent ConstantMedium smoke volume. The side facing the camera is
// open, and rays leaving the box through it see the black background.
// random drives the smoke volume's free-path sampling.
func NewCornellScene(width, height int, random *rand.Rand) *Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	const size = 555.0
	half := size / 2

	world := hittable.NewList(
		hittable.NewAARect(core.NewVec3(size, half, half), size, size, 0, green),  // +X wall (left, seen from camera)
		hittable.NewAARect(core.NewVec3(0, half, half), size, size, 0, red),       // -X wall (right)
		hittable.NewAARect(core.NewVec3(half, size*0.99, half), 130, 105, 1, light), // ceiling light cutout
		hittable.NewAARect(core.NewVec3(half, 0, half), size, size, 1, white),     // floor
		hittable.NewAARect(core.NewVec3(half, size, half), size, size, 1, white),  // ceiling
		hittable.NewAARect(core.NewVec3(half, half, size), size, size, 2, white),  // back wall
	)

	var tall hittable.Hittable = hittable.NewCuboid(core.NewVec3(82.5, 165, 82.5), core.NewVec3(165, 330, 165), white)
	tall = hittable.NewRotateY(tall, 15)
	tall = hittable.NewTranslate(tall, core.NewVec3(265, 0, 295))
	world.Add(tall)

	var short hittable.Hittable = hittable.NewCuboid(core.NewVec3(82.5, 82.5, 82.5), core.NewVec3(165, 165, 165), white)
	short = hittable.NewRotateY(short, -18)
	short = hittable.NewTranslate(short, core.NewVec3(130, 0, 65))
	smoke := hittable.NewConstantMedium(short, 0.01, core.NewVec3(0, 0, 0), random)
	world.Add(smoke)

	bvh := hittable.NewBVH(world.Items, core.TimeRange{Start: 0, End: 0})

	cam := camera.New(camera.Config{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		VerticalFOV: 40,
		AspectRatio: float64(width) / float64(height),
	})

	return &Scene{
		World:           bvh,
		Camera:          cam,
		Background:      core.Vec3{},
		Width:           width,
		Height:          height,
		SamplesPerPixel: 200,
		MaxDepth:        50,
	}
}

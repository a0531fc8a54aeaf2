package hittable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/material"
)

func TestSphere_HitDistanceMatchesRadius(t *testing.T) {
	center := core.NewVec3(0, 0, -2)
	radius := 0.5
	sphere := NewSphere(center, radius, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := sphere.Hit(ray, 0.001, 100)
	assert.True(t, ok)

	assert.InDelta(t, radius, hit.Point.Subtract(center).Length(), 1e-6)
}

func TestSphere_NormalIsUnitAndOpposesRay(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -2), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := sphere.Hit(ray, 0.001, 100)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, hit.Normal.Length(), 1e-9)
	assert.LessOrEqual(t, hit.Normal.Dot(ray.Direction), 0.0)
}

func TestSphere_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(10, 10, 10), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	_, ok := sphere.Hit(ray, 0.001, 100)
	assert.False(t, ok)
}

func TestMovingSphere_Center_InterpolatesForward(t *testing.T) {
	start := core.NewVec3(0, 0, 0)
	end := core.NewVec3(10, 0, 0)
	ms := NewMovingSphere(start, end, 0, 1, 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	assert.Equal(t, start, ms.Center(0))
	assert.Equal(t, end, ms.Center(1))
	assert.Equal(t, core.NewVec3(5, 0, 0), ms.Center(0.5))
}

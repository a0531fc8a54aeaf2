package hittable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/material"
)

func TestTranslate_BoundingBoxShiftsByOffset(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, mat)
	offset := core.NewVec3(0, 0, 5)
	translated := NewTranslate(sphere, offset)

	sphereBox, ok := sphere.BoundingBox(core.TimeRange{})
	assert.True(t, ok)
	translatedBox, ok := translated.BoundingBox(core.TimeRange{})
	assert.True(t, ok)

	assert.Equal(t, sphereBox.Min.Add(offset), translatedBox.Min)
	assert.Equal(t, sphereBox.Max.Add(offset), translatedBox.Max)
}

func TestTranslate_RoundTripIsIdentity(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, -2), 1, mat)
	offset := core.NewVec3(3, -1, 2)

	var wrapped Hittable = NewTranslate(sphere, offset)
	wrapped = NewTranslate(wrapped, offset.Negate())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	direct, ok1 := sphere.Hit(ray, 0.001, 100)
	roundTrip, ok2 := wrapped.Hit(ray, 0.001, 100)

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.InDelta(t, direct.Point.X, roundTrip.Point.X, 1e-6)
	assert.InDelta(t, direct.Point.Y, roundTrip.Point.Y, 1e-6)
	assert.InDelta(t, direct.Point.Z, roundTrip.Point.Z, 1e-6)
}

func TestRotateY_RoundTripIsIdentity(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(1, 0, -2), 1, mat)

	var wrapped Hittable = NewRotateY(sphere, 37)
	wrapped = NewRotateY(wrapped, -37)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.3, 0, -1))

	direct, ok1 := sphere.Hit(ray, 0.001, 100)
	roundTrip, ok2 := wrapped.Hit(ray, 0.001, 100)

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.InDelta(t, direct.Point.X, roundTrip.Point.X, 1e-6)
	assert.InDelta(t, direct.Point.Y, roundTrip.Point.Y, 1e-6)
	assert.InDelta(t, direct.Point.Z, roundTrip.Point.Z, 1e-6)
}

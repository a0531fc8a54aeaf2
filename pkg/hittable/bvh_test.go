package hittable

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/material"
)

func TestBVH_MatchesLinearListOverRandomSpheres(t *testing.T) {
	random := rand.New(rand.NewSource(99))
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	items := make([]Hittable, 1024)
	for i := range items {
		center := core.NewVec3(
			random.Float64()*100-50,
			random.Float64()*100-50,
			random.Float64()*100-50,
		)
		radius := 0.1 + random.Float64()*2
		items[i] = NewSphere(center, radius, mat)
	}

	list := NewList(items...)
	bvh := NewBVH(items, core.TimeRange{Start: 0, End: 0})

	for i := 0; i < 100; i++ {
		origin := core.NewVec3(
			random.Float64()*200-100,
			random.Float64()*200-100,
			random.Float64()*200-100,
		)
		direction := core.NewVec3(
			random.Float64()*2-1,
			random.Float64()*2-1,
			random.Float64()*2-1,
		)
		ray := core.NewRay(origin, direction)

		listHit, listOK := list.Hit(ray, 0.001, math.Inf(1))
		bvhHit, bvhOK := bvh.Hit(ray, 0.001, math.Inf(1))

		assert.Equal(t, listOK, bvhOK)
		if listOK && bvhOK {
			assert.InDelta(t, listHit.T, bvhHit.T, 1e-9)
		}
	}
}

func TestBVH_BoundingBoxRequiresContainedTimeRange(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	items := []Hittable{NewSphere(core.NewVec3(0, 0, 0), 1, mat)}
	bvh := NewBVH(items, core.TimeRange{Start: 0, End: 1})

	_, ok := bvh.BoundingBox(core.TimeRange{Start: 0, End: 1})
	assert.True(t, ok)

	_, ok = bvh.BoundingBox(core.TimeRange{Start: -1, End: 2})
	assert.False(t, ok)
}

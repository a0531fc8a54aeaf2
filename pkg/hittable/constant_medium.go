package hittable

import (
	"math"
	"math/rand"

	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/material"
)

// ConstantMedium is a homogeneous participating medium (fog/smoke) filling
// the volume of Boundary at a uniform density, stored as NegInvDensity
// (-1/density). Scattering within it is isotropic.
type ConstantMedium struct {
	Boundary      Hittable
	NegInvDensity float64
	PhaseFunction material.Material
	random        *rand.Rand
}

// NewConstantMedium creates a constant-density medium bounded by boundary,
// with the given density and texture color. random drives the medium's
// free-path sampling and must not be shared across goroutines.
func NewConstantMedium(boundary Hittable, density float64, color core.Vec3, random *rand.Rand) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: material.NewIsotropic(color),
		random:        random,
	}
}

// Hit finds the two boundary crossings across the whole ray, clamps them to
// the queried range, and stochastically picks a hit distance inside the
// medium from an exponential free-path distribution.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit1, ok1 := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok1 {
		return nil, false
	}
	hit2, ok2 := m.Boundary.Hit(ray, hit1.T+0.0001, math.Inf(1))
	if !ok2 {
		return nil, false
	}

	t1, t2 := hit1.T, hit2.T
	if t1 < tMin {
		t1 = tMin
	}
	if t2 > tMax {
		t2 = tMax
	}
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.NegInvDensity * math.Log(m.random.Float64())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	point := ray.At(t)

	return &material.HitRecord{
		T:         t,
		Point:     point,
		Normal:    core.NewVec3(1, 0, 0), // arbitrary: orientation is irrelevant to isotropic scattering
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox delegates to the boundary.
func (m *ConstantMedium) BoundingBox(timeRange core.TimeRange) (core.AABB, bool) {
	return m.Boundary.BoundingBox(timeRange)
}

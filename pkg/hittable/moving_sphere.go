package hittable

import (
	"math"

	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/material"
)

// MovingSphere linearly interpolates its center between CenterStart (at
// TimeStart) and CenterEnd (at TimeEnd) as a function of the ray's time.
type MovingSphere struct {
	CenterStart, CenterEnd core.Vec3
	TimeStart, TimeEnd     float64
	Radius                 float64
	Material               material.Material
}

// NewMovingSphere creates a new moving sphere.
func NewMovingSphere(centerStart, centerEnd core.Vec3, timeStart, timeEnd, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{
		CenterStart: centerStart, CenterEnd: centerEnd,
		TimeStart: timeStart, TimeEnd: timeEnd,
		Radius: radius, Material: mat,
	}
}

// Center returns the sphere's center at the given ray time. The blend
// fraction is (rayTime - TimeStart) / (TimeEnd - TimeStart), so t=0 gives
// CenterStart and t=1 gives CenterEnd.
func (s *MovingSphere) Center(rayTime float64) core.Vec3 {
	t := (rayTime - s.TimeStart) / (s.TimeEnd - s.TimeStart)
	return s.CenterStart.Add(s.CenterEnd.Subtract(s.CenterStart).Multiply(t))
}

// Hit delegates to the shared sphere quadratic at the ray's interpolated
// center.
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return sphereHit(ray, s.Center(ray.Time), s.Radius, s.Material, tMin, tMax)
}

// BoundingBox returns the union of the bounding boxes at the two time
// extrema, covering every position the sphere occupies between them.
func (s *MovingSphere) BoundingBox(timeRange core.TimeRange) (core.AABB, bool) {
	r := core.NewVec3(math.Abs(s.Radius), math.Abs(s.Radius), math.Abs(s.Radius))
	boxStart := core.NewAABB(s.CenterStart.Subtract(r), s.CenterStart.Add(r))
	boxEnd := core.NewAABB(s.CenterEnd.Subtract(r), s.CenterEnd.Add(r))
	return core.Surround(boxStart, boxEnd), true
}

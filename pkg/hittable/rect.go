package hittable

import (
	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/material"
)

// AARect is an axis-aligned rectangle, infinitely thin along Axis, centered
// at Center with the given Width (along Axis.Next()) and Height (along
// Axis.Next().Next()).
type AARect struct {
	Center        core.Vec3
	Width, Height float64
	Axis          int // 0=X, 1=Y, 2=Z; the rect's plane is perpendicular to this axis
	Material      material.Material
}

// NewAARect creates a new axis-aligned rectangle.
func NewAARect(center core.Vec3, width, height float64, axis int, mat material.Material) *AARect {
	return &AARect{Center: center, Width: width, Height: height, Axis: axis, Material: mat}
}

// Hit intersects the ray with the rect's plane, then checks the hit point
// falls within the rectangle's half-extents along the other two axes.
func (r *AARect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	a := r.Axis
	b := core.NextAxis(a)
	c := core.NextAxis(b)

	dirA := core.Axis(ray.Direction, a)
	if dirA == 0 {
		return nil, false
	}

	t := (core.Axis(r.Center, a) - core.Axis(ray.Origin, a)) / dirA
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	bCoord := core.Axis(point, b) - core.Axis(r.Center, b)
	cCoord := core.Axis(point, c) - core.Axis(r.Center, c)

	halfWidth, halfHeight := r.Width/2, r.Height/2
	if bCoord < -halfWidth || bCoord > halfWidth || cCoord < -halfHeight || cCoord > halfHeight {
		return nil, false
	}

	u := (bCoord + halfWidth) / r.Width
	v := (cCoord + halfHeight) / r.Height

	outwardNormal := axisUnitVector(a)
	hit := &material.HitRecord{T: t, Point: point, Material: r.Material, U: u, V: v}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox returns a box padded to a minimum thickness along Axis (see
// core.NewAABB's padding), so the rect never produces a degenerate slab.
func (r *AARect) BoundingBox(timeRange core.TimeRange) (core.AABB, bool) {
	b := core.NextAxis(r.Axis)
	c := core.NextAxis(b)

	min := setAxis(setAxis(setAxis(core.Vec3{}, r.Axis, core.Axis(r.Center, r.Axis)), b, core.Axis(r.Center, b)-r.Width/2), c, core.Axis(r.Center, c)-r.Height/2)
	max := setAxis(setAxis(setAxis(core.Vec3{}, r.Axis, core.Axis(r.Center, r.Axis)), b, core.Axis(r.Center, b)+r.Width/2), c, core.Axis(r.Center, c)+r.Height/2)

	return core.NewAABB(min, max), true
}

func axisUnitVector(axis int) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(1, 0, 0)
	case 1:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

func setAxis(v core.Vec3, axis int, value float64) core.Vec3 {
	switch axis {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}

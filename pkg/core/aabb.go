package core

import "math"

// padDelta is added to a degenerate (zero-thickness) axis of an AABB so the
// slab test below never collapses to an empty interval.
const padDelta = 0.001

// AABB is an axis-aligned bounding box with Min <= Max component-wise.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates an AABB from two corner points, padding any degenerate
// axis by padDelta.
func NewAABB(a, b Vec3) AABB {
	box := AABB{
		Min: NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)),
		Max: NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)),
	}
	return box.padded()
}

func (aabb AABB) padded() AABB {
	pad := func(lo, hi float64) (float64, float64) {
		if hi-lo < padDelta {
			return lo - padDelta/2, hi + padDelta/2
		}
		return lo, hi
	}
	minX, maxX := pad(aabb.Min.X, aabb.Max.X)
	minY, maxY := pad(aabb.Min.Y, aabb.Max.Y)
	minZ, maxZ := pad(aabb.Min.Z, aabb.Max.Z)
	return AABB{NewVec3(minX, minY, minZ), NewVec3(maxX, maxY, maxZ)}
}

// Hit tests whether the ray intersects the box within [tMin, tMax] using the
// slab method.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	mins := [3]float64{aabb.Min.X, aabb.Min.Y, aabb.Min.Z}
	maxs := [3]float64{aabb.Max.X, aabb.Max.Y, aabb.Max.Z}
	origins := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dirs := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / dirs[axis]
		t0 := (mins[axis] - origins[axis]) * invD
		t1 := (maxs[axis] - origins[axis]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Surround returns the smallest AABB containing both a and b.
func Surround(a, b AABB) AABB {
	return AABB{
		Min: NewVec3(math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)),
		Max: NewVec3(math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)),
	}
}

// Center returns the center point of the box.
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Contains reports whether other is fully contained within aabb,
// component-wise.
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && other.Max.X <= aabb.Max.X &&
		aabb.Min.Y <= other.Min.Y && other.Max.Y <= aabb.Max.Y &&
		aabb.Min.Z <= other.Min.Z && other.Max.Z <= aabb.Max.Z
}

// LongestAxis returns the index (0=X, 1=Y, 2=Z) of the box's longest extent.
func (aabb AABB) LongestAxis() int {
	size := aabb.Max.Subtract(aabb.Min)
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// Axis returns the component of v along the given axis (0=X, 1=Y, 2=Z).
func Axis(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// NextAxis cycles X -> Y -> Z -> X, used by AARect and the BVH splitter.
func NextAxis(axis int) int {
	return (axis + 1) % 3
}

// TimeRange is an inclusive [Start, End] interval of ray times, used for the
// camera shutter and cached BVH validity.
type TimeRange struct {
	Start, End float64
}

// Contains reports whether other is fully contained within r.
func (r TimeRange) Contains(other TimeRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

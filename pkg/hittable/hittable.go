// Package hittable implements the ray/world intersection layer: individual
// primitives (sphere, moving sphere, axis-aligned rect, cuboid, constant
// medium, translate/rotate-Y instances), a heterogeneous list, and the BVH
// that accelerates traversal over them.
package hittable

import (
	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/material"
)

// Hittable is the capability every primitive (and the BVH/list composites
// over them) implements: it can be asked whether a ray hits it within a t
// range, and for its bounding box over a time range.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox(timeRange core.TimeRange) (core.AABB, bool)
}

package hittable

import (
	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/material"
)

// Cuboid is a box enclosing [center-size/2, center+size/2], built from six
// AARects at the face centers.
type Cuboid struct {
	sides *List
	box   core.AABB
}

// NewCuboid creates a new cuboid centered at center with the given size
// along each axis.
func NewCuboid(center, size core.Vec3, mat material.Material) *Cuboid {
	half := size.Multiply(0.5)
	sides := NewList(
		NewAARect(core.NewVec3(center.X, center.Y, center.Z+half.Z), size.X, size.Y, 2, mat), // +Z
		NewAARect(core.NewVec3(center.X, center.Y, center.Z-half.Z), size.X, size.Y, 2, mat), // -Z
		NewAARect(core.NewVec3(center.X, center.Y+half.Y, center.Z), size.Z, size.X, 1, mat), // +Y
		NewAARect(core.NewVec3(center.X, center.Y-half.Y, center.Z), size.Z, size.X, 1, mat), // -Y
		NewAARect(core.NewVec3(center.X+half.X, center.Y, center.Z), size.Y, size.Z, 0, mat), // +X
		NewAARect(core.NewVec3(center.X-half.X, center.Y, center.Z), size.Y, size.Z, 0, mat), // -X
	)
	return &Cuboid{sides: sides, box: core.NewAABB(center.Subtract(half), center.Add(half))}
}

// Hit delegates to the six enclosed rects.
func (c *Cuboid) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return c.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the cuboid's fixed extent.
func (c *Cuboid) BoundingBox(timeRange core.TimeRange) (core.AABB, bool) {
	return c.box, true
}

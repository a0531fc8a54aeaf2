package hittable

import (
	"math"

	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/material"
)

// Translate wraps a Hittable, offsetting it in world space.
type Translate struct {
	Inner  Hittable
	Offset core.Vec3
}

// NewTranslate creates a translated instance of inner.
func NewTranslate(inner Hittable, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit subtracts the offset from the ray origin, delegates to Inner, then
// adds it back to the hit point.
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	offsetRay := core.NewRayAt(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	hit, ok := t.Inner.Hit(offsetRay, tMin, tMax)
	if !ok {
		return nil, false
	}

	moved := *hit
	moved.Point = hit.Point.Add(t.Offset)
	return &moved, true
}

// BoundingBox shifts Inner's bounding box by Offset.
func (t *Translate) BoundingBox(timeRange core.TimeRange) (core.AABB, bool) {
	box, ok := t.Inner.BoundingBox(timeRange)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}

// RotateY wraps a Hittable, rotating it by Theta radians about the Y axis
// (right-handed).
type RotateY struct {
	Inner    Hittable
	SinTheta float64
	CosTheta float64
	box      core.AABB
	hasBox   bool
}

// NewRotateY creates a Y-rotated instance of inner by thetaDegrees degrees,
// caching the enveloping bounding box over time range [0,0].
func NewRotateY(inner Hittable, thetaDegrees float64) *RotateY {
	radians := thetaDegrees * math.Pi / 180
	sinTheta, cosTheta := math.Sin(radians), math.Cos(radians)

	r := &RotateY{Inner: inner, SinTheta: sinTheta, CosTheta: cosTheta}

	box, ok := inner.BoundingBox(core.TimeRange{Start: 0, End: 0})
	if !ok {
		return r
	}

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerpCorner(i, box.Min.X, box.Max.X)
				y := lerpCorner(j, box.Min.Y, box.Max.Y)
				z := lerpCorner(k, box.Min.Z, box.Max.Z)

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z
				tester := core.NewVec3(newX, y, newZ)

				min = core.NewVec3(math.Min(min.X, tester.X), math.Min(min.Y, tester.Y), math.Min(min.Z, tester.Z))
				max = core.NewVec3(math.Max(max.X, tester.X), math.Max(max.Y, tester.Y), math.Max(max.Z, tester.Z))
			}
		}
	}

	r.box = core.NewAABB(min, max)
	r.hasBox = true
	return r
}

func lerpCorner(i int, lo, hi float64) float64 {
	if i == 1 {
		return hi
	}
	return lo
}

// rotateForward rotates a point/vector forward by theta about Y:
// (cos*x + sin*z, y, -sin*x + cos*z).
func (r *RotateY) rotateForward(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.CosTheta*v.X+r.SinTheta*v.Z,
		v.Y,
		-r.SinTheta*v.X+r.CosTheta*v.Z,
	)
}

// rotateBackward rotates a point/vector backward by theta about Y: the
// inverse of rotateForward.
func (r *RotateY) rotateBackward(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.CosTheta*v.X-r.SinTheta*v.Z,
		v.Y,
		r.SinTheta*v.X+r.CosTheta*v.Z,
	)
}

// Hit rotates the incoming ray backward into the inner object's local
// space, delegates, then rotates the resulting point and normal forward
// back into world space and recomputes front-facedness.
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	rotatedRay := core.NewRayAt(r.rotateBackward(ray.Origin), r.rotateBackward(ray.Direction), ray.Time)

	hit, ok := r.Inner.Hit(rotatedRay, tMin, tMax)
	if !ok {
		return nil, false
	}

	rotated := *hit
	rotated.Point = r.rotateForward(hit.Point)
	outwardNormal := r.rotateForward(hit.Normal)
	rotated.SetFaceNormal(core.NewRayAt(ray.Origin, ray.Direction, ray.Time), outwardNormal)

	return &rotated, true
}

// BoundingBox returns the cached enveloping box, if the inner object had one.
func (r *RotateY) BoundingBox(timeRange core.TimeRange) (core.AABB, bool) {
	return r.box, r.hasBox
}

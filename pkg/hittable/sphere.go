package hittable

import (
	"math"

	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/material"
)

// Sphere is a sphere primitive. A negative Radius inverts the outward
// normal, giving dielectrics a hollow-shell interior.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit solves the ray/sphere quadratic and returns the nearest root in range.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return sphereHit(ray, s.Center, s.Radius, s.Material, tMin, tMax)
}

// sphereHit is shared by Sphere and MovingSphere (which delegates to a
// sphere positioned at the ray's time).
func sphereHit(ray core.Ray, center core.Vec3, radius float64, mat material.Material, tMin, tMax float64) (*material.HitRecord, bool) {
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if !(root >= tMin && root <= tMax) {
		root = (-halfB + sqrtD) / a
		if !(root >= tMin && root <= tMax) {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / radius)
	u, v := sphereUV(outwardNormal)

	hit := &material.HitRecord{T: root, Point: point, Material: mat, U: u, V: v}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// sphereUV computes (u, v) texture coordinates from a point on the unit
// sphere: theta = acos(-y) in [0, pi], phi = atan2(-z, x) + pi in [0, 2pi],
// normalized by pi and 2pi respectively.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox returns center +/- (|radius|, |radius|, |radius|).
func (s *Sphere) BoundingBox(timeRange core.TimeRange) (core.AABB, bool) {
	r := core.NewVec3(math.Abs(s.Radius), math.Abs(s.Radius), math.Abs(s.Radius))
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r)), true
}

// Package material implements the scattering and emission contracts that
// every hittable primitive references: Lambertian, Metal, Dielectric,
// DiffuseLight and Isotropic.
package material

import (
	"math/rand"

	"github.com/marrach/gotracer/pkg/core"
)

// HitRecord is produced by every intersection test. Normal always points
// against the incoming ray and is unit length; FrontFace records whether the
// surface's outward normal agreed with the ray direction.
type HitRecord struct {
	Point     core.Vec3
	Normal    core.Vec3
	Material  Material
	T         float64
	U, V      float64
	FrontFace bool
}

// SetFaceNormal sets Normal and FrontFace from an outward-facing normal,
// flipping it to oppose the ray when the ray hits the back face.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterResult is the outcome of a material scattering event.
type ScatterResult struct {
	Attenuation core.Vec3
	Scattered   core.Ray
}

// Material scatters an incoming ray at a hit point and reports the emitted
// radiance there (zero for non-emissive materials).
type Material interface {
	Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
	Emitted(u, v float64, p core.Vec3) core.Vec3
}

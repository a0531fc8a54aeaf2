package material

import (
	"math/rand"

	"github.com/marrach/gotracer/pkg/core"
)

// Metal is a specular material with an optional fuzz perturbation.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64 // 0.0 = perfect mirror, 1.0 = maximally fuzzy
}

// NewMetal creates a Metal material, clamping fuzz to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the incoming ray about the normal and perturbs it by
// Fuzz; the ray is absorbed (no scatter) if the perturbed reflection points
// into the surface.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	reflected := rayIn.Direction.Unit().Reflect(hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(random).Multiply(m.Fuzz))
	}

	scattered := core.NewRayAt(hit.Point, reflected, rayIn.Time)
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{Attenuation: m.Albedo, Scattered: scattered}, scatters
}

// Emitted returns black: Metal does not emit light.
func (m *Metal) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

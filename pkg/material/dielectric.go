package material

import (
	"math"
	"math/rand"

	"github.com/marrach/gotracer/pkg/core"
)

// Dielectric is a transparent refractive material (glass, water, ...)
// obeying Snell's law with Schlick-approximated Fresnel reflectance.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a Dielectric material with the given index of
// refraction (e.g. 1.5 for glass).
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter always scatters: it reflects when total internal reflection
// occurs or a Schlick-reflectance coin flip says so, otherwise refracts.
// Attenuation is always white — a dielectric loses no energy.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	var etaRatio float64
	if hit.FrontFace {
		etaRatio = 1.0 / d.RefractiveIndex
	} else {
		etaRatio = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Unit()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := etaRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || schlickReflectance(cosTheta, etaRatio) > random.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, etaRatio)
	}

	return ScatterResult{
		Attenuation: core.NewVec3(1, 1, 1),
		Scattered:   core.NewRayAt(hit.Point, direction, rayIn.Time),
	}, true
}

// Emitted returns black: Dielectric does not emit light.
func (d *Dielectric) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// schlickReflectance approximates Fresnel reflectance.
func schlickReflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

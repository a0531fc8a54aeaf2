package material

import (
	"math/rand"

	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/texture"
)

// Lambertian is a perfectly diffuse material.
type Lambertian struct {
	Albedo texture.Texture
}

// NewLambertian creates a Lambertian material from a solid albedo color.
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolidColor(albedo)}
}

// NewLambertianTexture creates a Lambertian material from an arbitrary
// albedo texture.
func NewLambertianTexture(albedo texture.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter always scatters, in direction normal + random unit vector,
// substituting the normal itself when that sum is degenerate.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(random))
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
		Scattered:   core.NewRayAt(hit.Point, scatterDirection, rayIn.Time),
	}, true
}

// Emitted returns black: Lambertian does not emit light.
func (l *Lambertian) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

package material

import (
	"math/rand"

	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/texture"
)

// Isotropic scatters uniformly in a random direction, used as the phase
// function of a ConstantMedium (fog/smoke).
type Isotropic struct {
	Albedo texture.Texture
}

// NewIsotropic creates an Isotropic phase function from a solid color.
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolidColor(albedo)}
}

// NewIsotropicTexture creates an Isotropic phase function from an arbitrary
// texture.
func NewIsotropicTexture(albedo texture.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter always scatters in a uniformly random direction.
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
		Scattered:   core.NewRayAt(hit.Point, core.RandomUnitVector(random), rayIn.Time),
	}, true
}

// Emitted returns black: Isotropic does not emit light.
func (i *Isotropic) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

package material

import (
	"math/rand"

	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/texture"
)

// DiffuseLight is a purely emissive, non-scattering material.
type DiffuseLight struct {
	Emit texture.Texture
}

// NewDiffuseLight creates a DiffuseLight emitting a solid color.
func NewDiffuseLight(color core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: texture.NewSolidColor(color)}
}

// NewDiffuseLightTexture creates a DiffuseLight emitting an arbitrary
// texture's value (useful for patterned or image-mapped lights).
func NewDiffuseLightTexture(emit texture.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter never scatters: diffuse lights only emit.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the light's texture value at (u, v, p).
func (d *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return d.Emit.Value(u, v, p)
}

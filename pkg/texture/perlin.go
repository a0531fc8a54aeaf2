package texture

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/marrach/gotracer/pkg/core"
)

// turbulenceOctaves is the number of noise octaves summed for the marble
// turbulence accumulation (spec: 7, weight halving, point doubling).
const turbulenceOctaves = 7

// defaultMarbleScale is the default z-scale applied before the sin() marble
// warp when a scene does not specify one.
const defaultMarbleScale = 4.0

// Marble is a Perlin-noise marble-pattern texture. The underlying coherent
// noise primitive is github.com/aquilax/go-perlin's seeded 3-D generator
// rather than a hand-rolled permutation table; this texture drives it
// through a turbulence-and-sin marble warp.
type Marble struct {
	noise *perlin.Perlin
	Scale float64
}

// NewMarble creates a marble texture seeded from random, with the default
// marble scale.
func NewMarble(random *rand.Rand) *Marble {
	return NewMarbleScale(random, defaultMarbleScale)
}

// NewMarbleScale creates a marble texture with an explicit z-scale.
func NewMarbleScale(random *rand.Rand, scale float64) *Marble {
	// alpha/beta control the noise's persistence/lacunarity; n is the
	// number of octaves go-perlin itself blends per call. We drive our own
	// turbulence loop on top by rescaling the sample point each octave, so
	// n=1 keeps a single go-perlin octave per turbulence step.
	const alpha, beta = 2.0, 2.0
	const n = int32(1)
	return &Marble{
		noise: perlin.NewPerlin(alpha, beta, n, random.Int63()),
		Scale: scale,
	}
}

// turbulence accumulates turbulenceOctaves octaves of noise, halving the
// weight and doubling the sample point each octave.
func (m *Marble) turbulence(p core.Vec3) float64 {
	accum := 0.0
	weight := 1.0
	point := p
	for i := 0; i < turbulenceOctaves; i++ {
		accum += weight * m.noise.Noise3D(point.X, point.Y, point.Z)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

// Value returns white * 0.5 * (1 + sin(scale*z + 10*turbulence(p))).
func (m *Marble) Value(u, v float64, p core.Vec3) core.Vec3 {
	factor := 0.5 * (1 + math.Sin(m.Scale*p.Z+10*m.turbulence(p)))
	return core.NewVec3(1, 1, 1).Multiply(factor)
}

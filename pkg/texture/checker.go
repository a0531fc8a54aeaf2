package texture

import (
	"math"

	"github.com/marrach/gotracer/pkg/core"
)

// Checker is a 3-D checkerboard pattern alternating between two child
// textures. Composing a Checker whose Even or Odd is itself a Checker
// produces a nested checker pattern, as required by spec.
type Checker struct {
	Even, Odd Texture
}

// NewChecker creates a checkerboard texture alternating between two solid
// colors.
func NewChecker(even, odd core.Vec3) *Checker {
	return &Checker{Even: NewSolidColor(even), Odd: NewSolidColor(odd)}
}

// NewCheckerTextures creates a checkerboard texture alternating between two
// arbitrary child textures.
func NewCheckerTextures(even, odd Texture) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// Value evaluates the product of sin(10x)*sin(10y)*sin(10z): a negative
// result selects Odd, otherwise Even.
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

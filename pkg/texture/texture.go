// Package texture implements the pure (u, v, point) -> color evaluators used
// by materials: solid colors, a procedural checkerboard, Perlin-noise marble,
// and nearest-texel image sampling.
package texture

import "github.com/marrach/gotracer/pkg/core"

// Texture evaluates a color at a surface point given its texture
// coordinates and world-space position.
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Vec3
}

package texture

import "github.com/marrach/gotracer/pkg/core"

// SolidColor is a texture that returns the same color everywhere.
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture.
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the stored color regardless of uv or point.
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

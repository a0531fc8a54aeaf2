// Package scene assembles a world (geometry + materials + acceleration
// structure), a camera, and image/sampling configuration into the single
// value the renderer consumes, and provides a handful of built-in example
// scenes.
package scene

import (
	"github.com/marrach/gotracer/pkg/camera"
	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/hittable"
)

// Scene is the fully-materialized, read-only description of everything the
// renderer needs: it is shared by reference across all render workers.
type Scene struct {
	World      hittable.Hittable
	Camera     *camera.Camera
	Background core.Vec3

	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
}

// AspectRatio returns Width/Height as a float64.
func (s Scene) AspectRatio() float64 {
	return float64(s.Width) / float64(s.Height)
}

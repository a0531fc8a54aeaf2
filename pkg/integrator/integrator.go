// Package integrator implements the recursive Monte-Carlo light-transport
// estimator used to shade a single camera ray.
package integrator

import (
	"math"
	"math/rand"

	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/hittable"
)

// RayColor estimates the radiance carried back along ray, recursing through
// scattering events in world until depthBudget is exhausted, the ray misses
// everything (returning background), or the material absorbs the ray
// outright.
func RayColor(ray core.Ray, background core.Vec3, world hittable.Hittable, depthBudget int, random *rand.Rand) core.Vec3 {
	if depthBudget == 0 {
		return core.Vec3{}
	}

	hit, ok := world.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		return background
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		return emitted
	}

	scattered := RayColor(scatter.Scattered, background, world, depthBudget-1, random)
	return emitted.Add(scatter.Attenuation.MultiplyVec(scattered))
}

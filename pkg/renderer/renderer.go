// Package renderer owns the parallel pixel-sampling driver: it walks the
// scene's camera and world, fans work out across goroutines by recursively
// splitting the pixel array, and assembles the final raster.
package renderer

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/integrator"
	"github.com/marrach/gotracer/pkg/scene"
)

// splitThreshold is the tile size at which the recursive binary split stops
// dividing work and hands a leaf slice to a single goroutine.
const splitThreshold = 64

// pixel identifies one raster cell awaiting shading.
type pixel struct {
	x, y int
}

// Render produces the width x height raster described by sc, sampling each
// pixel SamplesPerPixel times. Work is partitioned by recursively halving
// the flattened pixel array; each leaf is shaded serially by a single
// goroutine with its own private random source, so no synchronization is
// needed beyond the disjointness of the leaf slices. log may be nil.
func Render(sc *scene.Scene, log core.Logger) *Raster {
	raster := NewRaster(sc.Width, sc.Height)

	pixels := make([]pixel, 0, sc.Width*sc.Height)
	for y := 0; y < sc.Height; y++ {
		for x := 0; x < sc.Width; x++ {
			pixels = append(pixels, pixel{x: x, y: y})
		}
	}

	if log != nil {
		log.Infof("rendering %dx%d, %d samples/px, max depth %d", sc.Width, sc.Height, sc.SamplesPerPixel, sc.MaxDepth)
	}
	start := time.Now()

	var wg sync.WaitGroup
	renderSplit(pixels, sc, raster, &wg)
	wg.Wait()

	if log != nil {
		log.Infof("render finished in %s", time.Since(start))
	}

	return raster
}

// renderSplit recursively halves work until it falls at or below
// splitThreshold, then spawns one goroutine per leaf.
func renderSplit(work []pixel, sc *scene.Scene, raster *Raster, wg *sync.WaitGroup) {
	if len(work) <= splitThreshold {
		wg.Add(1)
		go func(leaf []pixel) {
			defer wg.Done()
			renderLeaf(leaf, sc, raster)
		}(work)
		return
	}

	mid := len(work) / 2
	renderSplit(work[:mid], sc, raster, wg)
	renderSplit(work[mid:], sc, raster, wg)
}

// renderLeaf shades every pixel in a disjoint slice serially, using a
// random source private to this goroutine.
func renderLeaf(work []pixel, sc *scene.Scene, raster *Raster) {
	random := rand.New(rand.NewSource(seedFor(work)))

	// A 1-pixel-wide/tall image would otherwise divide by zero below.
	widthDenom := math.Max(float64(sc.Width-1), 1)
	heightDenom := math.Max(float64(sc.Height-1), 1)

	for _, p := range work {
		accum := core.Vec3{}
		for s := 0; s < sc.SamplesPerPixel; s++ {
			jx, jy := random.Float64(), random.Float64()
			u := (float64(p.x) + jx) / widthDenom
			v := (float64(sc.Height-p.y) + jy) / heightDenom

			ray := sc.Camera.GetRay(u, v, random)
			accum = accum.Add(integrator.RayColor(ray, sc.Background, sc.World, sc.MaxDepth, random))
		}
		raster.Set(p.x, p.y, accum, sc.SamplesPerPixel)
	}
}

// seedFor derives a deterministic-per-leaf seed from the leaf's first
// pixel, so re-running a render with the same worker split reproduces the
// same image; different split granularities do not bit-reproduce each
// other, since each leaf draws from an independent stream.
func seedFor(work []pixel) int64 {
	if len(work) == 0 {
		return 0
	}
	first := work[0]
	return int64(first.y)*100003 + int64(first.x)
}

package renderer

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/marrach/gotracer/pkg/core"
)

// Raster holds the accumulated linear-color sums for every pixel of the
// output image, prior to final sRGB8 conversion.
type Raster struct {
	width, height int
	sums          []core.Vec3
	counts        []int
}

// NewRaster allocates a zeroed raster of the given dimensions.
func NewRaster(width, height int) *Raster {
	return &Raster{
		width:  width,
		height: height,
		sums:   make([]core.Vec3, width*height),
		counts: make([]int, width*height),
	}
}

// Set stores the summed color for pixel (x, y), to be divided by
// sampleCount at encode time. Callers must only write to disjoint (x, y)
// pairs concurrently.
func (r *Raster) Set(x, y int, sum core.Vec3, sampleCount int) {
	idx := y*r.width + x
	r.sums[idx] = sum
	r.counts[idx] = sampleCount
}

// ToImage converts the accumulated sums to an *image.RGBA using
// Vec3.ToRGBA8, which applies no gamma correction.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			idx := y*r.width + x
			red, green, blue := r.sums[idx].ToRGBA8(r.counts[idx])
			img.Set(x, y, color.RGBA{R: red, G: green, B: blue, A: 255})
		}
	}
	return img
}

// WritePNG writes the raster to filename as an RGB8 PNG, creating any
// missing parent directories.
func (r *Raster) WritePNG(filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "creating output directory %q", dir)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating output file %q", filename)
	}
	defer file.Close()

	if err := png.Encode(file, r.ToImage()); err != nil {
		return errors.Wrapf(err, "encoding PNG to %q", filename)
	}
	return nil
}

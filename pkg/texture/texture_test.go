package texture

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marrach/gotracer/pkg/core"
)

func TestSolidColor_ReturnsStoredColor(t *testing.T) {
	tex := NewSolidColor(core.NewVec3(0.1, 0.2, 0.3))
	assert.Equal(t, core.NewVec3(0.1, 0.2, 0.3), tex.Value(0.5, 0.5, core.NewVec3(9, 9, 9)))
}

func TestChecker_AlternatesByPoint(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewChecker(even, odd)

	evenPoint := checker.Value(0, 0, core.NewVec3(0, 0, 0))
	assert.Equal(t, even, evenPoint)
}

func TestImageTexture_OutOfBoundsUVNeverPanics(t *testing.T) {
	tex := NewImageTexture(2, 2, []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1),
	})

	uvs := []float64{-5, -1, 0, 0.5, 1, 2, 100}
	for _, u := range uvs {
		for _, v := range uvs {
			assert.NotPanics(t, func() {
				tex.Value(u, v, core.Vec3{})
			})
		}
	}
}

func TestImageTexture_EmptyTextureReturnsDebugColor(t *testing.T) {
	tex := NewImageTexture(0, 0, nil)
	assert.Equal(t, core.NewVec3(0, 1, 1), tex.Value(0.5, 0.5, core.Vec3{}))
}

func TestNewImageTextureFromImage_ConvertsChannels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 128, B: 0, A: 255})

	tex := NewImageTextureFromImage(img)
	got := tex.Value(0, 1, core.Vec3{}) // v=1 maps to the single top/bottom row

	assert.InDelta(t, 1.0, got.X, 1e-6)
	assert.InDelta(t, 128.0/255.0, got.Y, 1e-6)
	assert.InDelta(t, 0.0, got.Z, 1e-6)
}

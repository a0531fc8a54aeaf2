package scene_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marrach/gotracer/pkg/renderer"
	"github.com/marrach/gotracer/pkg/scene"
)

func TestNewBookCoverScene_RendersWithoutPanicking(t *testing.T) {
	sc := scene.NewBookCoverScene(8, 8, rand.New(rand.NewSource(42)))
	sc.SamplesPerPixel = 2
	sc.MaxDepth = 4

	assert.NotPanics(t, func() {
		renderer.Render(sc, nil)
	})
}

func TestNewCornellScene_RendersWithoutPanicking(t *testing.T) {
	sc := scene.NewCornellScene(8, 8, rand.New(rand.NewSource(3)))
	sc.SamplesPerPixel = 2
	sc.MaxDepth = 4

	assert.NotPanics(t, func() {
		renderer.Render(sc, nil)
	})
}

func TestNewMaterialShowcaseScene_RendersWithoutPanicking(t *testing.T) {
	sc := scene.NewMaterialShowcaseScene(8, 8, rand.New(rand.NewSource(7)))
	sc.SamplesPerPixel = 2
	sc.MaxDepth = 4

	assert.NotPanics(t, func() {
		renderer.Render(sc, nil)
	})
}

func TestNewMotionBlurScene_RendersWithoutPanicking(t *testing.T) {
	sc := scene.NewMotionBlurScene(8, 8, rand.New(rand.NewSource(7)))
	sc.SamplesPerPixel = 2
	sc.MaxDepth = 4

	assert.NotPanics(t, func() {
		renderer.Render(sc, nil)
	})
}

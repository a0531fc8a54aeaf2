package texture

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/marrach/gotracer/pkg/core"
)

// ImageTexture samples a color from a decoded raster via nearest-texel
// lookup (no bilinear filtering): u maps across width, v is flipped
// vertically so v=0 is the bottom row, and both indices are clamped so a
// lookup can never read out of bounds regardless of the (u, v) supplied.
type ImageTexture struct {
	Width, Height int
	Pixels        []core.Vec3 // row-major, Pixels[y*Width+x], y=0 is the image's top row
}

// NewImageTexture wraps a pre-decoded pixel grid (row 0 = top), as supplied
// by the out-of-scope scene loader.
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// LoadImageTexture decodes an image file from disk into an ImageTexture.
// Beyond the standard library's PNG/JPEG decoders, BMP and TIFF are
// supported via golang.org/x/image, so example scenes are not limited to a
// single texture file format.
func LoadImageTexture(path string) (*ImageTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening texture file %q", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding texture file %q", path)
	}
	return NewImageTextureFromImage(img), nil
}

// NewImageTextureFromImage converts a decoded image.Image into an
// ImageTexture's row-major [0,1]-normalized pixel grid.
func NewImageTextureFromImage(img image.Image) *ImageTexture {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA() returns 16-bit-scaled channels; reduce to 8-bit/255.
			pixels[y*width+x] = core.NewVec3(
				float64(r>>8)/255.0,
				float64(g>>8)/255.0,
				float64(b>>8)/255.0,
			)
		}
	}
	return NewImageTexture(width, height, pixels)
}

// Value samples the nearest texel for the given uv coordinates.
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) == 0 {
		return core.NewVec3(0, 1, 1) // cyan: visual debug aid for a missing texture
	}

	u = clampUnit(u)
	v = clampUnit(v)

	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height)) // v flipped: v=0 is bottom

	x = clampIndex(x, t.Width)
	y = clampIndex(y, t.Height)

	return t.Pixels[y*t.Width+x]
}

func clampUnit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func init() {
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
	image.RegisterFormat("tiff", "II*\x00", tiff.Decode, tiff.DecodeConfig)
	image.RegisterFormat("tiff", "MM\x00*", tiff.Decode, tiff.DecodeConfig)
}

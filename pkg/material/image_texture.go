package material

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/lumen-engine/lumen/pkg/core"
)

// ImageTexture samples colors from a decoded image, v running bottom-up
type ImageTexture struct {
	img    image.Image
	width  int
	height int
}

// NewImageTexture wraps a decoded image
func NewImageTexture(img image.Image) *ImageTexture {
	bounds := img.Bounds()
	return &ImageTexture{
		img:    img,
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
}

// LoadImageTexture decodes an image file into a texture. PNG, JPEG, WebP
// and TIFF are supported.
func LoadImageTexture(path string) (*ImageTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", path, err)
	}
	return NewImageTexture(img), nil
}

// Value returns the pixel color at the clamped (u, v) coordinates
func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	if t.img == nil || t.width == 0 || t.height == 0 {
		// Solid cyan flags a missing texture
		return core.NewVec3(0, 1, 1)
	}

	u = clamp01(u)
	v = 1 - clamp01(v) // image rows run top-down

	x := int(u * float64(t.width))
	y := int(v * float64(t.height))
	if x >= t.width {
		x = t.width - 1
	}
	if y >= t.height {
		y = t.height - 1
	}

	bounds := t.img.Bounds()
	r, g, b, _ := t.img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
	const scale = 1.0 / 65535.0
	return core.NewVec3(float64(r)*scale, float64(g)*scale, float64(b)*scale)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

package render

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
)

// CanvasFromImage creates a canvas holding the pixels of img.
// 16-bit channels are mapped to [0, 1]; alpha is dropped.
func CanvasFromImage(img image.Image) (*Canvas, error) {
	bounds := img.Bounds()
	c, err := NewCanvas(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, fmt.Errorf("image %v: %w", bounds, err)
	}

	for y := range c.height {
		for x := range c.width {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			c.pixels[y*c.width+x] = RGB(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
		}
	}
	return c, nil
}

// LoadCanvas decodes a PNG or JPEG file into a canvas.
func LoadCanvas(path string) (*Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return CanvasFromImage(img)
}

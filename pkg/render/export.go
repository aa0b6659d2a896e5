package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

// ErrInvalidScale indicates an export scale factor below 1.
var ErrInvalidScale = errors.New("render: scale factor must be >= 1")

// ToImage converts the canvas to a standard Go image.RGBA.
// Channels are clamped to [0, 1] on the way out.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := range c.height {
		for x := range c.width {
			col, err := c.PixelAt(x, y)
			if err != nil {
				// unreachable: x and y stay inside the canvas
				continue
			}
			img.SetRGBA(x, y, col.ToRGBA())
		}
	}
	return img
}

// ToImageScaled converts the canvas to an image enlarged by factor using
// nearest-neighbor sampling, so every canvas pixel becomes a factor x factor
// block.
func (c *Canvas) ToImageScaled(factor int) (*image.RGBA, error) {
	if factor < 1 {
		return nil, fmt.Errorf("scale canvas by %d: %w", factor, ErrInvalidScale)
	}
	src := c.ToImage()
	if factor == 1 {
		return src, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, c.width*factor, c.height*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// EncodePNG writes the canvas as a PNG scaled by factor.
func (c *Canvas) EncodePNG(w io.Writer, factor int) error {
	img, err := c.ToImageScaled(factor)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG saves the canvas as a PNG file scaled by factor.
func (c *Canvas) SavePNG(path string, factor int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := c.EncodePNG(f, factor); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	Logger().Debug("canvas saved", "path", path, "width", c.width*factor, "height", c.height*factor)
	return f.Close()
}

// Package render provides the color algebra and pixel canvas of the tracer.
package render

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDimensions indicates a canvas width or height below 1, or a
	// cell count too large to allocate.
	ErrInvalidDimensions = errors.New("render: invalid canvas dimensions")

	// ErrOutOfRange indicates a pixel coordinate outside the canvas.
	ErrOutOfRange = errors.New("render: pixel index out of range")
)

// colorBytes is the in-memory size of one Color (four float64 slots).
const colorBytes = 32

// Canvas is a fixed-size 2D grid of colors.
// Dimensions never change after construction and every cell always holds a
// color. A Canvas has a single owner; concurrent writers must synchronize
// externally.
type Canvas struct {
	width  int
	height int
	pixels []Color // Row-major pixel data
}

// NewCanvas creates a canvas with every cell set to DefaultBackground.
func NewCanvas(width, height int) (*Canvas, error) {
	return NewCanvasFilled(width, height, DefaultBackground())
}

// NewCanvasFilled creates a canvas with every cell set to bg.
func NewCanvasFilled(width, height int, bg Color) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("new canvas %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if width > math.MaxInt/colorBytes/height {
		return nil, fmt.Errorf("new canvas %dx%d: too many cells: %w", width, height, ErrInvalidDimensions)
	}
	c := &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
	c.Fill(bg)
	Logger().Debug("canvas allocated", "width", width, "height", height, "background", bg.String())
	return c, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Fill sets every cell to col.
func (c *Canvas) Fill(col Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// InBounds reports whether (x, y) addresses a cell of the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// WritePixel sets the cell at (x, y) to col.
// Out-of-range coordinates leave the canvas untouched and return an error
// wrapping ErrOutOfRange.
func (c *Canvas) WritePixel(x, y int, col Color) error {
	if !c.InBounds(x, y) {
		return c.rangeError("WritePixel", x, y)
	}
	c.pixels[y*c.width+x] = col
	return nil
}

// PixelAt returns the color at (x, y).
// Out-of-range coordinates return an error wrapping ErrOutOfRange.
func (c *Canvas) PixelAt(x, y int) (Color, error) {
	if !c.InBounds(x, y) {
		return Color{}, c.rangeError("PixelAt", x, y)
	}
	return c.pixels[y*c.width+x], nil
}

// rangeError wraps ErrOutOfRange with the call site and coordinates.
func (c *Canvas) rangeError(method string, x, y int) error {
	return fmt.Errorf("Canvas.%s(%d,%d) on %dx%d: %w", method, x, y, c.width, c.height, ErrOutOfRange)
}

package render

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasFromImage(t *testing.T) {
	src := newTestCanvas(t)

	c, err := CanvasFromImage(src.ToImage())
	require.NoError(t, err)
	assert.Equal(t, src.Width(), c.Width())
	assert.Equal(t, src.Height(), c.Height())

	got, err := c.PixelAt(0, 0)
	require.NoError(t, err)
	assert.True(t, got.Equal(Red))

	// (0, 0.5, 2) went out as 8-bit (0, 128, 255).
	got, err = c.PixelAt(2, 1)
	require.NoError(t, err)
	assert.True(t, got.Equal(RGB(0, 128.0/255, 1)), "got %v", got)
}

func TestCanvasFromEmptyImage(t *testing.T) {
	_, err := CanvasFromImage(image.NewRGBA(image.Rect(0, 0, 0, 4)))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestLoadCanvas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	require.NoError(t, newTestCanvas(t).SavePNG(path, 1))

	c, err := LoadCanvas(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Width())
	assert.Equal(t, 2, c.Height())

	_, err = LoadCanvas(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCanvas(t *testing.T) {
	c, err := NewCanvas(10, 20)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Width())
	assert.Equal(t, 20, c.Height())

	for y := range c.Height() {
		for x := range c.Width() {
			got, err := c.PixelAt(x, y)
			require.NoError(t, err)
			require.True(t, got.Equal(DefaultBackground()), "pixel (%d,%d) = %v", x, y, got)
		}
	}
}

func TestNewCanvasInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-3, 5}, {0, 0}} {
		c, err := NewCanvas(dims[0], dims[1])
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrInvalidDimensions, "NewCanvas(%d, %d)", dims[0], dims[1])
	}
}

func TestNewCanvasTooLarge(t *testing.T) {
	for _, dims := range [][2]int{
		{math.MaxInt, 2},
		{math.MaxInt/2 + 1, 3},
		{2, math.MaxInt/2 + 1},
		{math.MaxInt/colorBytes + 1, 1},
	} {
		c, err := NewCanvas(dims[0], dims[1])
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrInvalidDimensions, "NewCanvas(%d, %d)", dims[0], dims[1])
	}
}

func TestDefaultBackgroundIsBlack(t *testing.T) {
	assert.True(t, DefaultBackground().Equal(RGB(0, 0, 0)))
}

func TestNewCanvasFilled(t *testing.T) {
	bg := RGB(0.1, 0.2, 0.3)
	c, err := NewCanvasFilled(3, 2, bg)
	require.NoError(t, err)

	got, err := c.PixelAt(2, 1)
	require.NoError(t, err)
	assert.True(t, got.Equal(bg))
}

func TestWritePixel(t *testing.T) {
	c, err := NewCanvas(10, 20)
	require.NoError(t, err)

	require.NoError(t, c.WritePixel(2, 3, Red))

	for y := range c.Height() {
		for x := range c.Width() {
			got, err := c.PixelAt(x, y)
			require.NoError(t, err)
			if x == 2 && y == 3 {
				assert.True(t, got.Equal(Red), "written pixel = %v", got)
				continue
			}
			require.True(t, got.Equal(DefaultBackground()), "pixel (%d,%d) changed to %v", x, y, got)
		}
	}
}

func TestCanvasOutOfRange(t *testing.T) {
	c, err := NewCanvas(10, 20)
	require.NoError(t, err)

	tests := []struct {
		name string
		x, y int
	}{
		{"x at width", 10, 0},
		{"y at height", 0, 20},
		{"both at limit", 10, 20},
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"far away", 1000, 1000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, c.InBounds(tc.x, tc.y))

			err := c.WritePixel(tc.x, tc.y, Red)
			require.ErrorIs(t, err, ErrOutOfRange)

			_, err = c.PixelAt(tc.x, tc.y)
			require.ErrorIs(t, err, ErrOutOfRange)
		})
	}

	// A rejected write must not wrap into a neighbouring row.
	got, err := c.PixelAt(0, 1)
	require.NoError(t, err)
	assert.True(t, got.Equal(DefaultBackground()))
}

func TestCanvasCorners(t *testing.T) {
	c, err := NewCanvas(4, 3)
	require.NoError(t, err)

	corners := map[[2]int]Color{
		{0, 0}: Red,
		{3, 0}: Green,
		{0, 2}: Blue,
		{3, 2}: White,
	}
	for pos, col := range corners {
		require.NoError(t, c.WritePixel(pos[0], pos[1], col))
	}
	for pos, col := range corners {
		got, err := c.PixelAt(pos[0], pos[1])
		require.NoError(t, err)
		assert.True(t, got.Equal(col), "corner %v = %v, want %v", pos, got, col)
	}
}

func TestFill(t *testing.T) {
	c, err := NewCanvas(5, 5)
	require.NoError(t, err)
	require.NoError(t, c.WritePixel(1, 1, Red))

	c.Fill(Blue)

	for y := range 5 {
		for x := range 5 {
			got, err := c.PixelAt(x, y)
			require.NoError(t, err)
			require.True(t, got.Equal(Blue))
		}
	}
}

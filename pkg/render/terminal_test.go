package render

import (
	"image/color"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawHalfBlocks(t *testing.T) {
	c, err := NewCanvas(2, 3)
	require.NoError(t, err)
	require.NoError(t, c.WritePixel(0, 0, Red))
	require.NoError(t, c.WritePixel(0, 1, Blue))
	require.NoError(t, c.WritePixel(1, 2, Green))

	scr := uv.NewScreenBuffer(4, 4)
	c.Draw(scr, scr.Bounds())

	top := scr.CellAt(0, 0)
	require.NotNil(t, top)
	assert.Equal(t, halfBlock, top.Content)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, top.Style.Fg)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, top.Style.Bg)

	// Odd height: the last terminal row has no bottom canvas row.
	last := scr.CellAt(1, 1)
	require.NotNil(t, last)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, last.Style.Fg)
	assert.Nil(t, last.Style.Bg)

	// Nothing is drawn outside the canvas.
	outside := scr.CellAt(2, 0)
	require.NotNil(t, outside)
	assert.NotEqual(t, halfBlock, outside.Content)
}

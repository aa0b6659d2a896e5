package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// halfBlock is the upper half block glyph; its foreground paints the top
// half of a cell and its background the bottom half.
const halfBlock = "▀"

// Draw paints the canvas onto the screen starting at the top-left corner of
// area. Each terminal row shows two canvas rows, so a canvas of height h
// needs h/2 rows (rounded up). Cells beyond the canvas are left untouched.
func (c *Canvas) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1
		if topY >= c.height {
			break
		}

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= c.width {
				break
			}

			cell := &uv.Cell{
				Content: halfBlock,
				Width:   1,
				Style: uv.Style{
					Fg: c.cellColor(x, topY),
					Bg: c.cellColor(x, botY),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// cellColor returns the terminal color of (x, y), or nil when the row lies
// below the canvas (odd heights).
func (c *Canvas) cellColor(x, y int) color.Color {
	col, err := c.PixelAt(x, y)
	if err != nil {
		return nil
	}
	return col.ToRGBA()
}

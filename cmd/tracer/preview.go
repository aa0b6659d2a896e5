package main

import (
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/tracer/pkg/render"
)

// previewWidth is the terminal width of a canvas preview in columns.
const previewWidth = 80

// thumbnail returns c downsampled by nearest neighbor so that it is at most
// maxWidth pixels wide. Canvases that already fit are returned as is.
func thumbnail(c *render.Canvas, maxWidth int) (*render.Canvas, error) {
	if c.Width() <= maxWidth {
		return c, nil
	}
	w := maxWidth
	h := max(c.Height()*maxWidth/c.Width(), 1)

	thumb, err := render.NewCanvas(w, h)
	if err != nil {
		return nil, err
	}
	for y := range h {
		for x := range w {
			col, err := c.PixelAt(x*c.Width()/w, y*c.Height()/h)
			if err != nil {
				return nil, err
			}
			if err := thumb.WritePixel(x, y, col); err != nil {
				return nil, err
			}
		}
	}
	return thumb, nil
}

// previewCanvas renders c as half-block terminal cells.
func previewCanvas(c *render.Canvas, maxWidth int) (string, error) {
	thumb, err := thumbnail(c, maxWidth)
	if err != nil {
		return "", err
	}
	rows := (thumb.Height() + 1) / 2
	scr := uv.NewScreenBuffer(thumb.Width(), rows)
	thumb.Draw(scr, scr.Bounds())
	return scr.Render(), nil
}

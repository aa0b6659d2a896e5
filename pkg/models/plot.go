package models

import (
	"fmt"
	"math"

	"github.com/taigrr/tracer/pkg/math3d"
	"github.com/taigrr/tracer/pkg/render"
)

// Bounds returns the component-wise minimum and maximum points of points.
func Bounds(points []math3d.Tuple) (lo, hi math3d.Tuple, err error) {
	if len(points) == 0 {
		return math3d.Tuple{}, math3d.Tuple{}, fmt.Errorf("bounds: %w", ErrNoPoints)
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo = math3d.Point(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z))
		hi = math3d.Point(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z))
	}
	return lo, hi, nil
}

// PlotPoints projects points orthographically onto c along the z axis.
// The x/y extent of the cloud is centered and scaled uniformly to fit inside
// a one-pixel margin, with y pointing up. It returns the number of pixels
// written.
func PlotPoints(c *render.Canvas, points []math3d.Tuple, col render.Color) (int, error) {
	lo, hi, err := Bounds(points)
	if err != nil {
		return 0, err
	}

	extent := hi.Sub(lo)
	center := lo.Add(extent.Scale(0.5))
	scale := fitScale(extent, c.Width(), c.Height())
	midX := float64(c.Width()-1) / 2
	midY := float64(c.Height()-1) / 2

	written := 0
	for _, p := range points {
		d := p.Sub(center).Scale(scale)
		x := int(math.Round(midX + d.X))
		y := int(math.Round(midY - d.Y))
		if err := c.WritePixel(x, y, col); err != nil {
			continue
		}
		written++
	}
	return written, nil
}

// fitScale returns the uniform scale that maps extent onto the canvas minus
// its margin. A degenerate axis does not constrain the scale.
func fitScale(extent math3d.Tuple, width, height int) float64 {
	margin := 1
	if width < 3 || height < 3 {
		margin = 0
	}
	availW := float64(width - 1 - 2*margin)
	availH := float64(height - 1 - 2*margin)

	scale := math.Inf(1)
	if !math3d.ApproxEqual(extent.X, 0) {
		scale = math.Min(scale, availW/extent.X)
	}
	if !math3d.ApproxEqual(extent.Y, 0) {
		scale = math.Min(scale, availH/extent.Y)
	}
	if math.IsInf(scale, 1) {
		return 0
	}
	return scale
}

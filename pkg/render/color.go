package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/taigrr/tracer/pkg/math3d"
)

// Color is a red/green/blue triple stored in the tuple layout.
// X, Y and Z hold the channels; W is always 0 and carries no meaning.
// Channels are not clamped, so intermediate results may leave [0, 1].
type Color math3d.Tuple

// RGB creates a color from channel values.
func RGB(r, g, b float64) Color {
	return Color{X: r, Y: g, Z: b}
}

// Colors for convenience
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
	Red   = RGB(1, 0, 0)
	Green = RGB(0, 1, 0)
	Blue  = RGB(0, 0, 1)
)

// DefaultBackground returns the color every cell of a new canvas starts
// with. It is always black.
func DefaultBackground() Color { return RGB(0, 0, 0) }

// Red returns the red channel.
func (c Color) Red() float64 { return c.X }

// Green returns the green channel.
func (c Color) Green() float64 { return c.Y }

// Blue returns the blue channel.
func (c Color) Blue() float64 { return c.Z }

func (c Color) tuple() math3d.Tuple { return math3d.Tuple(c) }

// Add returns the channel-wise sum.
func (c Color) Add(o Color) Color {
	return Color(c.tuple().Add(o.tuple()))
}

// Sub returns the channel-wise difference.
func (c Color) Sub(o Color) Color {
	return Color(c.tuple().Sub(o.tuple()))
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float64) Color {
	return Color(c.tuple().Scale(s))
}

// Mul returns the Hadamard product, used to blend a light color with a
// surface color.
func (c Color) Mul(o Color) Color {
	return RGB(c.X*o.X, c.Y*o.Y, c.Z*o.Z)
}

// Equal reports whether every channel differs by less than math3d.Epsilon.
func (c Color) Equal(o Color) bool {
	return c.tuple().Equal(o.tuple())
}

func (c Color) String() string {
	return fmt.Sprintf("color(%g, %g, %g)", c.X, c.Y, c.Z)
}

// ToRGBA converts the color to 8-bit channels for export.
// Channels are clamped to [0, 1] first; alpha is always opaque.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: to8(c.X),
		G: to8(c.Y),
		B: to8(c.Z),
		A: 255,
	}
}

// to8 clamps v to [0, 1] and scales it to 0..255.
func to8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// ParseRGB parses a "r,g,b" triple of channel values, e.g. "1,0.5,0".
func ParseRGB(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("parse color %q: want 3 comma-separated channels, got %d", s, len(parts))
	}

	var ch [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		ch[i] = v
	}
	return RGB(ch[0], ch[1], ch[2]), nil
}

package unit

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for color literals which cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Hsla is a color in hue, saturation, lightness and alpha. All components are
// fractions in [0,1]; the hue is normalized, i.e. 360° is 1.0.
//
// Hsla values are compared by exact field equality. Out-of-range components
// are kept as they are.
type Hsla struct {
	H, S, L, A float32
}

// Some well known colors.
var (
	Transparent = Hsla{H: 0, S: 0, L: 0, A: 0}
	Black       = Hsla{H: 0, S: 0, L: 0, A: 1}
	White       = Hsla{H: 0, S: 0, L: 1, A: 1}
)

// HSLA creates a color from normalized components.
func HSLA(h, s, l, a float32) Hsla {
	return Hsla{H: h, S: s, L: l, A: a}
}

// Degrees creates a color with the hue given in degrees.
func Degrees(hue, s, l, a float32) Hsla {
	return Hsla{H: hue / 360, S: s, L: l, A: a}
}

// Rgb creates an opaque color from a 0xRRGGBB value.
func Rgb(hex uint32) Hsla {
	return fromRGB(hex, 1)
}

// Rgba creates a color from a 0xRRGGBBAA value.
func Rgba(hex uint32) Hsla {
	return fromRGB(hex>>8, float32(hex&0xff)/255)
}

// ParseHex creates an opaque color from "#rrggbb" or "#rgb".
func ParseHex(s string) (Hsla, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Hsla{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	return fromColorful(c, 1), nil
}

func fromRGB(rgb uint32, alpha float32) Hsla {
	c := colorful.Color{
		R: float64((rgb>>16)&0xff) / 255,
		G: float64((rgb>>8)&0xff) / 255,
		B: float64(rgb&0xff) / 255,
	}
	return fromColorful(c, alpha)
}

func fromColorful(c colorful.Color, alpha float32) Hsla {
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return Hsla{H: float32(h / 360), S: float32(s), L: float32(l), A: alpha}
}

// Opacity returns c with its alpha scaled by f.
func (c Hsla) Opacity(f float32) Hsla {
	c.A *= f
	return c
}

// IsTransparent is true if c is fully transparent.
func (c Hsla) IsTransparent() bool {
	return c.A <= 0
}

// RGBA implements image/color.Color. Components are clamped, as painting
// requires them in range.
func (c Hsla) RGBA() (r, g, b, a uint32) {
	rgb := colorful.Hsl(float64(c.H)*360, clamp01(float64(c.S)), clamp01(float64(c.L))).Clamped()
	alpha := clamp01(float64(c.A))
	r = uint32(math.Round(rgb.R * alpha * 0xffff))
	g = uint32(math.Round(rgb.G * alpha * 0xffff))
	b = uint32(math.Round(rgb.B * alpha * 0xffff))
	a = uint32(math.Round(alpha * 0xffff))
	return
}

func (c Hsla) String() string {
	return fmt.Sprintf("hsla(%.4g, %.4g, %.4g, %.4g)", c.H, c.S, c.L, c.A)
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

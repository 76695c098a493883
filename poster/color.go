package poster

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xff} }

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseColor(s string) (Color, error) {
	v := strings.TrimSpace(s)
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	alpha := uint8(0xff)
	if len(v) == 9 {
		a, err := strconv.ParseUint(v[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("颜色 %q 的透明度无效: %w", s, err)
		}
		alpha = uint8(a)
		v = v[:7]
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return Color{}, fmt.Errorf("无法解析颜色 %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// MustColor panics on malformed input; used for the built-in tables.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as #rrggbb, or #rrggbbaa when it is not opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) String() string { return c.Hex() }

// Alpha returns the opacity in [0,1].
func (c Color) Alpha() float64 { return float64(c.A) / 255.0 }

// WithAlpha multiplies the color's opacity by a, clamped to [0,1].
func (c Color) WithAlpha(a float64) Color {
	if a >= 1 {
		return c
	}
	if a <= 0 {
		c.A = 0
		return c
	}
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}

// Premultiplied converts to the premultiplied form used by image/color.
func (c Color) Premultiplied() color.RGBA {
	return color.RGBAModel.Convert(color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}).(color.RGBA)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

package paint

import "github.com/ByLCY/posterforge/poster"

// Fill is either a solid color or a linear gradient.
type Fill struct {
	Color    poster.Color `json:"color"`
	Gradient *Linear      `json:"gradient,omitempty"`
}

// Solid returns a solid fill.
func Solid(c poster.Color) Fill { return Fill{Color: c} }

// Gradient returns a gradient fill. Color carries the first stop for
// consumers, such as text, that only take a flat color.
func Gradient(g Linear) Fill { return Fill{Color: g.Stops[0].Color, Gradient: &g} }

// IsGradient reports whether the fill is a gradient.
func (f Fill) IsGradient() bool { return f.Gradient != nil }

// WithAlpha applies a global opacity to the fill.
func (f Fill) WithAlpha(a float64) Fill {
	f.Color = f.Color.WithAlpha(a)
	if f.Gradient != nil {
		g := f.Gradient.WithAlpha(a)
		f.Gradient = &g
	}
	return f
}

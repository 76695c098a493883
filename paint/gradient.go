// Package paint builds the fills used by the compositor: solid colors and
// two-stop linear gradients.
package paint

import (
	"github.com/tdewolff/canvas"

	"github.com/ByLCY/posterforge/poster"
)

// Stop is a gradient color stop at Offset in [0,1].
type Stop struct {
	Offset float64      `json:"offset"`
	Color  poster.Color `json:"color"`
}

// Linear is a two-stop linear gradient between two points in logical units.
type Linear struct {
	X0    float64 `json:"x0"`
	Y0    float64 `json:"y0"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	Stops [2]Stop `json:"stops"`
}

// NewLinear returns a gradient from c0 at (x0,y0) to c1 at (x1,y1).
func NewLinear(x0, y0, x1, y1 float64, c0, c1 poster.Color) Linear {
	return Linear{
		X0: x0, Y0: y0, X1: x1, Y1: y1,
		Stops: [2]Stop{{Offset: 0, Color: c0}, {Offset: 1, Color: c1}},
	}
}

// Build maps a preset onto a width×height area. Unknown directions are diagonal.
func Build(preset poster.GradientPreset, width, height float64) Linear {
	c0, c1 := preset.Colors[0], preset.Colors[1]
	switch preset.Direction {
	case poster.Horizontal:
		return NewLinear(0, 0, width, 0, c0, c1)
	case poster.Vertical:
		return NewLinear(0, 0, 0, height, c0, c1)
	default:
		return NewLinear(0, 0, width, height, c0, c1)
	}
}

// WithAlpha scales both stops' opacity.
func (g Linear) WithAlpha(a float64) Linear {
	for i := range g.Stops {
		g.Stops[i].Color = g.Stops[i].Color.WithAlpha(a)
	}
	return g
}

// Canvas converts the gradient for the canvas library.
func (g Linear) Canvas() canvas.Gradient {
	lg := canvas.NewLinearGradient(canvas.Point{X: g.X0, Y: g.Y0}, canvas.Point{X: g.X1, Y: g.Y1})
	for _, s := range g.Stops {
		lg.Add(s.Offset, s.Color.Premultiplied())
	}
	return lg
}

// Package geom builds the closed paths the poster is made of. Coordinates are
// absolute logical units; callers draw the result at the origin.
package geom

import (
	"math"

	"github.com/tdewolff/canvas"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498307936

// ClampRadius limits r to half of the smaller side so corners never overlap.
func ClampRadius(r, width, height float64) float64 {
	r = math.Min(r, math.Min(width/2, height/2))
	if r < 0 || math.IsNaN(r) {
		return 0
	}
	return r
}

// RoundedRect traces a rectangle whose corners are quadratic quarter-curves.
func RoundedRect(x, y, width, height, radius float64) *canvas.Path {
	r := ClampRadius(radius, width, height)
	p := &canvas.Path{}
	p.MoveTo(x+r, y)
	p.LineTo(x+width-r, y)
	p.QuadTo(x+width, y, x+width, y+r)
	p.LineTo(x+width, y+height-r)
	p.QuadTo(x+width, y+height, x+width-r, y+height)
	p.LineTo(x+r, y+height)
	p.QuadTo(x, y+height, x, y+height-r)
	p.LineTo(x, y+r)
	p.QuadTo(x, y, x+r, y)
	p.Close()
	return p
}

// Rect is a plain axis-aligned rectangle.
func Rect(x, y, width, height float64) *canvas.Path {
	p := &canvas.Path{}
	p.MoveTo(x, y)
	p.LineTo(x+width, y)
	p.LineTo(x+width, y+height)
	p.LineTo(x, y+height)
	p.Close()
	return p
}

// Circle is a full circle centred on (cx, cy).
func Circle(cx, cy, r float64) *canvas.Path {
	k := r * kappa
	p := &canvas.Path{}
	p.MoveTo(cx+r, cy)
	p.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	p.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	p.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	p.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	p.Close()
	return p
}

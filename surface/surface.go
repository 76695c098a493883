// Package surface defines the drawing context the compositor paints onto.
//
// The model follows an immediate-mode 2D context: fill/stroke styles, a global
// opacity, a current font and text alignment, and an optional drop shadow are
// state; paths and text are drawn with whatever state is current. Coordinates
// are always logical units of the 1080×1350 poster.
package surface

import (
	"errors"
	"image"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/posterforge/paint"
	"github.com/ByLCY/posterforge/poster"
)

// ErrUnavailable is returned when there is no surface to draw onto.
var ErrUnavailable = errors.New("surface: drawing context unavailable")

// Context is a 2D drawing context over the logical poster canvas.
type Context interface {
	// Resize recreates the backing store at dpr device pixels per logical
	// unit and resets all drawing state. Logical coordinates are unchanged.
	Resize(dpr float64) error
	Size() (width, height float64)
	Clear()

	SetGlobalAlpha(a float64)
	GlobalAlpha() float64

	SetFill(f paint.Fill)
	SetStroke(c poster.Color, width float64)
	FillPath(p *canvas.Path)
	StrokePath(p *canvas.Path)

	SetFont(spec string) error
	SetTextAlign(a poster.Align)
	SetShadow(c poster.Color, blur float64)
	MeasureText(s string) float64
	FillText(s string, x, y float64)

	DrawImage(img image.Image, x, y, width, height float64)
}

// Locker is implemented by surfaces that serialize whole renders.
type Locker interface {
	Lock()
	Unlock()
}

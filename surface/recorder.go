package surface

import (
	"image"
	"math"
	"unicode/utf8"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/posterforge/paint"
	"github.com/ByLCY/posterforge/poster"
)

// OpKind names a recorded drawing operation.
type OpKind string

const (
	OpResize OpKind = "resize"
	OpClear  OpKind = "clear"
	OpFill   OpKind = "fill"
	OpStroke OpKind = "stroke"
	OpText   OpKind = "text"
	OpImage  OpKind = "image"
)

// Op is one drawing call with the effective state it was issued under.
type Op struct {
	Kind        OpKind
	Path        *canvas.Path
	Fill        paint.Fill
	Stroke      poster.Color
	StrokeWidth float64
	Alpha       float64
	Text        string
	X, Y        float64
	W, H        float64
	Font        Font
	Align       poster.Align
	Shadow      poster.Color
	ShadowBlur  float64
	DPR         float64
}

// Recorder is a Context that records draw calls instead of rasterizing them.
// Text is measured with a fixed advance of Advance·size per rune, which keeps
// layout deterministic and independent of font files.
type Recorder struct {
	Ops []Op

	// Advance is the per-rune width as a fraction of the font size (default 0.5).
	Advance float64
	// Unavailable makes Resize fail, simulating a lost drawing context.
	Unavailable bool

	dpr         float64
	alpha       float64
	fill        paint.Fill
	stroke      poster.Color
	strokeWidth float64
	font        Font
	align       poster.Align
	shadow      poster.Color
	shadowBlur  float64
}

var _ Context = (*Recorder)(nil)

// NewRecorder returns a recorder in its initial state.
func NewRecorder() *Recorder {
	r := &Recorder{Advance: 0.5}
	r.reset(1)
	return r
}

func (r *Recorder) reset(dpr float64) {
	r.dpr = dpr
	r.alpha = 1
	r.fill = paint.Solid(poster.RGB(0, 0, 0))
	r.stroke = poster.RGB(0, 0, 0)
	r.strokeWidth = 1
	r.font = DefaultFont
	r.align = poster.AlignLeft
	r.shadow = poster.Color{}
	r.shadowBlur = 0
}

func (r *Recorder) Resize(dpr float64) error {
	if r.Unavailable {
		return ErrUnavailable
	}
	dpr = poster.NormalizeDPR(dpr)
	r.Ops = nil
	r.reset(dpr)
	r.Ops = append(r.Ops, Op{Kind: OpResize, DPR: dpr})
	return nil
}

func (r *Recorder) Size() (float64, float64) { return poster.Width, poster.Height }

func (r *Recorder) Clear() { r.Ops = append(r.Ops, Op{Kind: OpClear}) }

func (r *Recorder) SetGlobalAlpha(a float64) {
	if a < 0 || a > 1 || math.IsNaN(a) {
		return
	}
	r.alpha = a
}

func (r *Recorder) GlobalAlpha() float64 { return r.alpha }

func (r *Recorder) SetFill(f paint.Fill) { r.fill = f }

func (r *Recorder) SetStroke(c poster.Color, width float64) {
	r.stroke = c
	r.strokeWidth = width
}

func (r *Recorder) FillPath(p *canvas.Path) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Path: p, Fill: r.fill.WithAlpha(r.alpha), Alpha: r.alpha})
}

func (r *Recorder) StrokePath(p *canvas.Path) {
	r.Ops = append(r.Ops, Op{
		Kind:        OpStroke,
		Path:        p,
		Stroke:      r.stroke.WithAlpha(r.alpha),
		StrokeWidth: r.strokeWidth,
		Alpha:       r.alpha,
	})
}

func (r *Recorder) SetFont(spec string) error {
	f, err := ParseFont(spec)
	if err != nil {
		return err
	}
	r.font = f
	return nil
}

func (r *Recorder) SetTextAlign(a poster.Align) { r.align = a }

func (r *Recorder) SetShadow(c poster.Color, blur float64) {
	r.shadow = c
	r.shadowBlur = blur
}

func (r *Recorder) MeasureText(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * r.font.Size * r.Advance
}

func (r *Recorder) FillText(s string, x, y float64) {
	r.Ops = append(r.Ops, Op{
		Kind:       OpText,
		Text:       s,
		X:          x,
		Y:          y,
		W:          r.MeasureText(s),
		Fill:       r.fill.WithAlpha(r.alpha),
		Alpha:      r.alpha,
		Font:       r.font,
		Align:      r.align,
		Shadow:     r.shadow,
		ShadowBlur: r.shadowBlur,
	})
}

func (r *Recorder) DrawImage(img image.Image, x, y, width, height float64) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, X: x, Y: y, W: width, H: height, Alpha: r.alpha})
}

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the recorded text ops in order.
func (r *Recorder) Texts() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op)
		}
	}
	return out
}

// Package accent draws the decorative low-opacity overlay that sits between
// the background gradient and the text layers.
package accent

import (
	"github.com/tdewolff/canvas"

	"github.com/ByLCY/posterforge/geom"
	"github.com/ByLCY/posterforge/paint"
	"github.com/ByLCY/posterforge/poster"
	"github.com/ByLCY/posterforge/surface"
)

const (
	baseAlpha  = 0.22
	ringsAlpha = 0.28
	ringWidth  = 14.0
	barRadius  = 18.0
	bleed      = 200.0
)

// barFade is the near-transparent white each bar fades into.
var barFade = poster.MustColor("#ffffff22")

// Draw paints style in col over the whole canvas. Global alpha is 1 on return.
func Draw(ctx surface.Context, style poster.PatternStyle, col poster.Color) {
	w, h := ctx.Size()
	ctx.SetGlobalAlpha(baseAlpha)
	ctx.SetFill(paint.Solid(col))
	defer ctx.SetGlobalAlpha(1)

	switch style {
	case poster.Waves:
		for _, p := range Waves(w, h) {
			ctx.FillPath(p)
		}
	case poster.Rings:
		ctx.SetStroke(col, ringWidth)
		ctx.SetGlobalAlpha(ringsAlpha)
		for _, p := range Rings(w, h) {
			ctx.StrokePath(p)
		}
	case poster.Bars:
		for _, bar := range Bars(w, h) {
			ctx.SetFill(paint.Gradient(paint.NewLinear(bar.X, 0, bar.X+bar.W, 0, col, barFade)))
			ctx.FillPath(geom.RoundedRect(bar.X, bar.Y, bar.W, bar.H, barRadius))
		}
	case poster.None:
	default:
		// 未知样式等同于 none
	}
}

// Waves returns three stacked bands, each a cubic crest over a flat bottom.
// The crest starts and ends off-canvas so the bands bleed at any aspect.
func Waves(w, h float64) []*canvas.Path {
	waveHeight := h * 0.18
	paths := make([]*canvas.Path, 0, 3)
	for i := 0; i < 3; i++ {
		y := h*0.25 + float64(i)*waveHeight*0.4
		p := &canvas.Path{}
		p.MoveTo(-bleed, y)
		p.CubeTo(w*0.25, y-waveHeight*0.6, w*0.75, y+waveHeight*0.6, w+bleed, y)
		p.LineTo(w+bleed, y+waveHeight)
		p.LineTo(-bleed, y+waveHeight)
		p.Close()
		paths = append(paths, p)
	}
	return paths
}

// RingRadii lists the concentric ring radii: from 0.2w, stepping 0.12w, below 0.8w.
func RingRadii(w float64) []float64 {
	var radii []float64
	for i := 0; ; i++ {
		r := w*0.2 + float64(i)*w*0.12
		if r >= w*0.8-1e-9 {
			return radii
		}
		radii = append(radii, r)
	}
}

// Rings returns the ring outlines centred at (0.75w, 0.3h).
func Rings(w, h float64) []*canvas.Path {
	radii := RingRadii(w)
	paths := make([]*canvas.Path, 0, len(radii))
	for _, r := range radii {
		paths = append(paths, geom.Circle(w*0.75, h*0.3, r))
	}
	return paths
}

// Bar is the box of one vertical bar.
type Bar struct {
	X, Y, W, H float64
}

// Bars returns the four bar boxes.
func Bars(w, h float64) []Bar {
	barWidth := w * 0.1
	bars := make([]Bar, 0, 4)
	for i := 0; i < 4; i++ {
		bars = append(bars, Bar{
			X: w*0.1 + float64(i)*barWidth*1.2,
			Y: h * 0.15,
			W: barWidth,
			H: h * 0.65,
		})
	}
	return bars
}

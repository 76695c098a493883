package canvasrenderer

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/posterforge/compose"
	"github.com/ByLCY/posterforge/paint"
	"github.com/ByLCY/posterforge/poster"
	"github.com/ByLCY/posterforge/surface"
)

var transparent = color.RGBA{0, 0, 0, 0}

// Surface 是基于 tdewolff/canvas 的绘图上下文。坐标为海报逻辑单位（一单位即 canvas 的 1mm），
// 设备像素比只在栅格化时生效。
type Surface struct {
	mu sync.Mutex

	lib      *fontLibrary
	declared *declaredSet

	c   *canvas.Canvas
	ctx *canvas.Context
	dpr float64

	alpha       float64
	fill        paint.Fill
	stroke      poster.Color
	strokeWidth float64
	font        surface.Font
	family      *fontFamilyEntry
	align       poster.Align
	shadow      poster.Color
	shadowBlur  float64
}

var (
	_ surface.Context = (*Surface)(nil)
	_ surface.Locker  = (*Surface)(nil)
)

// NewSurface 创建一个只使用内置字体的绘图表面。
func NewSurface() *Surface {
	return newSurface(newFontLibrary("", nil), nil, false)
}

func newSurface(lib *fontLibrary, declared []poster.FontSource, allowPaths bool) *Surface {
	s := &Surface{lib: lib, declared: newDeclaredSet(declared, allowPaths)}
	s.reset(1)
	return s
}

func (s *Surface) Lock()   { s.mu.Lock() }
func (s *Surface) Unlock() { s.mu.Unlock() }

func (s *Surface) reset(dpr float64) {
	s.dpr = dpr
	s.newCanvas()
	s.alpha = 1
	s.fill = paint.Solid(poster.RGB(0, 0, 0))
	s.stroke = poster.RGB(0, 0, 0)
	s.strokeWidth = 1
	s.font = surface.DefaultFont
	s.family = nil
	s.align = poster.AlignLeft
	s.shadow = poster.Color{}
	s.shadowBlur = 0
}

func (s *Surface) newCanvas() {
	s.c = canvas.New(poster.Width, poster.Height)
	s.ctx = canvas.NewContext(s.c)
	s.ctx.SetCoordSystem(canvas.CartesianIV) // 左上角为原点，与逻辑坐标一致
	s.ctx.SetStrokeColor(transparent)
}

func (s *Surface) Resize(dpr float64) error {
	if s.lib == nil {
		return surface.ErrUnavailable
	}
	s.reset(poster.NormalizeDPR(dpr))
	return nil
}

func (s *Surface) Size() (float64, float64) { return poster.Width, poster.Height }

// DPR 返回当前后备位图的设备像素比。
func (s *Surface) DPR() float64 { return s.dpr }

func (s *Surface) Clear() { s.newCanvas() }

func (s *Surface) SetGlobalAlpha(a float64) {
	if a < 0 || a > 1 || math.IsNaN(a) {
		return
	}
	s.alpha = a
}

func (s *Surface) GlobalAlpha() float64 { return s.alpha }

func (s *Surface) SetFill(f paint.Fill) { s.fill = f }

func (s *Surface) SetStroke(c poster.Color, width float64) {
	s.stroke = c
	s.strokeWidth = width
}

func (s *Surface) FillPath(p *canvas.Path) {
	f := s.fill.WithAlpha(s.alpha)
	if f.IsGradient() {
		s.ctx.SetFillGradient(f.Gradient.Canvas())
	} else {
		s.ctx.SetFillColor(f.Color.Premultiplied())
	}
	s.ctx.SetStrokeColor(transparent)
	s.ctx.DrawPath(0, 0, p)
}

func (s *Surface) StrokePath(p *canvas.Path) {
	s.ctx.SetFillColor(transparent)
	s.ctx.SetStrokeColor(s.stroke.WithAlpha(s.alpha).Premultiplied())
	s.ctx.SetStrokeWidth(s.strokeWidth)
	s.ctx.DrawPath(0, 0, p)
	s.ctx.SetStrokeColor(transparent)
}

func (s *Surface) SetFont(spec string) error {
	f, err := surface.ParseFont(spec)
	if err != nil {
		return err
	}
	family, err := s.lib.resolve(f.Families, s.declared)
	if err != nil {
		return err
	}
	s.font = f
	s.family = family
	return nil
}

func (s *Surface) SetTextAlign(a poster.Align) { s.align = a }

func (s *Surface) SetShadow(c poster.Color, blur float64) {
	s.shadow = c
	s.shadowBlur = blur
}

// face 以当前字体与颜色创建字体面。字号为逻辑单位，创建时换算为 pt。
func (s *Surface) face(col poster.Color) *canvas.FontFace {
	if s.family == nil {
		family, err := s.lib.resolve(s.font.Families, s.declared)
		if err != nil {
			compose.Logger().Warn("加载默认字体失败", "error", err)
			return nil
		}
		s.family = family
	}
	style := canvasStyle(s.family.face(faceKey{weight: s.font.Weight, italic: s.font.Italic}))
	return s.family.family.Face(poster.ToPt(s.font.Size), col.Premultiplied(), style, canvas.FontNormal)
}

func (s *Surface) MeasureText(str string) float64 {
	face := s.face(poster.RGB(0, 0, 0))
	if face == nil {
		return 0
	}
	return face.TextWidth(str)
}

func (s *Surface) FillText(str string, x, y float64) {
	face := s.face(s.fill.WithAlpha(s.alpha).Color)
	if face == nil {
		return
	}
	if s.shadowBlur > 0 && s.shadow.A > 0 {
		s.drawShadow(str, x, y)
	}
	s.ctx.DrawText(x, y, canvas.NewTextLine(face, str, textAlign(s.align)))
}

// drawShadow 把文字单独画到临时画布，栅格化后做高斯模糊，再贴回文字下方。
// 与 2D 上下文一致，sigma 取 shadowBlur 的一半。
func (s *Surface) drawShadow(str string, x, y float64) {
	face := s.face(s.shadow.WithAlpha(s.alpha))
	if face == nil {
		return
	}
	width := face.TextWidth(str)
	metrics := face.Metrics()
	pad := 2 * s.shadowBlur
	left := x
	switch s.align {
	case poster.AlignCenter:
		left = x - width/2
	case poster.AlignRight:
		left = x - width
	}

	tmp := canvas.New(width+2*pad, metrics.Ascent+metrics.Descent+2*pad)
	tctx := canvas.NewContext(tmp)
	tctx.SetCoordSystem(canvas.CartesianIV)
	tctx.DrawText(pad, pad+metrics.Ascent, canvas.NewTextLine(face, str, canvas.Left))

	res := canvas.DPMM(s.dpr)
	img := rasterizer.Draw(tmp, res, canvas.DefaultColorSpace)
	blurred := imaging.Blur(img, s.shadowBlur/2*s.dpr)
	s.ctx.DrawImage(left-pad, y-metrics.Ascent-pad, blurred, res)
}

// DrawImage 把 img 缩放到逻辑尺寸 width×height 后绘制在 (x, y)。
func (s *Surface) DrawImage(img image.Image, x, y, width, height float64) {
	if img == nil || width <= 0 || height <= 0 {
		return
	}
	px := int(math.Round(width * s.dpr))
	py := int(math.Round(height * s.dpr))
	if b := img.Bounds(); b.Dx() != px || b.Dy() != py {
		img = imaging.Resize(img, px, py, imaging.NearestNeighbor)
	}
	s.ctx.DrawImage(x, y, img, canvas.DPMM(s.dpr))
}

// Image 以设备像素比栅格化当前画布，尺寸为 BackingSize(dpr)。
func (s *Surface) Image() image.Image {
	return rasterizer.Draw(s.c, canvas.DPMM(s.dpr), canvas.DefaultColorSpace)
}

func textAlign(a poster.Align) canvas.TextAlign {
	switch a {
	case poster.AlignLeft:
		return canvas.Left
	case poster.AlignRight:
		return canvas.Right
	default:
		return canvas.Center
	}
}

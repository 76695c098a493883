// Package compose paints a poster configuration onto a drawing surface.
//
// Render is a pure function of its inputs: it repaints the whole surface in a
// fixed layer order and keeps no state between calls.
package compose

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/skip2/go-qrcode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ByLCY/posterforge/accent"
	"github.com/ByLCY/posterforge/geom"
	"github.com/ByLCY/posterforge/layout"
	"github.com/ByLCY/posterforge/paint"
	"github.com/ByLCY/posterforge/poster"
	"github.com/ByLCY/posterforge/surface"
)

// 版式比例均相对于逻辑画布宽 W 或高 H。
const (
	paddingRatio = 0.12

	headlineSize    = 0.11
	headlineY       = 0.3
	headlineLeading = 0.12
	headlineSpacing = 1.15
	shadowBlur      = 12.0

	subtitleSize    = 0.035
	subtitleY       = 0.58
	subtitleLeading = 0.05
	subtitleSpacing = 1.4

	dateSize = 0.04
	dateY    = 0.78

	bandY = 0.78
	bandH = 0.22

	ctaY          = 0.84
	ctaH          = 0.08
	ctaRadius     = 24.0
	ctaLabelSize  = 0.036
	ctaLabelShift = 0.014

	qrSide   = 0.09
	qrMargin = 6.0
	qrRadius = 8.0
)

var (
	headlineColor = poster.MustColor("#f8fafc")
	shadowColor   = poster.MustColor("#00000033")
	subtitleColor = poster.MustColor("#e2e8f0")
	bandColor     = poster.MustColor("#ffffff18")
	badgeColor    = poster.MustColor("#0f172a")
	labelColor    = poster.MustColor("#f8fafc")
	quietColor    = poster.MustColor("#ffffff")
)

// Options 控制一次渲染。
type Options struct {
	// DevicePixelRatio 仅影响后备位图尺寸，<= 0 视为 1。
	DevicePixelRatio float64
}

// Rect 是逻辑坐标下的矩形。
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Badge 记录 CTA 胶囊及其文字位置。
type Badge struct {
	Rect
	Radius float64         `json:"radius"`
	Label  layout.TextLine `json:"label"`
}

// Result 是一次合成的排版摘要，可序列化为调试 JSON。
type Result struct {
	Width    float64          `json:"width"`
	Height   float64          `json:"height"`
	DPR      float64          `json:"dpr"`
	Align    poster.Align     `json:"align"`
	Padding  float64          `json:"padding"`
	AnchorX  float64          `json:"anchorX"`
	Gradient string           `json:"gradient"`
	Accent   string           `json:"accent"`
	Font     string           `json:"font"`
	Band     Rect             `json:"band"`
	Headline layout.TextBox   `json:"headline"`
	Subtitle layout.TextBox   `json:"subtitle"`
	Date     *layout.TextLine `json:"date,omitempty"`
	Badge    *Badge           `json:"badge,omitempty"`
	QR       *Rect            `json:"qr,omitempty"`
}

// FontSpec 拼出绘图上下文使用的 font 简写，例如 `900 119px 'Clash Display', 'Go', sans-serif`。
func FontSpec(weight int, size float64, families string) string {
	return fmt.Sprintf("%d %dpx %s", weight, int(math.Round(size)), families)
}

// Render 按固定图层顺序绘制整张海报。
// 唯一的硬错误是绘图上下文不可用，返回的错误满足 errors.Is(err, surface.ErrUnavailable)。
func Render(ctx surface.Context, cfg poster.Config, opts Options) (*Result, error) {
	if ctx == nil {
		return nil, surface.ErrUnavailable
	}
	if l, ok := ctx.(surface.Locker); ok {
		l.Lock()
		defer l.Unlock()
	}

	dpr := poster.NormalizeDPR(opts.DevicePixelRatio)
	if err := ctx.Resize(dpr); err != nil {
		if !errors.Is(err, surface.ErrUnavailable) {
			err = fmt.Errorf("%w: %w", surface.ErrUnavailable, err)
		}
		return nil, fmt.Errorf("重置画布失败: %w", err)
	}
	ctx.Clear()

	w, h := ctx.Size()
	res := resolve(cfg)
	out := &Result{
		Width:    w,
		Height:   h,
		DPR:      dpr,
		Align:    res.Align,
		Gradient: res.Gradient.ID,
		Accent:   res.Accent.ID,
		Font:     res.Font.ID,
	}

	// 背景渐变
	ctx.SetFill(paint.Gradient(paint.Build(res.Gradient, w, h)))
	ctx.FillPath(geom.Rect(0, 0, w, h))

	accent.Draw(ctx, res.Accent.Style, cfg.AccentColor)

	// 底部半透明色带
	out.Band = Rect{X: 0, Y: h * bandY, W: w, H: h * bandH}
	ctx.SetFill(paint.Solid(bandColor))
	ctx.FillPath(geom.Rect(out.Band.X, out.Band.Y, out.Band.W, out.Band.H))

	out.Padding = w * paddingRatio
	out.AnchorX = layout.Anchor(res.Align, w, out.Padding)
	ctx.SetTextAlign(res.Align)
	textWidth := w - 2*out.Padding

	out.Headline = drawHeadline(ctx, cfg, res.Font, out.AnchorX, w, h, textWidth)
	out.Subtitle = drawBlock(ctx, cfg.Subtitle, FontSpec(500, w*subtitleSize, res.Font.Value), subtitleColor,
		out.AnchorX, h*subtitleY, textWidth, w*subtitleLeading, subtitleSpacing)

	if strings.TrimSpace(cfg.Date) != "" {
		spec := FontSpec(700, w*dateSize, res.Font.Value)
		setFont(ctx, spec)
		ctx.SetFill(paint.Solid(cfg.AccentColor))
		ctx.FillText(cfg.Date, out.AnchorX, h*dateY)
		out.Date = &layout.TextLine{Content: cfg.Date, X: out.AnchorX, Y: h * dateY, Width: ctx.MeasureText(cfg.Date)}
	}

	if strings.TrimSpace(cfg.CTA) != "" {
		out.Badge = drawBadge(ctx, cfg.CTA, res, out.Padding, w, h)
	}

	if cfg.QR != "" {
		out.QR = drawQR(ctx, cfg.QR, dpr, out.Padding, w, h)
	}

	Logger().Debug("海报合成完成",
		"gradient", out.Gradient,
		"accent", out.Accent,
		"font", out.Font,
		"align", out.Align,
		"headlineLines", len(out.Headline.Lines),
		"subtitleLines", len(out.Subtitle.Lines),
		"dpr", dpr)
	return out, nil
}

func resolve(cfg poster.Config) poster.Resolved {
	res := cfg.Resolve()
	if !res.GradientFound {
		Logger().Debug("未知渐变预设，使用默认值", "id", cfg.Gradient, "fallback", res.Gradient.ID)
	}
	if !res.AccentFound {
		Logger().Debug("未知装饰预设，使用默认值", "id", cfg.Accent, "fallback", res.Accent.ID)
	}
	if !res.FontFound {
		Logger().Debug("未知字体预设，使用默认值", "id", cfg.Font, "fallback", res.Font.ID)
	}
	return res
}

func drawHeadline(ctx surface.Context, cfg poster.Config, font poster.FontOption, anchorX, w, h, maxWidth float64) layout.TextBox {
	title := cases.Upper(language.Und).String(cfg.Title)
	ctx.SetShadow(shadowColor, shadowBlur)
	defer ctx.SetShadow(poster.Color{}, 0)
	return drawBlock(ctx, title, FontSpec(900, w*headlineSize, font.Value), headlineColor,
		anchorX, h*headlineY, maxWidth, w*headlineLeading, headlineSpacing)
}

func drawBlock(ctx surface.Context, text, spec string, col poster.Color, anchorX, y, maxWidth, leading, spacing float64) layout.TextBox {
	setFont(ctx, spec)
	ctx.SetFill(paint.Solid(col))
	box := layout.WrapText(ctx, text, anchorX, y, maxWidth, leading, spacing)
	box.Font = spec
	return box
}

func drawBadge(ctx surface.Context, label string, res poster.Resolved, padding, w, h float64) *Badge {
	ctaW := w - 2*padding
	b := &Badge{
		Rect:   Rect{X: layout.BoxX(res.Align, w, padding, ctaW), Y: h * ctaY, W: ctaW, H: h * ctaH},
		Radius: ctaRadius,
	}
	ctx.SetFill(paint.Solid(badgeColor))
	ctx.FillPath(geom.RoundedRect(b.X, b.Y, b.W, b.H, b.Radius))

	setFont(ctx, FontSpec(700, w*ctaLabelSize, res.Font.Value))
	ctx.SetFill(paint.Solid(labelColor))
	ctx.SetTextAlign(poster.AlignCenter)
	b.Label = layout.TextLine{
		Content: label,
		X:       b.X + b.W/2,
		Y:       b.Y + b.H/2 + w*ctaLabelShift,
		Width:   ctx.MeasureText(label),
	}
	ctx.FillText(label, b.Label.X, b.Label.Y)
	return b
}

// drawQR 在 CTA 右侧留白处居中放置二维码，编码失败只记录日志。
func drawQR(ctx surface.Context, payload string, dpr, padding, w, h float64) *Rect {
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		Logger().Warn("二维码编码失败，已跳过", "error", err)
		return nil
	}
	q.DisableBorder = true
	side := w * qrSide
	r := &Rect{
		X: w - padding/2 - side/2,
		Y: h*ctaY + h*ctaH/2 - side/2,
		W: side,
		H: side,
	}
	ctx.SetFill(paint.Solid(quietColor))
	ctx.FillPath(geom.RoundedRect(r.X-qrMargin, r.Y-qrMargin, side+2*qrMargin, side+2*qrMargin, qrRadius))
	ctx.DrawImage(q.Image(int(math.Round(side*dpr))), r.X, r.Y, side, side)
	return r
}

func setFont(ctx surface.Context, spec string) {
	if err := ctx.SetFont(spec); err != nil {
		Logger().Warn("字体设置失败，沿用当前字体", "font", spec, "error", err)
	}
}

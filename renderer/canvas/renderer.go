package canvasrenderer

import (
	"fmt"

	"github.com/ByLCY/posterforge/compose"
	"github.com/ByLCY/posterforge/export"
	"github.com/ByLCY/posterforge/poster"
	"github.com/ByLCY/posterforge/renderer"
)

// Renderer renders poster configs to PNG via github.com/tdewolff/canvas.
// 每次渲染使用新的 Surface，内置字体缓存在多次渲染间共享，可并发调用。
type Renderer struct {
	fonts     *fontLibrary
	dpr       float64
	fontPaths bool
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the canvas renderer.
type Options struct {
	BaseDir          string
	Fonts            map[string]Resource // accessible via built-in:<name>
	DevicePixelRatio float64
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// NewRenderer creates a renderer rooted at baseDir for resolving font paths.
func NewRenderer(baseDir string) *Renderer { return NewRendererWithOptions(Options{BaseDir: baseDir}) }

// NewRendererWithOptions creates a renderer with injected resources and optional baseDir.
func NewRendererWithOptions(opts Options) *Renderer {
	return &Renderer{
		fonts:     newFontLibrary(opts.BaseDir, opts.Fonts),
		dpr:       poster.NormalizeDPR(opts.DevicePixelRatio),
		fontPaths: true,
	}
}

// WithDPR 返回共享字体缓存、使用另一设备像素比的渲染器。
func (r *Renderer) WithDPR(dpr float64) *Renderer {
	cp := *r
	cp.dpr = poster.NormalizeDPR(dpr)
	return &cp
}

// WithoutFontPaths 返回只接受 built-in:、gofont: 与 embed: 字体来源的渲染器，
// 用于处理不可信的配置（例如 HTTP 请求）。
func (r *Renderer) WithoutFontPaths() *Renderer {
	cp := *r
	cp.fontPaths = false
	return &cp
}

// NewSurface 创建一个共享本渲染器字体缓存的绘图表面，declared 为额外声明的字体。
func (r *Renderer) NewSurface(declared []poster.FontSource) *Surface {
	return newSurface(r.fonts, declared, r.fontPaths)
}

// Render renders cfg into PNG bytes at the logical 1080×1350 size.
func (r *Renderer) Render(cfg poster.Config) ([]byte, error) {
	data, _, err := r.RenderWithResult(cfg)
	return data, err
}

// RenderWithResult 与 Render 相同，同时返回排版结果。
func (r *Renderer) RenderWithResult(cfg poster.Config) ([]byte, *compose.Result, error) {
	s := r.NewSurface(cfg.Fonts)
	res, err := compose.Render(s, cfg, compose.Options{DevicePixelRatio: r.dpr})
	if err != nil {
		return nil, nil, fmt.Errorf("合成海报失败: %w", err)
	}
	data, err := export.Bytes(s)
	if err != nil {
		return nil, nil, err
	}
	return data, res, nil
}

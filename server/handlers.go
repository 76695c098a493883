package server

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ByLCY/posterforge/binding"
	"github.com/ByLCY/posterforge/compose"
	"github.com/ByLCY/posterforge/dsl"
	"github.com/ByLCY/posterforge/poster"
	canvasrenderer "github.com/ByLCY/posterforge/renderer/canvas"
)

const maxDPR = 4

type handlers struct {
	renderer *canvasrenderer.Renderer
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// presets 返回编辑器需要的全部目录。
func (h *handlers) presets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"gradients": poster.Gradients(),
		"accents":   poster.Accents(),
		"fonts":     poster.Fonts(),
		"swatches":  poster.Swatches,
		"defaults":  poster.DefaultConfig(),
		"size":      gin.H{"width": poster.Width, "height": poster.Height},
	})
}

// renderPoster 接收 JSON 配置，缺省字段取默认值，返回 PNG。
func (h *handlers) renderPoster(c *gin.Context) {
	cfg := poster.DefaultConfig()
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.writePNG(c, cfg)
}

// renderDSL 接收 DSL 文本；query 参数 data 为可选的 JSON 绑定数据。
func (h *handlers) renderDSL(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := binding.Decode([]byte(c.Query("data")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cfg, err := dsl.DecodeString(string(body), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.writePNG(c, cfg)
}

// layoutPoster 返回排版结果 JSON，便于前端叠加调试信息。
func (h *handlers) layoutPoster(c *gin.Context) {
	cfg := poster.DefaultConfig()
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, ok := h.rendererFor(c)
	if !ok {
		return
	}
	_, res, err := r.RenderWithResult(cfg)
	if err != nil {
		compose.Logger().Error("渲染失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handlers) writePNG(c *gin.Context, cfg poster.Config) {
	r, ok := h.rendererFor(c)
	if !ok {
		return
	}
	if err := c.Request.Context().Err(); err != nil {
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}
	b, err := r.Render(cfg)
	if err != nil {
		compose.Logger().Error("渲染失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// rendererFor 按 ?dpr= 选择设备像素比，范围 (0, 4]。
func (h *handlers) rendererFor(c *gin.Context) (*canvasrenderer.Renderer, bool) {
	raw := c.Query("dpr")
	if raw == "" {
		return h.renderer, true
	}
	dpr, err := strconv.ParseFloat(raw, 64)
	if err != nil || dpr <= 0 || dpr > maxDPR {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dpr 必须在 (0, 4] 之间"})
		return nil, false
	}
	return h.renderer.WithDPR(dpr), true
}

// requestLogger 用 compose 的 slog 日志器记录请求。
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		compose.Logger().Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

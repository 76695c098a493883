// Package server exposes the poster renderer over HTTP.
package server

import (
	"github.com/gin-gonic/gin"

	canvasrenderer "github.com/ByLCY/posterforge/renderer/canvas"
)

// New 创建注册好全部路由的 gin 引擎。
func New(r *canvasrenderer.Renderer) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())
	RegisterRoutes(engine, r)
	return engine
}

// RegisterRoutes 在 engine 上注册 /api 路由。请求体中声明的字体不能读取服务器上的文件。
func RegisterRoutes(engine *gin.Engine, r *canvasrenderer.Renderer) {
	h := &handlers{renderer: r.WithoutFontPaths()}
	api := engine.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/presets", h.presets)
		api.POST("/poster", h.renderPoster)
		api.POST("/poster/layout", h.layoutPoster)
		api.POST("/poster/dsl", h.renderDSL)
	}
}

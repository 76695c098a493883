package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/ByLCY/posterforge/binding"
	"github.com/ByLCY/posterforge/compose"
	"github.com/ByLCY/posterforge/dsl"
	"github.com/ByLCY/posterforge/poster"
	canvasrenderer "github.com/ByLCY/posterforge/renderer/canvas"
	"github.com/ByLCY/posterforge/server"
)

func main() {
	input := flag.String("in", "", "海报 DSL 文件路径（为空时使用默认海报）")
	output := flag.String("out", "output/poster.png", "PNG 输出路径")
	debug := flag.String("debug", "", "排版调试 JSON 输出路径")
	dataJSON := flag.String("data", "", "绑定到 DSL 的 JSON 数据")
	dpr := flag.Float64("dpr", 1, "渲染时的设备像素比，输出尺寸始终为 1080×1350")
	serve := flag.String("serve", "", "以 HTTP 服务方式运行的监听地址，例如 :8080")
	verbose := flag.Bool("v", false, "输出调试日志")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	compose.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	baseDir := ""
	if *input != "" {
		baseDir = filepath.Dir(*input)
	}
	r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{BaseDir: baseDir, DevicePixelRatio: *dpr})

	if addr := listenAddr(*serve); addr != "" {
		if err := serveHTTP(addr, r, *verbose); err != nil {
			log.Fatalf("HTTP 服务退出: %v", err)
		}
		return
	}

	inputData, err := binding.Decode([]byte(*dataJSON))
	if err != nil {
		log.Fatalf("解析 data JSON 失败: %v", err)
	}
	if err := run(*input, *output, *debug, inputData, r); err != nil {
		log.Fatalf("生成海报失败: %v", err)
	}
	fmt.Printf("已生成海报：%s\n", *output)
}

// listenAddr 优先使用 -serve，其次是 PORT 环境变量。
func listenAddr(flagAddr string) string {
	if flagAddr != "" {
		return flagAddr
	}
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ""
}

func serveHTTP(addr string, r *canvasrenderer.Renderer, verbose bool) error {
	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	compose.Logger().Info("启动 HTTP 服务", "addr", addr)
	if err := server.New(r).Run(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// run 串联解析、合成与导出。
func run(inputPath, outputPath, debugPath string, data any, r *canvasrenderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}
	cfg, err := loadConfig(inputPath, data)
	if err != nil {
		return err
	}

	pngBytes, result, err := r.RenderWithResult(cfg)
	if err != nil {
		return fmt.Errorf("渲染海报失败: %w", err)
	}

	if debugPath != "" {
		if err := writeDebug(result, debugPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(outputPath, pngBytes, 0o644); err != nil {
		return fmt.Errorf("写入 PNG 文件失败: %w", err)
	}
	return nil
}

func loadConfig(inputPath string, data any) (poster.Config, error) {
	if inputPath == "" {
		cfg := poster.DefaultConfig()
		binding.Apply(&cfg, data)
		return cfg, nil
	}
	return dsl.DecodeFile(inputPath, data)
}

func writeDebug(result *compose.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := compose.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

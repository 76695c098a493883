package renderer

import "github.com/ByLCY/posterforge/poster"

// Renderer 将海报配置渲染为最终图像文件。
// Render 返回编码后的二进制数据（例如 PNG 字节切片）以及可能的错误。
type Renderer interface {
	Render(cfg poster.Config) ([]byte, error)
}

// Package export encodes a rendered poster as a lossless bitmap.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/ByLCY/posterforge/poster"
)

// Source 提供已栅格化的海报，尺寸可以是任意设备像素比下的后备位图。
type Source interface {
	Image() image.Image
}

// Logical 把 img 重采样到 1080×1350 的逻辑尺寸，尺寸相同时原样返回。
func Logical(img image.Image) image.Image {
	w, h := int(poster.Width), int(poster.Height)
	if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
		return img
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// PNG 将 src 以逻辑尺寸编码为 PNG 写入 w。
func PNG(w io.Writer, src Source) error {
	if src == nil {
		return errors.New("导出失败: 没有可导出的画布")
	}
	img := src.Image()
	if img == nil {
		return errors.New("导出失败: 画布为空")
	}
	if err := imaging.Encode(w, Logical(img), imaging.PNG); err != nil {
		return fmt.Errorf("编码 PNG 失败: %w", err)
	}
	return nil
}

// Bytes 返回 src 的 PNG 编码。
func Bytes(src Source) ([]byte, error) {
	var buf bytes.Buffer
	if err := PNG(&buf, src); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

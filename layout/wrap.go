package layout

import (
	"strings"

	"github.com/ByLCY/posterforge/poster"
)

// Wrap 使用贪心算法按空白拆词并折行。
// 候选行 = 当前行 + " " + 单词；候选宽度超过 maxWidth 且当前行非空时提交当前行。
// 单个超宽单词独占一行，不拆分也不截断；maxWidth <= 0 时退化为每行一个单词。
// 空白输入返回 nil。
func Wrap(text string, maxWidth float64, m Measurer) []TextLine {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []TextLine
	current := ""
	currentWidth := 0.0
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		width := m.MeasureText(candidate)
		if width > maxWidth && current != "" {
			lines = append(lines, TextLine{Content: current, Width: currentWidth})
			current = word
			currentWidth = m.MeasureText(word)
			continue
		}
		current = candidate
		currentWidth = width
	}
	if current != "" {
		lines = append(lines, TextLine{Content: current, Width: currentWidth})
	}
	return lines
}

// Place 为每一行计算锚点与基线：第 i 行位于 startY + i·lineHeight·spacing。
func Place(lines []TextLine, anchorX, startY, lineHeight, spacing float64) []TextLine {
	for i := range lines {
		lines[i].X = anchorX
		lines[i].Y = startY + float64(i)*lineHeight*spacing
	}
	return lines
}

// WrapText 折行、定位并逐行绘制。对齐方式由调用方预先设置在绘图上下文上。
func WrapText(p Painter, text string, anchorX, startY, maxWidth, lineHeight, spacing float64) TextBox {
	lines := Place(Wrap(text, maxWidth, p), anchorX, startY, lineHeight, spacing)
	for _, ln := range lines {
		p.FillText(ln.Content, ln.X, ln.Y)
	}
	return TextBox{
		Content:     text,
		AnchorX:     anchorX,
		StartY:      startY,
		MaxWidth:    maxWidth,
		LineHeight:  lineHeight,
		LineSpacing: spacing,
		Lines:       lines,
	}
}

// Anchor 根据对齐方式计算文本锚点横坐标。
func Anchor(align poster.Align, width, padding float64) float64 {
	switch align {
	case poster.AlignLeft:
		return padding
	case poster.AlignRight:
		return width - padding
	default:
		return width / 2
	}
}

// BoxX 计算宽度为 boxWidth 的块在对齐方式下的左边缘。
func BoxX(align poster.Align, width, padding, boxWidth float64) float64 {
	switch align {
	case poster.AlignLeft:
		return padding
	case poster.AlignRight:
		return width - padding - boxWidth
	default:
		return (width - boxWidth) / 2
	}
}

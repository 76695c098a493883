package layout

// Measurer 在当前字体下测量文本宽度（逻辑单位）。surface.Context 与 *canvas.FontFace 都满足该接口。
type Measurer interface {
	MeasureText(s string) float64
}

// Painter 使用当前字体、填充色与对齐方式，在基线 (x, y) 处绘制一行文本。
type Painter interface {
	Measurer
	FillText(s string, x, y float64)
}

package layout

// TextLine 表示排版后的一行文本。X 为对齐锚点，Y 为基线，Width 为测量宽度。
type TextLine struct {
	Content string  `json:"content"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
}

// TextBox 记录一个文本块的排版参数与最终行。
type TextBox struct {
	Content     string     `json:"content"`
	AnchorX     float64    `json:"anchorX"`
	StartY      float64    `json:"startY"`
	MaxWidth    float64    `json:"maxWidth"`
	LineHeight  float64    `json:"lineHeight"`
	LineSpacing float64    `json:"lineSpacing"`
	Font        string     `json:"font,omitempty"`
	Lines       []TextLine `json:"lines"`
}

// Overflows 报告是否有行超出宽度限制（仅当单词本身过宽时出现）。
func (tb TextBox) Overflows() bool {
	for _, ln := range tb.Lines {
		if ln.Width > tb.MaxWidth {
			return true
		}
	}
	return false
}

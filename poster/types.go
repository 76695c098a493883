package poster

// 该文件定义海报配置与预设目录的数据模型，供排版、渲染与调试 JSON 共用。

import "strings"

// Align 表示文本水平对齐方式。
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// ParseAlign 解析对齐方式，未知值回退为 center。
func ParseAlign(s string) Align {
	switch Align(strings.ToLower(strings.TrimSpace(s))) {
	case AlignLeft:
		return AlignLeft
	case AlignRight, "end":
		return AlignRight
	default:
		return AlignCenter
	}
}

// Direction 表示渐变方向。
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
	Diagonal   Direction = "diagonal"
)

// PatternStyle 是装饰图案的封闭取值集合。
type PatternStyle string

const (
	Waves PatternStyle = "waves"
	Rings PatternStyle = "rings"
	Bars  PatternStyle = "bars"
	None  PatternStyle = "none"
)

// GradientPreset 描述一个双色线性渐变背景。Colors[0] 为起点色，Colors[1] 为终点色。
type GradientPreset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Colors    [2]Color  `json:"colors"`
	Direction Direction `json:"direction"`
}

// AccentPreset 描述一种装饰图案。
type AccentPreset struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Style PatternStyle `json:"style"`
}

// FontOption 描述一个可选字体。Value 是字体族列表，原样拼入绘图上下文的 font 简写。
type FontOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// FontSource 声明一个额外注册的字体文件，src 可以是文件路径、gofont:* 或 embed:*。
type FontSource struct {
	Family string `json:"family"`
	Weight int    `json:"weight,omitempty"`
	Src    string `json:"src"`
}

// Config 是一次渲染的全部输入，按值传递，渲染过程只读。
type Config struct {
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	Date        string       `json:"date"`
	CTA         string       `json:"cta"`
	AccentColor Color        `json:"accentColor"`
	Gradient    string       `json:"gradient"`
	Accent      string       `json:"accent"`
	Align       Align        `json:"align"`
	Font        string       `json:"font"`
	QR          string       `json:"qr,omitempty"`
	Fonts       []FontSource `json:"fonts,omitempty"`
}

// Resolved 保存按目录解析后的预设。
type Resolved struct {
	Gradient GradientPreset
	Accent   AccentPreset
	Font     FontOption
	Align    Align

	// 以下标记为 false 表示原始 id 不在目录中，已回退到目录首项。
	GradientFound bool
	AccentFound   bool
	FontFound     bool
}

// DefaultConfig 返回编辑器“重置”后的初始海报。
func DefaultConfig() Config {
	return Config{
		Title:       "Night Pulse Experience",
		Subtitle:    "Immersive audio-visual performance featuring the city's top DJs and digital artists.",
		Date:        "SEP 15 • 8 PM",
		CTA:         "RSVP NOW",
		AccentColor: MustColor("#22d3ee"),
		Gradient:    "dawn",
		Accent:      "waves",
		Align:       AlignCenter,
		Font:        "clash",
	}
}

// Resolve 查找配置引用的预设，未知 id 回退到各目录的第一项。
func (c Config) Resolve() Resolved {
	g, gok := LookupGradient(c.Gradient)
	a, aok := LookupAccent(c.Accent)
	f, fok := LookupFont(c.Font)
	return Resolved{
		Gradient:      g,
		Accent:        a,
		Font:          f,
		Align:         ParseAlign(string(c.Align)),
		GradientFound: gok,
		AccentFound:   aok,
		FontFound:     fok,
	}
}

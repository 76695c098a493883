package dsl

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ByLCY/posterforge/binding"
	"github.com/ByLCY/posterforge/poster"
)

// Decode 把文档转换为海报配置。未出现的键保留 DefaultConfig 的值，未知键忽略；
// 文本字段中的 ${path|default} 用 data 插值。
func Decode(doc *Document, data any) (poster.Config, error) {
	cfg := poster.DefaultConfig()
	if doc == nil {
		return cfg, nil
	}
	for _, st := range doc.Statements {
		switch {
		case st.Font != nil:
			src, err := decodeFont(st.Font)
			if err != nil {
				return poster.Config{}, err
			}
			cfg.Fonts = append(cfg.Fonts, src)
		case st.Assignment != nil:
			if err := assign(&cfg, st.Assignment); err != nil {
				return poster.Config{}, err
			}
		}
	}
	binding.Apply(&cfg, data)
	return cfg, nil
}

// DecodeString 解析并解码 DSL 文本。
func DecodeString(input string, data any) (poster.Config, error) {
	doc, err := ParseString(input)
	if err != nil {
		return poster.Config{}, fmt.Errorf("解析 DSL 失败: %w", err)
	}
	return Decode(doc, data)
}

// DecodeFile 读取并解码 DSL 文件。
func DecodeFile(path string, data any) (poster.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return poster.Config{}, fmt.Errorf("读取 DSL 失败: %w", err)
	}
	defer f.Close()
	doc, err := Parse(f)
	if err != nil {
		return poster.Config{}, fmt.Errorf("解析 DSL 失败: %w", err)
	}
	return Decode(doc, data)
}

func assign(cfg *poster.Config, a *Assignment) error {
	raw := a.Value.Raw()
	switch strings.ToLower(a.Key) {
	case "title":
		cfg.Title = raw
	case "subtitle":
		cfg.Subtitle = raw
	case "date":
		cfg.Date = raw
	case "cta":
		cfg.CTA = raw
	case "qr":
		cfg.QR = raw
	case "accent-color", "accentcolor", "color":
		c, err := poster.ParseColor(raw)
		if err != nil {
			return fmt.Errorf("第 %d 行 %s: %w", a.Pos.Line, a.Key, err)
		}
		cfg.AccentColor = c
	case "gradient":
		cfg.Gradient = raw
	case "accent":
		cfg.Accent = raw
	case "align":
		cfg.Align = poster.ParseAlign(raw)
	case "font":
		cfg.Font = raw
	}
	return nil
}

func decodeFont(decl *FontDecl) (poster.FontSource, error) {
	src := poster.FontSource{Family: string(decl.Family)}
	if decl.Block != nil {
		for _, a := range decl.Block.Assignments {
			switch strings.ToLower(a.Key) {
			case "src":
				src.Src = a.Value.Raw()
			case "weight":
				w, err := parseWeight(a.Value.Raw())
				if err != nil {
					return poster.FontSource{}, fmt.Errorf("第 %d 行 字体 %s: %w", a.Pos.Line, src.Family, err)
				}
				src.Weight = w
			}
		}
	}
	if src.Src == "" {
		return poster.FontSource{}, fmt.Errorf("第 %d 行 字体 %s 缺少 src", decl.Pos.Line, src.Family)
	}
	return src, nil
}

func parseWeight(raw string) (int, error) {
	switch strings.ToLower(raw) {
	case "normal", "regular":
		return 400, nil
	case "medium":
		return 500, nil
	case "bold":
		return 700, nil
	case "black":
		return 900, nil
	}
	w, err := strconv.Atoi(raw)
	if err != nil || w < 1 || w > 1000 {
		return 0, fmt.Errorf("无效的字重 %q", raw)
	}
	return w, nil
}

// Format 把配置写回 DSL 文本，DecodeString(Format(name, cfg), nil) 得到相同配置。
func Format(name string, cfg poster.Config) string {
	if name == "" {
		name = "Poster"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "poster %s v1 {\n", name)
	fmt.Fprintf(&b, "  title: %s\n", strconv.Quote(cfg.Title))
	fmt.Fprintf(&b, "  subtitle: %s\n", strconv.Quote(cfg.Subtitle))
	fmt.Fprintf(&b, "  date: %s\n", strconv.Quote(cfg.Date))
	fmt.Fprintf(&b, "  cta: %s\n", strconv.Quote(cfg.CTA))
	fmt.Fprintf(&b, "  accent-color: %s\n", cfg.AccentColor.Hex())
	fmt.Fprintf(&b, "  gradient: %s\n", strconv.Quote(cfg.Gradient))
	fmt.Fprintf(&b, "  accent: %s\n", strconv.Quote(cfg.Accent))
	fmt.Fprintf(&b, "  align: %s\n", poster.ParseAlign(string(cfg.Align)))
	fmt.Fprintf(&b, "  font: %s\n", strconv.Quote(cfg.Font))
	if cfg.QR != "" {
		fmt.Fprintf(&b, "  qr: %s\n", strconv.Quote(cfg.QR))
	}
	for _, f := range cfg.Fonts {
		fmt.Fprintf(&b, "\n  font %s {\n    src: %s\n", strconv.Quote(f.Family), strconv.Quote(f.Src))
		if f.Weight > 0 {
			fmt.Fprintf(&b, "    weight: %d\n", f.Weight)
		}
		b.WriteString("  }\n")
	}
	b.WriteString("}\n")
	return b.String()
}

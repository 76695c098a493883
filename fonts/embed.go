package fonts

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// Fallback 是任何字体族都无法解析时使用的内置字体族。
const Fallback = "Go"

var goFonts = map[string][]byte{
	"regular":          goregular.TTF,
	"italic":           goitalic.TTF,
	"medium":           gomedium.TTF,
	"medium-italic":    gomediumitalic.TTF,
	"bold":             gobold.TTF,
	"bold-italic":      gobolditalic.TTF,
	"mono":             gomono.TTF,
	"mono-bold":        gomonobold.TTF,
	"smallcaps":        gosmallcaps.TTF,
	"smallcaps-italic": gosmallcapsitalic.TTF,
}

// Face 描述字体族中的一个字重/字形及其来源。
type Face struct {
	Weight int
	Italic bool
	Src    string
}

var builtinFamilies = map[string][]Face{
	"Go": {
		{Weight: 400, Src: "gofont:regular"},
		{Weight: 400, Italic: true, Src: "gofont:italic"},
		{Weight: 500, Src: "gofont:medium"},
		{Weight: 500, Italic: true, Src: "gofont:medium-italic"},
		{Weight: 700, Src: "gofont:bold"},
		{Weight: 700, Italic: true, Src: "gofont:bold-italic"},
	},
	"Go Mono": {
		{Weight: 400, Src: "gofont:mono"},
		{Weight: 700, Src: "gofont:mono-bold"},
	},
	"Go Smallcaps": {
		{Weight: 400, Src: "gofont:smallcaps"},
		{Weight: 400, Italic: true, Src: "gofont:smallcaps-italic"},
	},
}

// 通用字体族名映射到内置字体族。
var generic = map[string]string{
	"sans-serif": "Go",
	"serif":      "Go",
	"system-ui":  "Go",
	"monospace":  "Go Mono",
	"cursive":    "Go Smallcaps",
	"fantasy":    "Go Smallcaps",
}

// Load 返回字体数据。src 形如 "gofont:bold"；"embed:" 前缀与 gofont 等价。
func Load(src string) ([]byte, error) {
	name := strings.TrimPrefix(strings.TrimPrefix(src, "embed:"), "gofont:")
	data, ok := goFonts[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("读取内置字体 %s 失败: 未知字体", src)
	}
	return data, nil
}

// IsBuiltinSrc 报告 src 是否指向内置字体。
func IsBuiltinSrc(src string) bool {
	return strings.HasPrefix(src, "gofont:") || strings.HasPrefix(src, "embed:")
}

// Builtin 查找内置字体族，支持 sans-serif、monospace 等通用名，名称不区分大小写。
func Builtin(family string) (string, []Face, bool) {
	if target, ok := generic[strings.ToLower(family)]; ok {
		family = target
	}
	for name, faces := range builtinFamilies {
		if strings.EqualFold(name, family) {
			return name, faces, true
		}
	}
	return "", nil, false
}

// Families 返回内置字体族名称（已排序）。
func Families() []string {
	names := make([]string, 0, len(builtinFamilies))
	for name := range builtinFamilies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package poster

// 预设目录在进程内只读，顺序有意义：查找失败时回退到第一项。

var gradientPresets = []GradientPreset{
	{ID: "dawn", Name: "Neon Dawn", Colors: [2]Color{MustColor("#341d7d"), MustColor("#f72585")}, Direction: Diagonal},
	{ID: "sunset", Name: "Tropical Sunset", Colors: [2]Color{MustColor("#f97316"), MustColor("#4338ca")}, Direction: Vertical},
	{ID: "mint", Name: "Future Mint", Colors: [2]Color{MustColor("#22d3ee"), MustColor("#0f172a")}, Direction: Horizontal},
	{ID: "rose", Name: "Rose Noir", Colors: [2]Color{MustColor("#111827"), MustColor("#ef4444")}, Direction: Diagonal},
	{ID: "forest", Name: "Aurora Forest", Colors: [2]Color{MustColor("#0f172a"), MustColor("#22c55e")}, Direction: Vertical},
	{ID: "ultra", Name: "Ultra Violet", Colors: [2]Color{MustColor("#1f2937"), MustColor("#8b5cf6")}, Direction: Horizontal},
}

var accentPresets = []AccentPreset{
	{ID: "waves", Name: "Liquid Waves", Style: Waves},
	{ID: "rings", Name: "Holographic Rings", Style: Rings},
	{ID: "bars", Name: "Plasma Bars", Style: Bars},
	{ID: "none", Name: "Minimal", Style: None},
}

var fontOptions = []FontOption{
	{ID: "clash", Label: "Clash Display", Value: "'Clash Display', 'Go', sans-serif"},
	{ID: "inter", Label: "Inter Tight", Value: "'Inter Tight', 'Go', sans-serif"},
	{ID: "borel", Label: "Borel", Value: "'Borel', 'Go Smallcaps', cursive"},
	{ID: "archivo", Label: "Archivo Black", Value: "'Archivo Black', 'Go', sans-serif"},
}

// Swatches 是编辑器提供的快捷强调色。
var Swatches = []Color{
	MustColor("#f97316"), MustColor("#22d3ee"), MustColor("#facc15"), MustColor("#38bdf8"),
	MustColor("#f472b6"), MustColor("#c084fc"), MustColor("#34d399"), MustColor("#f87171"),
}

// Gradients 返回渐变目录的副本。
func Gradients() []GradientPreset { return append([]GradientPreset(nil), gradientPresets...) }

// Accents 返回装饰目录的副本。
func Accents() []AccentPreset { return append([]AccentPreset(nil), accentPresets...) }

// Fonts 返回字体目录的副本。
func Fonts() []FontOption { return append([]FontOption(nil), fontOptions...) }

// LookupGradient 按 id 查找渐变；找不到时返回目录第一项与 false。
func LookupGradient(id string) (GradientPreset, bool) {
	for _, p := range gradientPresets {
		if p.ID == id {
			return p, true
		}
	}
	return gradientPresets[0], false
}

// LookupAccent 按 id 查找装饰；找不到时返回目录第一项与 false。
func LookupAccent(id string) (AccentPreset, bool) {
	for _, p := range accentPresets {
		if p.ID == id {
			return p, true
		}
	}
	return accentPresets[0], false
}

// LookupFont 按 id 查找字体；找不到时返回目录第一项与 false。
func LookupFont(id string) (FontOption, bool) {
	for _, f := range fontOptions {
		if f.ID == id {
			return f, true
		}
	}
	return fontOptions[0], false
}

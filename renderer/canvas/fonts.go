package canvasrenderer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/posterforge/compose"
	"github.com/ByLCY/posterforge/fonts"
	"github.com/ByLCY/posterforge/poster"
)

// fontLibrary 加载并缓存内置字体族，可在多次渲染之间共享。
// 请求声明的字体族只缓存在 declaredSet 中，随单次渲染释放。
type fontLibrary struct {
	baseDir  string
	blobs    map[string][]byte // 通过 built-in:<name> 引用
	blobErrs map[string]error  // Resource.Path 读取失败，使用时报告

	mu       sync.Mutex
	families map[string]*fontFamilyEntry
}

type faceKey struct {
	weight int
	italic bool
}

type fontFamilyEntry struct {
	name   string
	family *canvas.FontFamily
	faces  []faceKey
}

// declaredSet 是单次渲染声明的字体。allowPaths 为 false 时只接受 built-in:、gofont: 与 embed: 来源。
type declaredSet struct {
	fonts      map[string][]poster.FontSource
	families   map[string]*fontFamilyEntry
	allowPaths bool
}

func newDeclaredSet(list []poster.FontSource, allowPaths bool) *declaredSet {
	return &declaredSet{fonts: declaredFonts(list), allowPaths: allowPaths}
}

func newFontLibrary(baseDir string, resources map[string]Resource) *fontLibrary {
	l := &fontLibrary{
		baseDir:  baseDir,
		blobs:    map[string][]byte{},
		blobErrs: map[string]error{},
		families: map[string]*fontFamilyEntry{},
	}
	for name, res := range resources {
		if name == "" {
			continue
		}
		if len(res.Bytes) > 0 {
			l.blobs[name] = res.Bytes
			continue
		}
		if res.Path != "" {
			data, err := os.ReadFile(res.Path)
			switch {
			case err != nil:
				l.blobErrs[name] = fmt.Errorf("读取字体资源 %s 失败: %w", res.Path, err)
				compose.Logger().Warn("读取字体资源失败", "name", name, "path", res.Path, "error", err)
			case len(data) == 0:
				l.blobErrs[name] = fmt.Errorf("字体资源 %s 为空", res.Path)
			default:
				l.blobs[name] = data
			}
		}
	}
	return l
}

// resolve 依次尝试字体族列表：先是本次渲染声明的字体，再是内置字体与通用族名，最后回退到内置 Go 字体。
func (l *fontLibrary) resolve(names []string, declared *declaredSet) (*fontFamilyEntry, error) {
	for _, name := range names {
		if declared != nil {
			if srcs, ok := declared.fonts[strings.ToLower(name)]; ok {
				entry, err := l.declaredFamily(name, srcs, declared)
				if err == nil {
					return entry, nil
				}
				compose.Logger().Warn("加载字体失败，尝试下一个字体族", "family", name, "error", err)
				continue
			}
		}
		if canonical, faces, ok := fonts.Builtin(name); ok {
			return l.builtinFamily(canonical, faces)
		}
	}
	canonical, faces, _ := fonts.Builtin(fonts.Fallback)
	return l.builtinFamily(canonical, faces)
}

func (l *fontLibrary) builtinFamily(name string, faces []fonts.Face) (*fontFamilyEntry, error) {
	key := "builtin|" + name
	l.mu.Lock()
	defer l.mu.Unlock()
	if entry, ok := l.families[key]; ok {
		return entry, nil
	}
	entry := &fontFamilyEntry{name: name, family: canvas.NewFontFamily(name)}
	for _, f := range faces {
		data, err := fonts.Load(f.Src)
		if err != nil {
			return nil, err
		}
		fk := faceKey{weight: f.Weight, italic: f.Italic}
		if err := entry.family.LoadFont(data, 0, canvasStyle(fk)); err != nil {
			return nil, fmt.Errorf("加载内置字体 %s 失败: %w", f.Src, err)
		}
		entry.faces = append(entry.faces, fk)
	}
	l.families[key] = entry
	return entry, nil
}

func (l *fontLibrary) declaredFamily(name string, srcs []poster.FontSource, d *declaredSet) (*fontFamilyEntry, error) {
	key := strings.ToLower(name)
	if entry, ok := d.families[key]; ok {
		return entry, nil
	}
	entry := &fontFamilyEntry{name: name, family: canvas.NewFontFamily(name)}
	var firstErr error
	for _, src := range srcs {
		fk := faceKey{weight: normalizeWeight(src.Weight)}
		data, err := l.loadFontBytes(src, d.allowPaths)
		if err == nil {
			err = entry.family.LoadFont(data, 0, canvasStyle(fk))
		}
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		entry.faces = append(entry.faces, fk)
	}
	if len(entry.faces) == 0 {
		if firstErr == nil {
			firstErr = fmt.Errorf("字体 %s 没有可用的字重", name)
		}
		return nil, firstErr
	}
	if d.families == nil {
		d.families = map[string]*fontFamilyEntry{}
	}
	d.families[key] = entry
	return entry, nil
}

func (l *fontLibrary) loadFontBytes(font poster.FontSource, allowPaths bool) ([]byte, error) {
	if font.Src == "" {
		return nil, fmt.Errorf("字体 %s 缺少 src", font.Family)
	}
	src := font.Src
	if strings.HasPrefix(src, "built-in:") || strings.HasPrefix(src, "builtin:") {
		name := strings.TrimPrefix(strings.TrimPrefix(src, "built-in:"), "builtin:")
		if blob, ok := l.blobs[name]; ok {
			return blob, nil
		}
		if err, ok := l.blobErrs[name]; ok {
			return nil, err
		}
		return nil, fmt.Errorf("找不到内置字体资源 built-in:%s", name)
	}
	if fonts.IsBuiltinSrc(src) {
		return fonts.Load(src)
	}
	if !allowPaths {
		return nil, fmt.Errorf("不允许使用字体路径：%s（请改用 built-in: 或 gofont:）", src)
	}
	path, err := l.fontPath(src)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", src, err)
	}
	return data, nil
}

// fontPath 把相对路径解析到 baseDir 之下，拒绝绝对路径与越出 baseDir 的路径。
func (l *fontLibrary) fontPath(src string) (string, error) {
	if l.baseDir == "" {
		return "", fmt.Errorf("未指定资源目录时不允许使用字体路径：%s（请改用 built-in: 或 gofont:）", src)
	}
	if filepath.IsAbs(src) {
		return "", fmt.Errorf("字体路径必须相对于资源目录：%s", src)
	}
	base, err := filepath.Abs(l.baseDir)
	if err != nil {
		return "", fmt.Errorf("解析资源目录失败: %w", err)
	}
	path := filepath.Join(base, src)
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("字体路径越出资源目录：%s", src)
	}
	return path, nil
}

// face 选择与请求最接近的已加载字重，优先匹配斜体，同距离时取更粗的字重。
func (e *fontFamilyEntry) face(want faceKey) faceKey {
	best := e.faces[0]
	bestScore := -1
	for _, fk := range e.faces {
		score := abs(fk.weight-want.weight) * 2
		if fk.weight < want.weight {
			score++
		}
		if fk.italic != want.italic {
			score += 10000
		}
		if bestScore < 0 || score < bestScore {
			best, bestScore = fk, score
		}
	}
	return best
}

// normalizeWeight 把任意字重量化到 400/500/700/900。
func normalizeWeight(w int) int {
	switch {
	case w <= 0:
		return 400
	case w < 450:
		return 400
	case w < 600:
		return 500
	case w < 800:
		return 700
	default:
		return 900
	}
}

func canvasStyle(fk faceKey) canvas.FontStyle {
	var style canvas.FontStyle
	switch normalizeWeight(fk.weight) {
	case 500:
		style = canvas.FontMedium
	case 700:
		style = canvas.FontBold
	case 900:
		style = canvas.FontBlack
	default:
		style = canvas.FontRegular
	}
	if fk.italic {
		style |= canvas.FontItalic
	}
	return style
}

// declaredFonts 按小写族名归组本次渲染声明的字体。
func declaredFonts(list []poster.FontSource) map[string][]poster.FontSource {
	if len(list) == 0 {
		return nil
	}
	out := make(map[string][]poster.FontSource, len(list))
	for _, f := range list {
		if f.Family == "" {
			continue
		}
		key := strings.ToLower(f.Family)
		out[key] = append(out[key], f)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

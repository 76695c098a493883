package surface

import (
	"fmt"
	"strconv"
	"strings"
)

// Font is a parsed font shorthand such as `900 119px 'Clash Display', sans-serif`.
type Font struct {
	Italic   bool     `json:"italic,omitempty"`
	Weight   int      `json:"weight"`
	Size     float64  `json:"size"`
	Families []string `json:"families"`
}

// DefaultFont mirrors the 2D context default.
var DefaultFont = Font{Weight: 400, Size: 10, Families: []string{"sans-serif"}}

// ParseFont parses `[italic] [weight] <size>px <family>[, <family>...]`.
func ParseFont(spec string) (Font, error) {
	f := Font{Weight: 400}
	rest := strings.TrimSpace(spec)
	for rest != "" {
		token, tail, _ := strings.Cut(rest, " ")
		lower := strings.ToLower(token)
		switch {
		case lower == "italic" || lower == "oblique":
			f.Italic = true
		case lower == "normal":
			f.Weight = 400
		case lower == "bold":
			f.Weight = 700
		case strings.HasSuffix(lower, "px"):
			size, err := strconv.ParseFloat(strings.TrimSuffix(lower, "px"), 64)
			if err != nil || size <= 0 {
				return Font{}, fmt.Errorf("font %q: invalid size %q", spec, token)
			}
			f.Size = size
			f.Families = parseFamilies(tail)
			if len(f.Families) == 0 {
				f.Families = []string{"sans-serif"}
			}
			return f, nil
		default:
			w, err := strconv.Atoi(lower)
			if err != nil || w < 1 || w > 1000 {
				return Font{}, fmt.Errorf("font %q: unexpected token %q", spec, token)
			}
			f.Weight = w
		}
		rest = strings.TrimSpace(tail)
	}
	return Font{}, fmt.Errorf("font %q: missing size", spec)
}

// String formats the font back into shorthand.
func (f Font) String() string {
	var b strings.Builder
	if f.Italic {
		b.WriteString("italic ")
	}
	fmt.Fprintf(&b, "%d %gpx ", f.Weight, f.Size)
	for i, fam := range f.Families {
		if i > 0 {
			b.WriteString(", ")
		}
		if strings.ContainsRune(fam, ' ') {
			b.WriteString("'" + fam + "'")
		} else {
			b.WriteString(fam)
		}
	}
	return b.String()
}

func parseFamilies(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		name := strings.Trim(strings.TrimSpace(part), `'"`)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

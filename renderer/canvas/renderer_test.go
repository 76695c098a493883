package canvasrenderer

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"testing"

	"github.com/ByLCY/posterforge/compose"
	"github.com/ByLCY/posterforge/layout"
	"github.com/ByLCY/posterforge/poster"
	"github.com/ByLCY/posterforge/surface"
)

func newTestSurface(t *testing.T, spec string) *Surface {
	t.Helper()
	s := NewSurface()
	if err := s.Resize(1); err != nil {
		t.Fatalf("resize: %v", err)
	}
	if err := s.SetFont(spec); err != nil {
		t.Fatalf("set font %q: %v", spec, err)
	}
	return s
}

func TestWrapWithRealFont(t *testing.T) {
	s := newTestSurface(t, "400 40px sans-serif")
	limit := 0.0
	for _, w := range []string{"hello", "world", "again"} {
		limit = math.Max(limit, s.MeasureText(w))
	}
	limit++
	lines := layout.Wrap("hello world again", limit, s)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %+v", len(lines), lines)
	}
	for i, ln := range lines {
		if ln.Width-limit > 1e-6 {
			t.Fatalf("line %d width exceeds limit: width=%g limit=%g", i, ln.Width, limit)
		}
	}
}

func TestMeasureScalesWithFontSize(t *testing.T) {
	small := newTestSurface(t, "400 20px sans-serif").MeasureText("POSTER")
	large := newTestSurface(t, "400 40px sans-serif").MeasureText("POSTER")
	if small <= 0 {
		t.Fatalf("invalid width %g", small)
	}
	if diff := math.Abs(large/small - 2); diff > 0.01 {
		t.Fatalf("width should scale with size: %g vs %g", small, large)
	}
}

func TestUnknownFamiliesFallBackToBuiltin(t *testing.T) {
	for _, spec := range []string{
		"900 119px 'Clash Display', 'Go', sans-serif",
		"700 38px 'Borel', 'Go Smallcaps', cursive",
		"500 20px 'Nowhere Sans'",
	} {
		s := newTestSurface(t, spec)
		if s.family == nil || s.MeasureText("A") <= 0 {
			t.Fatalf("%q: no usable font", spec)
		}
	}
	s := newTestSurface(t, "400 20px 'Borel', cursive")
	if s.family.name != "Go Smallcaps" {
		t.Fatalf("cursive should map to Go Smallcaps, got %s", s.family.name)
	}
}

func TestDeclaredFontsAreRegistered(t *testing.T) {
	r := NewRenderer("")
	s := r.NewSurface([]poster.FontSource{
		{Family: "Brand", Weight: 900, Src: "gofont:bold"},
		{Family: "Broken", Src: "missing/font.ttf"},
	})
	if err := s.Resize(1); err != nil {
		t.Fatalf("resize: %v", err)
	}
	if err := s.SetFont("900 20px Brand"); err != nil {
		t.Fatalf("set font: %v", err)
	}
	if s.family.name != "Brand" {
		t.Fatalf("expected declared family, got %s", s.family.name)
	}
	if err := s.SetFont("400 20px Broken, sans-serif"); err != nil {
		t.Fatalf("set font: %v", err)
	}
	if s.family.name != "Go" {
		t.Fatalf("unloadable family should fall through to Go, got %s", s.family.name)
	}
}

func TestNearestWeightIsSelected(t *testing.T) {
	entry := &fontFamilyEntry{faces: []faceKey{{weight: 400}, {weight: 500}, {weight: 700}, {weight: 400, italic: true}}}
	cases := []struct {
		want faceKey
		got  faceKey
	}{
		{faceKey{weight: 900}, faceKey{weight: 700}},
		{faceKey{weight: 600}, faceKey{weight: 700}},
		{faceKey{weight: 300}, faceKey{weight: 400}},
		{faceKey{weight: 700, italic: true}, faceKey{weight: 400, italic: true}},
	}
	for _, c := range cases {
		if got := entry.face(c.want); got != c.got {
			t.Fatalf("face(%+v) = %+v, want %+v", c.want, got, c.got)
		}
	}
}

func TestRenderProducesLogicalPNG(t *testing.T) {
	for _, dpr := range []float64{1, 2} {
		r := NewRendererWithOptions(Options{DevicePixelRatio: dpr})
		data, err := r.Render(poster.DefaultConfig())
		if err != nil {
			t.Fatalf("dpr %g: render failed: %v", dpr, err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("dpr %g: decode: %v", dpr, err)
		}
		if b := img.Bounds(); b.Dx() != 1080 || b.Dy() != 1350 {
			t.Fatalf("dpr %g: expected 1080x1350, got %dx%d", dpr, b.Dx(), b.Dy())
		}
		if _, _, _, a := img.At(5, 5).RGBA(); a>>8 != 0xff {
			t.Fatalf("dpr %g: background should be opaque, alpha=%d", dpr, a>>8)
		}
	}
}

func TestRenderIsByteIdentical(t *testing.T) {
	r := NewRenderer("")
	cfg := poster.DefaultConfig()
	cfg.Accent = "rings"
	cfg.QR = "https://example.com"
	a, err := r.Render(cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b, err := r.Render(cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("two renders of the same config differ")
	}
}

func TestUnknownGradientRendersLikeFirstPreset(t *testing.T) {
	r := NewRenderer("")
	cfg := poster.DefaultConfig()
	cfg.Gradient = "not-a-gradient"
	a, err := r.Render(cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	cfg.Gradient = poster.Gradients()[0].ID
	b, err := r.Render(cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("unknown gradient should render exactly like the first preset")
	}
}

func TestSurfaceAlphaRestoredAfterRender(t *testing.T) {
	s := NewSurface()
	cfg := poster.DefaultConfig()
	cfg.Accent = "rings"
	if _, err := compose.Render(s, cfg, compose.Options{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if s.GlobalAlpha() != 1 {
		t.Fatalf("global alpha = %g", s.GlobalAlpha())
	}
}

func TestZeroSurfaceIsUnavailable(t *testing.T) {
	_, err := compose.Render(&Surface{}, poster.DefaultConfig(), compose.Options{})
	if !errors.Is(err, surface.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

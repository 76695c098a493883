package dsl_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ByLCY/posterforge/dsl"
	"github.com/ByLCY/posterforge/poster"
)

const sampleDSL = `
// 夜场活动海报
poster NightPulse v1 {
  title: "${event.name|Night Pulse} Experience"
  subtitle: "Live in ${event.city}"
  date: "SEP 15 • 8 PM"
  cta: "RSVP NOW"
  accent-color: #f472b6   # 粉色
  gradient: sunset
  accent: rings; align: left
  font: archivo
  qr: "https://example.com/rsvp"
  unknown-key: whatever

  /* 品牌字体 */
  font "Archivo Black" {
    src: "gofont:bold"
    weight: 900
  }
}
`

func TestParseDocument(t *testing.T) {
	doc, err := dsl.ParseString(sampleDSL)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if doc.Name != "NightPulse" {
		t.Fatalf("expected document name NightPulse, got %s", doc.Name)
	}
	if doc.Version != "v1" {
		t.Fatalf("expected version v1, got %s", doc.Version)
	}
	if len(doc.Statements) != 12 {
		t.Fatalf("expected 12 statements, got %d", len(doc.Statements))
	}

	title := doc.Statements[0].Assignment
	if title == nil || title.Key != "title" {
		t.Fatalf("expected title assignment, got %+v", doc.Statements[0])
	}
	if got := title.Value.Raw(); got != "${event.name|Night Pulse} Experience" {
		t.Fatalf("unexpected title %q", got)
	}

	color := doc.Statements[4].Assignment
	if color == nil || color.Value.Color == nil || *color.Value.Color != "#f472b6" {
		t.Fatalf("expected color literal, got %+v", doc.Statements[4])
	}

	fontOpt := doc.Statements[8].Assignment
	if fontOpt == nil || fontOpt.Key != "font" || fontOpt.Value.Raw() != "archivo" {
		t.Fatalf("expected font assignment, got %+v", doc.Statements[8])
	}

	decl := doc.Statements[11].Font
	if decl == nil || string(decl.Family) != "Archivo Black" {
		t.Fatalf("expected font declaration, got %+v", doc.Statements[11])
	}
	if len(decl.Block.Assignments) != 2 {
		t.Fatalf("expected 2 font properties, got %d", len(decl.Block.Assignments))
	}
}

func TestDecodeIntoConfig(t *testing.T) {
	data := map[string]any{"event": map[string]any{"city": "Berlin"}}
	cfg, err := dsl.DecodeString(sampleDSL, data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := poster.Config{
		Title:       "Night Pulse Experience",
		Subtitle:    "Live in Berlin",
		Date:        "SEP 15 • 8 PM",
		CTA:         "RSVP NOW",
		AccentColor: poster.MustColor("#f472b6"),
		Gradient:    "sunset",
		Accent:      "rings",
		Align:       poster.AlignLeft,
		Font:        "archivo",
		QR:          "https://example.com/rsvp",
		Fonts:       []poster.FontSource{{Family: "Archivo Black", Weight: 900, Src: "gofont:bold"}},
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("decoded config mismatch:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestMissingKeysKeepDefaults(t *testing.T) {
	cfg, err := dsl.DecodeString("poster Minimal v1 {\n  title: \"Only a title\"\n}\n", nil)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	def := poster.DefaultConfig()
	def.Title = "Only a title"
	if !reflect.DeepEqual(cfg, def) {
		t.Fatalf("expected defaults for missing keys, got %+v", cfg)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	cfg := poster.DefaultConfig()
	cfg.Align = poster.AlignRight
	cfg.AccentColor = poster.MustColor("#ffffff22")
	cfg.QR = "hello"
	cfg.Subtitle = `quoted "text" here`
	cfg.Fonts = []poster.FontSource{{Family: "Clash Display", Weight: 700, Src: "fonts/clash.ttf"}}

	back, err := dsl.DecodeString(dsl.Format("RoundTrip", cfg), nil)
	if err != nil {
		t.Fatalf("decode formatted dsl: %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", back, cfg)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"bad color":    "poster P v1 {\n  accent-color: \"nope\"\n}\n",
		"missing src":  "poster P v1 {\n  font \"X\" { weight: 700 }\n}\n",
		"bad weight":   "poster P v1 {\n  font \"X\" { src: \"gofont:bold\" weight: heavy }\n}\n",
		"syntax error": "poster P v1 {\n  title \"no colon\"\n}\n",
	}
	for name, input := range cases {
		if _, err := dsl.DecodeString(input, nil); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poster.pf")
	if err := os.WriteFile(path, []byte(sampleDSL), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := dsl.DecodeFile(path, nil)
	if err != nil {
		t.Fatalf("decode file: %v", err)
	}
	if !strings.HasPrefix(cfg.Title, "Night Pulse") || cfg.Subtitle != "Live in ${event.city}" {
		t.Fatalf("unexpected interpolation without data: %q / %q", cfg.Title, cfg.Subtitle)
	}
	if _, err := dsl.DecodeFile(filepath.Join(t.TempDir(), "missing.pf"), nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

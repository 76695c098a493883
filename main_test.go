package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	canvasrenderer "github.com/ByLCY/posterforge/renderer/canvas"
)

func TestRunWritesPNGAndDebugJSON(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out", "poster.png")
	debug := filepath.Join(dir, "debug", "layout.json")
	data := map[string]any{"event": map[string]any{"name": "Night Pulse", "city": "Berlin"}}

	r := canvasrenderer.NewRenderer("examples")
	if err := run("examples/night-pulse.poster", out, debug, data, r); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	pngBytes, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read png: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1080 || b.Dy() != 1350 {
		t.Fatalf("unexpected size %dx%d", b.Dx(), b.Dy())
	}

	raw, err := os.ReadFile(debug)
	if err != nil {
		t.Fatalf("read debug json: %v", err)
	}
	var res struct {
		Headline struct {
			Content string `json:"content"`
		} `json:"headline"`
		QR *struct{} `json:"qr"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		t.Fatalf("decode debug json: %v", err)
	}
	if res.Headline.Content != "NIGHT PULSE EXPERIENCE" {
		t.Fatalf("unexpected headline %q", res.Headline.Content)
	}
	if res.QR != nil {
		t.Fatalf("empty qr binding should not draw a code")
	}
}

func TestRunWithoutInputUsesDefaults(t *testing.T) {
	out := filepath.Join(t.TempDir(), "poster.png")
	if err := run("", out, "", nil, canvasrenderer.NewRenderer("")); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestRunRejectsNilRenderer(t *testing.T) {
	if err := run("", "x.png", "", nil, nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func TestListenAddr(t *testing.T) {
	t.Setenv("PORT", "9090")
	if got := listenAddr(":7000"); got != ":7000" {
		t.Fatalf("flag should win, got %q", got)
	}
	if got := listenAddr(""); got != ":9090" {
		t.Fatalf("expected PORT fallback, got %q", got)
	}
	t.Setenv("PORT", "")
	if got := listenAddr(""); got != "" {
		t.Fatalf("expected no address, got %q", got)
	}
}

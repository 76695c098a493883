package binding

import (
	"testing"

	"github.com/ByLCY/posterforge/poster"
)

func testData(t *testing.T) any {
	t.Helper()
	data, err := Decode([]byte(`{
		"event": {"name": "Night Pulse", "city": "Berlin", "year": 2025, "live": true},
		"artists": [{"name": "Ayla"}, {"name": "Kiro"}],
		"tags": ["techno", "visuals"]
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return data
}

func TestInterpolatePaths(t *testing.T) {
	data := testData(t)
	cases := map[string]string{
		"${event.name} ${event.year}": "Night Pulse 2025",
		"with ${artists[1].name}":     "with Kiro",
		"${tags[0]}/${ event.city }":  "techno/Berlin",
		"live=${event.live}":          "live=true",
		"${event.missing}":            "${event.missing}",
		"${event.missing|TBA}":        "TBA",
		"${artists[9].name|someone}":  "someone",
		"${event.city|ignored}":       "Berlin",
		"${nothing|}":                 "",
		"no placeholders":             "no placeholders",
	}
	for in, want := range cases {
		if got := Interpolate(in, data); got != want {
			t.Fatalf("Interpolate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInterpolateWithoutData(t *testing.T) {
	if got := Interpolate("${a.b}", nil); got != "${a.b}" {
		t.Fatalf("expected placeholder to be kept, got %q", got)
	}
	if got := Interpolate("${a.b|fallback}", nil); got != "fallback" {
		t.Fatalf("expected default without data, got %q", got)
	}
}

func TestApplyTouchesTextFields(t *testing.T) {
	cfg := poster.DefaultConfig()
	cfg.Title = "${event.name}"
	cfg.Subtitle = "Live in ${event.city}"
	cfg.Date = "${event.date|SEP 15}"
	cfg.CTA = "RSVP"
	cfg.Gradient = "${event.name}"
	Apply(&cfg, testData(t))
	if cfg.Title != "Night Pulse" || cfg.Subtitle != "Live in Berlin" || cfg.Date != "SEP 15" || cfg.CTA != "RSVP" {
		t.Fatalf("unexpected config after apply: %+v", cfg)
	}
	if cfg.Gradient != "${event.name}" {
		t.Fatalf("preset ids must not be interpolated, got %q", cfg.Gradient)
	}
	Apply(nil, nil)
}

func TestDecodeErrors(t *testing.T) {
	if data, err := Decode([]byte("  ")); err != nil || data != nil {
		t.Fatalf("blank input should decode to nil, got %v, %v", data, err)
	}
	if _, err := Decode([]byte("{")); err == nil {
		t.Fatalf("expected error for malformed json")
	}
}

package geom

import (
	"math"
	"testing"
)

func TestClampRadius(t *testing.T) {
	cases := []struct {
		r, w, h, want float64
	}{
		{24, 820, 108, 24},
		{18, 108, 877, 18},
		{50, 20, 200, 10},
		{50, 200, 6, 3},
		{-4, 100, 100, 0},
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		if got := ClampRadius(c.r, c.w, c.h); got != c.want {
			t.Fatalf("ClampRadius(%g, %g, %g) = %g, want %g", c.r, c.w, c.h, got, c.want)
		}
	}
}

func TestPathsAreNonEmpty(t *testing.T) {
	if RoundedRect(0, 0, 100, 40, 24).Empty() {
		t.Fatalf("rounded rect path is empty")
	}
	if RoundedRect(10, 10, 2, 2, 18).Empty() {
		t.Fatalf("tiny rounded rect path is empty")
	}
	if Rect(0, 0, 1080, 1350).Empty() {
		t.Fatalf("rect path is empty")
	}
	if Circle(810, 405, 216).Empty() {
		t.Fatalf("circle path is empty")
	}
}

func TestRoundedRectStaysInsideRect(t *testing.T) {
	cases := []struct {
		name          string
		x, y, w, h, r float64
		wantRadius    float64
	}{
		{"badge", 129.6, 1134, 820.8, 108, 24, 24},
		{"thin", 10, 10, 200, 6, 18, 3},
		{"narrow", 40, 20, 8, 300, 18, 4},
	}
	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
	for _, c := range cases {
		p := RoundedRect(c.x, c.y, c.w, c.h, c.r)
		b := p.Bounds()
		if !near(b.X0, c.x) || !near(b.Y0, c.y) || !near(b.X1, c.x+c.w) || !near(b.Y1, c.y+c.h) {
			t.Fatalf("%s: bounds = %+v, want (%g,%g)-(%g,%g)", c.name, b, c.x, c.y, c.x+c.w, c.y+c.h)
		}
		start := p.Coords()[0]
		if !near(start.X, c.x+c.wantRadius) || !near(start.Y, c.y) {
			t.Fatalf("%s: path starts at %v, want clamped radius %g", c.name, start, c.wantRadius)
		}
	}
}

func TestCircleBounds(t *testing.T) {
	b := Circle(810, 405, 216).Bounds()
	if math.Abs(b.X0-594) > 1e-6 || math.Abs(b.X1-1026) > 1e-6 || math.Abs(b.Y0-189) > 1e-6 || math.Abs(b.Y1-621) > 1e-6 {
		t.Fatalf("unexpected circle bounds %+v", b)
	}
}

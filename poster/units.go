package poster

import "math"

// Logical canvas. All drawing coordinates live in this space; the device pixel
// ratio only affects the size of the rasterized backing store.
const (
	Width  = 1080.0
	Height = 1350.0
	Ratio  = Height / Width
)

// One logical unit is one canvas-library length unit (mm). Font faces are
// created in points, so sizes cross this boundary once.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// ToPt converts a logical length to points.
func ToPt(units float64) float64 { return units * MmToPt }

// ToUnits converts points to logical units.
func ToUnits(pt float64) float64 { return pt * PtToMm }

// NormalizeDPR maps non-finite or non-positive ratios to 1.
func NormalizeDPR(dpr float64) float64 {
	if dpr <= 0 || math.IsNaN(dpr) || math.IsInf(dpr, 0) {
		return 1
	}
	return dpr
}

// BackingSize returns the pixel size of the backing store for a ratio.
func BackingSize(dpr float64) (int, int) {
	dpr = NormalizeDPR(dpr)
	return int(math.Round(Width * dpr)), int(math.Round(Height * dpr))
}

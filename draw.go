package piechart

// softening is the width in pixels of the band near a shape's edge where
// coverage is interpolated to approximate anti-aliasing.
const softening = 2.0

// coverage255 converts an edge penetration depth (distance inward from the
// shape's boundary) into 0..255 coverage across the softening band.
func coverage255(depth float64) uint8 {
	t := depth / softening
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 255
	}
	return uint8(t*255 + 0.5)
}

// clampInt restricts v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

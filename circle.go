package piechart

import (
	"math"

	"github.com/toehead2001/pdn-pie-chart-legacy/geom"
)

// FillCircle fills a circle with anti-aliased edges.
//
// Each scanline is walked inward from its left and right crossings
// independently: pixels outside the radius are skipped, pixels within the
// softening band get interpolated coverage, and the walk stops at the first
// fully interior pixel — a circle's row coverage is convex, so everything
// between the two stop points is solid and filled in bulk.
func (s *Surface) FillCircle(c geom.Circle, col Color, mode BlendMode) {
	yMin := clampInt(int(math.Ceil(c.Center.Y-c.Radius)), 0, s.height-1)
	yMax := clampInt(int(math.Floor(c.Center.Y+c.Radius)), 0, s.height-1)

	for y := yMin; y <= yMax; y++ {
		fy := float64(y)
		x0, x1, ok := c.IntersectHLine(fy)
		if !ok {
			continue
		}
		left := clampInt(int(math.Ceil(x0)), 0, s.width-1)
		right := clampInt(int(math.Floor(x1)), 0, s.width-1)
		if left > right {
			continue
		}

		lx := left
		for ; lx <= right; lx++ {
			d := c.DistanceFromCenter(geom.V2(float64(lx), fy))
			if d > c.Radius {
				continue
			}
			if d <= c.Radius-softening {
				break
			}
			s.blendPixel(lx, y, col, coverage255(c.Radius-d), mode)
		}

		rx := right
		for ; rx >= lx; rx-- {
			d := c.DistanceFromCenter(geom.V2(float64(rx), fy))
			if d > c.Radius {
				continue
			}
			if d <= c.Radius-softening {
				break
			}
			s.blendPixel(rx, y, col, coverage255(c.Radius-d), mode)
		}

		if lx <= rx {
			s.fillHSpan(lx, rx, y, col, mode)
		}
	}
}

// FrameCircle draws an anti-aliased ring of the given thickness centered on
// the circle's perimeter: the band between the concentric circles at
// radius ± thickness/2.
//
// A row has one continuous x-range when the inner circle is absent on it,
// or two ranges around the inner hole. Every candidate pixel is tested
// against both radii with independent softening on each edge; pixels beyond
// the outer radius or inside the inner one are skipped outright.
func (s *Surface) FrameCircle(c geom.Circle, thickness float64, col Color, mode BlendMode) {
	outerR := c.Radius + thickness/2
	innerR := c.Radius - thickness/2
	if innerR <= 0 {
		// The band engulfs the center; the ring is a solid disc.
		s.FillCircle(geom.Circle{Center: c.Center, Radius: outerR}, col, mode)
		return
	}

	outer := geom.Circle{Center: c.Center, Radius: outerR}
	inner := geom.Circle{Center: c.Center, Radius: innerR}

	yMin := clampInt(int(math.Ceil(c.Center.Y-outerR)), 0, s.height-1)
	yMax := clampInt(int(math.Floor(c.Center.Y+outerR)), 0, s.height-1)

	for y := yMin; y <= yMax; y++ {
		fy := float64(y)
		ox0, ox1, ok := outer.IntersectHLine(fy)
		if !ok {
			continue
		}

		var ranges [2][2]float64
		n := 1
		ranges[0] = [2]float64{ox0, ox1}
		if ix0, ix1, ok := inner.IntersectHLine(fy); ok {
			ranges[0] = [2]float64{ox0, ix0}
			ranges[1] = [2]float64{ix1, ox1}
			n = 2
		}

		prevRight := -1
		for r := 0; r < n; r++ {
			left := clampInt(int(math.Floor(ranges[r][0])), 0, s.width-1)
			right := clampInt(int(math.Ceil(ranges[r][1])), 0, s.width-1)
			if left <= prevRight {
				// A nearly tangent inner circle can make the two ranges
				// meet; never visit a pixel twice.
				left = prevRight + 1
			}
			prevRight = right
			for x := left; x <= right; x++ {
				d := c.DistanceFromCenter(geom.V2(float64(x), fy))
				if d > outerR || d < innerR {
					continue
				}
				depth := math.Min(outerR-d, d-innerR)
				s.blendPixel(x, y, col, coverage255(depth), mode)
			}
		}
	}
}

package piechart

import (
	"math"

	"github.com/toehead2001/pdn-pie-chart-legacy/geom"
)

// DrawArc strokes a circular arc with the given line thickness.
//
// The stroke band lies between the circles at radius ± thickness/2; when
// the thickness engulfs the center the band degenerates to a solid disc of
// the outer radius. Within each row's candidate ranges every pixel is
// tested by its true distance to the swept arc, so the round stroke ends at
// the arc endpoints are anti-aliased by the same rule as its sides. The
// coverage computed from the softening band scales the color's own alpha,
// so a translucent arc color still anti-aliases correctly.
func (s *Surface) DrawArc(a geom.Arc, thickness float64, col Color, mode BlendMode) {
	halfT := thickness / 2
	if halfT <= 0 {
		return
	}

	outerR := a.Circle.Radius + halfT
	innerR := a.Circle.Radius - halfT
	outer := geom.Circle{Center: a.Circle.Center, Radius: outerR}

	minX, minY, maxX, maxY := a.Bounds()
	yMin := clampInt(int(math.Ceil(minY-halfT)), 0, s.height-1)
	yMax := clampInt(int(math.Floor(maxY+halfT)), 0, s.height-1)
	xLo := minX - halfT
	xHi := maxX + halfT

	for y := yMin; y <= yMax; y++ {
		fy := float64(y)
		ox0, ox1, ok := outer.IntersectHLine(fy)
		if !ok {
			continue
		}

		var ranges [2][2]float64
		n := 1
		ranges[0] = [2]float64{ox0, ox1}
		if innerR > 0 {
			inner := geom.Circle{Center: a.Circle.Center, Radius: innerR}
			if ix0, ix1, ok := inner.IntersectHLine(fy); ok {
				ranges[0] = [2]float64{ox0, ix0}
				ranges[1] = [2]float64{ix1, ox1}
				n = 2
			}
		}

		prevRight := -1
		for r := 0; r < n; r++ {
			left := clampInt(int(math.Floor(math.Max(ranges[r][0], xLo))), 0, s.width-1)
			right := clampInt(int(math.Ceil(math.Min(ranges[r][1], xHi))), 0, s.width-1)
			if left <= prevRight {
				left = prevRight + 1
			}
			prevRight = right
			for x := left; x <= right; x++ {
				d := a.DistanceTo(geom.V2(float64(x), fy))
				if d > halfT {
					continue
				}
				s.blendPixel(x, y, col, coverage255(halfT-d), mode)
			}
		}
	}
}

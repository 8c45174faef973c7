package piechart

import (
	"math"
	"sort"

	"github.com/toehead2001/pdn-pie-chart-legacy/geom"
)

// FillStadium fills a single capsule with anti-aliased edges.
func (s *Surface) FillStadium(st geom.Stadium, col Color, mode BlendMode) {
	s.FillStadiums([]geom.Stadium{st}, col, mode)
}

// FillStadiums fills the union of the given capsules, blending each covered
// pixel exactly once even where shapes overlap.
//
// Per scanline, every stadium's min/max crossings become enter/exit events;
// a sorted sweep with an in/out counter merges them into disjoint spans.
// A row where the counter reaches two is "complex": some pixel is covered
// by more than one stadium, so the interior fast path (stop walking once
// fully inside, bulk-fill the middle) is disabled and every pixel of the
// span is blended explicitly. On simple rows the fast path is safe because
// each span is covered by a single convex shape at a time.
func (s *Surface) FillStadiums(stadiums []geom.Stadium, col Color, mode BlendMode) {
	if len(stadiums) == 0 {
		return
	}

	yLo := math.Inf(1)
	yHi := math.Inf(-1)
	for _, st := range stadiums {
		_, minY, _, maxY := st.Bounds()
		yLo = math.Min(yLo, minY)
		yHi = math.Max(yHi, maxY)
	}
	yMin := clampInt(int(math.Ceil(yLo)), 0, s.height-1)
	yMax := clampInt(int(math.Floor(yHi)), 0, s.height-1)

	mins := make([]float64, 0, len(stadiums))
	maxes := make([]float64, 0, len(stadiums))
	spans := make([][2]float64, 0, len(stadiums))

	for y := yMin; y <= yMax; y++ {
		fy := float64(y)

		mins = mins[:0]
		maxes = maxes[:0]
		for _, st := range stadiums {
			if x0, x1, ok := st.IntersectHLine(fy); ok {
				mins = append(mins, x0)
				maxes = append(maxes, x1)
			}
		}
		if len(mins) == 0 {
			continue
		}
		sort.Float64s(mins)
		sort.Float64s(maxes)

		// Merge enter/exit events into disjoint spans. The complex flag is
		// decided for the whole row before any pixel is touched.
		spans = spans[:0]
		complexRow := false
		count := 0
		var spanStart float64
		i, j := 0, 0
		for i < len(mins) {
			if mins[i] <= maxes[j] {
				if count == 0 {
					spanStart = mins[i]
				}
				count++
				if count >= 2 {
					complexRow = true
				}
				i++
			} else {
				count--
				if count == 0 {
					spans = append(spans, [2]float64{spanStart, maxes[j]})
				}
				j++
			}
		}
		for ; j < len(maxes); j++ {
			count--
			if count == 0 {
				spans = append(spans, [2]float64{spanStart, maxes[j]})
			}
		}

		for _, span := range spans {
			s.fillStadiumSpan(y, span[0], span[1], stadiums, col, mode, complexRow)
		}
	}
}

// stadiumDepth returns how far p sits inside the union: the maximum over
// all stadiums of (radius − distance to that stadium's axis). Non-positive
// means outside every shape.
func stadiumDepth(stadiums []geom.Stadium, p geom.Vec2) float64 {
	best := math.Inf(-1)
	for _, st := range stadiums {
		if d := st.Radius - st.Axis().DistanceTo(p); d > best {
			best = d
		}
	}
	return best
}

// fillStadiumSpan rasterizes one merged span of a scanline.
func (s *Surface) fillStadiumSpan(y int, sx, ex float64, stadiums []geom.Stadium, col Color, mode BlendMode, complexRow bool) {
	fy := float64(y)
	left := clampInt(int(math.Ceil(sx)), 0, s.width-1)
	right := clampInt(int(math.Floor(ex)), 0, s.width-1)
	if left > right {
		return
	}

	lx := left
	for ; lx <= right; lx++ {
		depth := stadiumDepth(stadiums, geom.V2(float64(lx), fy))
		if depth <= 0 {
			continue
		}
		if depth >= softening {
			if !complexRow {
				break
			}
			// Overlapping coverage: blend explicitly rather than assuming
			// this pixel belongs to a single shape.
			s.blendPixel(lx, y, col, 255, mode)
			continue
		}
		s.blendPixel(lx, y, col, coverage255(depth), mode)
	}
	if complexRow {
		return
	}

	rx := right
	for ; rx >= lx; rx-- {
		depth := stadiumDepth(stadiums, geom.V2(float64(rx), fy))
		if depth <= 0 {
			continue
		}
		if depth >= softening {
			break
		}
		s.blendPixel(rx, y, col, coverage255(depth), mode)
	}

	if lx <= rx {
		s.fillHSpan(lx, rx, y, col, mode)
	}
}

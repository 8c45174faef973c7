package piechart

import (
	"errors"
	"fmt"
	"math"

	"github.com/toehead2001/pdn-pie-chart-legacy/geom"
)

// Pie chart validation errors. They are reported before any pixel of the
// destination is touched.
var (
	// ErrNoSections reports a chart with an empty section list.
	ErrNoSections = errors.New("piechart: chart needs at least one section")
	// ErrNonPositiveValue reports a section whose value is zero, negative,
	// or NaN.
	ErrNonPositiveValue = errors.New("piechart: section value must be positive")
	// ErrChartTooSmall reports a destination too small to hold the chart
	// circle and its margin.
	ErrChartTooSmall = errors.New("piechart: surface too small for chart")
)

// Section is one slice of a pie chart. The section order is significant:
// slices are laid out in order of increasing counter-clockwise angle.
type Section struct {
	// Value is the section's share of the chart; it must be positive.
	// Shares are relative: a section's sweep is 2π·value/sum(values).
	Value float64
	// Color fills the section's wedge. Written as-is, never blended.
	Color Color
}

// chartMargin is the gap in pixels between the chart circle and the nearer
// image edge.
const chartMargin = 2.0

// chartStartAngle puts the first section boundary at 12 o'clock; a
// two-section chart therefore splits along the vertical diameter.
const chartStartAngle = math.Pi / 2

// PieChartOption configures DrawPieChart.
type PieChartOption func(*pieChartOptions)

type pieChartOptions struct {
	rotationDeg  float64
	outlineColor Color
	lineWidth    float64
	outline      bool
}

func defaultPieChartOptions() pieChartOptions {
	return pieChartOptions{
		outlineColor: Black,
		lineWidth:    2,
		outline:      true,
	}
}

// WithRotation rotates the whole chart counter-clockwise by the given angle
// in degrees.
func WithRotation(degrees float64) PieChartOption {
	return func(o *pieChartOptions) {
		o.rotationDeg = degrees
	}
}

// WithOutlineColor sets the color of the outline ring. The default is black.
func WithOutlineColor(c Color) PieChartOption {
	return func(o *pieChartOptions) {
		o.outlineColor = c
	}
}

// WithLineWidth sets the thickness of the outline ring and the section
// dividers. The default is 2.
func WithLineWidth(w float64) PieChartOption {
	return func(o *pieChartOptions) {
		o.lineWidth = w
	}
}

// WithoutOutline suppresses the outline ring.
func WithoutOutline() PieChartOption {
	return func(o *pieChartOptions) {
		o.outline = false
	}
}

// DrawPieChart renders a pie chart into dst: a centered circle sized to the
// smaller image dimension, split into one wedge per section, with thin
// black dividers on the section boundaries and an anti-aliased outline
// ring. Background pixels inside the chart circle are always fully
// replaced, never blended.
//
// A single-section chart is a solid disc with no dividers, only the ring.
func DrawPieChart(dst *Surface, sections []Section, opts ...PieChartOption) error {
	o := defaultPieChartOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(sections) == 0 {
		return ErrNoSections
	}
	total := 0.0
	for i, sec := range sections {
		if !(sec.Value > 0) {
			return fmt.Errorf("%w: section %d has value %v", ErrNonPositiveValue, i, sec.Value)
		}
		total += sec.Value
	}

	width := dst.Width()
	height := dst.Height()
	radius := math.Min(float64(width), float64(height))/2 - chartMargin
	if radius <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrChartTooSmall, width, height)
	}

	Logger().Debug("drawing pie chart",
		"width", width, "height", height,
		"sections", len(sections), "rotation", o.rotationDeg)

	// Cumulative-angle table: bounds[i] is the upper angle of section i.
	// The last entry is pinned to exactly 2π so the final wedge owns the
	// whole remaining angle despite rounding in the running sum.
	bounds := make([]float64, len(sections))
	prefix := 0.0
	for i, sec := range sections {
		prefix += sec.Value
		bounds[i] = 2 * math.Pi * prefix / total
	}
	bounds[len(bounds)-1] = 2 * math.Pi

	center := geom.V2(float64(width)/2, float64(height)/2)
	circle := geom.Circle{Center: center, Radius: radius}
	offset := chartStartAngle + o.rotationDeg*math.Pi/180

	fillPieSections(dst, circle, sections, bounds, offset)

	if len(sections) > 1 {
		drawPieDividers(dst, circle, bounds, offset, o.lineWidth)
	}
	if o.outline {
		dst.FrameCircle(circle, o.lineWidth, o.outlineColor, BlendSourceOver)
	}
	return nil
}

// fillPieSections writes every pixel of the chart circle with its owning
// section's color. Pixels of the traversed span that fall outside the
// radius are cleared to zero.
func fillPieSections(dst *Surface, circle geom.Circle, sections []Section, bounds []float64, offset float64) {
	yMin := clampInt(int(math.Ceil(circle.Center.Y-circle.Radius)), 0, dst.Height()-1)
	yMax := clampInt(int(math.Floor(circle.Center.Y+circle.Radius)), 0, dst.Height()-1)

	for y := yMin; y <= yMax; y++ {
		fy := float64(y)
		x0, x1, ok := circle.IntersectHLine(fy)
		if !ok {
			continue
		}
		left := clampInt(int(math.Ceil(x0)), 0, dst.Width()-1)
		right := clampInt(int(math.Floor(x1)), 0, dst.Width()-1)

		for x := left; x <= right; x++ {
			v := geom.V2(float64(x), fy).Sub(circle.Center)
			if v.Length() > circle.Radius {
				dst.SetPixel(x, y, Transparent)
				continue
			}
			angle := v.CCWAngle() - offset
			angle = math.Mod(angle, 2*math.Pi)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			dst.SetPixel(x, y, sections[sectionIndex(bounds, angle)].Color)
		}
	}
}

// sectionIndex returns the index of the first cumulative bound at or above
// the given angle. The table is tiny, so a linear scan beats binary search.
func sectionIndex(bounds []float64, angle float64) int {
	for i, b := range bounds {
		if b >= angle {
			return i
		}
	}
	return len(bounds) - 1
}

// drawPieDividers draws a thin solid black capsule from the chart center to
// the perimeter point of every section boundary. The capsules are filled as
// one union so the shared center pixel is blended exactly once.
func drawPieDividers(dst *Surface, circle geom.Circle, bounds []float64, offset, lineWidth float64) {
	r := lineWidth / 2
	if r <= 0 {
		r = 0.5
	}

	stadiums := make([]geom.Stadium, 0, len(bounds))
	for _, b := range bounds {
		st, err := geom.NewStadium(circle.Center, circle.PointAt(b+offset), r)
		if err != nil {
			continue
		}
		stadiums = append(stadiums, st)
	}
	dst.FillStadiums(stadiums, Black, BlendSourceOver)
}

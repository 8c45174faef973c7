package piechart

import (
	"errors"
	"math"
	"testing"
)

func TestDrawPieChart_TwoEqualSections(t *testing.T) {
	s := mustSurface(t, 100, 100)
	s.Clear(White)

	sections := []Section{
		{Value: 1, Color: Red},
		{Value: 1, Color: Blue},
	}
	if err := DrawPieChart(s, sections); err != nil {
		t.Fatalf("DrawPieChart: %v", err)
	}

	// Two equal sections split along the vertical diameter: the first
	// section owns the left half, the second the right half.
	if got := s.PixelAt(40, 50); got != Red {
		t.Errorf("left-half pixel = %#x, want pure red", got)
	}
	if got := s.PixelAt(60, 50); got != Blue {
		t.Errorf("right-half pixel = %#x, want pure blue", got)
	}

	// On the divider the pixel is darkened by the black capsule: neither
	// pure section color survives there.
	div := s.PixelAt(50, 25)
	if div == Red || div == Blue {
		t.Errorf("divider pixel = %#x, want a blend toward black", div)
	}
	if div.Alpha() != 255 {
		t.Errorf("divider pixel alpha = %d, want opaque", div.Alpha())
	}

	// The outline ring leaves its mark on the perimeter.
	rim := s.PixelAt(98, 50)
	if rim == Blue || rim == White {
		t.Errorf("rim pixel = %#x, want outline blend", rim)
	}

	// Corners outside the chart circle stay untouched.
	for _, p := range [][2]int{{0, 0}, {99, 0}, {0, 99}, {99, 99}} {
		if got := s.PixelAt(p[0], p[1]); got != White {
			t.Errorf("corner %v = %#x, want untouched white", p, got)
		}
	}
}

func TestDrawPieChart_SymmetricHalves(t *testing.T) {
	s := mustSurface(t, 100, 100)
	sections := []Section{
		{Value: 3, Color: Red},
		{Value: 3, Color: Blue},
	}
	if err := DrawPieChart(s, sections, WithoutOutline()); err != nil {
		t.Fatalf("DrawPieChart: %v", err)
	}

	// Equal values give mirror-image halves: away from the divider every
	// left pixel is the first color iff its mirror is the second.
	for y := 30; y <= 70; y += 5 {
		for dx := 5; dx <= 30; dx += 5 {
			l := s.PixelAt(50-dx, y)
			r := s.PixelAt(50+dx, y)
			if l == Red && r != Blue {
				t.Errorf("mirror of red (%d,%d) = %#x, want blue", 50+dx, y, r)
			}
			if r == Blue && l != Red {
				t.Errorf("mirror of blue (%d,%d) = %#x, want red", 50-dx, y, l)
			}
		}
	}
}

func TestDrawPieChart_Rotation(t *testing.T) {
	s := mustSurface(t, 100, 100)
	sections := []Section{
		{Value: 1, Color: Red},
		{Value: 1, Color: Blue},
	}
	if err := DrawPieChart(s, sections, WithRotation(90), WithoutOutline()); err != nil {
		t.Fatalf("DrawPieChart: %v", err)
	}

	// Rotated a quarter turn, the split runs along the horizontal diameter.
	if got := s.PixelAt(50, 40); got != Red {
		t.Errorf("upper pixel = %#x, want red", got)
	}
	if got := s.PixelAt(50, 60); got != Blue {
		t.Errorf("lower pixel = %#x, want blue", got)
	}
}

func TestDrawPieChart_SingleSection(t *testing.T) {
	s := mustSurface(t, 60, 60)
	if err := DrawPieChart(s, []Section{{Value: 5, Color: Green}}, WithoutOutline()); err != nil {
		t.Fatalf("DrawPieChart: %v", err)
	}

	// One section is a solid disc: no divider crosses it anywhere.
	for _, p := range [][2]int{{30, 30}, {30, 10}, {30, 50}, {10, 30}, {50, 30}, {45, 45}} {
		if got := s.PixelAt(p[0], p[1]); got != Green {
			t.Errorf("pixel %v = %#x, want solid green", p, got)
		}
	}
}

func TestDrawPieChart_SectionColorsReplace(t *testing.T) {
	s := mustSurface(t, 80, 80)
	s.Clear(White)

	// Section colors are written as-is. A translucent color must land in
	// the buffer verbatim instead of compositing against the background.
	c := ARGB(100, 10, 20, 30)
	if err := DrawPieChart(s, []Section{{Value: 1, Color: c}}, WithoutOutline()); err != nil {
		t.Fatalf("DrawPieChart: %v", err)
	}
	if got := s.PixelAt(40, 40); got != c {
		t.Errorf("interior pixel = %#x, want the section color %#x verbatim", got, c)
	}
}

func TestDrawPieChart_UnevenShares(t *testing.T) {
	s := mustSurface(t, 100, 100)
	// 270 and 90 degree wedges: the quarter wedge occupies exactly one
	// screen quadrant, the three-quarter wedge everything else.
	sections := []Section{
		{Value: 3, Color: Red},
		{Value: 1, Color: Blue},
	}
	if err := DrawPieChart(s, sections, WithoutOutline()); err != nil {
		t.Fatalf("DrawPieChart: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want Color
	}{
		{"left of center", 30, 50, Red},
		{"above center", 50, 30, Red},
		{"lower left quadrant", 35, 65, Red},
		{"upper right quadrant", 65, 35, Red},
		{"lower right quadrant", 65, 65, Blue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.PixelAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d) = %#x, want %#x", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDrawPieChart_Options(t *testing.T) {
	s := mustSurface(t, 100, 100)
	sections := []Section{
		{Value: 1, Color: Red},
		{Value: 1, Color: Blue},
	}
	// A 6px line width makes the outline ring thick enough to have fully
	// covered pixels, so the outline color shows unblended.
	err := DrawPieChart(s, sections, WithOutlineColor(Green), WithLineWidth(6))
	if err != nil {
		t.Fatalf("DrawPieChart: %v", err)
	}

	if got := s.PixelAt(98, 50); got != Green {
		t.Errorf("outline pixel = %#x, want solid green", got)
	}
	// The dividers thicken with the line width too.
	if got := s.PixelAt(50, 25); got != Black {
		t.Errorf("divider pixel = %#x, want solid black", got)
	}
}

func TestDrawPieChart_Validation(t *testing.T) {
	s := mustSurface(t, 50, 50)

	if err := DrawPieChart(s, nil); !errors.Is(err, ErrNoSections) {
		t.Errorf("nil sections: err = %v, want ErrNoSections", err)
	}

	bad := [][]Section{
		{{Value: 0, Color: Red}},
		{{Value: 1, Color: Red}, {Value: -2, Color: Blue}},
		{{Value: math.NaN(), Color: Red}},
	}
	for _, sections := range bad {
		if err := DrawPieChart(s, sections); !errors.Is(err, ErrNonPositiveValue) {
			t.Errorf("sections %v: err = %v, want ErrNonPositiveValue", sections, err)
		}
	}

	tiny := mustSurface(t, 4, 4)
	err := DrawPieChart(tiny, []Section{{Value: 1, Color: Red}})
	if !errors.Is(err, ErrChartTooSmall) {
		t.Errorf("4x4 surface: err = %v, want ErrChartTooSmall", err)
	}
}

func TestDrawPieChart_ErrorLeavesSurfaceUntouched(t *testing.T) {
	s := mustSurface(t, 50, 50)
	s.Clear(White)

	sections := []Section{
		{Value: 1, Color: Red},
		{Value: 0, Color: Blue}, // invalid, detected after the first section
	}
	if err := DrawPieChart(s, sections); err == nil {
		t.Fatal("expected an error for a zero-value section")
	}
	for _, p := range [][2]int{{0, 0}, {25, 25}, {49, 49}, {10, 40}} {
		if got := s.PixelAt(p[0], p[1]); got != White {
			t.Errorf("pixel %v = %#x after failed draw, want untouched white", p, got)
		}
	}
}

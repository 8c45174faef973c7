package piechart

import (
	"math"
	"testing"

	"github.com/toehead2001/pdn-pie-chart-legacy/geom"
)

func mustStadium(t *testing.T, p1, p2 geom.Vec2, r float64) geom.Stadium {
	t.Helper()
	st, err := geom.NewStadium(p1, p2, r)
	if err != nil {
		t.Fatalf("NewStadium: %v", err)
	}
	return st
}

func TestFillStadium_Solid(t *testing.T) {
	s := mustSurface(t, 30, 20)
	st := mustStadium(t, geom.V2(8, 10), geom.V2(22, 10), 5)
	s.FillStadium(st, Red, BlendSourceOver)

	// On the axis the fill is solid.
	for x := 8; x <= 22; x++ {
		if got := s.PixelAt(x, 10); got != Red {
			t.Errorf("axis pixel (%d,10) = %#x, want solid red", x, got)
		}
	}
	// Beyond the caps nothing is touched.
	for _, p := range [][2]int{{1, 10}, {29, 10}, {15, 3}, {15, 17}} {
		if got := s.PixelAt(p[0], p[1]); got != Transparent {
			t.Errorf("pixel %v = %#x, want untouched", p, got)
		}
	}
}

// TestFillStadiums_NoDoubleBlend is the load-bearing union property: where
// translucent stadiums overlap, every covered pixel must be composited
// exactly once. A double blend would visibly darken the overlap.
func TestFillStadiums_NoDoubleBlend(t *testing.T) {
	s := mustSurface(t, 40, 30)
	s.Clear(White)

	src := ARGB(128, 0, 0, 0)
	stadiums := []geom.Stadium{
		mustStadium(t, geom.V2(8, 15), geom.V2(24, 15), 6),
		mustStadium(t, geom.V2(16, 15), geom.V2(32, 15), 6),
	}
	s.FillStadiums(stadiums, src, BlendSourceOver)

	// The single-blend reference result.
	ref := mustSurface(t, 1, 1)
	ref.SetPixel(0, 0, White)
	ref.blendPixel(0, 0, src, 255, BlendSourceOver)
	want := ref.PixelAt(0, 0)

	// Every fully interior pixel, overlap region included, has the
	// exactly-once value.
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			p := geom.V2(float64(x), float64(y))
			depth := math.Inf(-1)
			for _, st := range stadiums {
				if d := st.Radius - st.Axis().DistanceTo(p); d > depth {
					depth = d
				}
			}
			switch {
			case depth >= 2: // fully inside the union
				if got := s.PixelAt(x, y); got != want {
					t.Errorf("interior pixel (%d,%d) = %#x, want %#x", x, y, got, want)
				}
			case depth <= 0: // outside every stadium
				if got := s.PixelAt(x, y); got != White {
					t.Errorf("outside pixel (%d,%d) = %#x, want white", x, y, got)
				}
			}
		}
	}
}

// TestFillStadiums_OverlapMatchesPerPixelReference renders an overlapping
// pair twice: once through the span-merging fast path and once with a naive
// per-pixel reference, and requires identical buffers.
func TestFillStadiums_OverlapMatchesPerPixelReference(t *testing.T) {
	stadiums := []geom.Stadium{
		mustStadium(t, geom.V2(6, 8), geom.V2(30, 22), 4),
		mustStadium(t, geom.V2(6, 22), geom.V2(30, 8), 4),
		mustStadium(t, geom.V2(18, 4), geom.V2(18, 26), 3),
	}
	src := ARGB(200, 40, 90, 160)

	fast := mustSurface(t, 36, 30)
	fast.Clear(White)
	fast.FillStadiums(stadiums, src, BlendSourceOver)

	ref := mustSurface(t, 36, 30)
	ref.Clear(White)
	for y := 0; y < 30; y++ {
		for x := 0; x < 36; x++ {
			p := geom.V2(float64(x), float64(y))
			depth := math.Inf(-1)
			for _, st := range stadiums {
				if d := st.Radius - st.Axis().DistanceTo(p); d > depth {
					depth = d
				}
			}
			if depth <= 0 {
				continue
			}
			cov := uint8(255)
			if depth < 2 {
				cov = uint8(depth/2*255 + 0.5)
			}
			ref.blendPixel(x, y, src, cov, BlendSourceOver)
		}
	}

	for y := 0; y < 30; y++ {
		for x := 0; x < 36; x++ {
			if f, r := fast.PixelAt(x, y), ref.PixelAt(x, y); f != r {
				t.Errorf("pixel (%d,%d): fast %#x, reference %#x", x, y, f, r)
			}
		}
	}
}

func TestFillStadiums_Empty(t *testing.T) {
	s := mustSurface(t, 4, 4)
	s.FillStadiums(nil, Red, BlendSourceOver)
	if got := s.PixelAt(1, 1); got != Transparent {
		t.Errorf("pixel = %#x after empty fill", got)
	}
}

func TestFillStadiums_DisjointSpans(t *testing.T) {
	s := mustSurface(t, 40, 10)
	stadiums := []geom.Stadium{
		mustStadium(t, geom.V2(5, 5), geom.V2(10, 5), 3),
		mustStadium(t, geom.V2(28, 5), geom.V2(34, 5), 3),
	}
	s.FillStadiums(stadiums, Green, BlendSourceOver)

	if got := s.PixelAt(7, 5); got != Green {
		t.Errorf("left stadium pixel = %#x, want green", got)
	}
	if got := s.PixelAt(30, 5); got != Green {
		t.Errorf("right stadium pixel = %#x, want green", got)
	}
	// The gap between the two spans stays untouched.
	for x := 15; x <= 23; x++ {
		if got := s.PixelAt(x, 5); got != Transparent {
			t.Errorf("gap pixel (%d,5) = %#x, want untouched", x, got)
		}
	}
}

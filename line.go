package piechart

import (
	"math"

	"github.com/toehead2001/pdn-pie-chart-legacy/geom"
)

// DrawLine draws a 1-pixel solid line between two points with no
// anti-aliasing. Perfectly horizontal and vertical lines take a clipped
// span fast path; everything else is integer Bresenham.
func (s *Surface) DrawLine(p1, p2 geom.Vec2, c Color, mode BlendMode) {
	x0 := int(math.Round(p1.X))
	y0 := int(math.Round(p1.Y))
	x1 := int(math.Round(p2.X))
	y1 := int(math.Round(p2.Y))

	switch {
	case y0 == y1:
		s.fillHSpan(x0, x1, y0, c, mode)
		return
	case x0 == x1:
		s.fillVSpan(x0, y0, y1, c, mode)
		return
	}

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	dy = -dy
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		s.blendPixel(x0, y0, c, 255, mode)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// fillHSpan fills the horizontal pixel run [x0, x1] on row y, clipped to
// the surface. Copy mode and opaque colors write directly; translucent
// source-over runs through the blend core.
func (s *Surface) fillHSpan(x0, x1, y int, c Color, mode BlendMode) {
	if y < 0 || y >= s.height {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x1 < 0 || x0 >= s.width {
		return
	}
	x0 = clampInt(x0, 0, s.width-1)
	x1 = clampInt(x1, 0, s.width-1)

	i := s.offset(x0, y)
	if mode == BlendCopy || c.IsOpaque() {
		for x := x0; x <= x1; x++ {
			s.setPixelOffset(i, c)
			i += bytesPerPixel
		}
		return
	}
	srcA := c.Alpha()
	for x := x0; x <= x1; x++ {
		s.compositePixelOffset(i, c, srcA)
		i += bytesPerPixel
	}
}

// fillVSpan fills the vertical pixel run [y0, y1] on column x, clipped to
// the surface.
func (s *Surface) fillVSpan(x, y0, y1 int, c Color, mode BlendMode) {
	if x < 0 || x >= s.width {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if y1 < 0 || y0 >= s.height {
		return
	}
	y0 = clampInt(y0, 0, s.height-1)
	y1 = clampInt(y1, 0, s.height-1)

	i := s.offset(x, y0)
	if mode == BlendCopy || c.IsOpaque() {
		for y := y0; y <= y1; y++ {
			s.setPixelOffset(i, c)
			i += s.stride
		}
		return
	}
	srcA := c.Alpha()
	for y := y0; y <= y1; y++ {
		s.compositePixelOffset(i, c, srcA)
		i += s.stride
	}
}

package piechart

import "sync"

// BlendMode selects how source pixels are combined with the destination.
type BlendMode int

const (
	// BlendCopy writes source pixels directly, replacing the destination.
	BlendCopy BlendMode = iota
	// BlendSourceOver composites translucent source pixels over the
	// destination with the standard source-over formula.
	BlendSourceOver
)

// The blend core runs on three 256x256 byte lookup tables, indexed as
// x | y<<8. They replace the per-pixel multiplies and divides of the
// source-over formula with array loads:
//
//	premulLUT[x|y<<8]    = x*y/255            premultiply channel by alpha
//	predivLUT[x|y<<8]    = min(255, x*255/y)  un-premultiply (0 when y == 0)
//	alphaOverLUT[s|d<<8] = s + d*(255-s)/255  combined source-over alpha
//
// The tables are process-wide, built exactly once on first use, and
// read-only afterwards. sync.Once makes a concurrent first draw safe: every
// caller passes the same barrier before touching the tables.
var (
	blendTablesOnce sync.Once

	premulLUT    []uint8
	predivLUT    []uint8
	alphaOverLUT []uint8
)

func initBlendTables() {
	premulLUT = make([]uint8, 1<<16)
	predivLUT = make([]uint8, 1<<16)
	alphaOverLUT = make([]uint8, 1<<16)

	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			i := x | y<<8
			premulLUT[i] = uint8(x * y / 255)
			if y != 0 {
				v := x * 255 / y
				if v > 255 {
					v = 255
				}
				predivLUT[i] = uint8(v)
			}
			alphaOverLUT[i] = uint8(x + y*(255-x)/255)
		}
	}
}

// blendTables returns the shared lookup tables, building them on first use.
func blendTables() (premul, prediv, alphaOver []uint8) {
	blendTablesOnce.Do(initBlendTables)
	return premulLUT, predivLUT, alphaOverLUT
}

// compositePixelOffset composites a source color with effective alpha srcA
// over the destination pixel at byte offset i.
//
// A srcA of 0 leaves the destination untouched; a srcA of 255 replaces it.
func (s *Surface) compositePixelOffset(i int, c Color, srcA uint8) {
	switch srcA {
	case 0:
		return
	case 255:
		s.pix[i+0] = c.Blue()
		s.pix[i+1] = c.Green()
		s.pix[i+2] = c.Red()
		s.pix[i+3] = 255
		return
	}

	premul, prediv, alphaOver := blendTables()

	da := s.pix[i+3]
	// na >= srcA > 0 here, so the un-premultiply below never divides by zero.
	na := alphaOver[int(srcA)|int(da)<<8]

	sa := int(srcA) << 8
	inv := int(255-srcA) << 8
	daHi := int(da) << 8
	naHi := int(na) << 8

	// Each channel: premul(src, srcA) + premul(premul(dst, dstA), 255-srcA),
	// un-premultiplied by the combined alpha. The sum cannot exceed 255.
	b := int(premul[int(c.Blue())|sa]) + int(premul[int(premul[int(s.pix[i+0])|daHi])|inv])
	g := int(premul[int(c.Green())|sa]) + int(premul[int(premul[int(s.pix[i+1])|daHi])|inv])
	r := int(premul[int(c.Red())|sa]) + int(premul[int(premul[int(s.pix[i+2])|daHi])|inv])

	s.pix[i+0] = prediv[b|naHi]
	s.pix[i+1] = prediv[g|naHi]
	s.pix[i+2] = prediv[r|naHi]
	s.pix[i+3] = na
}

// blendPixel combines a color into pixel (x, y) at the given coverage
// (0..255, scaling the color's own alpha). Out-of-bounds pixels are
// silently clipped.
//
// In copy mode full coverage replaces the pixel outright and partial
// coverage writes the color with a scaled alpha, still without reading the
// destination. Source-over composites through the blend core.
func (s *Surface) blendPixel(x, y int, c Color, coverage uint8, mode BlendMode) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := s.offset(x, y)

	if mode == BlendCopy {
		if coverage == 255 {
			s.setPixelOffset(i, c)
			return
		}
		premul, _, _ := blendTables()
		s.setPixelOffset(i, c.WithAlpha(premul[int(coverage)|int(c.Alpha())<<8]))
		return
	}

	srcA := c.Alpha()
	if coverage != 255 {
		premul, _, _ := blendTables()
		srcA = premul[int(coverage)|int(srcA)<<8]
	}
	s.compositePixelOffset(i, c, srcA)
}

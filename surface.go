package piechart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Surface errors.
var (
	// ErrInvalidSize reports non-positive surface dimensions.
	ErrInvalidSize = errors.New("piechart: width and height must be positive")
	// ErrShortBuffer reports a wrapped pixel buffer too small for the
	// requested dimensions.
	ErrShortBuffer = errors.New("piechart: pixel buffer too short")
	// ErrBadStride reports a stride smaller than one row of pixels.
	ErrBadStride = errors.New("piechart: stride smaller than row size")
)

// bytesPerPixel is the size of one packed BGRA pixel.
const bytesPerPixel = 4

// Surface is a bounds-checked view over a rectangular 32-bit pixel buffer.
// The channel layout is B, G, R, A from low to high byte, row-major.
//
// A Surface never owns the memory it draws into: WrapSurface borrows a
// caller-owned buffer for the duration of the draw calls made against it,
// and the engine never retains the view past a call. NewSurface is a
// convenience that allocates a fresh buffer for callers that have none.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	pix    []byte
	width  int
	height int
	stride int
}

// NewSurface allocates a zeroed (fully transparent) surface.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Surface{
		pix:    make([]byte, width*height*bytesPerPixel),
		width:  width,
		height: height,
		stride: width * bytesPerPixel,
	}, nil
}

// WrapSurface wraps a caller-owned BGRA buffer. stride is in bytes; pass 0
// for tightly packed rows. The buffer must hold at least
// (height-1)*stride + width*4 bytes.
func WrapSurface(pix []byte, width, height, stride int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if stride == 0 {
		stride = width * bytesPerPixel
	}
	if stride < width*bytesPerPixel {
		return nil, fmt.Errorf("%w: stride %d, row %d", ErrBadStride, stride, width*bytesPerPixel)
	}
	if need := (height-1)*stride + width*bytesPerPixel; len(pix) < need {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrShortBuffer, len(pix), need)
	}
	return &Surface{pix: pix, width: width, height: height, stride: stride}, nil
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Stride returns the row stride in bytes.
func (s *Surface) Stride() int {
	return s.stride
}

// Pix returns the raw pixel data (BGRA byte order).
func (s *Surface) Pix() []byte {
	return s.pix
}

// offset returns the byte offset of pixel (x, y). The caller must have
// bounds-checked x and y.
func (s *Surface) offset(x, y int) int {
	return y*s.stride + x*bytesPerPixel
}

// SetPixel writes a color to a single pixel. Out-of-bounds writes are
// silently clipped.
func (s *Surface) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.setPixelOffset(s.offset(x, y), c)
}

// setPixelOffset writes a color at a precomputed byte offset.
func (s *Surface) setPixelOffset(i int, c Color) {
	s.pix[i+0] = c.Blue()
	s.pix[i+1] = c.Green()
	s.pix[i+2] = c.Red()
	s.pix[i+3] = c.Alpha()
}

// PixelAt returns the color of a single pixel. Out-of-bounds reads return
// Transparent.
func (s *Surface) PixelAt(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	i := s.offset(x, y)
	return ARGB(s.pix[i+3], s.pix[i+2], s.pix[i+1], s.pix[i+0])
}

// Clear fills the entire surface with a color.
func (s *Surface) Clear(c Color) {
	for y := 0; y < s.height; y++ {
		i := y * s.stride
		for x := 0; x < s.width; x++ {
			s.setPixelOffset(i, c)
			i += bytesPerPixel
		}
	}
}

// ToImage converts the surface to an image.NRGBA copy.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		si := y * s.stride
		di := y * img.Stride
		for x := 0; x < s.width; x++ {
			img.Pix[di+0] = s.pix[si+2]
			img.Pix[di+1] = s.pix[si+1]
			img.Pix[di+2] = s.pix[si+0]
			img.Pix[di+3] = s.pix[si+3]
			si += bytesPerPixel
			di += 4
		}
	}
	return img
}

// FromImage creates a surface holding a copy of an image's pixels.
func FromImage(img image.Image) (*Surface, error) {
	bounds := img.Bounds()
	s, err := NewSurface(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			s.setPixelOffset(s.offset(x, y), ARGB(c.A, c.R, c.G, c.B))
		}
	}
	return s, nil
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.ToImage())
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	c := s.PixelAt(x, y)
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

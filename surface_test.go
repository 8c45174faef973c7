package piechart

import (
	"errors"
	"image"
	"testing"
)

func mustSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	s, err := NewSurface(w, h)
	if err != nil {
		t.Fatalf("NewSurface(%d, %d): %v", w, h, err)
	}
	return s
}

func TestNewSurface_Validation(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSurface(tt.w, tt.h); !errors.Is(err, ErrInvalidSize) {
				t.Errorf("err = %v, want ErrInvalidSize", err)
			}
		})
	}
}

func TestWrapSurface(t *testing.T) {
	buf := make([]byte, 4*3*bytesPerPixel)
	s, err := WrapSurface(buf, 4, 3, 0)
	if err != nil {
		t.Fatalf("WrapSurface: %v", err)
	}
	if s.Stride() != 16 {
		t.Errorf("default stride = %d, want 16", s.Stride())
	}

	// The view writes through to the caller's memory.
	s.SetPixel(1, 2, ARGB(0xaa, 0xbb, 0xcc, 0xdd))
	i := 2*16 + 1*4
	if buf[i] != 0xdd || buf[i+1] != 0xcc || buf[i+2] != 0xbb || buf[i+3] != 0xaa {
		t.Errorf("buffer bytes = % x, want dd cc bb aa", buf[i:i+4])
	}

	if _, err := WrapSurface(make([]byte, 10), 4, 3, 0); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("short buffer: err = %v, want ErrShortBuffer", err)
	}
	if _, err := WrapSurface(buf, 4, 3, 8); !errors.Is(err, ErrBadStride) {
		t.Errorf("bad stride: err = %v, want ErrBadStride", err)
	}
	if _, err := WrapSurface(buf, 0, 3, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero width: err = %v, want ErrInvalidSize", err)
	}
}

func TestWrapSurface_Padded(t *testing.T) {
	// Rows padded to 24 bytes for a 4-pixel-wide image.
	buf := make([]byte, 2*24+4*bytesPerPixel)
	s, err := WrapSurface(buf, 4, 3, 24)
	if err != nil {
		t.Fatalf("WrapSurface: %v", err)
	}
	s.SetPixel(3, 2, White)
	if got := s.PixelAt(3, 2); got != White {
		t.Errorf("PixelAt = %#x, want white", got)
	}
	if buf[2*24+3*4] != 255 {
		t.Error("write landed outside the strided position")
	}
}

func TestSurface_PixelRoundTrip(t *testing.T) {
	s := mustSurface(t, 3, 3)

	c := ARGB(0x80, 0x11, 0x22, 0x33)
	s.SetPixel(1, 1, c)
	if got := s.PixelAt(1, 1); got != c {
		t.Errorf("PixelAt = %#x, want %#x", got, c)
	}

	// Channel layout in memory is B, G, R, A.
	i := s.offset(1, 1)
	if s.pix[i] != 0x33 || s.pix[i+1] != 0x22 || s.pix[i+2] != 0x11 || s.pix[i+3] != 0x80 {
		t.Errorf("pixel bytes = % x, want 33 22 11 80", s.pix[i:i+4])
	}
}

func TestSurface_Clipping(t *testing.T) {
	s := mustSurface(t, 2, 2)
	s.SetPixel(-1, 0, Red)
	s.SetPixel(0, -1, Red)
	s.SetPixel(2, 0, Red)
	s.SetPixel(0, 2, Red)

	if got := s.PixelAt(-1, 0); got != Transparent {
		t.Errorf("out-of-bounds read = %#x, want transparent", got)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := s.PixelAt(x, y); got != Transparent {
				t.Errorf("pixel (%d,%d) = %#x after clipped writes", x, y, got)
			}
		}
	}
}

func TestSurface_Clear(t *testing.T) {
	s := mustSurface(t, 4, 2)
	s.Clear(Blue)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if got := s.PixelAt(x, y); got != Blue {
				t.Errorf("pixel (%d,%d) = %#x, want blue", x, y, got)
			}
		}
	}
}

func TestSurface_ToImageFromImage(t *testing.T) {
	s := mustSurface(t, 2, 2)
	s.SetPixel(0, 0, ARGB(200, 10, 20, 30))
	s.SetPixel(1, 1, Red)

	img := s.ToImage()
	if got := img.NRGBAAt(0, 0); got.R != 10 || got.G != 20 || got.B != 30 || got.A != 200 {
		t.Errorf("NRGBAAt(0,0) = %+v", got)
	}

	back, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if back.PixelAt(x, y) != s.PixelAt(x, y) {
				t.Errorf("round trip mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestSurface_ImageInterface(t *testing.T) {
	s := mustSurface(t, 5, 7)
	if got := s.Bounds(); got != image.Rect(0, 0, 5, 7) {
		t.Errorf("Bounds = %v", got)
	}
	var _ image.Image = s
}

func TestColor_Accessors(t *testing.T) {
	c := ARGB(0x11, 0x22, 0x33, 0x44)
	if c.Alpha() != 0x11 || c.Red() != 0x22 || c.Green() != 0x33 || c.Blue() != 0x44 {
		t.Errorf("accessors of %#x = %x %x %x %x", c, c.Alpha(), c.Red(), c.Green(), c.Blue())
	}
	if got := c.WithAlpha(0xff); got != ARGB(0xff, 0x22, 0x33, 0x44) {
		t.Errorf("WithAlpha = %#x", got)
	}
	if !RGB(1, 2, 3).IsOpaque() {
		t.Error("RGB color must be opaque")
	}
	if Transparent.IsOpaque() {
		t.Error("Transparent reported opaque")
	}
}

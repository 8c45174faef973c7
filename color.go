package piechart

// Color is a packed 32-bit ARGB color: alpha in the highest byte, then
// red, green, blue. This matches the channel layout of a Surface pixel,
// whose bytes run B, G, R, A from low to high.
type Color uint32

// ARGB creates a color from alpha, red, green, and blue components.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB creates an opaque color from red, green, and blue components.
func RGB(r, g, b uint8) Color {
	return ARGB(255, r, g, b)
}

// Alpha returns the alpha component.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// Red returns the red component.
func (c Color) Red() uint8 {
	return uint8(c >> 16)
}

// Green returns the green component.
func (c Color) Green() uint8 {
	return uint8(c >> 8)
}

// Blue returns the blue component.
func (c Color) Blue() uint8 {
	return uint8(c)
}

// WithAlpha returns the same color with the alpha component replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00ffffff | uint32(a)<<24)
}

// IsOpaque reports whether the color has full alpha.
func (c Color) IsOpaque() bool {
	return c.Alpha() == 255
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Transparent = Color(0)
)

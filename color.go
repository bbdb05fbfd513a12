// Package vgacon implements a text-mode console over a VGA-style
// character-cell framebuffer.
//
// This package contains:
//   - Color and attribute types for the 16-color text palette
//   - Cell representation and the 2-bytes-per-cell device layout
//   - The console state machine: cursor, line wrap, scroll, backspace
//   - The interrupt-mask and spin lock discipline for re-entrant callers
//
// Frontend packages (vgacon/cli, vgacon/gtk, vgacon/qt, vgacon/tcellview)
// read the console back and render it on a host display.
package vgacon

// Color identifies one of the 16 text-mode palette colors.
type Color byte

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

// Attr packs a foreground and background color into a single attribute
// byte, background in the high nibble.
type Attr byte

// NewAttr builds an attribute byte from a foreground and background color.
func NewAttr(fg, bg Color) Attr {
	return Attr(byte(bg)<<4 | byte(fg)&0x0f)
}

// Foreground returns the attribute's foreground color.
func (a Attr) Foreground() Color {
	return Color(a & 0x0f)
}

// Background returns the attribute's background color.
func (a Attr) Background() Color {
	return Color(a >> 4)
}

// RGB is one palette entry as frontends render it.
type RGB struct {
	R, G, B uint8
}

// PaletteRGB maps each Color to the RGB value of the standard text-mode
// palette.
var PaletteRGB = [16]RGB{
	Black:      {0x00, 0x00, 0x00},
	Blue:       {0x00, 0x00, 0xaa},
	Green:      {0x00, 0xaa, 0x00},
	Cyan:       {0x00, 0xaa, 0xaa},
	Red:        {0xaa, 0x00, 0x00},
	Magenta:    {0xaa, 0x00, 0xaa},
	Brown:      {0xaa, 0x55, 0x00},
	LightGray:  {0xaa, 0xaa, 0xaa},
	DarkGray:   {0x55, 0x55, 0x55},
	LightBlue:  {0x55, 0x55, 0xff},
	LightGreen: {0x55, 0xff, 0x55},
	LightCyan:  {0x55, 0xff, 0xff},
	LightRed:   {0xff, 0x55, 0x55},
	Pink:       {0xff, 0x55, 0xff},
	Yellow:     {0xff, 0xff, 0x55},
	White:      {0xff, 0xff, 0xff},
}

/*
Package color implements the packed 15-bit color format used by the Super
Nintendo and palettes built from it.

Each color is stored as a little-endian 16-bit word laid out as
0BBBBBGGGGGRRRRR. Encoding truncates each 8-bit channel to 5 bits and
decoding expands it back to 8 bits by replicating the top 3 bits into the
low 3 bits, so white stays white.
*/
package color

import (
	"image/color"
)

const (
	mask5       = 0x1f
	greenShift  = 5
	blueShift   = 10
	bytesPerCol = 2
)

// BGR555 is a packed console color. Bit 15 is unused.
type BGR555 uint16

// Model converts any color.Color to a BGR555.
var Model = color.ModelFunc(bgr555Model)

func bgr555Model(c color.Color) color.Color {
	if _, ok := c.(BGR555); ok {
		return c
	}
	return Encode(c)
}

func expand(c uint16) uint8 {
	return uint8(c<<3 | c>>2)
}

// Encode packs c into a BGR555, discarding the low 3 bits of each channel.
// Alpha is ignored.
func Encode(c color.Color) BGR555 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return BGR555(uint16(n.R>>3) | uint16(n.G>>3)<<greenShift | uint16(n.B>>3)<<blueShift)
}

// Decode expands the packed word w into an opaque color.
func Decode(w uint16) color.NRGBA {
	return BGR555(w).NRGBA()
}

// NRGBA returns the expanded 24-bit color, always fully opaque.
func (c BGR555) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: expand(uint16(c) & mask5),
		G: expand(uint16(c) >> greenShift & mask5),
		B: expand(uint16(c) >> blueShift & mask5),
		A: 0xff,
	}
}

// RGBA implements the color.Color interface.
func (c BGR555) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

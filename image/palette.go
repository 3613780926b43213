package image

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Pixels with no alpha are all treated as this color.
var transparent = color.NRGBA{}

func normalize(c color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return transparent
	}
	return n
}

// PaletteMap maps colors to palette indices, remembering the order in
// which they were added.
type PaletteMap struct {
	colors []color.NRGBA
	index  map[color.NRGBA]byte
}

// NewPaletteMap scans the first 16 pixels of strip in row-major order. The
// index of a color is the position it first appears at.
func NewPaletteMap(strip image.Image) *PaletteMap {
	pm := &PaletteMap{
		index: make(map[color.NRGBA]byte),
	}
	b := strip.Bounds()
	i := 0
	for y := b.Min.Y; y < b.Max.Y && i < colorsPerPalette; y++ {
		for x := b.Min.X; x < b.Max.X && i < colorsPerPalette; x++ {
			pm.add(strip.At(x, y), byte(i))
			i++
		}
	}
	return pm
}

func (pm *PaletteMap) add(c color.Color, i byte) {
	n := normalize(c)
	if _, ok := pm.index[n]; ok {
		return
	}
	pm.index[n] = i
	pm.colors = append(pm.colors, n)
}

// Len returns the number of distinct colors.
func (pm *PaletteMap) Len() int {
	return len(pm.colors)
}

// Index returns the palette index for c.
func (pm *PaletteMap) Index(c color.Color) (byte, bool) {
	i, ok := pm.index[normalize(c)]
	return i, ok
}

// Colors returns the distinct colors in the order they were found.
func (pm *PaletteMap) Colors() []color.NRGBA {
	return append([]color.NRGBA(nil), pm.colors...)
}

func (pm *PaletteMap) String() string {
	s := make([]string, 0, len(pm.colors))
	for _, c := range pm.colors {
		s = append(s, fmt.Sprintf("%s:%d", hex(c), pm.index[c]))
	}
	return "map[" + strings.Join(s, " ") + "]"
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ColorError is returned when a pixel has a color not in the palette. X
// and Y are relative to the top-left corner of the tiles.
type ColorError struct {
	Color color.NRGBA
	X, Y  int
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("image: unknown color %s at (%d,%d)", hex(e.Color), e.X, e.Y)
}

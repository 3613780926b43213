package image

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
)

// Colorize maps the indices in g through palette p. Index 0 is always
// transparent, as are any indices past the end of p.
func Colorize(g *image.Gray, p color.Palette) *image.Paletted {
	cp := make(color.Palette, 1<<8)
	for i := range cp {
		if i > 0 && i < len(p) {
			cp[i] = normalize(p[i])
		} else {
			cp[i] = transparent
		}
	}

	b := g.Bounds()
	m := image.NewPaletted(b, cp)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		copy(m.Pix[m.PixOffset(b.Min.X, y):], g.Pix[g.PixOffset(b.Min.X, y):g.PixOffset(b.Max.X, y)])
	}
	return m
}

// Quantize reduces m to 15 colors plus transparency and returns a headered
// image; the palette strip repeated down the first 16 rows followed by the
// reduced image. The result can be passed straight to ImportHeadered.
func Quantize(m image.Image) *image.NRGBA {
	b := m.Bounds()

	q := quantize.MedianCutQuantizer{}
	p := append(color.Palette{transparent}, q.Quantize(make(color.Palette, 0, colorsPerPalette-1), m)...)
	for i, c := range p {
		p[i] = normalize(c)
	}

	pm := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), p)
	draw.Draw(pm, pm.Rect, m, b.Min, draw.Src)

	w := b.Dx()
	if w < colorsPerPalette {
		w = colorsPerPalette
	}
	out := image.NewNRGBA(image.Rect(0, 0, w, headerHeight+b.Dy()))
	for y := 0; y < headerHeight; y++ {
		for x, c := range p {
			out.SetNRGBA(x, y, c.(color.NRGBA))
		}
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.SetNRGBA(x, headerHeight+y, p[pm.ColorIndexAt(x, y)].(color.NRGBA))
		}
	}

	return out
}

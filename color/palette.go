package color

import (
	"encoding/binary"
	"image"
	"image/color"
	"io"
	"io/ioutil"
)

// DecodePalette decodes consecutive packed colors from b. A trailing odd
// byte is ignored.
func DecodePalette(b []byte) color.Palette {
	p := make(color.Palette, 0, len(b)/bytesPerCol)
	for ; len(b) >= bytesPerCol; b = b[bytesPerCol:] {
		p = append(p, Decode(binary.LittleEndian.Uint16(b)))
	}
	return p
}

// EncodePalette packs every color in p, in order, two bytes per color.
func EncodePalette(p color.Palette) []byte {
	b := make([]byte, 0, len(p)*bytesPerCol)
	var tmp [bytesPerCol]byte
	for _, c := range p {
		binary.LittleEndian.PutUint16(tmp[:], uint16(Encode(c)))
		b = append(b, tmp[:]...)
	}
	return b
}

// ReadPalette reads r until EOF and decodes the result as a palette.
func ReadPalette(r io.Reader) (color.Palette, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodePalette(b), nil
}

// WritePalette writes the packed form of p to w.
func WritePalette(w io.Writer, p color.Palette) error {
	_, err := w.Write(EncodePalette(p))
	return err
}

// PaletteImage lays the colors of p out row by row in a w by h image. Any
// pixels beyond the end of the palette are left transparent.
func PaletteImage(p color.Palette, w, h int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, c := range p {
		if i >= w*h {
			break
		}
		m.Set(i%w, i/w, c)
	}
	return m
}

// PaletteFromImage returns every pixel of m in row-major order.
func PaletteFromImage(m image.Image) color.Palette {
	b := m.Bounds()
	p := make(color.Palette, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p = append(p, color.NRGBAModel.Convert(m.At(x, y)))
		}
	}
	return p
}

package image

import (
	"image"
	"image/color"

	"github.com/bodgit/snesgfx/tile"
)

// lookup returns the palette index for the pixel at (x, y) relative to the
// tile area.
type lookup func(x, y int) (byte, error)

func appendTile(s tile.Sheet, tx, ty int, f lookup) (tile.Sheet, error) {
	for y := 0; y < tileHeight; y++ {
		for x := 0; x < tileWidth; x++ {
			i, err := f(tx*tileWidth+x, ty*tileHeight+y)
			if err != nil {
				return nil, err
			}
			s = append(s, i)
		}
	}
	return s, nil
}

func linear(s tile.Sheet, tx, ty int, f lookup) (tile.Sheet, error) {
	var err error
	for t := 0; t < tx*ty; t++ {
		if s, err = appendTile(s, t%tx, t/tx, f); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func interleaved(s tile.Sheet, tx, ty int, f lookup) (tile.Sheet, error) {
	var err error
	row := func(sx, y int) error {
		if y >= ty {
			return nil
		}
		for x := sx; x < sx+superTile && x < tx; x++ {
			if s, err = appendTile(s, x, y, f); err != nil {
				return err
			}
		}
		return nil
	}
	for sy := 0; sy < ty; sy += superTile {
		for sx := 0; sx < tx; sx += superTile {
			for y := sy; y < sy+superTileHalf; y++ {
				if err := row(sx, y); err != nil {
					return nil, err
				}
				if err := row(sx, y+superTileHalf); err != nil {
					return nil, err
				}
			}
		}
	}
	return s, nil
}

func traverse(r image.Rectangle, o Order, f lookup) (tile.Sheet, error) {
	tx, ty := r.Dx()/tileWidth, r.Dy()/tileHeight
	s := make(tile.Sheet, 0, tx*ty*tilePixels)
	if o == Interleaved {
		return interleaved(s, tx, ty, f)
	}
	return linear(s, tx, ty, f)
}

func paletted(m image.Image, r image.Rectangle, pm *PaletteMap, o Order) (tile.Sheet, error) {
	return traverse(r, o, func(x, y int) (byte, error) {
		c := m.At(r.Min.X+x, r.Min.Y+y)
		i, ok := pm.Index(c)
		if !ok {
			return 0, &ColorError{Color: normalize(c), X: x, Y: y}
		}
		return i, nil
	})
}

// Import converts m into tiles by matching each pixel against the palette
// in strip. Any partial tiles at the right or bottom edge are ignored. A
// pixel whose color isn't in the palette returns a *ColorError.
func Import(m, strip image.Image, o Order) (tile.Sheet, error) {
	return paletted(m, m.Bounds(), NewPaletteMap(strip), o)
}

// ImportMap is like Import but uses an existing palette map.
func ImportMap(m image.Image, pm *PaletteMap, o Order) (tile.Sheet, error) {
	return paletted(m, m.Bounds(), pm, o)
}

// Split returns the bounds of the palette strip and of the tiles in a
// headered image.
func Split(m image.Image) (strip, tiles image.Rectangle) {
	b := m.Bounds()
	y := b.Min.Y + headerHeight
	if y > b.Max.Y {
		y = b.Max.Y
	}
	return image.Rect(b.Min.X, b.Min.Y, b.Max.X, y), image.Rect(b.Min.X, y, b.Max.X, b.Max.Y)
}

type view struct {
	image.Image
	r image.Rectangle
}

func (v view) Bounds() image.Rectangle {
	return v.r
}

// HeaderPalette returns the palette map built from the header of m.
func HeaderPalette(m image.Image) *PaletteMap {
	strip, _ := Split(m)
	return NewPaletteMap(view{m, strip})
}

// ImportHeadered converts a headered image; the first 16 rows hold the
// palette strip, the remaining rows the tiles.
func ImportHeadered(m image.Image, o Order) (tile.Sheet, error) {
	_, tiles := Split(m)
	return paletted(m, tiles, HeaderPalette(m), o)
}

// ImportGray converts m into tiles in row-major order using the intensity
// of each pixel as the palette index.
func ImportGray(m image.Image) tile.Sheet {
	b := m.Bounds()
	intensity := func(x, y int) (byte, error) {
		return color.GrayModel.Convert(m.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y, nil
	}
	if g, ok := m.(*image.Gray); ok {
		intensity = func(x, y int) (byte, error) {
			return g.GrayAt(b.Min.X+x, b.Min.Y+y).Y, nil
		}
	}
	s, _ := traverse(b, Linear, intensity)
	return s
}

package snesgfx

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/ioutil"
	"os"

	snescolor "github.com/bodgit/snesgfx/color"
	snesimage "github.com/bodgit/snesgfx/image"
	"github.com/bodgit/snesgfx/tile"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	paletteWidth  = 16
	paletteHeight = 16
)

func readImage(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", file)
	}
	return m, nil
}

func writeImage(file string, m image.Image) error {
	b := new(bytes.Buffer)
	if err := png.Encode(b, m); err != nil {
		return errors.Wrapf(err, "encoding %s", file)
	}
	return ioutil.WriteFile(file, b.Bytes(), 0666)
}

// Convert converts in to out. Nothing is written if the conversion fails.
func (c *Converter) Convert(mode Mode, dir Direction, in, out string) error {
	var err error
	switch mode {
	case ModePalette:
		if dir == FromConsole {
			err = c.paletteToImage(in, out)
		} else {
			err = c.imageToPalette(in, out)
		}
	case ModeGfx2, ModeGfx4, ModeGfx8:
		if dir == FromConsole {
			err = c.tilesToImage(mode, in, out)
		} else {
			err = c.grayToTiles(mode, in, out)
		}
	case ModeGfx4Paletted, ModeGfx4Interleaved:
		if dir == FromConsole {
			err = c.tilesToPalettedImage(mode, in, out)
		} else {
			err = c.palettedToTiles(mode, in, out)
		}
	case ModeQuantize:
		err = c.quantize(in, out)
	default:
		return errUnknownMode
	}
	if err != nil {
		return errors.Wrapf(err, "%s %s", mode, dir)
	}

	c.logger.Printf("Converted \"%s\" to \"%s\" (%s %s)\n", in, out, mode, dir)

	return nil
}

func (c *Converter) paletteToImage(in, out string) error {
	b, err := ioutil.ReadFile(in)
	if err != nil {
		return err
	}
	p := snescolor.DecodePalette(b)
	c.logger.Printf("Read %d colors from \"%s\"\n", len(p), in)
	return writeImage(out, snescolor.PaletteImage(p, paletteWidth, paletteHeight))
}

func (c *Converter) imageToPalette(in, out string) error {
	m, err := readImage(in)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(out, snescolor.EncodePalette(snescolor.PaletteFromImage(m)), 0666)
}

func (c *Converter) readTiles(mode Mode, in string) (tile.Sheet, error) {
	b, err := ioutil.ReadFile(in)
	if err != nil {
		return nil, err
	}
	s := tile.Decode(b, mode.format())
	c.logger.Printf("Read %d tiles from \"%s\"\n", s.Len(), in)
	return s, nil
}

func (c *Converter) writeTiles(mode Mode, out string, s tile.Sheet) error {
	return ioutil.WriteFile(out, tile.Encode(s, mode.format()), 0666)
}

func (c *Converter) tilesToImage(mode Mode, in, out string) error {
	s, err := c.readTiles(mode, in)
	if err != nil {
		return err
	}
	return writeImage(out, s.Image())
}

func (c *Converter) grayToTiles(mode Mode, in, out string) error {
	m, err := readImage(in)
	if err != nil {
		return err
	}
	return c.writeTiles(mode, out, snesimage.ImportGray(m))
}

func (c *Converter) tilesToPalettedImage(mode Mode, in, out string) error {
	s, err := c.readTiles(mode, in)
	if err != nil {
		return err
	}
	pal, err := readImage(c.palette)
	if err != nil {
		return errors.Wrap(err, "reading palette")
	}
	return writeImage(out, snesimage.Colorize(s.Image(), snescolor.PaletteFromImage(pal)))
}

func (c *Converter) palettedToTiles(mode Mode, in, out string) error {
	m, err := readImage(in)
	if err != nil {
		return err
	}

	order := snesimage.Linear
	if mode == ModeGfx4Interleaved {
		order = snesimage.Interleaved
	}

	c.logger.Printf("Palette: %s\n", snesimage.HeaderPalette(m))

	s, err := snesimage.ImportHeadered(m, order)
	if err != nil {
		return errors.Wrapf(err, "reading %s", in)
	}
	return c.writeTiles(mode, out, s)
}

func (c *Converter) quantize(in, out string) error {
	m, err := readImage(in)
	if err != nil {
		return err
	}
	return writeImage(out, snesimage.Quantize(m))
}

package snesgfx

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	snesimage "github.com/bodgit/snesgfx/image"
	"github.com/bodgit/snesgfx/planar"
	"github.com/bodgit/snesgfx/tile"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConverter(options ...Option) *Converter {
	return New(log.New(ioutil.Discard, "", 0), options...)
}

func writePNG(t *testing.T, file string, m image.Image) {
	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))
}

func readPNG(t *testing.T, file string) image.Image {
	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()
	m, err := png.Decode(f)
	require.NoError(t, err)
	return m
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	rand.New(rand.NewSource(int64(n))).Read(b)
	return b
}

func TestParseMode(t *testing.T) {
	t.Parallel()
	for _, name := range Modes() {
		m, err := ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}
	_, err := ParseMode("gfx3")
	assert.Equal(t, errUnknownMode, errors.Cause(err))
	assert.Len(t, Modes(), 7)
}

func TestInferDirection(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		in, out string
		want    Direction
		err     error
	}{
		{"gfx.bin", "gfx.png", FromConsole, nil},
		{"gfx.png", "gfx.bin", ToConsole, nil},
		{"a.png", "b.PNG", FromConsole, nil},
		{"gfx.bin", "gfx.chr", 0, ErrDirection},
	}
	for _, tc := range testCases {
		d, err := InferDirection(tc.in, tc.out)
		assert.Equal(t, tc.err, err)
		assert.Equal(t, tc.want, d)
	}
}

func TestConvertPalette(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	c := testConverter()

	in := filepath.Join(dir, "pal.bin")
	b := randomBytes(32)
	for i := 1; i < len(b); i += 2 {
		b[i] &= 0x7f
	}
	require.NoError(t, ioutil.WriteFile(in, b, 0666))

	out := filepath.Join(dir, "pal.png")
	require.NoError(t, c.Convert(ModePalette, FromConsole, in, out))
	m := readPNG(t, out)
	assert.Equal(t, image.Rect(0, 0, 16, 16), m.Bounds())

	back := filepath.Join(dir, "back.bin")
	require.NoError(t, c.Convert(ModePalette, ToConsole, out, back))
	got, err := ioutil.ReadFile(back)
	require.NoError(t, err)
	require.Len(t, got, 2*16*16)
	assert.Equal(t, b, got[:len(b)])
	assert.Equal(t, make([]byte, len(got)-len(b)), got[len(b):])
}

func TestConvertGfx(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	c := testConverter()

	for _, mode := range []Mode{ModeGfx2, ModeGfx4, ModeGfx8} {
		f := mode.format()
		in := filepath.Join(dir, mode.String()+".bin")
		b := randomBytes(3 * f.Size())
		require.NoError(t, ioutil.WriteFile(in, b, 0666))

		out := filepath.Join(dir, mode.String()+".png")
		require.NoError(t, c.Convert(mode, FromConsole, in, out))
		assert.Equal(t, image.Rect(0, 0, 128, 8), readPNG(t, out).Bounds())

		back := filepath.Join(dir, mode.String()+"-back.bin")
		require.NoError(t, c.Convert(mode, ToConsole, out, back))
		got, err := ioutil.ReadFile(back)
		require.NoError(t, err)
		require.Len(t, got, 16*f.Size())
		assert.Equal(t, b, got[:len(b)])
		assert.Equal(t, make([]byte, len(got)-len(b)), got[len(b):])
	}
}

func headeredImage(body func(x, y int) color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, 16, 16+16))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			m.SetNRGBA(x, y, color.NRGBA{uint8(x * 16), 0x80, 0x40, 0xff})
		}
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			m.SetNRGBA(x, 16+y, body(x, y))
		}
	}
	return m
}

func TestConvertPaletted(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	in := filepath.Join(dir, "headered.png")
	writePNG(t, in, headeredImage(func(x, y int) color.NRGBA {
		return color.NRGBA{uint8((x + y) % 16 * 16), 0x80, 0x40, 0xff}
	}))

	pal := filepath.Join(dir, "palette.png")
	p := image.NewNRGBA(image.Rect(0, 0, 16, 1))
	for x := 0; x < 16; x++ {
		p.SetNRGBA(x, 0, color.NRGBA{uint8(x * 16), 0x80, 0x40, 0xff})
	}
	writePNG(t, pal, p)

	c := testConverter(WithPalette(pal))
	for _, mode := range []Mode{ModeGfx4Paletted, ModeGfx4Interleaved} {
		out := filepath.Join(dir, mode.String()+".bin")
		require.NoError(t, c.Convert(mode, ToConsole, in, out))

		b, err := ioutil.ReadFile(out)
		require.NoError(t, err)
		require.Len(t, b, 4*32)

		s := tile.Decode(b, planar.Planar4)
		assert.Equal(t, byte(0), s[0])
		assert.Equal(t, byte(3), s[8*3])
		assert.Equal(t, byte(8), s[planar.TilePixels])

		img := filepath.Join(dir, mode.String()+".png")
		require.NoError(t, c.Convert(mode, FromConsole, out, img))
		m := readPNG(t, img)
		assert.Equal(t, image.Rect(0, 0, 128, 8), m.Bounds())

		// Index 0 is transparent
		_, _, _, a := m.At(0, 0).RGBA()
		assert.Equal(t, uint32(0), a)
		r, _, _, a := m.At(1, 0).RGBA()
		assert.Equal(t, uint32(0xffff), a)
		assert.Equal(t, uint32(0x1010), r)
	}
}

func TestConvertUnknownColor(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	c := testConverter()

	in := filepath.Join(dir, "headered.png")
	writePNG(t, in, headeredImage(func(x, y int) color.NRGBA {
		if x == 10 && y == 12 {
			return color.NRGBA{0x01, 0x02, 0x03, 0xff}
		}
		return color.NRGBA{0x00, 0x80, 0x40, 0xff}
	}))

	out := filepath.Join(dir, "out.bin")
	err := c.Convert(ModeGfx4Paletted, ToConsole, in, out)
	require.Error(t, err)

	ce, ok := errors.Cause(err).(*snesimage.ColorError)
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{0x01, 0x02, 0x03, 0xff}, ce.Color)
	assert.Equal(t, 10, ce.X)
	assert.Equal(t, 12, ce.Y)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestConvertQuantize(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	c := testConverter()

	src := image.NewNRGBA(image.Rect(0, 0, 32, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			src.SetNRGBA(x, y, color.NRGBA{uint8(x * 8), uint8(y * 16), 0x80, 0xff})
		}
	}
	in := filepath.Join(dir, "art.png")
	writePNG(t, in, src)

	headered := filepath.Join(dir, "headered.png")
	require.NoError(t, c.Convert(ModeQuantize, ToConsole, in, headered))
	assert.Equal(t, image.Rect(0, 0, 32, 32), readPNG(t, headered).Bounds())

	out := filepath.Join(dir, "art.bin")
	require.NoError(t, c.Convert(ModeGfx4Paletted, ToConsole, headered, out))
	b, err := ioutil.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, b, 8*32)
}

func TestConvertMissingFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	c := testConverter()

	err := c.Convert(ModeGfx4, FromConsole, filepath.Join(dir, "missing.bin"), filepath.Join(dir, "out.png"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))

	assert.Equal(t, errUnknownMode, c.Convert(Mode(0), FromConsole, "a", "b"))
}

func TestBatch(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	c := testConverter()

	g := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range g.Pix {
		g.Pix[i] = byte(i % 4)
	}

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0777))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".hidden"), 0777))
	files := []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "sub", "c.png"),
	}
	for _, file := range files {
		writePNG(t, file, g)
	}
	writePNG(t, filepath.Join(dir, ".hidden", "d.png"), g)
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0666))

	require.NoError(t, c.Batch(context.Background(), ModeGfx2, ToConsole, dir, 2))

	want := tile.Encode(snesimage.ImportGray(g), planar.Planar2)
	for _, file := range files {
		b, err := ioutil.ReadFile(file[:len(file)-len(".png")] + ".bin")
		require.NoError(t, err)
		assert.Equal(t, want, b)
	}
	_, err := os.Stat(filepath.Join(dir, ".hidden", "d.bin"))
	assert.True(t, os.IsNotExist(err))

	// And back again
	require.NoError(t, os.Remove(files[0]))
	require.NoError(t, c.Batch(context.Background(), ModeGfx2, FromConsole, dir, 0))
	assert.Equal(t, image.Rect(0, 0, 128, 8), readPNG(t, files[0]).Bounds())
}

func TestBatchError(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	c := testConverter()

	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0666))
	err := c.Batch(context.Background(), ModeGfx4, ToConsole, dir, 4)
	assert.Error(t, err)

	assert.Equal(t, errBatchMode, c.Batch(context.Background(), ModeQuantize, ToConsole, dir, 1))
}

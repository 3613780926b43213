package tile

import (
	"bytes"
	"image"
	"testing"

	"github.com/bodgit/snesgfx/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSheet(n int, depth planar.Depth) Sheet {
	s := make(Sheet, n*tilePixels)
	for i := range s {
		s[i] = byte((i*7 + i/tilePixels) % depth.Colors())
	}
	return s
}

func TestDecodeShort(t *testing.T) {
	t.Parallel()
	for _, f := range []planar.Format{planar.Planar2, planar.Planar4, planar.Planar8} {
		assert.Empty(t, Decode(nil, f))
		assert.Empty(t, Decode(make([]byte, f.Size()-1), f))
		assert.Len(t, Decode(make([]byte, f.Size()*2+1), f), 2*tilePixels)
	}
}

func TestDecodeExample(t *testing.T) {
	t.Parallel()
	b := make([]byte, 16)
	b[0] = 0xff
	s := Decode(b, planar.Planar2)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, []byte{1, 1, 1, 1, 1, 1, 1, 1}, []byte(s[:8]))
	assert.Equal(t, make([]byte, 56), []byte(s[8:]))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	for _, f := range []planar.Format{planar.Planar2, planar.Planar4, planar.Planar8} {
		s := testSheet(5, f.Depth())
		b := Encode(s, f)
		assert.Len(t, b, 5*f.Size())
		assert.Equal(t, s, Decode(b, f))
	}
}

func TestEncodeDropsFragment(t *testing.T) {
	t.Parallel()
	s := append(testSheet(2, planar.Depth4), 1, 2, 3)
	assert.Equal(t, 2, s.Len())
	assert.Len(t, Encode(s, planar.Planar4), 2*32)
	assert.Empty(t, Encode(s[:tilePixels-1], planar.Planar4))
}

func TestReadWrite(t *testing.T) {
	t.Parallel()
	s := testSheet(3, planar.Depth2)
	b := new(bytes.Buffer)
	require.NoError(t, Write(b, s, planar.Planar2))
	assert.Equal(t, 3*16, b.Len())

	got, err := Read(b, planar.Planar2)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestTile(t *testing.T) {
	t.Parallel()
	s := testSheet(2, planar.Depth8)
	m, ok := s.Tile(1)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 8, 8), m.Bounds())
	assert.Equal(t, s[tilePixels+9], m.GrayAt(1, 1).Y)

	_, ok = s.Tile(2)
	assert.False(t, ok)
	_, ok = s.Tile(-1)
	assert.False(t, ok)
}

func TestImage(t *testing.T) {
	t.Parallel()
	m := Sheet(nil).Image()
	assert.True(t, m.Bounds().Empty())

	s := testSheet(Columns+1, planar.Depth8)
	m = s.Image()
	assert.Equal(t, image.Rect(0, 0, Columns*8, 2*8), m.Bounds())

	for i := 0; i < s.Len(); i++ {
		tx, ty := i%Columns*8, i/Columns*8
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				assert.Equal(t, s[i*tilePixels+y*8+x], m.GrayAt(tx+x, ty+y).Y)
			}
		}
	}

	// Cells past the last tile are index 0
	for y := 8; y < 16; y++ {
		for x := 8; x < Columns*8; x++ {
			assert.Equal(t, uint8(0), m.GrayAt(x, y).Y)
		}
	}
}

package tile

import (
	"io"

	"github.com/bodgit/snesgfx/planar"
)

// Encode packs every whole tile in s using format f.
func Encode(s Sheet, f planar.Format) []byte {
	b := make([]byte, 0, s.Len()*f.Size())
	var t planar.Tile
	for ; len(s) >= tilePixels; s = s[tilePixels:] {
		copy(t[:], s)
		b = f.Pack(b, &t)
	}
	return b
}

// Write packs s using format f and writes it to w.
func Write(w io.Writer, s Sheet, f planar.Format) error {
	_, err := w.Write(Encode(s, f))
	return err
}

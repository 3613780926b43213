package tile

import (
	"io"
	"io/ioutil"

	"github.com/bodgit/snesgfx/planar"
)

// Decode unpacks every whole tile in b using format f.
func Decode(b []byte, f planar.Format) Sheet {
	size := f.Size()
	s := make(Sheet, 0, len(b)/size*tilePixels)
	var t planar.Tile
	for ; len(b) >= size; b = b[size:] {
		f.Unpack(&t, b)
		s = append(s, t[:]...)
	}
	return s
}

// Read reads r until EOF and unpacks the tiles using format f.
func Read(r io.Reader, f planar.Format) (Sheet, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(b, f), nil
}

/*
Package tile implements a sheet of 8 by 8 tiles held as unpacked palette
indices, and its conversion to and from the packed bitplane format.

The sheet is a flat run of 64 byte tiles, each tile in row-major order.
When displayed the tiles are arranged 16 to a row.
*/
package tile

import (
	"image"

	"github.com/bodgit/snesgfx/planar"
	"golang.org/x/image/draw"
)

const (
	tileWidth  = planar.TileWidth
	tileHeight = tileWidth
	tilePixels = planar.TilePixels

	// Columns is the number of tiles per row in Sheet.Image
	Columns = 16
)

// Sheet is a sequence of tiles of unpacked palette indices. Any trailing
// bytes short of a whole tile are ignored.
type Sheet []byte

// Len returns the number of whole tiles in s.
func (s Sheet) Len() int {
	return len(s) / tilePixels
}

// Tile returns tile i as an 8 by 8 image sharing the indices in s.
func (s Sheet) Tile(i int) (*image.Gray, bool) {
	if i < 0 || i >= s.Len() {
		return nil, false
	}
	return &image.Gray{
		Pix:    s[i*tilePixels : (i+1)*tilePixels : (i+1)*tilePixels],
		Stride: tileWidth,
		Rect:   image.Rect(0, 0, tileWidth, tileHeight),
	}, true
}

// Image lays the tiles out in a grid Columns tiles wide, tile i at column
// i%Columns and row i/Columns. Cells after the last tile are index 0.
func (s Sheet) Image() *image.Gray {
	n := s.Len()
	rows := (n + Columns - 1) / Columns
	m := image.NewGray(image.Rect(0, 0, Columns*tileWidth, rows*tileHeight))
	for i := 0; i < n; i++ {
		t, _ := s.Tile(i)
		p := image.Pt(i%Columns*tileWidth, i/Columns*tileHeight)
		draw.Draw(m, t.Bounds().Add(p), t, image.Point{}, draw.Src)
	}
	return m
}

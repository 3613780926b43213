/*
Package image converts images into sheets of 8 by 8 tiles of palette
indices.

True-color images are matched against a reference palette strip, at most
16 colors read left to right, with fully transparent pixels all treated as
the same color. A headered image carries its own strip in the first 16 rows
with the tiles below it. Grayscale images are used as-is, each intensity
being the palette index.

Tiles are emitted either in plain row-major order or interleaved for 64 by
64 pixel supertiles, where each row of 8 tiles is followed by the row 4
below it so that 16 by 16 sprites line up in a 16 tile wide VRAM layout.
*/
package image

import (
	"github.com/bodgit/snesgfx/planar"
)

const (
	tileWidth        = planar.TileWidth
	tileHeight       = tileWidth
	tilePixels       = planar.TilePixels
	colorsPerPalette = 16
	headerHeight     = 16
	superTile        = 8
	superTileHalf    = superTile >> 1
)

// Order selects the order in which tiles are emitted.
type Order int

// Supported tile orders
const (
	// Linear emits tiles row by row across the whole image
	Linear Order = iota
	// Interleaved emits tiles supertile by supertile, pairing each tile
	// row with the row 4 below it
	Interleaved
)

func (o Order) String() string {
	switch o {
	case Linear:
		return "linear"
	case Interleaved:
		return "interleaved"
	}
	return "unknown"
}

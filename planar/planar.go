/*
Package planar implements the Super Nintendo bitplane tile format.

A tile is 8 by 8 pixels, each pixel a palette index of up to depth bits.
Each bit of the index is stored in its own plane, one byte per row with the
leftmost pixel in the most significant bit. Planes are stored in pairs; for
each row the byte of the even plane is followed by the byte of the odd
plane, so a pair occupies 16 bytes:

	pair 0: row0 p0, row0 p1, row1 p0, row1 p1, ... row7 p1
	pair 1: row0 p2, row0 p3, ...

A packed tile is therefore 8*depth bytes long; 16, 32 and 64 bytes for the
2, 4 and 8 bit formats.
*/
package planar

import (
	"errors"
)

const (
	// TileWidth is the width and height of a tile in pixels
	TileWidth = 8
	// TilePixels is the number of palette indices in a tile
	TilePixels = TileWidth * TileWidth

	pairBytes = TileWidth * 2
	maxDepth  = 8
)

// ErrDepth is returned for a depth that can't be represented in a byte.
var ErrDepth = errors.New("planar: invalid depth")

// Tile holds 64 palette indices in row-major order.
type Tile [TilePixels]byte

// Depth is the number of bits per pixel.
type Depth int

// Depths used by the console
const (
	Depth2 Depth = 2
	Depth4 Depth = 4
	Depth8 Depth = 8
)

// Size returns the number of bytes in a packed tile.
func (d Depth) Size() int {
	return TileWidth * int(d)
}

// Colors returns the number of distinct indices a pixel can hold.
func (d Depth) Colors() int {
	return 1 << uint(d)
}

// Format returns the format for d, or nil if d is not one of Depth2, Depth4
// or Depth8. Use NewFormat for other depths.
func (d Depth) Format() Format {
	switch d {
	case Depth2:
		return Planar2
	case Depth4:
		return Planar4
	case Depth8:
		return Planar8
	}
	return nil
}

// Format packs and unpacks single tiles at a fixed depth.
type Format interface {
	// Depth returns the number of bits per pixel
	Depth() Depth
	// Size returns the number of bytes in a packed tile
	Size() int
	// Pack appends the packed form of t to dst and returns the result
	Pack(dst []byte, t *Tile) []byte
	// Unpack decodes the first Size() bytes of src into t
	Unpack(t *Tile, src []byte)
}

// The formats used by the console.
var (
	Planar2 Format = planar2{}
	Planar4 Format = planar4{}
	Planar8 Format = planar8{}
)

// NewFormat returns a format for any depth from 1 to 8 bits.
//
// Odd depths are lossy when packing; only complete plane pairs are written
// so the last plane is dropped, whereas unpacking reads the unpaired plane
// from the 8 bytes following the last pair.
func NewFormat(d Depth) (Format, error) {
	if d < 1 || d > maxDepth {
		return nil, ErrDepth
	}
	if f := d.Format(); f != nil {
		return f, nil
	}
	return generic(d), nil
}

type planar2 struct{}

func (planar2) Depth() Depth { return Depth2 }

func (planar2) Size() int { return Depth2.Size() }

func (planar2) Pack(dst []byte, t *Tile) []byte {
	return packPairs(dst, t, 1)
}

func (planar2) Unpack(t *Tile, src []byte) {
	var rows [Depth2]byte
	for y := 0; y < TileWidth; y++ {
		rows[0], rows[1] = src[y*2], src[y*2+1]
		unpackRow(t[y*TileWidth:], rows[:])
	}
}

type planar4 struct{}

func (planar4) Depth() Depth { return Depth4 }

func (planar4) Size() int { return Depth4.Size() }

func (planar4) Pack(dst []byte, t *Tile) []byte {
	return packPairs(dst, t, 2)
}

func (planar4) Unpack(t *Tile, src []byte) {
	var rows [Depth4]byte
	for y := 0; y < TileWidth; y++ {
		for p := 0; p < 2; p++ {
			rows[p*2] = src[p*pairBytes+y*2]
			rows[p*2+1] = src[p*pairBytes+y*2+1]
		}
		unpackRow(t[y*TileWidth:], rows[:])
	}
}

type planar8 struct{}

func (planar8) Depth() Depth { return Depth8 }

func (planar8) Size() int { return Depth8.Size() }

func (planar8) Pack(dst []byte, t *Tile) []byte {
	return packPairs(dst, t, 4)
}

func (planar8) Unpack(t *Tile, src []byte) {
	var rows [Depth8]byte
	for y := 0; y < TileWidth; y++ {
		for p := 0; p < 4; p++ {
			rows[p*2] = src[p*pairBytes+y*2]
			rows[p*2+1] = src[p*pairBytes+y*2+1]
		}
		unpackRow(t[y*TileWidth:], rows[:])
	}
}

type generic Depth

func (g generic) Depth() Depth { return Depth(g) }

func (g generic) Size() int { return Depth(g).Size() }

func (g generic) Pack(dst []byte, t *Tile) []byte {
	return packPairs(dst, t, int(g)/2)
}

func (g generic) Unpack(t *Tile, src []byte) {
	depth := int(g)
	rows := make([]byte, depth)
	for y := 0; y < TileWidth; y++ {
		for i := range rows {
			if depth&1 != 0 && i == depth-1 {
				// Unpaired last plane, one byte per row
				rows[i] = src[(i&^1)*TileWidth+y]
				continue
			}
			rows[i] = src[(i&^1)*TileWidth+y*2+i&1]
		}
		unpackRow(t[y*TileWidth:], rows)
	}
}

// unpackRow combines one byte per plane into 8 pixels, plane 0 being the
// least significant bit of each index.
func unpackRow(dst []byte, rows []byte) {
	for x := 0; x < TileWidth; x++ {
		bit := uint(TileWidth - 1 - x)
		var pixel byte
		for i, b := range rows {
			pixel |= (b >> bit & 1) << uint(i)
		}
		dst[x] = pixel
	}
}

// planeRow extracts bit plane from 8 pixels, leftmost pixel in the most
// significant bit.
func planeRow(row []byte, plane uint) byte {
	var b byte
	for _, c := range row[:TileWidth] {
		b = b<<1 | c>>plane&1
	}
	return b
}

func packPairs(dst []byte, t *Tile, pairs int) []byte {
	for p := 0; p < pairs; p++ {
		for y := 0; y < TileWidth; y++ {
			row := t[y*TileWidth : (y+1)*TileWidth]
			dst = append(dst, planeRow(row, uint(p*2)), planeRow(row, uint(p*2+1)))
		}
	}
	return dst
}

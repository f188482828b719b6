// Package raster converts 1-bit images into the byte format the printer's
// PRINT_DATA command expects: row-major pixels packed eight to a byte,
// first pixel in the most significant bit, where a set bit burns a dot.
package raster

import (
	"errors"
	"fmt"
	"image"
)

// Width is the fixed print head width in pixels. Every printed row spans the
// full head, so row lengths are byte-aligned by construction.
const Width = 384

// ErrInvalidBitmapLength means the bitmap's total pixel count is not a
// multiple of eight and cannot be packed into whole bytes.
var ErrInvalidBitmapLength = errors.New("bitmap pixel count not byte-aligned")

// Bitmap is a row-major 1-bit image. true marks a printed (black) dot.
type Bitmap [][]bool

// Pack flattens the bitmap row-major and packs each run of eight pixels into
// one byte, MSB first. The total pixel count must be a multiple of eight;
// rows themselves may be any length as packing runs across row boundaries.
func Pack(bm Bitmap) ([]byte, error) {
	total := 0
	for _, row := range bm {
		total += len(row)
	}
	if total%8 != 0 {
		return nil, fmt.Errorf("%w: %d pixels", ErrInvalidBitmapLength, total)
	}

	out := make([]byte, 0, total/8)
	var cur byte
	bit := 0
	for _, row := range bm {
		for _, px := range row {
			cur <<= 1
			if px {
				cur |= 1
			}
			bit++
			if bit == 8 {
				out = append(out, cur)
				cur, bit = 0, 0
			}
		}
	}
	return out, nil
}

// FromImage binarizes img into a Bitmap using a luminance threshold: pixels
// darker than mid-gray print. Rendering text or dithering photographs is the
// caller's concern; this handles already-prepared black-and-white artwork.
func FromImage(img image.Image) Bitmap {
	bounds := img.Bounds()
	bm := make(Bitmap, bounds.Dy())
	for y := range bm {
		row := make([]bool, bounds.Dx())
		for x := range row {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// ITU-R BT.601 luma on 16-bit channels.
			luma := (299*r + 587*g + 114*b) / 1000
			row[x] = luma < 0x8000
		}
		bm[y] = row
	}
	return bm
}

package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackAlternatingRow(t *testing.T) {
	row := []bool{true, false, true, false, true, false, true, false}
	out, err := Pack(Bitmap{row})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA}, out)
}

func TestPackBlankHeadRow(t *testing.T) {
	out, err := Pack(Bitmap{make([]bool, Width)})
	require.NoError(t, err)
	assert.Equal(t, make([]byte, Width/8), out)
}

func TestPackMSBFirst(t *testing.T) {
	row := make([]bool, 8)
	row[0] = true
	out, err := Pack(Bitmap{row})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80}, out)
}

func TestPackAcrossRowBoundaries(t *testing.T) {
	// Two 4-pixel rows pack into one byte: packing is over the flattened
	// pixel stream, not per row.
	bm := Bitmap{
		{true, true, true, true},
		{false, false, false, true},
	}
	out, err := Pack(bm)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xF1}, out)
}

func TestPackMisalignedBitmap(t *testing.T) {
	testCases := []struct {
		name string
		bm   Bitmap
	}{
		{"SinglePixel", Bitmap{{true}}},
		{"SevenPixels", Bitmap{make([]bool, 7)}},
		{"NinePixels", Bitmap{make([]bool, 8), {false}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Pack(tc.bm)
			assert.ErrorIs(t, err, ErrInvalidBitmapLength)
		})
	}
}

func TestPackEmptyBitmap(t *testing.T) {
	out, err := Pack(Bitmap{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFromImageThreshold(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 1))
	img.SetGray(0, 0, color.Gray{Y: 0x00}) // black: printed
	img.SetGray(1, 0, color.Gray{Y: 0x7F}) // dark gray: printed
	img.SetGray(2, 0, color.Gray{Y: 0x80}) // light gray: blank
	img.SetGray(3, 0, color.Gray{Y: 0xFF}) // white: blank

	bm := FromImage(img)
	require.Len(t, bm, 1)
	assert.Equal(t, []bool{true, true, false, false}, bm[0])
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(2, 3, 10, 4))
	for x := 2; x < 10; x++ {
		img.SetGray(x, 3, color.Gray{Y: 0x00})
	}

	bm := FromImage(img)
	require.Len(t, bm, 1)
	require.Len(t, bm[0], 8)
	for _, px := range bm[0] {
		assert.True(t, px)
	}
}

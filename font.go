package kfont

import (
	"image"
	"image/color"
)

// FontDesc describes the geometry of a console font: how many glyphs it
// has and how large each glyph is. A Height of 0 means "undefined, at
// most 32" — the legacy interface cannot report heights, and callers
// may derive one from bitmap content with [CharHeight].
//
// For [GetFont], Count is both input (how many glyph slots the caller's
// buffer provides) and output (how many glyphs the device reported).
type FontDesc struct {
	Count  uint32 // number of glyphs
	Width  uint32 // pixels per glyph row
	Height uint32 // visible rows per glyph, 0..32, 0 = unreported
}

// Bytewidth returns the number of bytes storing one glyph row of the
// given pixel width.
func Bytewidth(width uint32) uint32 {
	return (width + 7) / 8
}

// BufferSize returns the byte length a glyph bitmap buffer must have
// for the given glyph count and width. Every glyph occupies a full
// 32-row slot regardless of its visible height.
func BufferSize(count, width uint32) int {
	return int(count) * 32 * int(Bytewidth(width))
}

// Glyph returns the 32-row bitmap slot of glyph i, as a sub-slice of
// buf. Rows below the glyph's visible height are zero-filled.
func Glyph(buf []byte, i, width uint32) []byte {
	slot := 32 * Bytewidth(width)
	return buf[int(i*slot) : int(i*slot)+int(slot)]
}

// GlyphImage unpacks glyph i of a font bitmap into an alpha mask, one
// pixel per bitmap bit, most significant bit leftmost. A height of 0
// renders the full 32-row slot.
func GlyphImage(buf []byte, i, width, height uint32) *image.Alpha {
	if height == 0 || height > 32 {
		height = 32
	}
	bytewidth := Bytewidth(width)
	img := image.NewAlpha(image.Rect(0, 0, int(width), int(height)))
	slot := Glyph(buf, i, width)
	for y := uint32(0); y < height; y++ {
		row := slot[y*bytewidth : (y+1)*bytewidth]
		for x := uint32(0); x < width; x++ {
			if row[x/8]&(0x80>>(x%8)) != 0 {
				img.SetAlpha(int(x), int(y), color.Alpha{A: 0xFF})
			}
		}
	}
	return img
}

package kfont

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCharHeightBlankFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "console.kfont")
	defer teardown()
	//
	for _, count := range []uint32{1, 2, 100, 256} {
		for _, width := range []uint32{1, 8, 9, 16} {
			buf := make([]byte, BufferSize(count, width))
			if h := CharHeight(buf, count, width); h != 0 {
				t.Errorf("expected blank font (%d glyphs, width %d) to have height 0, has %d",
					count, width, h)
			}
		}
	}
}

func TestCharHeightSinglePixel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "console.kfont")
	defer teardown()
	//
	cases := []struct {
		count, width, glyph, row uint32
	}{
		{1, 8, 0, 0},
		{4, 8, 2, 13},
		{256, 8, 255, 31},
		{3, 9, 1, 7}, // bytewidth 2, pixel in the second row byte
		{2, 16, 1, 20},
	}
	for _, c := range cases {
		buf := make([]byte, BufferSize(c.count, c.width))
		bytewidth := Bytewidth(c.width)
		buf[(32*c.glyph+c.row)*bytewidth+(bytewidth-1)] = 0x01
		if h := CharHeight(buf, c.count, c.width); h != c.row+1 {
			t.Errorf("expected pixel in glyph %d, row %d to give height %d, got %d",
				c.glyph, c.row, c.row+1, h)
		}
	}
}

func TestCharHeightTallestGlyphWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "console.kfont")
	defer teardown()
	//
	buf := make([]byte, BufferSize(4, 8))
	buf[32*0+5] = 0xFF  // glyph 0 used down to row 6
	buf[32*3+27] = 0x01 // glyph 3 used down to row 28
	if h := CharHeight(buf, 4, 8); h != 28 {
		t.Errorf("expected the tallest glyph to set the font height 28, got %d", h)
	}
	// restricting the scan to the shallow glyph must not see row 28
	if h := CharHeight(buf, 1, 8); h != 6 {
		t.Errorf("expected height 6 for glyph 0 alone, got %d", h)
	}
}

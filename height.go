package kfont

// CharHeight computes the effective height of a font bitmap: the
// smallest number of top rows containing every set pixel of every
// glyph. Candidate rows are scanned from 32 downwards and the first row
// with a set pixel in any glyph wins, so a single tall glyph forces the
// whole font to full height. A completely blank buffer yields 0.
//
// buf must hold at least count full glyph slots, i.e.
// BufferSize(count, width) bytes.
func CharHeight(buf []byte, count, width uint32) uint32 {
	bytewidth := Bytewidth(width)
	for h := uint32(32); h > 0; h-- {
		for i := uint32(0); i < count; i++ {
			row := (32*i + h - 1) * bytewidth
			for x := uint32(0); x < bytewidth; x++ {
				if buf[row+x] != 0 {
					return h
				}
			}
		}
	}
	return 0
}

package kfont

import (
	"fmt"
	"math"
	"unsafe"
)

// putFontOpRounded retries KDFONTOP with the glyph count rounded up to
// 256 or 512: some kernels accept only the two canonical legacy sizes
// through the modern interface. The original glyph data is copied into
// the prefix of a zero-filled scratch buffer which lives only for this
// one attempt.
func putFontOpRounded(dev Device, buf []byte, count, width, height uint32) error {
	rounded := uint32(256)
	if count > 256 {
		rounded = 512
	}
	tracer().Debugf("KDFONTOP rejected glyph count %d, retrying with %d", count, rounded)

	scratch := make([]byte, 32*rounded)
	copy(scratch, buf[:32*count])

	cfo := consoleFontOp{
		op:        fontOpSet,
		flags:     0,
		width:     width,
		height:    height,
		charcount: rounded,
		data:      unsafe.SliceData(scratch),
	}
	if err := dev.Ioctl(KDFONTOP, unsafe.Pointer(&cfo)); err != nil {
		return &OpError{Op: "KDFONTOP", Err: err}
	}
	return nil
}

// PutFont loads a font into the console device, trying KDFONTOP,
// PIO_FONTX and PIO_FONT in that order. A width of 0 defaults to 8; a
// height of 0 is derived from the bitmap content with [CharHeight].
//
// Widths other than 8 exist only in the modern interface, so when
// KDFONTOP is unavailable and width != 8 the call fails rather than
// falling through. Note that the legacy PIO_FONT interface always loads
// exactly 256 glyphs of width 8, no matter which count was requested;
// this is long-standing device behavior that legacy callers rely on,
// and it is preserved here.
func PutFont(dev Device, buf []byte, count, width, height uint32) error {
	if width == 0 {
		width = 8
	}
	if height == 0 {
		height = CharHeight(buf, count, width)
	}

	// First attempt: KDFONTOP
	cfo := consoleFontOp{
		op:        fontOpSet,
		flags:     0,
		width:     width,
		height:    height,
		charcount: count,
		data:      unsafe.SliceData(buf),
	}
	err := dev.Ioctl(KDFONTOP, unsafe.Pointer(&cfo))
	if err == nil {
		return nil
	}
	status, cerr := classify("KDFONTOP", err)
	if status == probeFailed {
		return cerr
	}
	if width != 8 {
		// lower generations cannot represent this width
		tracer().Errorf("ioctl(KDFONTOP): %v", err)
		return &OpError{Op: "KDFONTOP", Err: err}
	}

	// Variation on the first attempt: round the count up to 256 or 512
	// and try again.
	if count != 256 && count < 512 {
		if err := putFontOpRounded(dev, buf, count, width, height); err == nil {
			return nil
		}
	}

	// Second attempt: PIO_FONTX
	if count > math.MaxUint16 {
		return fmt.Errorf("PIO_FONTX: the number of characters in the font cannot be more than %d", math.MaxUint16)
	}
	cfd := consoleFontDesc{
		charcount:  uint16(count),
		charheight: uint16(height),
		chardata:   unsafe.SliceData(buf),
	}
	err = dev.Ioctl(PIO_FONTX, unsafe.Pointer(&cfd))
	if err == nil {
		return nil
	}
	if status, cerr = classify("PIO_FONTX", err); status == probeFailed {
		tracer().Errorf("PIO_FONTX: %d,%dx%d failed", count, width, height)
		return cerr
	}

	// Third attempt: PIO_FONT. Loads precisely 256 glyphs, independent
	// of count.
	if err := dev.Ioctl(PIO_FONT, unsafe.Pointer(unsafe.SliceData(buf))); err != nil {
		tracer().Errorf("ioctl(PIO_FONT): %d,%dx%d failed: %v", count, width, height, err)
		return &OpError{Op: "PIO_FONT", Err: err}
	}
	return nil
}

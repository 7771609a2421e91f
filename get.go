package kfont

import (
	"fmt"
	"math"
	"unsafe"
)

// getFontOp probes the modern KDFONTOP interface. It requests glyph
// slots of up to 32x32 pixels and reports the geometry the device
// answered with.
func getFontOp(dev Device, buf []byte, font *FontDesc) (outcome, error) {
	cfo := consoleFontOp{
		op:        fontOpGet,
		flags:     0,
		width:     32,
		height:    32,
		charcount: font.Count,
		data:      unsafe.SliceData(buf),
	}
	if err := dev.Ioctl(KDFONTOP, unsafe.Pointer(&cfo)); err != nil {
		return classify("KDFONTOP", err)
	}
	font.Count = cfo.charcount
	font.Width = cfo.width
	font.Height = cfo.height
	return probeOK, nil
}

// getFontX probes the mid-generation GIO_FONTX interface. Glyph counts
// are limited to 16 bits and the width is always 8 — the parameter
// record cannot express anything else.
func getFontX(dev Device, buf []byte, font *FontDesc) (outcome, error) {
	if font.Count > math.MaxUint16 {
		return probeFailed, fmt.Errorf("GIO_FONTX: the number of characters in the font cannot be more than %d", math.MaxUint16)
	}
	cfd := consoleFontDesc{
		charcount:  uint16(font.Count),
		charheight: 0,
		chardata:   unsafe.SliceData(buf),
	}
	if err := dev.Ioctl(GIO_FONTX, unsafe.Pointer(&cfd)); err != nil {
		return classify("GIO_FONTX", err)
	}
	font.Count = uint32(cfd.charcount)
	font.Height = uint32(cfd.charheight)
	font.Width = 8 // this interface does not support other widths
	return probeOK, nil
}

// getFontLegacy probes the legacy GIO_FONT interface: exactly 256
// glyphs of width 8, height unreported. It has no way to signal
// "unsupported", so every failure is terminal.
func getFontLegacy(dev Device, buf []byte, font *FontDesc) (outcome, error) {
	if font.Count != 256 {
		return probeFailed, fmt.Errorf("GIO_FONT: glyph count must be 256, not %d", font.Count)
	}
	if buf == nil {
		return probeFailed, fmt.Errorf("GIO_FONT: reading font data needs a buffer")
	}
	if err := dev.Ioctl(GIO_FONT, unsafe.Pointer(unsafe.SliceData(buf))); err != nil {
		tracer().Errorf("ioctl(GIO_FONT): %v", err)
		return probeFailed, &OpError{Op: "GIO_FONT", Err: err}
	}
	font.Count = 256
	font.Height = 0 // undefined, at most 32
	font.Width = 8
	return probeOK, nil
}

// GetFont reads the console's current font through the most capable
// interface the running kernel supports, trying KDFONTOP, GIO_FONTX and
// GIO_FONT in that order. font.Count states on entry how many glyph
// slots buf provides; on success the descriptor holds the geometry the
// device reported.
//
// buf may be nil when only the geometry is of interest; the probes then
// report count, width and height without transferring glyph data (the
// legacy interface cannot do that and fails).
func GetFont(dev Device, buf []byte, font *FontDesc) error {
	status, err := getFontOp(dev, buf, font)
	if status != probeUnsupported {
		return err
	}
	status, err = getFontX(dev, buf, font)
	if status != probeUnsupported {
		return err
	}
	_, err = getFontLegacy(dev, buf, font)
	return err
}

// GetFontSize returns the glyph count of the console's current font. If
// the query itself fails, 256 is returned as a defined fallback — not
// an error.
func GetFontSize(dev Device) uint32 {
	var font FontDesc
	if err := GetFont(dev, nil, &font); err != nil {
		return 256
	}
	return font.Count
}

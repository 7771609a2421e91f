package kfont

import (
	"unsafe"
)

// Device is the minimal surface of an open console device handle: the
// ability to issue one console control call. The production
// implementation is console.Device; tests substitute scripted fakes.
//
// Implementations must return the raw failure (normally a unix.Errno,
// possibly wrapped) so that callers can tell "interface unknown to this
// kernel" apart from genuine failures.
type Device interface {
	Ioctl(req uintptr, arg unsafe.Pointer) error
}

// Console ioctl requests from <linux/kd.h>. 0x4B is 'K', to avoid
// collision with termios and vt.
const (
	GIO_FONT      uintptr = 0x4B60 // gets font in expanded form
	PIO_FONT      uintptr = 0x4B61 // use font in expanded form
	GIO_FONTX     uintptr = 0x4B6B // get font using struct consolefontdesc
	PIO_FONTX     uintptr = 0x4B6C // set font using struct consolefontdesc
	PIO_FONTRESET uintptr = 0x4B6D // reset to default font
	KDFONTOP      uintptr = 0x4B72 // font operation via struct console_font_op
)

// KDFONTOP operation codes.
const (
	fontOpSet = 0 // KD_FONT_OP_SET
	fontOpGet = 1 // KD_FONT_OP_GET
)

// consoleFontOp mirrors struct console_font_op. Field order and widths
// must stay bit-compatible with the kernel's definition.
type consoleFontOp struct {
	op        uint32
	flags     uint32
	width     uint32
	height    uint32
	charcount uint32
	data      *byte
}

// consoleFontDesc mirrors struct consolefontdesc, the parameter record
// of the mid-generation GIO_FONTX/PIO_FONTX interface.
type consoleFontDesc struct {
	charcount  uint16
	charheight uint16
	chardata   *byte
}

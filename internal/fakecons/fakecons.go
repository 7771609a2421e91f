// Package fakecons emulates the kernel side of the Linux console font
// ioctls, so that the probing cascade can be tested against "kernels"
// of any age without a real console device.
//
// The package mirrors the kernel's own parameter records instead of
// importing them from anywhere: a fake kernel owns its ABI.
package fakecons

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Console ioctl requests from <linux/kd.h>.
const (
	GIO_FONT      uintptr = 0x4B60
	PIO_FONT      uintptr = 0x4B61
	GIO_FONTX     uintptr = 0x4B6B
	PIO_FONTX     uintptr = 0x4B6C
	PIO_FONTRESET uintptr = 0x4B6D
	KDFONTOP      uintptr = 0x4B72
)

// ConsoleFontOp mirrors struct console_font_op (KDFONTOP parameter).
type ConsoleFontOp struct {
	Op        uint32
	Flags     uint32
	Width     uint32
	Height    uint32
	Charcount uint32
	Data      *byte
}

// ConsoleFontDesc mirrors struct consolefontdesc (GIO_FONTX/PIO_FONTX
// parameter).
type ConsoleFontDesc struct {
	Charcount  uint16
	Charheight uint16
	Chardata   *byte
}

// Device is a scripted console device. Each handler answers one
// generation of the font interface; a nil handler answers ENOSYS, like
// a kernel which never heard of that generation. Requests are recorded
// in Calls in invocation order.
type Device struct {
	HandleFontOp func(cfo *ConsoleFontOp) error   // KDFONTOP
	HandleFontX  func(cfd *ConsoleFontDesc) error // GIO_FONTX / PIO_FONTX
	HandleFont   func(data *byte) error           // GIO_FONT / PIO_FONT
	HandleReset  func() error                     // PIO_FONTRESET

	Calls []string
}

var reqNames = map[uintptr]string{
	GIO_FONT:      "GIO_FONT",
	PIO_FONT:      "PIO_FONT",
	GIO_FONTX:     "GIO_FONTX",
	PIO_FONTX:     "PIO_FONTX",
	PIO_FONTRESET: "PIO_FONTRESET",
	KDFONTOP:      "KDFONTOP",
}

// Ioctl dispatches a control call to the scripted handlers.
func (d *Device) Ioctl(req uintptr, arg unsafe.Pointer) error {
	d.Calls = append(d.Calls, reqNames[req])
	switch req {
	case KDFONTOP:
		if d.HandleFontOp == nil {
			return unix.ENOSYS
		}
		return d.HandleFontOp((*ConsoleFontOp)(arg))
	case GIO_FONTX, PIO_FONTX:
		if d.HandleFontX == nil {
			return unix.ENOSYS
		}
		return d.HandleFontX((*ConsoleFontDesc)(arg))
	case GIO_FONT, PIO_FONT:
		if d.HandleFont == nil {
			return unix.ENOSYS
		}
		return d.HandleFont((*byte)(arg))
	case PIO_FONTRESET:
		if d.HandleReset == nil {
			return unix.ENOSYS
		}
		return d.HandleReset()
	}
	return unix.EINVAL
}

// Called reports whether a request of the given name was issued.
func (d *Device) Called(name string) bool {
	for _, c := range d.Calls {
		if c == name {
			return true
		}
	}
	return false
}

// Bytes adapts a kernel-side data pointer back into a byte slice of
// length n, for handlers that want to read or fill glyph data.
func Bytes(data *byte, n int) []byte {
	if data == nil {
		return nil
	}
	return unsafe.Slice(data, n)
}

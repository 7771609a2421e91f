//go:build linux

/*
Package console opens and validates the Linux console device whose font
the kfont package operates on.

Opening a console is mildly fiddly: depending on how the process is
started, the controlling terminal may or may not be a virtual console,
and the well-known device nodes differ between systems. [OpenConsole]
therefore walks the usual candidates (/dev/tty, /dev/tty0, /dev/vc/0,
/dev/console) and keeps the first one which answers the KDGKBTYPE
keyboard-type ioctl with a sane value — the traditional test for "is
this really a console".

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package console

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// tracer writes to trace with key 'console.device'
func tracer() tracing.Trace {
	return tracing.Select("console.device")
}

// Keyboard-type ioctl and its answers, from <linux/kd.h>.
const (
	kdgkbtype = 0x4B33
	kb84      = 0x01
	kb101     = 0x02
)

// consolePaths are the device nodes tried by OpenConsole, in order.
var consolePaths = []string{
	"/dev/tty",
	"/dev/tty0",
	"/dev/vc/0",
	"/dev/console",
}

// Device is an open handle to a console device. It satisfies the
// kfont.Device interface.
type Device struct {
	f *os.File
}

// Open opens the console device at path and verifies that it really is
// a console. The device is opened read-write if possible, falling back
// to write-only and then read-only — font ioctls work on any of these.
func Open(path string) (*Device, error) {
	var f *os.File
	var err error
	for _, flags := range []int{os.O_RDWR, os.O_WRONLY, os.O_RDONLY} {
		if f, err = os.OpenFile(path, flags, 0); err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("console: cannot open %s: %w", path, err)
	}
	if !isConsole(f.Fd()) {
		f.Close()
		return nil, fmt.Errorf("console: %s is not a console device", path)
	}
	tracer().Debugf("opened console device %s", path)
	return &Device{f: f}, nil
}

// OpenConsole opens the first usable console device node. It is the
// equivalent of Open for callers that do not care which node they get.
func OpenConsole() (*Device, error) {
	for _, path := range consolePaths {
		if dev, err := Open(path); err == nil {
			return dev, nil
		}
	}
	return nil, fmt.Errorf("console: cannot find a usable console device (tried %v)", consolePaths)
}

// isConsole checks the traditional way: a console answers KDGKBTYPE
// with one of the two known keyboard types.
func isConsole(fd uintptr) bool {
	if !term.IsTerminal(int(fd)) {
		return false
	}
	var kbtype byte
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, kdgkbtype, uintptr(unsafe.Pointer(&kbtype)))
	return errno == 0 && (kbtype == kb101 || kbtype == kb84)
}

// Ioctl issues one console control call on the device.
func (d *Device) Ioctl(req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Close releases the device handle.
func (d *Device) Close() error {
	return d.f.Close()
}

// File returns the underlying file of the device handle.
func (d *Device) File() *os.File {
	return d.f
}

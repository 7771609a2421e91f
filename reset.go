package kfont

import "unsafe"

// RestoreFont resets the console to its default font with a single
// PIO_FONTRESET call. There is no fallback and no retry: older kernels
// have no equivalent operation, so any failure is reported verbatim.
func RestoreFont(dev Device) error {
	if err := dev.Ioctl(PIO_FONTRESET, unsafe.Pointer(nil)); err != nil {
		tracer().Errorf("ioctl(PIO_FONTRESET): %v", err)
		return &OpError{Op: "PIO_FONTRESET", Err: err}
	}
	return nil
}

package kfont

// OpError records a failed console control call together with the name
// of the ioctl request that caused it. The underlying cause — usually a
// unix.Errno — is preserved for errors.Is / errors.As.
type OpError struct {
	Op  string // ioctl request name, e.g. "KDFONTOP"
	Err error  // underlying cause
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return "ioctl(" + e.Op + "): " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *OpError) Unwrap() error {
	return e.Err
}

package kfont

import (
	"errors"

	"golang.org/x/sys/unix"
)

// outcome classifies the result of probing one generation of the font
// interface. The set is closed: probes either succeed, find the
// interface unknown to the running kernel (cascade to the next older
// generation), or fail for real (terminal).
type outcome int

const (
	probeOK outcome = iota
	probeUnsupported
	probeFailed
)

// classify maps an ioctl failure to a probe outcome. ENOSYS and EINVAL
// mean the kernel does not recognize the request or its parameter
// shape; everything else (permission, I/O, resource exhaustion) aborts
// the cascade.
func classify(op string, err error) (outcome, error) {
	if errors.Is(err, unix.ENOSYS) || errors.Is(err, unix.EINVAL) {
		tracer().Debugf("ioctl(%s) not supported by this kernel", op)
		return probeUnsupported, nil
	}
	tracer().Errorf("ioctl(%s): %v", op, err)
	return probeFailed, &OpError{Op: op, Err: err}
}

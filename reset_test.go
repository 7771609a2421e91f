package kfont

import (
	"errors"
	"testing"

	"github.com/npillmayer/kfont/internal/fakecons"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/sys/unix"
)

func TestRestoreFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "console.kfont")
	defer teardown()
	//
	dev := &fakecons.Device{
		HandleReset: func() error { return nil },
	}
	if err := RestoreFont(dev); err != nil {
		t.Fatalf("expected font reset to succeed, got %v", err)
	}
	if len(dev.Calls) != 1 || dev.Calls[0] != "PIO_FONTRESET" {
		t.Errorf("expected a single PIO_FONTRESET ioctl, saw %v", dev.Calls)
	}
}

func TestRestoreFontFailureIsVerbatim(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "console.kfont")
	defer teardown()
	//
	dev := &fakecons.Device{
		HandleReset: func() error { return unix.EIO },
	}
	err := RestoreFont(dev)
	if err == nil {
		t.Fatal("expected the reset failure to propagate")
	}
	if !errors.Is(err, unix.EIO) {
		t.Errorf("expected the underlying EIO to be preserved, got %v", err)
	}
	if len(dev.Calls) != 1 {
		t.Errorf("reset must never be retried, saw %v", dev.Calls)
	}
}

func TestRestoreFontNoFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "console.kfont")
	defer teardown()
	//
	dev := &fakecons.Device{} // PIO_FONTRESET unknown to this kernel
	err := RestoreFont(dev)
	if err == nil {
		t.Fatal("expected an error on kernels without PIO_FONTRESET")
	}
	if !errors.Is(err, unix.ENOSYS) {
		t.Errorf("expected the underlying ENOSYS to be preserved, got %v", err)
	}
	if len(dev.Calls) != 1 {
		t.Errorf("there is no fallback for reset, saw %v", dev.Calls)
	}
}

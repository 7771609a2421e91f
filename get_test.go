package kfont

import (
	"errors"
	"testing"

	"github.com/npillmayer/kfont/internal/fakecons"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/sys/unix"
)

func TestGetFontModernKernel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "console.kfont")
	defer teardown()
	//
	dev := &fakecons.Device{
		HandleFontOp: func(cfo *fakecons.ConsoleFontOp) error {
			cfo.Charcount = 512
			cfo.Width = 16
			cfo.Height = 32
			return nil
		},
	}
	font := FontDesc{Count: 512}
	buf := make([]byte, BufferSize(512, 32))
	if err := GetFont(dev, buf, &font); err != nil {
		t.Fatalf("expected KDFONTOP read to succeed, got %v", err)
	}
	if font.Count != 512 || font.Width != 16 || font.Height != 32 {
		t.Errorf("expected geometry 512,16x32, got %d,%dx%d", font.Count, font.Width, font.Height)
	}
	if len(dev.Calls) != 1 {
		t.Errorf("expected exactly one ioctl on a modern kernel, saw %v", dev.Calls)
	}
}

func TestGetFontFallsBackToFontX(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "console.kfont")
	defer teardown()
	//
	dev := &fakecons.Device{
		HandleFontX: func(cfd *fakecons.ConsoleFontDesc) error {
			cfd.Charcount = 128
			cfd.Charheight = 14
			return nil
		},
	}
	font := FontDesc{Count: 256}
	if err := GetFont(dev, make([]byte, BufferSize(256, 8)), &font); err != nil {
		t.Fatalf("expected GIO_FONTX fallback to succeed, got %v", err)
	}
	if font.Count != 128 || font.Width != 8 || font.Height != 14 {
		t.Errorf("expected geometry 128,8x14, got %d,%dx%d", font.Count, font.Width, font.Height)
	}
	if dev.Called("GIO_FONT") {
		t.Errorf("legacy interface must not be probed after a GIO_FONTX success, calls: %v", dev.Calls)
	}
}

func TestGetFontHardErrorStopsCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "console.kfont")
	defer teardown()
	//
	dev := &fakecons.Device{
		HandleFontOp: func(*fakecons.ConsoleFontOp) error { return unix.EPERM },
	}
	err := GetFont(dev, nil, &FontDesc{Count: 256})
	if err == nil {
		t.Fatal("expected EPERM to abort the cascade with an error")
	}
	if !errors.Is(err, unix.EPERM) {
		t.Errorf("expected the underlying EPERM to be preserved, got %v", err)
	}
	var operr *OpError
	if !errors.As(err, &operr) || operr.Op != "KDFONTOP" {
		t.Errorf("expected an OpError for KDFONTOP, got %v", err)
	}
	if dev.Called("GIO_FONTX") || dev.Called("GIO_FONT") {
		t.Errorf("hard errors must not reach older interfaces, calls: %v", dev.Calls)
	}
}

func TestGetFontLegacyKernel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "console.kfont")
	defer teardown()
	//
	dev := &fakecons.Device{
		HandleFont: func(data *byte) error {
			fakecons.Bytes(data, BufferSize(256, 8))[3] = 0xAA
			return nil
		},
	}
	font := FontDesc{Count: 256}
	buf := make([]byte, BufferSize(256, 8))
	if err := GetFont(dev, buf, &font); err != nil {
		t.Fatalf("expected GIO_FONT fallback to succeed, got %v", err)
	}
	if font.Count != 256 || font.Width != 8 || font.Height != 0 {
		t.Errorf("expected geometry 256,8x0 (height unreported), got %d,%dx%d",
			font.Count, font.Width, font.Height)
	}
	if buf[3] != 0xAA {
		t.Error("expected glyph data to arrive in the caller's buffer")
	}
}

func TestGetFontLegacyNeedsBuffer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "console.kfont")
	defer teardown()
	//
	dev := &fakecons.Device{
		HandleFont: func(*byte) error { return nil },
	}
	if err := GetFont(dev, nil, &FontDesc{Count: 256}); err == nil {
		t.Error("expected a query-only read to fail on a legacy-only kernel")
	}
	if dev.Called("GIO_FONT") {
		t.Errorf("GIO_FONT must not be issued without a buffer, calls: %v", dev.Calls)
	}
}

func TestGetFontLegacyNeedsCount256(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "console.kfont")
	defer teardown()
	//
	dev := &fakecons.Device{
		HandleFont: func(*byte) error { return nil },
	}
	font := FontDesc{Count: 100}
	if err := GetFont(dev, make([]byte, BufferSize(256, 8)), &font); err == nil {
		t.Error("expected the legacy interface to reject a count other than 256")
	}
	if dev.Called("GIO_FONT") {
		t.Errorf("GIO_FONT must not be issued with count != 256, calls: %v", dev.Calls)
	}
}

func TestGetFontXCountCeiling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "console.kfont")
	defer teardown()
	//
	dev := &fakecons.Device{} // no interface supported
	font := FontDesc{Count: 70000}
	if err := GetFont(dev, nil, &font); err == nil {
		t.Error("expected a count beyond 65535 to fail at the GIO_FONTX stage")
	}
	if dev.Called("GIO_FONTX") {
		t.Errorf("the ceiling must be checked before issuing GIO_FONTX, calls: %v", dev.Calls)
	}
}

func TestGetFontSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "console.kfont")
	defer teardown()
	//
	dev := &fakecons.Device{
		HandleFontOp: func(cfo *fakecons.ConsoleFontOp) error {
			cfo.Charcount = 512
			cfo.Width = 8
			cfo.Height = 8
			return nil
		},
	}
	if n := GetFontSize(dev); n != 512 {
		t.Errorf("expected reported font size 512, got %d", n)
	}
}

func TestGetFontSizeFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "console.kfont")
	defer teardown()
	//
	dev := &fakecons.Device{} // every interface answers ENOSYS
	if n := GetFontSize(dev); n != 256 {
		t.Errorf("expected the defined fallback size 256, got %d", n)
	}
}

/*
Package kfont reads and writes the bitmap font of a Linux text console.

The kernel's font-control interface has gone through three incompatible
generations, and which one a running kernel answers to depends on its
age and configuration:

▪︎ KDFONTOP (modern): variable glyph width and height, large character
counts.

▪︎ GIO_FONTX / PIO_FONTX (mid): glyphs are always 8 pixels wide, at most
65535 characters, height is reported.

▪︎ GIO_FONT / PIO_FONT (legacy): exactly 256 glyphs of width 8, height
not reported at all.

Callers should not have to care which generation they are talking to.
[GetFont] and [PutFont] therefore probe the interfaces from newest to
oldest and fall through transparently whenever the kernel signals that
an interface is unknown to it (ENOSYS or EINVAL); any other failure is
reported to the caller as-is. The probing order and the per-generation
quirks follow the behavior that console tools on Linux have relied on
for decades — including the legacy interface's habit of loading
exactly 256 glyphs no matter how many were requested.

Glyph bitmaps are exchanged in the kernel's slot layout: each glyph
occupies 32 rows of ceil(width/8) bytes, with rows below the glyph's
visible height zero-filled. See [FontDesc] for the geometry parameters.

Opening and validating a console device is not this package's business;
package [github.com/npillmayer/kfont/console] does that and hands out
handles satisfying the [Device] interface.

# Links

The ioctl surface is documented in the kernel's own headers
(<linux/kd.h>) and in ioctl_console(2).

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package kfont

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'console.kfont'
func tracer() tracing.Trace {
	return tracing.Select("console.kfont")
}

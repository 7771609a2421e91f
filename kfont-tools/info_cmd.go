package main

import (
	"github.com/npillmayer/kfont"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runInfoCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	applyTraceFlag(flags)
	dev := mustOpenConsole(flags)
	defer dev.Close()

	var font kfont.FontDesc
	if err := kfont.GetFont(dev, nil, &font); err != nil {
		fatalf("cannot query console font: %v", err)
	}
	pterm.Info.Println("Console font geometry")
	pterm.Printf("glyph count:  %d\n", font.Count)
	if font.Height == 0 {
		pterm.Printf("glyph size:   %dx? (height unreported by this kernel, at most 32)\n", font.Width)
	} else {
		pterm.Printf("glyph size:   %dx%d\n", font.Width, font.Height)
	}
	pterm.Printf("row bytes:    %d\n", kfont.Bytewidth(font.Width))
}

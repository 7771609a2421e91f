package main

import (
	"github.com/npillmayer/kfont"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runRestoreCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	applyTraceFlag(flags)
	dev := mustOpenConsole(flags)
	defer dev.Close()

	if err := kfont.RestoreFont(dev); err != nil {
		fatalf("cannot restore the default console font: %v", err)
	}
	pterm.Info.Println("Default console font restored")
}

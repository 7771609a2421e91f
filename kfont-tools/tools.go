package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/kfont/console"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'console.kfont'
func tracer() tracing.Trace {
	return tracing.Select("console.kfont")
}

func main() {
	initDisplay()
	initTracing()

	commando.
		SetExecutableName("kfont-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for inspecting, dumping and restoring Linux console fonts.")

	commando.
		Register("info").
		SetDescription("Query the geometry of the font currently loaded into the console, without transferring glyph data.").
		SetShortDescription("show font geometry").
		AddFlag("console,C", "console device node (default: probe the usual nodes)", commando.String, "-").
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runInfoCommand)

	commando.
		Register("dump").
		SetDescription("Read the font currently loaded into the console and write its glyphs to a PNG sheet.").
		SetShortDescription("dump font glyphs").
		AddFlag("console,C", "console device node (default: probe the usual nodes)", commando.String, "-").
		AddFlag("output,o", "output PNG file", commando.String, "kfont-dump.png").
		AddFlag("columns,c", "glyphs per sheet row", commando.Int, 16).
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runDumpCommand)

	commando.
		Register("restore").
		SetDescription("Reset the console to its default font.").
		SetShortDescription("restore default font").
		AddFlag("console,C", "console device node (default: probe the usual nodes)", commando.String, "-").
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runRestoreCommand)

	commando.Parse(nil)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.console.kfont":  "Error",
		"trace.console.device": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// applyTraceFlag sets the trace level for all of our namespaces.
func applyTraceFlag(flags map[string]commando.FlagValue) {
	level, err := flags["trace"].GetString()
	if err != nil {
		fatalf("invalid --trace flag: %v", err)
	}
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
		tracing.Select("console.device").SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
		tracing.Select("console.device").SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
		tracing.Select("console.device").SetTraceLevel(tracing.LevelError)
	default:
		fatalf("invalid trace level: %s", level)
	}
}

// mustOpenConsole opens the device named by --console, or probes the
// usual console nodes when the flag is unset.
func mustOpenConsole(flags map[string]commando.FlagValue) *console.Device {
	path, err := flags["console"].GetString()
	if err != nil {
		fatalf("invalid --console flag: %v", err)
	}
	path = strings.TrimSpace(path)
	if path == "" || path == "-" {
		dev, err := console.OpenConsole()
		if err != nil {
			fatalf("%v", err)
		}
		return dev
	}
	dev, err := console.Open(path)
	if err != nil {
		fatalf("%v", err)
	}
	return dev
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "kfont-tools: "+format+"\n", args...)
	os.Exit(1)
}

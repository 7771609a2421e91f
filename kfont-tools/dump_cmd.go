package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"github.com/npillmayer/kfont"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runDumpCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	applyTraceFlag(flags)
	outPath, err := flags["output"].GetString()
	if err != nil {
		fatalf("invalid --output flag: %v", err)
	}
	outPath = strings.TrimSpace(outPath)
	if outPath == "" {
		fatalf("output path is empty")
	}
	columns := mustFlagInt(flags["columns"], "columns")
	if columns <= 0 {
		fatalf("--columns must be > 0")
	}

	dev := mustOpenConsole(flags)
	defer dev.Close()

	// Size the buffer for the widest glyphs the modern interface can
	// deliver; older interfaces fill less of it.
	count := kfont.GetFontSize(dev)
	font := kfont.FontDesc{Count: count}
	buf := make([]byte, kfont.BufferSize(count, 32))
	if err := kfont.GetFont(dev, buf, &font); err != nil {
		fatalf("cannot read console font: %v", err)
	}
	height := font.Height
	if height == 0 {
		height = kfont.CharHeight(buf, font.Count, font.Width)
	}
	tracer().Infof("read console font: %d glyphs, %dx%d", font.Count, font.Width, height)

	sheet := glyphSheet(buf, font, height, columns)
	out, err := os.Create(outPath)
	if err != nil {
		fatalf("cannot create %s: %v", outPath, err)
	}
	defer out.Close()
	if err := png.Encode(out, sheet); err != nil {
		fatalf("cannot encode %s: %v", outPath, err)
	}
	pterm.Info.Printf("wrote %d glyphs (%dx%d) to %s\n", font.Count, font.Width, height, outPath)
}

// glyphSheet composes all glyphs of a font bitmap into one image,
// white on black, one pixel of padding around every glyph.
func glyphSheet(buf []byte, font kfont.FontDesc, height uint32, columns int) *image.RGBA {
	cellW := int(font.Width) + 2
	cellH := int(height) + 2
	rows := (int(font.Count) + columns - 1) / columns
	sheet := image.NewRGBA(image.Rect(0, 0, columns*cellW, rows*cellH))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	white := image.NewUniform(color.White)
	for i := uint32(0); i < font.Count; i++ {
		mask := kfont.GlyphImage(buf, i, font.Width, height)
		cellX := (int(i) % columns) * cellW
		cellY := (int(i) / columns) * cellH
		r := image.Rect(cellX+1, cellY+1, cellX+1+int(font.Width), cellY+1+int(height))
		draw.DrawMask(sheet, r, white, image.Point{}, mask, mask.Bounds().Min, draw.Over)
	}
	return sheet
}

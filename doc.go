// Package icongen renders placeholder icons: small square PNGs with a short
// label or symbol centered on a flat background.
//
// # Quick Start
//
//	import "github.com/gogpu/icongen"
//
//	// Write the built-in table to src/gfx/icons/*.png
//	if err := icongen.GenerateAllIcons(); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Or a single icon
//	if err := icongen.GenerateIcon("M", "music"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Generator
//
// A Generator carries the rendering parameters. The defaults are a 32×32
// canvas, RGB(240,240,240) background, RGB(80,80,80) text and
// DejaVu Sans Bold at 12pt:
//
//	g := icongen.New(
//	    icongen.WithOutputDir("assets/icons"),
//	    icongen.WithBorder(true),
//	)
//	results, err := g.GenerateAll(ctx, icongen.DefaultTable())
//
// # Fonts
//
// The font is resolved for every icon. When the font file is missing or
// unreadable, the built-in 7x13 bitmap face is used instead and no error is
// reported. Result.Font says which one drew the icon.
//
// # Errors
//
// Anything other than font loading (directory creation, file writes, PNG
// encoding) aborts the batch. Icons written before the failure stay on disk.
package icongen

// Package text resolves fonts and lays out short labels for icon rendering.
//
// The pipeline is small and strictly per call:
//
//   - Resolve: load the preferred TTF/OTF face, or fall back to the built-in
//     bitmap face. The returned Resolution says which path was taken.
//   - Measure: compute the pixel-snapped bounding box of a label.
//   - CenterOrigin: place that box in the middle of a canvas.
//   - Draw: rasterize the label so its box starts at the origin.
//
// # Example usage
//
//	res := text.Resolve("/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf", 12)
//	defer res.Close()
//
//	label := text.Normalize("MOV")
//	b := text.Measure(res.Face, label)
//	origin := text.CenterOrigin(32, 32, b)
//	text.Draw(img, res.Face, label, origin, b, color.Gray{Y: 80})
//
// # Fallback
//
// A font that cannot be read or parsed is never an error. Resolve returns
// KindFallback with the reason in Resolution.Err so callers can log or assert
// on it, and rendering continues with basicfont.Face7x13.
//
// # Missing glyphs
//
// Runes the resolved face cannot map are still drawn: TrueType faces render
// the .notdef box, the fallback face renders U+FFFD. Resolution.Missing
// reports them.
package text

package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders s onto dst so that its bounding box b, as returned by
// Measure for the same face and string, starts at origin.
func Draw(dst draw.Image, face font.Face, s string, origin image.Point, b Bounds, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(origin.X-b.MinX, origin.Y-b.MinY),
	}
	d.DrawString(s)
}

package text

import (
	"image"

	"golang.org/x/image/font"
)

// Bounds is a pixel-snapped glyph bounding box relative to the pen origin
// on the baseline. MinY is negative above the baseline.
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// Width returns the box width in pixels.
func (b Bounds) Width() int { return b.MaxX - b.MinX }

// Height returns the box height in pixels.
func (b Bounds) Height() int { return b.MaxY - b.MinY }

// Empty reports whether the box has no area.
func (b Bounds) Empty() bool { return b.MinX >= b.MaxX || b.MinY >= b.MaxY }

// Measure returns the rendered bounding box of s under face.
// Fractional edges are rounded outward.
func Measure(face font.Face, s string) Bounds {
	r, _ := font.BoundString(face, s)
	return Bounds{
		MinX: r.Min.X.Floor(),
		MinY: r.Min.Y.Floor(),
		MaxX: r.Max.X.Ceil(),
		MaxY: r.Max.Y.Ceil(),
	}
}

// CenterOrigin returns the top-left corner at which a box of b's size is
// centered in a width×height canvas. Each axis uses floor division of the
// leftover space, so odd leftovers put the extra pixel after the box and
// a box larger than the canvas gets a negative origin.
func CenterOrigin(width, height int, b Bounds) image.Point {
	return image.Point{
		X: floorDiv(width-b.Width(), 2),
		Y: floorDiv(height-b.Height(), 2),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

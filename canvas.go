package icongen

import (
	"bufio"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
)

// Canvas is an RGBA pixel buffer an icon is drawn into.
// Canvas implements draw.Image.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a transparent canvas with the given dimensions.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col RGBA) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// StrokeBorder draws a 1px frame along the canvas edge.
func (c *Canvas) StrokeBorder(col RGBA) {
	px := col.Color()
	w, h := c.Width(), c.Height()
	for x := 0; x < w; x++ {
		c.img.SetRGBA(x, 0, px)
		c.img.SetRGBA(x, h-1, px)
	}
	for y := 0; y < h; y++ {
		c.img.SetRGBA(0, y, px)
		c.img.SetRGBA(w-1, y, px)
	}
}

// SetPixel sets the color of a single pixel. Out of range writes are ignored.
func (c *Canvas) SetPixel(x, y int, col RGBA) {
	c.img.SetRGBA(x, y, col.Color())
}

// GetPixel returns the color of a single pixel.
func (c *Canvas) GetPixel(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Image returns the underlying image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.img.At(x, y)
}

// Set implements the draw.Image interface.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.img.Set(x, y, col)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the canvas to path as PNG, replacing any existing file.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is built from the icon table
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := c.EncodePNG(bw); err != nil {
		return err
	}
	return bw.Flush()
}

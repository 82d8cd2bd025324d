package icongen

import (
	"bytes"
	"errors"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewCanvas_InvalidSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 32}, {32, 0}, {-1, -1}} {
		if _, err := NewCanvas(sz[0], sz[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewCanvas(%d, %d) error = %v, want ErrInvalidSize", sz[0], sz[1], err)
		}
	}
}

func TestCanvas_Clear(t *testing.T) {
	c, err := NewCanvas(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	c.Clear(Background)

	want := Background.Color()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if got := c.GetPixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCanvas_StrokeBorder(t *testing.T) {
	c, _ := NewCanvas(5, 5)
	c.Clear(Background)
	c.StrokeBorder(BorderColor)

	edge := BorderColor.Color()
	inner := Background.Color()
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := inner
			if x == 0 || y == 0 || x == 4 || y == 4 {
				want = edge
			}
			if got := c.GetPixel(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCanvas_SetPixelOutOfRange(t *testing.T) {
	c, _ := NewCanvas(2, 2)
	c.SetPixel(-1, 0, Foreground)
	c.SetPixel(2, 2, Foreground)
	c.SetPixel(1, 1, Foreground)
	if got := c.GetPixel(1, 1); got != Foreground.Color() {
		t.Errorf("pixel (1,1) = %v, want %v", got, Foreground.Color())
	}
	if got := c.GetPixel(0, 0); got != (color.RGBA{}) {
		t.Errorf("pixel (0,0) = %v, want transparent", got)
	}
}

func TestCanvas_EncodePNG(t *testing.T) {
	c, _ := NewCanvas(32, 32)
	c.Clear(Background)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("decoded size = %dx%d, want 32x32", b.Dx(), b.Dy())
	}
}

func TestCanvas_SavePNGOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), 1<<16), 0o600); err != nil {
		t.Fatal(err)
	}

	c, _ := NewCanvas(8, 8)
	c.Clear(Foreground)
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("overwritten file does not decode: %v", err)
	}
}

func TestCanvas_SavePNGMissingDir(t *testing.T) {
	c, _ := NewCanvas(8, 8)
	err := c.SavePNG(filepath.Join(t.TempDir(), "absent", "icon.png"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("SavePNG error = %v, want os.ErrNotExist", err)
	}
}

func TestCanvas_DrawImage(t *testing.T) {
	c, _ := NewCanvas(4, 4)
	var dst draw.Image = c
	dst.Set(2, 1, color.RGBA{R: 80, G: 80, B: 80, A: 255})
	if got := c.GetPixel(2, 1); got != Foreground.Color() {
		t.Errorf("pixel (2,1) = %v, want %v", got, Foreground.Color())
	}
	if c.ColorModel() != color.RGBAModel {
		t.Error("ColorModel() should be RGBAModel")
	}
}

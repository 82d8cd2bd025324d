package icongen

import (
	"image/color"
	"testing"
)

func TestRGBA_Color(t *testing.T) {
	tests := []struct {
		name string
		in   RGBA
		want color.RGBA
	}{
		{"background", Background, color.RGBA{R: 240, G: 240, B: 240, A: 255}},
		{"foreground", Foreground, color.RGBA{R: 80, G: 80, B: 80, A: 255}},
		{"border", BorderColor, color.RGBA{R: 180, G: 180, B: 180, A: 255}},
		{"clamped", RGBA{R: 2, G: -1, B: 0.5, A: 1}, color.RGBA{R: 255, G: 0, B: 128, A: 255}},
		{"premultiplied", RGB(1, 1, 1).WithAlpha(0.5), color.RGBA{R: 128, G: 128, B: 128, A: 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Color(); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	in := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	if got := FromColor(in).Color(); got != in {
		t.Errorf("FromColor(%v).Color() = %v", in, got)
	}
}

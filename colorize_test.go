package julia

import (
	"image/color"
	"testing"
)

func TestGrayscaleScalesToMax(t *testing.T) {
	g := NewGrid(2)
	g.Set(0, 0, 0)
	g.Set(1, 0, 1)
	g.Set(0, 1, 2)
	g.Set(1, 1, 4)

	img := Grayscale(g)
	want := map[[2]int]uint8{
		{0, 0}: 0,
		{1, 0}: 63,
		{0, 1}: 127,
		{1, 1}: 255,
	}
	for cell, y := range want {
		if got := img.GrayAt(cell[0], cell[1]).Y; got != y {
			t.Errorf("pixel (%d,%d) = %d, want %d", cell[0], cell[1], got, y)
		}
	}
}

func TestGrayscaleAllZero(t *testing.T) {
	img := Grayscale(NewGrid(3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := img.GrayAt(x, y).Y; got != 0 {
				t.Errorf("pixel (%d,%d) = %d, want 0", x, y, got)
			}
		}
	}
}

// An all-zero grid stays black whatever the hue offset.
func TestColorizeAllZero(t *testing.T) {
	for _, offset := range []float64{0, 0.67, 0.9, 1.5} {
		img := Colorize(NewGrid(3), offset)
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if got := img.RGBAAt(x, y); got != (color.RGBA{A: 255}) {
					t.Errorf("offset %v: pixel (%d,%d) = %v, want opaque black", offset, x, y, got)
				}
			}
		}
	}
}

func TestColorizeEscapedPixels(t *testing.T) {
	g := NewGrid(2)
	g.Set(1, 0, 1)
	g.Set(0, 1, 2)

	img := Colorize(g, 0.67)

	if got := img.RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("bounded pixel = %v, want opaque black", got)
	}

	a := img.RGBAAt(1, 0)
	b := img.RGBAAt(0, 1)
	for _, px := range []color.RGBA{a, b} {
		if px.A != 255 {
			t.Errorf("escaped pixel alpha = %d, want 255", px.A)
		}
		if px.R == 0 && px.G == 0 && px.B == 0 {
			t.Error("escaped pixel is black")
		}
		// HSV value is 0.5, so the strongest channel sits near half scale.
		if m := max(px.R, max(px.G, px.B)); m < 120 || m > 135 {
			t.Errorf("strongest channel = %d, want about 127", m)
		}
	}
	if a == b {
		t.Errorf("counts 1 and 2 mapped to the same color %v", a)
	}
}

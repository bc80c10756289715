package julia

import (
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Grayscale renders the grid with counts scaled linearly so the largest
// escape count maps to white. Cells that never escaped stay black, and an
// all-zero grid produces an all-black image.
func Grayscale(g *Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Res, g.Res))
	max := g.Max()
	if max == 0 {
		return img
	}
	for yp := 0; yp < g.Res; yp++ {
		for xp := 0; xp < g.Res; xp++ {
			img.SetGray(xp, yp, color.Gray{Y: uint8(255 * g.At(xp, yp) / max)})
		}
	}
	return img
}

// Colorize renders the grid through a hue rotation: counts are normalized so
// the largest maps to 1, and a cell with normalized value v gets the color
// HSV(hue=(v+offset) mod 1, s=1, v=0.5). Cells that never escaped are black.
func Colorize(g *Grid, offset float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Res, g.Res))
	max := g.Max()
	for yp := 0; yp < g.Res; yp++ {
		for xp := 0; xp < g.Res; xp++ {
			n := g.At(xp, yp)
			if max == 0 || n == 0 {
				img.SetRGBA(xp, yp, color.RGBA{A: 255})
				continue
			}
			hue := math.Mod(float64(n)/float64(max)+offset, 1)
			if hue < 0 {
				hue++
			}
			r, gr, b := colorful.Hsv(hue*360, 1, 0.5).RGB255()
			img.SetRGBA(xp, yp, color.RGBA{R: r, G: gr, B: b, A: 255})
		}
	}
	return img
}

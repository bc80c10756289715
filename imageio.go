package julia

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/gift"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const jpegQuality = 95

// Finish prepares a rendered image for writing: an optional Gaussian blur
// (sigma 1) followed by a vertical flip, since grid row 0 is the bottom of
// the plot but the top of an image. The output keeps the input's pixel
// format (grayscale in, grayscale out).
func Finish(img image.Image, smooth bool) image.Image {
	g := gift.New()
	if smooth {
		g.Add(gift.GaussianBlur(1))
	}
	g.Add(gift.FlipVertical())

	var dst draw.Image
	switch img.(type) {
	case *image.Gray:
		dst = image.NewGray(g.Bounds(img.Bounds()))
	default:
		dst = image.NewRGBA(g.Bounds(img.Bounds()))
	}
	g.Draw(dst, img)
	return dst
}

// Encode writes img to w in the format named by the file extension ext.
// Supported: .png, .jpg/.jpeg, .gif, .bmp, .tif/.tiff.
func Encode(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case ".gif":
		return gif.Encode(w, img, nil)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}
}

// WriteImage encodes img to path, inferring the format from the extension.
func WriteImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := Encode(f, filepath.Ext(path), img); err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return nil
}

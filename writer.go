package splitter

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"os"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/tiff"
)

// DefaultJPEGQuality is used by Save when quality is zero or negative.
const DefaultJPEGQuality = 90

// Save encodes img to path in the named format. Supported formats are
// "png", "jpeg" (alias "jpg"), "gif", "bmp" and "tiff"; anything else
// returns ErrUnsupportedFormat. quality applies to JPEG only.
func Save(img image.Image, path, format string, quality int) error {
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}

	switch format {
	case "png":
		return saveWith(path, img, imgio.PNGEncoder())
	case "jpeg", "jpg":
		return saveWith(path, img, imgio.JPEGEncoder(quality))
	case "bmp":
		return saveWith(path, img, imgio.BMPEncoder())
	case "gif":
		return saveGIF(img, path)
	case "tiff":
		return saveTIFF(img, path)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func saveWith(path string, img image.Image, enc imgio.Encoder) error {
	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// saveGIF reduces img to a 256-color median-cut palette before encoding,
// since GIF cannot carry true-color pixels.
func saveGIF(img image.Image, path string) error {
	q := quantize.MedianCutQuantizer{}
	palette := q.Quantize(make(color.Palette, 0, 256), img)

	paletted := image.NewPaletted(img.Bounds(), palette)
	draw.Draw(paletted, img.Bounds(), img, img.Bounds().Min, draw.Src)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if err := gif.Encode(f, paletted, nil); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return nil
}

func saveTIFF(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if err := tiff.Encode(f, img, nil); err != nil {
		return fmt.Errorf("failed to encode tiff: %w", err)
	}
	return nil
}

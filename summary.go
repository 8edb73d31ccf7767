package splitter

import (
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// AverageColor holds a tile's mean color in several representations.
type AverageColor struct {
	Hex string `json:"hex"` // "#rrggbb"
	R   uint8  `json:"r"`   // red component (0-255)
	G   uint8  `json:"g"`   // green component (0-255)
	B   uint8  `json:"b"`   // blue component (0-255)
	H   int    `json:"h"`   // hue, 0-360 degrees
	S   int    `json:"s"`   // saturation, 0-100 percent
	L   int    `json:"l"`   // lightness, 0-100 percent
}

// TileSummary describes one extracted tile for manifests and logs.
type TileSummary struct {
	Index   int          `json:"index"`
	Rect    Rectangle    `json:"rect"`
	Average AverageColor `json:"average_color"`
}

// Summarize reports each tile's source region and mean color, in tile
// order. Alpha is ignored when averaging.
func Summarize(tiles []Tile) []TileSummary {
	out := make([]TileSummary, len(tiles))
	for i, t := range tiles {
		out[i] = TileSummary{
			Index:   i,
			Rect:    t.Rect,
			Average: averageColor(t.Image),
		}
	}
	return out
}

func averageColor(img *image.NRGBA) AverageColor {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return AverageColor{Hex: "#000000"}
	}

	var sumR, sumG, sumB uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			sumR += uint64(img.Pix[i])
			sumG += uint64(img.Pix[i+1])
			sumB += uint64(img.Pix[i+2])
			i += 4
		}
	}

	c := colorful.Color{
		R: float64(sumR) / float64(n) / 255,
		G: float64(sumG) / float64(n) / 255,
		B: float64(sumB) / float64(n) / 255,
	}
	h, s, l := c.Hsl()
	r, g, bl := c.RGB255()

	return AverageColor{
		Hex: c.Hex(),
		R:   r,
		G:   g,
		B:   bl,
		H:   int(math.Round(h)),
		S:   int(math.Round(s * 100)),
		L:   int(math.Round(l * 100)),
	}
}

package splitter

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Reassemble pastes tiles back together at their recorded offsets,
// producing a width x height image. Applied to the full output of
// SplitGrid or SplitTiles with the source dimensions, it reproduces the
// source pixel-for-pixel.
//
// Tiles may be pasted in any order; later tiles overwrite earlier ones
// where they overlap. A tile extending past the canvas is an error.
func Reassemble(tiles []Tile, width, height int) (*image.NRGBA, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("splitter: invalid canvas size %dx%d", width, height)
	}

	dst := imaging.New(width, height, color.NRGBA{})
	for _, t := range tiles {
		r := t.Rect
		if r.X < 0 || r.Y < 0 || r.X+r.Width > width || r.Y+r.Height > height {
			return nil, fmt.Errorf("splitter: tile %s outside %dx%d canvas", r, width, height)
		}
		dst = imaging.Paste(dst, t.Image, image.Pt(r.X, r.Y))
	}
	return dst, nil
}

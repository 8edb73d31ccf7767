package splitter

import (
	"image"

	"github.com/disintegration/imaging"
)

// Cropper is the single capability the tiler needs from a pixel source:
// extracting an independent copy of a rectangular region. Implementations
// must return a buffer that shares no pixels with the source, and must
// not mutate the source.
type Cropper interface {
	Crop(r Rectangle) *image.NRGBA
}

// Tile is one extracted sub-image together with the source region it was
// cut from. Rect offsets are relative to the source's top-left pixel,
// which is what Reassemble expects.
type Tile struct {
	Rect  Rectangle
	Image *image.NRGBA
}

// imageCropper adapts any image.Image to Cropper. imaging.Crop copies the
// region into a fresh NRGBA buffer, so tiles outlive the source.
type imageCropper struct {
	src image.Image
}

func (c imageCropper) Crop(r Rectangle) *image.NRGBA {
	// Rectangle offsets are relative to the image's top-left pixel even
	// when Bounds().Min is non-zero, as for a SubImage.
	return imaging.Crop(c.src, r.Bounds().Add(c.src.Bounds().Min))
}

// SplitGrid partitions img into a rows x cols grid of tiles in row-major
// order. It always produces exactly rows*cols tiles; the rightmost column
// and bottom row absorb any remainder, per GridRects. The source image is
// never mutated.
func SplitGrid(img image.Image, rows, cols int) ([]Tile, error) {
	b := img.Bounds()
	return SplitGridFrom(imageCropper{src: img}, b.Dx(), b.Dy(), rows, cols)
}

// SplitGridFrom is SplitGrid for pixel sources that do not implement
// image.Image, such as codec back-ends exposing only region reads.
func SplitGridFrom(src Cropper, width, height, rows, cols int) ([]Tile, error) {
	rects, err := GridRects(width, height, rows, cols)
	if err != nil {
		return nil, err
	}
	return extract(src, rects), nil
}

// SplitTiles partitions img into tiles of tileWidth x tileHeight pixels
// in row-major order. Tiles at the right and bottom edges are clipped at
// the image boundary, per TileRects. The source image is never mutated.
func SplitTiles(img image.Image, tileWidth, tileHeight int) ([]Tile, error) {
	b := img.Bounds()
	return SplitTilesFrom(imageCropper{src: img}, b.Dx(), b.Dy(), tileWidth, tileHeight)
}

// SplitTilesFrom is SplitTiles for pixel sources that do not implement
// image.Image.
func SplitTilesFrom(src Cropper, width, height, tileWidth, tileHeight int) ([]Tile, error) {
	rects, err := TileRects(width, height, tileWidth, tileHeight)
	if err != nil {
		return nil, err
	}
	return extract(src, rects), nil
}

func extract(src Cropper, rects []Rectangle) []Tile {
	tiles := make([]Tile, len(rects))
	for i, r := range rects {
		tiles[i] = Tile{Rect: r, Image: src.Crop(r)}
	}
	return tiles
}

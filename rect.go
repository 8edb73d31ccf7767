package splitter

import (
	"fmt"
	"image"
)

// Rectangle describes a tile's position and size within a source image.
// X and Y are 0-based offsets from the image's top-left corner.
type Rectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Bounds returns the rectangle in stdlib form, with Min at (X, Y).
func (r Rectangle) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// String formats the rectangle as "WxH+X+Y".
func (r Rectangle) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// GridRects computes the rows*cols rectangles of a grid split over a
// width x height image, in row-major order.
//
// The base tile size is width/cols x height/rows (integer division). The
// rightmost column and bottom row absorb the remainder, so the returned
// rectangles cover every pixel exactly once. For a 100x100 image split
// 3x3 the base tile is 33x33 and the last column and row are 34 wide and
// 34 tall.
//
// Returns ErrInvalidGrid if rows or cols is less than 1, and
// ErrImageTooSmall if the image has fewer pixels per axis than the grid
// has cells.
func GridRects(width, height, rows, cols int) ([]Rectangle, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidGrid, rows, cols)
	}

	baseW := width / cols
	baseH := height / rows
	if baseW < 1 || baseH < 1 {
		return nil, fmt.Errorf("%w: %dx%d image cannot fill a %dx%d grid",
			ErrImageTooSmall, width, height, rows, cols)
	}

	rects := make([]Rectangle, 0, rows*cols)
	for row := 0; row < rows; row++ {
		h := baseH
		if row == rows-1 {
			h = height - baseH*(rows-1)
		}
		for col := 0; col < cols; col++ {
			w := baseW
			if col == cols-1 {
				w = width - baseW*(cols-1)
			}
			rects = append(rects, Rectangle{
				X:      col * baseW,
				Y:      row * baseH,
				Width:  w,
				Height: h,
			})
		}
	}
	return rects, nil
}

// TileRects computes the rectangles of a fixed-size split over a
// width x height image, in row-major order.
//
// Tiles are tileWidth x tileHeight except at the right and bottom edges,
// where they are clipped at the image boundary: edge tiles are smaller
// than requested, never padded and never zero-area. The result holds
// ceil(width/tileWidth) * ceil(height/tileHeight) rectangles. An empty
// image yields an empty slice.
//
// Returns ErrInvalidTileSize if tileWidth or tileHeight is less than 1.
func TileRects(width, height, tileWidth, tileHeight int) ([]Rectangle, error) {
	if tileWidth < 1 || tileHeight < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidTileSize, tileWidth, tileHeight)
	}

	var rects []Rectangle
	for y := 0; y < height; y += tileHeight {
		h := tileHeight
		if height-y < h {
			h = height - y
		}
		for x := 0; x < width; x += tileWidth {
			w := tileWidth
			if width-x < w {
				w = width - x
			}
			rects = append(rects, Rectangle{X: x, Y: y, Width: w, Height: h})
		}
	}
	return rects, nil
}

package splitter

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

// newSolidImage creates a width x height image filled with c.
func newSolidImage(width, height int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// newGradientImage creates an image where every pixel encodes its own
// coordinates, so a misplaced tile pixel is always detectable.
func newGradientImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 255})
		}
	}
	return img
}

// samePixels fails the test unless got and want have identical dimensions
// and identical pixels.
func samePixels(t *testing.T, got, want image.Image) {
	t.Helper()
	gb, wb := got.Bounds(), want.Bounds()
	if gb.Dx() != wb.Dx() || gb.Dy() != wb.Dy() {
		t.Fatalf("dimensions: got %dx%d, want %dx%d", gb.Dx(), gb.Dy(), wb.Dx(), wb.Dy())
	}
	for y := 0; y < gb.Dy(); y++ {
		for x := 0; x < gb.Dx(); x++ {
			gr, gg, gbl, ga := got.At(gb.Min.X+x, gb.Min.Y+y).RGBA()
			wr, wg, wbl, wa := want.At(wb.Min.X+x, wb.Min.Y+y).RGBA()
			if gr != wr || gg != wg || gbl != wbl || ga != wa {
				t.Fatalf("pixel (%d,%d): got %v, want %v",
					x, y, got.At(gb.Min.X+x, gb.Min.Y+y), want.At(wb.Min.X+x, wb.Min.Y+y))
			}
		}
	}
}

// tileMatchesSource fails the test unless the tile's pixels equal the
// source region recorded in its Rect.
func tileMatchesSource(t *testing.T, src image.Image, tile Tile) {
	t.Helper()
	b := tile.Image.Bounds()
	if b.Dx() != tile.Rect.Width || b.Dy() != tile.Rect.Height {
		t.Fatalf("tile buffer %dx%d does not match rect %s", b.Dx(), b.Dy(), tile.Rect)
	}
	min := src.Bounds().Min
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			gr, gg, gbl, ga := tile.Image.At(b.Min.X+x, b.Min.Y+y).RGBA()
			wr, wg, wbl, wa := src.At(min.X+tile.Rect.X+x, min.Y+tile.Rect.Y+y).RGBA()
			if gr != wr || gg != wg || gbl != wbl || ga != wa {
				t.Fatalf("tile %s pixel (%d,%d) differs from source", tile.Rect, x, y)
			}
		}
	}
}

func TestSplitGrid_NineTiles(t *testing.T) {
	img := newGradientImage(90, 90)

	tiles, err := SplitGrid(img, 3, 3)
	if err != nil {
		t.Fatalf("SplitGrid failed: %v", err)
	}

	if len(tiles) != 9 {
		t.Fatalf("count: got %d, want 9", len(tiles))
	}
	for i, tile := range tiles {
		if tile.Rect.Width != 30 || tile.Rect.Height != 30 {
			t.Errorf("tile %d: got %dx%d, want 30x30", i, tile.Rect.Width, tile.Rect.Height)
		}
		tileMatchesSource(t, img, tile)
	}
}

func TestSplitGrid_RowMajorOrder(t *testing.T) {
	img := newGradientImage(60, 60)

	tiles, err := SplitGrid(img, 2, 3)
	if err != nil {
		t.Fatalf("SplitGrid failed: %v", err)
	}

	wantOffsets := []image.Point{
		{0, 0}, {20, 0}, {40, 0},
		{0, 30}, {20, 30}, {40, 30},
	}
	for i, tile := range tiles {
		if tile.Rect.X != wantOffsets[i].X || tile.Rect.Y != wantOffsets[i].Y {
			t.Errorf("tile %d: got offset (%d,%d), want (%d,%d)",
				i, tile.Rect.X, tile.Rect.Y, wantOffsets[i].X, wantOffsets[i].Y)
		}
	}
}

func TestSplitGrid_Errors(t *testing.T) {
	img := newSolidImage(100, 100, color.NRGBA{255, 0, 0, 255})

	if _, err := SplitGrid(img, 0, 3); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("zero rows: got %v, want ErrInvalidGrid", err)
	}

	small := newSolidImage(2, 2, color.NRGBA{255, 0, 0, 255})
	if _, err := SplitGrid(small, 3, 3); !errors.Is(err, ErrImageTooSmall) {
		t.Errorf("2x2 image: got %v, want ErrImageTooSmall", err)
	}
}

func TestSplitGrid_SourceUntouched(t *testing.T) {
	img := newGradientImage(64, 48)
	before := make([]byte, len(img.Pix))
	copy(before, img.Pix)

	if _, err := SplitGrid(img, 3, 3); err != nil {
		t.Fatalf("SplitGrid failed: %v", err)
	}

	if !bytes.Equal(before, img.Pix) {
		t.Error("SplitGrid mutated the source image")
	}
}

func TestSplitGrid_TilesOwnPixels(t *testing.T) {
	img := newSolidImage(30, 30, color.NRGBA{0, 255, 0, 255})

	tiles, err := SplitGrid(img, 3, 3)
	if err != nil {
		t.Fatalf("SplitGrid failed: %v", err)
	}

	// Scribbling over the source must not show up in extracted tiles.
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			img.Set(x, y, color.NRGBA{255, 0, 255, 255})
		}
	}

	r, g, b, _ := tiles[4].Image.At(5, 5).RGBA()
	if uint8(r>>8) != 0 || uint8(g>>8) != 255 || uint8(b>>8) != 0 {
		t.Error("tile shares pixels with the source image")
	}
}

func TestSplitGrid_NonZeroBounds(t *testing.T) {
	full := newGradientImage(120, 120)
	sub := full.SubImage(image.Rect(30, 30, 120, 120)).(*image.NRGBA)

	tiles, err := SplitGrid(sub, 3, 3)
	if err != nil {
		t.Fatalf("SplitGrid failed: %v", err)
	}

	if len(tiles) != 9 {
		t.Fatalf("count: got %d, want 9", len(tiles))
	}
	for _, tile := range tiles {
		tileMatchesSource(t, sub, tile)
	}
}

func TestSplitTiles_ClippedEdges(t *testing.T) {
	img := newGradientImage(250, 100)

	tiles, err := SplitTiles(img, 100, 100)
	if err != nil {
		t.Fatalf("SplitTiles failed: %v", err)
	}

	wantWidths := []int{100, 100, 50}
	if len(tiles) != len(wantWidths) {
		t.Fatalf("count: got %d, want %d", len(tiles), len(wantWidths))
	}
	for i, tile := range tiles {
		if tile.Rect.Width != wantWidths[i] || tile.Rect.Height != 100 {
			t.Errorf("tile %d: got %dx%d, want %dx100", i, tile.Rect.Width, tile.Rect.Height, wantWidths[i])
		}
		tileMatchesSource(t, img, tile)
	}
}

func TestSplitTiles_Count(t *testing.T) {
	img := newSolidImage(105, 95, color.NRGBA{0, 0, 255, 255})

	tiles, err := SplitTiles(img, 10, 10)
	if err != nil {
		t.Fatalf("SplitTiles failed: %v", err)
	}

	// ceil(105/10) * ceil(95/10) = 11 * 10
	if len(tiles) != 110 {
		t.Errorf("count: got %d, want 110", len(tiles))
	}
}

func TestSplitTiles_InvalidSize(t *testing.T) {
	img := newSolidImage(50, 50, color.NRGBA{0, 0, 255, 255})

	if _, err := SplitTiles(img, 0, 10); !errors.Is(err, ErrInvalidTileSize) {
		t.Errorf("zero width: got %v, want ErrInvalidTileSize", err)
	}
	if _, err := SplitTiles(img, 10, 0); !errors.Is(err, ErrInvalidTileSize) {
		t.Errorf("zero height: got %v, want ErrInvalidTileSize", err)
	}
}

// recordingCropper counts the regions requested through the Cropper seam
// and returns solid buffers.
type recordingCropper struct {
	rects []Rectangle
}

func (c *recordingCropper) Crop(r Rectangle) *image.NRGBA {
	c.rects = append(c.rects, r)
	return image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
}

func TestSplitGridFrom_CustomCropper(t *testing.T) {
	src := &recordingCropper{}

	tiles, err := SplitGridFrom(src, 100, 100, 3, 3)
	if err != nil {
		t.Fatalf("SplitGridFrom failed: %v", err)
	}

	if len(src.rects) != 9 {
		t.Fatalf("crop calls: got %d, want 9", len(src.rects))
	}
	want, _ := GridRects(100, 100, 3, 3)
	for i, tile := range tiles {
		if src.rects[i] != want[i] {
			t.Errorf("crop %d: got %s, want %s", i, src.rects[i], want[i])
		}
		if tile.Rect != want[i] {
			t.Errorf("tile %d: got rect %s, want %s", i, tile.Rect, want[i])
		}
	}
}

func TestSplitTilesFrom_CustomCropper(t *testing.T) {
	src := &recordingCropper{}

	_, err := SplitTilesFrom(src, 250, 100, 100, 100)
	if err != nil {
		t.Fatalf("SplitTilesFrom failed: %v", err)
	}
	if len(src.rects) != 3 {
		t.Fatalf("crop calls: got %d, want 3", len(src.rects))
	}

	// Validation errors must surface before any crop happens.
	src = &recordingCropper{}
	if _, err := SplitTilesFrom(src, 250, 100, 0, 100); !errors.Is(err, ErrInvalidTileSize) {
		t.Fatalf("error: got %v, want ErrInvalidTileSize", err)
	}
	if len(src.rects) != 0 {
		t.Errorf("crop calls after validation failure: got %d, want 0", len(src.rects))
	}
}

package splitter

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultRows and DefaultCols are the grid dimensions used by SplitImage.
const (
	DefaultRows = 3
	DefaultCols = 3
)

// SplitImage decodes the image at path and splits it into a 3x3 grid of
// nine tiles. Shorthand for SplitImageGrid(path, 3, 3).
func SplitImage(path string) ([]Tile, error) {
	return SplitImageGrid(path, DefaultRows, DefaultCols)
}

// SplitImageGrid decodes the image at path and splits it into a
// rows x cols grid of tiles. See SplitGrid for the remainder policy.
func SplitImageGrid(path string, rows, cols int) ([]Tile, error) {
	img, _, err := Open(path)
	if err != nil {
		return nil, err
	}
	return SplitGrid(img, rows, cols)
}

// SplitImageWithSize decodes the image at path and splits it into tiles
// of tileWidth x tileHeight pixels. See SplitTiles for the edge policy.
func SplitImageWithSize(path string, tileWidth, tileHeight int) ([]Tile, error) {
	img, _, err := Open(path)
	if err != nil {
		return nil, err
	}
	return SplitTiles(img, tileWidth, tileHeight)
}

// SaveTiles writes every tile under dir as <prefix>_NNN.<ext>, numbered
// in tile order, creating dir if needed. It returns the written paths.
// format and quality are passed through to Save; "jpeg" files get a
// ".jpg" extension.
func SaveTiles(tiles []Tile, dir, prefix, format string, quality int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	ext := format
	if ext == "jpeg" {
		ext = "jpg"
	}

	paths := make([]string, 0, len(tiles))
	for i, t := range tiles {
		p := filepath.Join(dir, fmt.Sprintf("%s_%03d.%s", prefix, i, ext))
		if err := Save(t.Image, p, format, quality); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

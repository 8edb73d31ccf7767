package splitter

import "errors"

// Validation errors are detected before any pixel work begins; an
// operation returning one has produced no tiles.
var (
	// ErrInvalidGrid reports a grid split requesting zero rows or columns.
	ErrInvalidGrid = errors.New("splitter: grid rows and cols must be at least 1")

	// ErrInvalidTileSize reports a fixed-size split requesting a zero tile
	// dimension.
	ErrInvalidTileSize = errors.New("splitter: tile width and height must be at least 1")

	// ErrImageTooSmall reports an image with fewer pixels per axis than the
	// requested grid has cells, which would make the base tile zero-area.
	ErrImageTooSmall = errors.New("splitter: image smaller than requested grid")

	// ErrUnsupportedFormat reports an output format Save cannot encode.
	ErrUnsupportedFormat = errors.New("splitter: unsupported output format")
)

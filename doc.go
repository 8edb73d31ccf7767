// Package splitter partitions a decoded raster image into smaller
// sub-images, either as a rows x cols grid or as tiles of a fixed pixel
// size.
//
// # Coordinate System
//
// All coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward. Tile sequences are
// row-major: left to right within a row, top row first.
//
// # Remainder Policy
//
// The two split strategies handle dimensions that are not evenly
// divisible in deliberately different ways:
//
//   - Grid splits (SplitGrid, SplitImage) always produce exactly
//     rows*cols tiles. The rightmost column and bottom row absorb the
//     remainder, so they are generally a few pixels larger than the
//     other tiles, and coverage of the source is exact and gapless.
//   - Fixed-size splits (SplitTiles, SplitImageWithSize) produce tiles
//     of the requested size except at the right and bottom edges, where
//     tiles are clipped at the image boundary. Edge tiles are smaller
//     than requested, never padded, and never zero-area.
//
// Reassemble is the inverse of both strategies: pasting every tile back
// at its recorded offset reproduces the source pixel-for-pixel.
//
// # Thread Safety
//
// All operations are stateless and never mutate the source image, so
// concurrent splits of the same image from multiple goroutines are safe.
// Every extracted tile owns its pixels; the source may be discarded once
// a split returns.
//
// # Error Handling
//
// Validation failures (ErrInvalidGrid, ErrInvalidTileSize,
// ErrImageTooSmall) are detected before any pixel work begins, so a
// failed split never produces a partial tile set. Decode, encode and
// file-system errors are wrapped with context and returned unchanged in
// meaning; nothing is retried internally.
package splitter

package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	splitter "github.com/ironsheep/image-splitter"
)

// tilesOpts holds the command-line flags for the tiles command.
type tilesOpts struct {
	width  int
	height int
	outputOpts
}

// newTilesCmd creates the tiles command for splitting an image into
// fixed-size tiles.
//
// Tiles at the right and bottom edges are clipped at the image boundary
// rather than padded, so edge tiles can be smaller than requested.
func newTilesCmd(cfg *Config) *cobra.Command {
	var opts tilesOpts

	cmd := &cobra.Command{
		Use:   "tiles [image]",
		Short: "Split an image into fixed-size tiles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("width") && cfg.Tile.Width > 0 {
				opts.width = cfg.Tile.Width
			}
			if !cmd.Flags().Changed("height") && cfg.Tile.Height > 0 {
				opts.height = cfg.Tile.Height
			}
			opts.applyConfig(cfg)
			return runTiles(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "W", 256, "tile width in pixels")
	cmd.Flags().IntVarP(&opts.height, "height", "H", 256, "tile height in pixels")
	addOutputFlags(cmd, &opts.outputOpts)

	return cmd
}

func runTiles(ctx context.Context, path string, opts *tilesOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	img, format, err := splitter.Open(path)
	if err != nil {
		return err
	}
	b := img.Bounds()
	logger.Debugf("loaded %s: %dx%d %s", path, b.Dx(), b.Dy(), format)

	tiles, err := splitter.SplitTiles(img, opts.width, opts.height)
	if err != nil {
		return err
	}

	if _, err := writeTiles(ctx, tiles, format, &opts.outputOpts); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Split %s into %d tiles (%dx%d each)",
		filepath.Base(path), len(tiles), opts.width, opts.height))
	return nil
}

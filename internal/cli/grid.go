package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	splitter "github.com/ironsheep/image-splitter"
)

// gridOpts holds the command-line flags for the grid command.
type gridOpts struct {
	rows int
	cols int
	outputOpts
}

// newGridCmd creates the grid command for splitting an image into a
// rows x cols grid.
//
// The grid always produces exactly rows*cols tiles: when the image
// dimensions are not evenly divisible, the rightmost column and bottom
// row absorb the remainder and come out slightly larger than the rest.
func newGridCmd(cfg *Config) *cobra.Command {
	var opts gridOpts

	cmd := &cobra.Command{
		Use:   "grid [image]",
		Short: "Split an image into a rows x cols grid of tiles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rows") && cfg.Grid.Rows > 0 {
				opts.rows = cfg.Grid.Rows
			}
			if !cmd.Flags().Changed("cols") && cfg.Grid.Cols > 0 {
				opts.cols = cfg.Grid.Cols
			}
			opts.applyConfig(cfg)
			return runGrid(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.rows, "rows", "r", splitter.DefaultRows, "number of grid rows")
	cmd.Flags().IntVarP(&opts.cols, "cols", "c", splitter.DefaultCols, "number of grid columns")
	addOutputFlags(cmd, &opts.outputOpts)

	return cmd
}

func runGrid(ctx context.Context, path string, opts *gridOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	img, format, err := splitter.Open(path)
	if err != nil {
		return err
	}
	b := img.Bounds()
	logger.Debugf("loaded %s: %dx%d %s", path, b.Dx(), b.Dy(), format)

	tiles, err := splitter.SplitGrid(img, opts.rows, opts.cols)
	if err != nil {
		return err
	}

	if _, err := writeTiles(ctx, tiles, format, &opts.outputOpts); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Split %s into %d tiles (%dx%d grid)",
		filepath.Base(path), len(tiles), opts.rows, opts.cols))
	return nil
}

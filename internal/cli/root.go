package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags at build
// time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the image-splitter CLI and returns an error if any
// command fails.
//
// The root command wires up the grid and tiles subcommands, loads the
// optional TOML config, and attaches a logger to the context at info
// level (debug with --verbose).
func Execute() error {
	var (
		verbose    bool
		configPath string
	)
	cfg := defaultConfig()

	root := &cobra.Command{
		Use:   "image-splitter",
		Short: "Split raster images into grids or fixed-size tiles",
		Long: `image-splitter partitions PNG, JPEG, GIF, BMP, TIFF or WebP images into
smaller sub-images, either as a rows x cols grid (remainder absorbed into
the last row and column) or as fixed-size tiles (edge tiles clipped at
the image boundary).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}

			loaded, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("image-splitter %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	root.AddCommand(newGridCmd(&cfg))
	root.AddCommand(newTilesCmd(&cfg))

	return root.ExecuteContext(context.Background())
}

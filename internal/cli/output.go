package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	splitter "github.com/ironsheep/image-splitter"
)

// outputOpts holds the flags shared by the grid and tiles commands.
type outputOpts struct {
	output   string // output directory
	format   string // output format; empty keeps the source format
	prefix   string // tile filename prefix
	quality  int    // JPEG quality
	manifest bool   // write manifest.json next to the tiles
}

func addOutputFlags(cmd *cobra.Command, opts *outputOpts) {
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "output directory")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: png, jpeg, gif, bmp or tiff (default: source format)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "tile filename prefix")
	cmd.Flags().IntVar(&opts.quality, "quality", 0, "JPEG quality, 1-100")
	cmd.Flags().BoolVar(&opts.manifest, "manifest", false, "write a manifest.json of tile regions and average colors")
}

// applyConfig fills unset output flags from the loaded config.
func (o *outputOpts) applyConfig(cfg *Config) {
	if o.output == "" {
		o.output = cfg.Output
	}
	if o.format == "" {
		o.format = cfg.Format
	}
	if o.prefix == "" {
		o.prefix = cfg.Prefix
	}
	if o.quality == 0 {
		o.quality = cfg.Quality
	}
}

// manifestEntry pairs a written tile file with its summary.
type manifestEntry struct {
	Path string `json:"path"`
	splitter.TileSummary
}

// writeManifest writes a JSON manifest describing every written tile:
// its filename, source rectangle and average color.
func writeManifest(path string, tiles []splitter.Tile, files []string) error {
	summaries := splitter.Summarize(tiles)
	entries := make([]manifestEntry, len(summaries))
	for i := range summaries {
		entries[i] = manifestEntry{
			Path:        filepath.Base(files[i]),
			TileSummary: summaries[i],
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// writeTiles saves the tiles and optional manifest, logging each written
// file at debug level. The output format falls back to sourceFormat when
// no --format flag or config value is set, so tiles keep the source
// encoding.
func writeTiles(ctx context.Context, tiles []splitter.Tile, sourceFormat string, opts *outputOpts) ([]string, error) {
	logger := loggerFromContext(ctx)

	format := opts.format
	if format == "" {
		format = sourceFormat
	}

	paths, err := splitter.SaveTiles(tiles, opts.output, opts.prefix, format, opts.quality)
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		logger.Debugf("wrote %s", p)
	}

	if opts.manifest {
		mp := filepath.Join(opts.output, "manifest.json")
		if err := writeManifest(mp, tiles, paths); err != nil {
			return nil, err
		}
		logger.Debugf("wrote %s", mp)
	}
	return paths, nil
}

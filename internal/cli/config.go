package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	splitter "github.com/ironsheep/image-splitter"
)

// Config holds CLI defaults, optionally loaded from a TOML file.
// Precedence: command-line flags, then file values, then built-in
// defaults.
type Config struct {
	Output  string     `toml:"output"`  // output directory
	Format  string     `toml:"format"`  // output format; empty keeps the source format
	Prefix  string     `toml:"prefix"`  // tile filename prefix
	Quality int        `toml:"quality"` // JPEG quality
	Grid    GridConfig `toml:"grid"`
	Tile    TileConfig `toml:"tile"`
}

// GridConfig holds default grid dimensions for the grid command.
type GridConfig struct {
	Rows int `toml:"rows"`
	Cols int `toml:"cols"`
}

// TileConfig holds default tile dimensions for the tiles command.
type TileConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

func defaultConfig() Config {
	return Config{
		Output:  "tiles",
		Prefix:  "tile",
		Quality: splitter.DefaultJPEGQuality,
		Grid:    GridConfig{Rows: splitter.DefaultRows, Cols: splitter.DefaultCols},
		Tile:    TileConfig{Width: 256, Height: 256},
	}
}

// loadConfig returns the built-in defaults overlaid with values from the
// TOML file at path. An empty path returns the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

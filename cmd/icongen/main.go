// Command icongen writes the media player's placeholder icons.
//
// Run without arguments it renders the built-in table into src/gfx/icons.
// Flags default to the ICONGEN_* environment variables when those are set.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/gogpu/icongen"
)

// envConfig holds defaults taken from the environment.
type envConfig struct {
	Table     string `env:"ICONGEN_TABLE"`
	OutputDir string `env:"ICONGEN_OUTPUT_DIR"`
	FontPath  string `env:"ICONGEN_FONT_PATH"`
	Workers   int    `env:"ICONGEN_WORKERS" envDefault:"1"`
}

func loadEnv() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return envConfig{}, err
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = icongen.DefaultOutputDir
	}
	if cfg.FontPath == "" {
		cfg.FontPath = icongen.DefaultFontPath
	}
	return cfg, nil
}

func main() {
	defaults, err := loadEnv()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	var (
		tablePath = flag.String("table", defaults.Table, "TOML icon table (default: built-in table)")
		outputDir = flag.String("out", defaults.OutputDir, "output directory")
		fontPath  = flag.String("font", defaults.FontPath, "preferred TTF/OTF font")
		size      = flag.Int("size", icongen.DefaultSize, "icon size in pixels")
		workers   = flag.Int("workers", defaults.Workers, "icons rendered at once")
		border    = flag.Bool("border", false, "draw a 1px frame")
		verbose   = flag.Bool("v", false, "log font resolution and writes to stderr")
		dump      = flag.Bool("dump-table", false, "print the icon table as TOML and exit")
	)
	flag.Parse()

	if *verbose {
		icongen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	table := icongen.DefaultTable()
	if *tablePath != "" {
		table, err = icongen.LoadTableFile(*tablePath)
		if err != nil {
			log.Fatalf("Failed to load table: %v", err)
		}
	}

	if *dump {
		if err := icongen.WriteTable(os.Stdout, table); err != nil {
			log.Fatalf("Failed to write table: %v", err)
		}
		return
	}

	g := icongen.New(
		icongen.WithOutputDir(*outputDir),
		icongen.WithFontPath(*fontPath),
		icongen.WithSize(*size),
		icongen.WithWorkers(*workers),
		icongen.WithBorder(*border),
		icongen.WithReport(os.Stdout),
	)

	results, err := g.GenerateAll(context.Background(), table)
	if err != nil {
		log.Fatalf("Failed after %d of %d icons: %v", len(results), len(table), err)
	}
}

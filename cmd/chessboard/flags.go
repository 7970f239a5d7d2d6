// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessboard-go/internal/config"
)

var (
	// Configuration file
	configFile = flag.String("config", "", "YAML configuration file")

	// Game options
	humanColour = flag.String("colour", "white", "Side the human plays: white or black")
	engineDelay = flag.Duration("delay", 0, "Pause before the engine replies (e.g. 500ms)")
	seed        = flag.Int64("seed", 0, "Random seed for engine moves (0 = time based)")
	startFEN    = flag.String("fen", "", "Starting position in FEN")

	// Display options
	unicodeGlyphs = flag.Bool("unicode", false, "Draw pieces with Unicode chess glyphs")
	flipBoard     = flag.Bool("flip", false, "Draw the board from Black's side")

	// Logging
	logLevel  = flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	logFormat = flag.String("log-format", "console", "Log format: console or json")

	// Perft
	perftDepth   = flag.Int("perft", 0, "Print perft counts to depth N for the start position and exit")
	perftWorkers = flag.Int("workers", 4, "Goroutines used by perft")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags layers the flags given on the command line over cfg.
// Flags left at their defaults do not override the configuration file.
func applyFlags(cfg *config.Config) (*config.Config, error) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	b := config.From(cfg)
	if set["colour"] {
		b.WithHumanColour(*humanColour)
	}
	if set["delay"] {
		b.WithEngineDelay(*engineDelay)
	}
	if set["seed"] {
		b.WithSeed(*seed)
	}
	if set["fen"] {
		b.WithStartFEN(*startFEN)
	}
	if set["unicode"] {
		glyphs := config.GlyphsASCII
		if *unicodeGlyphs {
			glyphs = config.GlyphsUnicode
		}
		b.WithGlyphs(glyphs)
	}
	if set["flip"] {
		b.WithFlip(*flipBoard)
	}
	if set["log-level"] {
		b.WithLogLevel(*logLevel)
	}
	if set["log-format"] {
		b.WithLogFormat(*logFormat)
	}
	if set["workers"] {
		b.WithPerftWorkers(*perftWorkers)
	}
	return b.Build()
}

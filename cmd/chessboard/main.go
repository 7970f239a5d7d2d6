// chessboard plays chess in the terminal against a random-move opponent.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/logging"
	"github.com/lgbarn/chessboard-go/internal/rules"
	"github.com/lgbarn/chessboard-go/internal/selector"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessboard version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if *perftDepth > 0 {
		if err := runPerft(os.Stdout, cfg, *perftDepth); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	eng, err := newEngine(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := newSession(eng, cfg, os.Stdout)
	if err := s.run(os.Stdin); err != nil {
		logger.Error("session ended", zap.Error(err))
		os.Exit(1)
	}
}

// loadConfig reads the optional configuration file and applies flags.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return applyFlags(cfg)
}

// newEngine builds the game facade described by cfg.
func newEngine(cfg *config.Config, logger *zap.Logger) (*rules.Engine, error) {
	opts := []rules.Option{
		rules.WithSelector(selector.NewSeededRandom(cfg.Game.Seed)),
		rules.WithLogger(logger),
	}
	if cfg.Game.StartFEN != "" {
		return rules.NewFromFEN(cfg.Game.StartFEN, opts...)
	}
	return rules.New(opts...), nil
}

// runPerft prints per-move node counts and the total for the configured
// start position.
func runPerft(w io.Writer, cfg *config.Config, depth int) error {
	pos := chess.NewInitialPosition()
	if cfg.Game.StartFEN != "" {
		var err error
		if pos, err = engine.NewPositionFromFEN(cfg.Game.StartFEN); err != nil {
			return err
		}
	}

	start := time.Now()
	results, total := engine.Divide(&pos, depth, cfg.Perft.Workers)
	for _, r := range results {
		fmt.Fprintf(w, "%s: %d\n", r.Move, r.Nodes)
	}
	fmt.Fprintf(w, "\nNodes searched: %d (%s)\n", total, time.Since(start).Round(time.Millisecond))
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessboard [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess in the terminal against a random-move opponent.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands during play:\n")
	fmt.Fprint(os.Stderr, commandHelp)
}

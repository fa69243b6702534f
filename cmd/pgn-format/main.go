// pgn-format reads PGN games and writes them back in canonical form, as
// PGN, JSON or YAML.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/lgbarn/pgn-movetext-go/internal/config"
	"github.com/lgbarn/pgn-movetext-go/internal/logging"
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
		fmt.Printf("pgn-format version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, visitedFlags())
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync errors are not actionable

	out, closeOut, err := openOutput(cfg)
	if err != nil {
		logger.Error("opening output", zap.String("file", cfg.OutputFile), zap.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	stats, err := run(ctx, cfg, logger, flag.Args(), os.Stdin, out)
	stop()
	if cerr := closeOut(); err == nil {
		err = cerr
	}

	reportStatistics(logger, stats)
	if err != nil {
		logger.Error("pgn-format failed", zap.Error(err))
		os.Exit(1)
	}
	if stats.Failed > 0 {
		os.Exit(2)
	}
}

// openOutput returns the configured output file, or stdout.
func openOutput(cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.OutputFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return nil, nil, err
	}
	return file, file.Close, nil
}

// reportStatistics logs the final statistics.
func reportStatistics(logger *zap.Logger, stats Stats) {
	logger.Info("done",
		zap.Int("inputs", stats.Inputs),
		zap.Int("games", stats.Games),
		zap.Int("written", stats.Written),
		zap.Int("failed", stats.Failed),
		zap.Int("moves", stats.Moves),
		zap.Int("variations", stats.Variations),
		zap.Int("comments", stats.Comments),
		zap.Int("annotations", stats.Annotations),
	)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pgn-format [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Reads PGN games and writes them in canonical form.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment variables %s_* override the configuration file,\n", config.EnvPrefix)
	fmt.Fprintf(os.Stderr, "e.g. %s_OUTPUT_FORMAT=json. Flags override both.\n", config.EnvPrefix)
}

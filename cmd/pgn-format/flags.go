// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/pgn-movetext-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("W", config.FormatPGN, "Output format: pgn, json, jsonl, yaml")
	lineLength   = flag.Int("w", 80, "Maximum line length (0 = no wrapping)")

	// Content options
	noComments    = flag.Bool("C", false, "Don't output comments")
	noAnnotations = flag.Bool("N", false, "Don't output annotations")
	maxMoves      = flag.Int("maxmoves", 0, "Drop moves numbered above N (0 = no limit)")

	// Processing
	workers = flag.Int("workers", 0, "Number of games parsed in parallel (0 = one per CPU)")

	// Configuration and logging
	configFile = flag.String("config", "", "Configuration file (yaml, toml or json)")
	logLevel   = flag.String("loglevel", "info", "Log level: debug, info, warn, error")
	logFormat  = flag.String("logformat", "console", "Log format: console, json")

	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// visitedFlags returns the names of the flags set on the command line.
func visitedFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags applies the flags in set to the configuration. Flags left
// unset keep the value from the configuration file or environment.
func applyFlags(cfg *config.Config, set map[string]bool) {
	applyOutputFlags(cfg, set)
	applyContentFlags(cfg, set)
	applyLoggingFlags(cfg, set)

	if set["workers"] {
		cfg.Workers = *workers
	}
}

// applyOutputFlags configures the output destination and format.
func applyOutputFlags(cfg *config.Config, set map[string]bool) {
	if set["o"] {
		cfg.OutputFile = *outputFile
	}
	if set["W"] {
		cfg.OutputFormat = *outputFormat
	}
	if set["w"] {
		cfg.LineWidth = *lineLength
	}
}

// applyContentFlags configures what is kept in the output.
func applyContentFlags(cfg *config.Config, set map[string]bool) {
	if set["C"] {
		cfg.KeepComments = !*noComments
	}
	if set["N"] {
		cfg.KeepAnnotations = !*noAnnotations
	}
	if set["maxmoves"] {
		cfg.MaxMoveNumber = *maxMoves
	}
}

// applyLoggingFlags configures the logger.
func applyLoggingFlags(cfg *config.Config, set map[string]bool) {
	if set["loglevel"] {
		cfg.LogLevel = *logLevel
	}
	if set["logformat"] {
		cfg.LogFormat = *logFormat
	}
}

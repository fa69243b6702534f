// processor.go - Reading, parsing, transforming and writing games
package main

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/pgn-movetext-go/internal/chess"
	"github.com/lgbarn/pgn-movetext-go/internal/config"
	pgnerrors "github.com/lgbarn/pgn-movetext-go/internal/errors"
	"github.com/lgbarn/pgn-movetext-go/internal/output"
	"github.com/lgbarn/pgn-movetext-go/internal/parser"
	"github.com/lgbarn/pgn-movetext-go/internal/pgn"
	"github.com/lgbarn/pgn-movetext-go/internal/worker"
)

// stdinName names standard input in logs and errors.
const stdinName = "stdin"

// Stats counts what a run did. The content counts cover written games after
// the content options were applied.
type Stats struct {
	Inputs      int
	Games       int
	Written     int
	Failed      int
	Moves       int
	Variations  int
	Comments    int
	Annotations int
}

// countContent adds the moves, side variations, comments and annotations of g.
func (s *Stats) countContent(g *pgn.Game) {
	g.Traverse(func(m chess.Move) {
		s.Moves++
		if m.HasComment() {
			s.Comments++
		}
		if m.HasAnnotation() {
			s.Annotations++
		}
	})
	for _, v := range g.VariationMap().Variations() {
		if !v.IsMainLine() {
			s.Variations++
		}
	}
}

// parsedGame is the outcome of parsing one game of a document.
type parsedGame struct {
	game *pgn.Game
	err  error
}

// run processes every input, or stdin when there are none, and writes the
// games to out in input order. Games that fail to parse are logged, counted
// and skipped. Errors reading input or writing output stop the run.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, inputs []string, stdin io.Reader, out io.Writer) (Stats, error) {
	var stats Stats

	w, err := output.NewGameWriter(out, cfg.OutputFormat, cfg.LineWidth)
	if err != nil {
		return stats, pgnerrors.Wrap(pgnerrors.ErrInvalidConfig, err.Error())
	}
	p := parser.NewParser(logger)

	process := func(r io.Reader, name string) error {
		stats.Inputs++
		games, err := processInput(ctx, r, name, p, cfg.Workers, logger)
		if err != nil {
			return err
		}
		for _, pg := range games {
			stats.Games++
			if pg.err != nil {
				stats.Failed++
				logger.Warn("skipping game", zap.Error(pg.err))
				continue
			}
			g := transformGame(pg.game, cfg)
			if err := w.WriteGame(g); err != nil {
				return pgnerrors.Wrap(err, "writing output")
			}
			stats.Written++
			stats.countContent(g)
		}
		return nil
	}

	if len(inputs) == 0 {
		err = process(stdin, stdinName)
	} else {
		for _, filename := range inputs {
			if err = processFile(filename, process); err != nil {
				break
			}
		}
	}

	if cerr := w.Close(); err == nil && cerr != nil {
		err = pgnerrors.Wrap(cerr, "writing output")
	}
	return stats, err
}

func processFile(filename string, process func(io.Reader, string) error) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck // read-only file

	return process(file, filename)
}

// processInput reads a document and parses its games in parallel. The
// result holds one entry per game, in document order.
func processInput(ctx context.Context, r io.Reader, name string, p *parser.Parser, workers int, logger *zap.Logger) ([]parsedGame, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pgnerrors.Wrapf(err, "reading %s", name)
	}

	chunks := pgn.SplitDocument(string(data))
	logger.Debug("read input", zap.String("file", name), zap.Int("games", len(chunks)))

	return worker.Run(ctx, chunks, workers, func(_ context.Context, i int, chunk string) (parsedGame, error) {
		g, err := pgn.ParseWith(p, chunk)
		if err != nil {
			return parsedGame{err: &pgnerrors.GameError{Err: err, GameNum: i + 1, File: name}}, nil
		}
		return parsedGame{game: g}, nil
	})
}

// transformGame applies the content options of cfg to a game.
func transformGame(g *pgn.Game, cfg *config.Config) *pgn.Game {
	if !cfg.KeepComments || !cfg.KeepAnnotations {
		g = g.Map(func(m chess.Move) chess.Move {
			if !cfg.KeepComments {
				m.Comment = ""
			}
			if !cfg.KeepAnnotations {
				m.Annotation = ""
			}
			return m
		})
	}
	if cfg.MaxMoveNumber > 0 {
		g = g.Filter(func(m chess.Move) bool {
			return m.Number <= cfg.MaxMoveNumber
		})
	}
	return g
}

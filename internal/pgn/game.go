// Package pgn is the game facade: tags, result, the variation map and a
// cursor. Every operation that changes a game returns a new Game and leaves
// the receiver untouched.
package pgn

import (
	"github.com/lgbarn/pgn-movetext-go/internal/chess"
	pgnerrors "github.com/lgbarn/pgn-movetext-go/internal/errors"
	"github.com/lgbarn/pgn-movetext-go/internal/output"
	"github.com/lgbarn/pgn-movetext-go/internal/parser"
	"github.com/lgbarn/pgn-movetext-go/internal/position"
)

// Game is an immutable game value.
type Game struct {
	tags    chess.Tags
	result  string
	moves   *chess.VariationMap
	current chess.Move
}

// MoveArgs describes a move to play with its optional comment and annotation.
type MoveArgs struct {
	Name       string
	Comment    string
	Annotation string
}

// Option configures a Game built with New.
type Option func(*Game)

// WithTags sets the tags.
func WithTags(tags chess.Tags) Option {
	return func(g *Game) { g.tags = tags.Clone() }
}

// WithResult sets the result.
func WithResult(result string) Option {
	return func(g *Game) { g.result = result }
}

// WithVariationMap sets the moves. The map is cloned.
func WithVariationMap(vm *chess.VariationMap) Option {
	return func(g *Game) {
		if vm != nil {
			g.moves = vm.Clone()
		}
	}
}

// WithCurrentMove sets the cursor.
func WithCurrentMove(m chess.Move) Option {
	return func(g *Game) { g.current = m.Clone() }
}

// New builds a game from structured data. Defaults are no tags, result "*",
// no moves and the cursor on the root sentinel. A cursor that is not in the
// map is rejected with ErrNotFound.
func New(opts ...Option) (*Game, error) {
	g := &Game{
		result:  parser.DefaultResult,
		moves:   chess.NewVariationMap(),
		current: chess.RootMove(),
	}
	for _, opt := range opts {
		opt(g)
	}
	cur, err := g.moves.Refresh(g.current)
	if err != nil {
		return nil, pgnerrors.Wrap(err, "current move")
	}
	g.current = cur
	return g, nil
}

// Empty returns a game with no tags, no moves and result "*".
func Empty() *Game {
	return must(New())
}

// must unwraps results of variation map lookups made with ids taken from
// the map itself. An error there means the map is inconsistent.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func must2[A, B any](a A, b B, err error) (A, B) {
	if err != nil {
		panic(err)
	}
	return a, b
}

// clone copies the shell of g; moves are shared until replaced.
func (g *Game) clone() *Game {
	c := *g
	return &c
}

func (g *Game) withCursor(m chess.Move) *Game {
	c := g.clone()
	c.current = m
	return c
}

// Tags returns a copy of the tags.
func (g *Game) Tags() chess.Tags {
	return g.tags.Clone()
}

// Tag returns one tag value, or empty string if not present.
func (g *Game) Tag(key string) string {
	return g.tags.Get(key)
}

// AddTag returns a game with key set to value.
func (g *Game) AddTag(key, value string) *Game {
	c := g.clone()
	c.tags = g.tags.With(key, value)
	return c
}

// RemoveTag returns a game without the tag key.
func (g *Game) RemoveTag(key string) *Game {
	if !g.tags.Has(key) {
		return g
	}
	c := g.clone()
	c.tags = g.tags.Without(key)
	return c
}

// Result returns the game result.
func (g *Game) Result() string {
	return g.result
}

// AddResult returns a game with the given result.
func (g *Game) AddResult(result string) *Game {
	c := g.clone()
	c.result = result
	return c
}

// FEN returns the FEN tag, or the standard starting position.
func (g *Game) FEN() string {
	if fen := g.tags.Get(chess.FENTag); fen != "" {
		return fen
	}
	return position.StartingFEN()
}

// WithStartingFEN returns a game starting from fen. The SetUp and FEN tags
// are set, or removed when fen is the standard starting position; moves are
// not checked against the position.
func (g *Game) WithStartingFEN(fen string) (*Game, error) {
	if err := position.ValidateFEN(fen); err != nil {
		return nil, err
	}
	if position.IsStartingFEN(fen) {
		return g.RemoveTag(chess.SetUpTag).RemoveTag(chess.FENTag), nil
	}
	return g.AddTag(chess.SetUpTag, "1").AddTag(chess.FENTag, fen), nil
}

// VariationMap returns a copy of the moves.
func (g *Game) VariationMap() *chess.VariationMap {
	return g.moves.Clone()
}

// Tree returns the nested projection of the moves.
func (g *Game) Tree() [][]chess.TreeMove {
	return must(g.moves.Tree())
}

// String renders the game as a PGN document.
func (g *Game) String() string {
	return output.FormatGame(g)
}

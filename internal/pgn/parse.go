package pgn

import (
	"strings"

	pgnerrors "github.com/lgbarn/pgn-movetext-go/internal/errors"
	"github.com/lgbarn/pgn-movetext-go/internal/parser"
)

// gameBoundary separates games in a multi-game document.
const gameBoundary = "\n\n["

var defaultParser = parser.NewParser(nil)

// Parse builds a game from the text of one game. The cursor is on the root.
func Parse(text string) (*Game, error) {
	return ParseWith(defaultParser, text)
}

// ParseWith is Parse with a caller-supplied parser.
func ParseWith(p *parser.Parser, text string) (*Game, error) {
	doc, err := p.ParseDocument(text)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc), nil
}

// FromDocument wraps a parsed document.
func FromDocument(doc *parser.Document) *Game {
	g := Empty()
	g.tags = doc.Tags
	g.result = doc.Result
	if doc.Moves != nil {
		g.moves = doc.Moves
	}
	return g
}

// SplitDocument splits a multi-game document into the texts of its games.
// Games are separated by a blank line followed by a tag section.
func SplitDocument(document string) []string {
	document = strings.ReplaceAll(document, "\r\n", "\n")
	if strings.TrimSpace(document) == "" {
		return nil
	}
	chunks := strings.Split(document, gameBoundary)
	for i := 1; i < len(chunks); i++ {
		chunks[i] = "[" + chunks[i]
	}
	return chunks
}

// ParseAll parses every game of a document. The first failure stops parsing
// and is returned as a *GameError carrying the 1-based game number.
func ParseAll(document string) ([]*Game, error) {
	chunks := SplitDocument(document)
	games := make([]*Game, 0, len(chunks))
	for i, chunk := range chunks {
		g, err := Parse(chunk)
		if err != nil {
			return nil, &pgnerrors.GameError{Err: err, GameNum: i + 1}
		}
		games = append(games, g)
	}
	return games, nil
}

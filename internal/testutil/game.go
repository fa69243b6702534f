package testutil

import (
	"testing"

	"github.com/lgbarn/pgn-movetext-go/internal/pgn"
)

// ParseTestGame parses one game, or returns nil if parsing fails. Use this
// for tests where parse failure is an acceptable outcome.
func ParseTestGame(text string) *pgn.Game {
	g, err := pgn.Parse(text)
	if err != nil {
		return nil
	}
	return g
}

// MustParseGame parses one game.
// It calls t.Fatal if parsing fails.
func MustParseGame(t testing.TB, text string) *pgn.Game {
	t.Helper()
	g, err := pgn.Parse(text)
	if err != nil {
		t.Fatalf("failed to parse test game: %v\n%s", err, text)
	}
	return g
}

// MustParseGames parses every game of a multi-game document.
// It calls t.Fatal if parsing fails or no games are found.
func MustParseGames(t testing.TB, document string) []*pgn.Game {
	t.Helper()
	games, err := pgn.ParseAll(document)
	if err != nil {
		t.Fatalf("failed to parse test games: %v", err)
	}
	if len(games) == 0 {
		t.Fatalf("no games in document:\n%s", document)
	}
	return games
}

// MainLine returns the move names of the first non-empty main line.
func MainLine(g *pgn.Game) []string {
	for _, line := range g.Tree() {
		if len(line) == 0 {
			continue
		}
		names := make([]string, 0, len(line))
		for _, m := range line {
			names = append(names, m.Name)
		}
		return names
	}
	return nil
}

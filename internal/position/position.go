// Package position is the board position collaborator. Positions are carried
// as FEN strings; the board itself is never inspected.
package position

import (
	nchess "github.com/corentings/chess/v2"

	pgnerrors "github.com/lgbarn/pgn-movetext-go/internal/errors"
)

// StartingFEN returns the FEN of the standard initial position.
func StartingFEN() string {
	return nchess.NewGame().FEN()
}

// ValidateFEN returns ErrInvalidFEN if fen does not describe a position.
func ValidateFEN(fen string) error {
	if _, err := nchess.FEN(fen); err != nil {
		return pgnerrors.Wrapf(pgnerrors.ErrInvalidFEN, "%q: %v", fen, err)
	}
	return nil
}

// IsStartingFEN reports whether fen is the standard initial position.
func IsStartingFEN(fen string) bool {
	return fen == StartingFEN()
}

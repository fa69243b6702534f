// Package errors provides sentinel errors and error types for pgn-movetext.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNotFound indicates a variation or move id that is not in the map.
	// With a consistent map this never happens; it signals a broken invariant.
	ErrNotFound = errors.New("not found")

	// ErrInconsistentMap indicates a variation map whose links form a cycle or
	// reach a variation twice.
	ErrInconsistentMap = errors.New("inconsistent variation map")

	// ErrParseFailure indicates a general movetext parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrMalformedMoveNumber indicates a move number marker such as "1a." or "0.".
	ErrMalformedMoveNumber = errors.New("malformed move number")

	// ErrOrphanVariation indicates a variation opened before any move in its scope.
	ErrOrphanVariation = errors.New("variation has no anchor move")

	// ErrUnbalancedVariation indicates a ')' without '(' or a '(' never closed.
	ErrUnbalancedVariation = errors.New("unbalanced variation parentheses")

	// ErrUnterminatedComment indicates a '{' without a closing '}'.
	ErrUnterminatedComment = errors.New("unterminated comment")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError wraps errors with game context: the game's position in a
// multi-game document and, if known, the file it came from.
type GameError struct {
	Err     error  // The underlying error
	GameNum int    // 1-based game number in the document
	File    string // Source file name (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	parts = append(parts, fmt.Sprintf("game %d", e.GameNum))

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a movetext parsing error at a given token.
type ParseError struct {
	Err      error  // The underlying error
	Index    int    // 1-based index of the offending token (0 if unknown)
	Token    string // The offending token text
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Index > 0 {
		parts = append(parts, fmt.Sprintf("token %d", e.Index))
	}
	if e.Token != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Token))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

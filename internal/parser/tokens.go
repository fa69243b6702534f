// Package parser converts movetext into a variation map.
package parser

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	NoToken TokenType = iota

	// Move-number marker such as "12." or "3...".
	MoveNumber

	// Comment pieces. A comment opened and closed inside one word yields a
	// CommentOpen followed by an empty CommentClose.
	CommentOpen
	CommentContinue
	CommentClose

	VariationOpen
	VariationClose

	// Move notation such as "Nf3", "exd8=Q+" or "O-O-O".
	Notation

	// Anything else outside a comment: NAGs, "!?", "N", free words.
	Annotation
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	NoToken:         "NO_TOKEN",
	MoveNumber:      "MOVE_NUMBER",
	CommentOpen:     "COMMENT_OPEN",
	CommentContinue: "COMMENT_CONTINUE",
	CommentClose:    "COMMENT_CLOSE",
	VariationOpen:   "VARIATION_OPEN",
	VariationClose:  "VARIATION_CLOSE",
	Notation:        "NOTATION",
	Annotation:      "ANNOTATION",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token represents a lexical token.
type Token struct {
	Type TokenType

	// Text of the item with its delimiters removed: the notation, the
	// annotation, or the piece of comment text.
	Text string

	// Move number, set for MoveNumber tokens.
	Number int

	// 1-based index of the whitespace-separated word the token came from.
	Word int
}

// String returns a short debugging form of the token.
func (t Token) String() string {
	if t.Type == MoveNumber {
		return fmt.Sprintf("%s(%d)", t.Type, t.Number)
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Text)
}

package parser

import (
	"regexp"
	"strconv"
	"strings"

	pgnerrors "github.com/lgbarn/pgn-movetext-go/internal/errors"
)

var (
	// notationPattern accepts SAN-shaped moves, castling in both letter and
	// digit form, and the null move.
	notationPattern = regexp.MustCompile(
		`^(?:[NBRQK]?[a-h]?[1-8]?x?[a-h][1-8](?:=?[NBRQ])?|O-O(?:-O)?|0-0(?:-0)?|--)[+#]?[!?]*$`)

	moveNumberPrefix = regexp.MustCompile(`^(\d+)\.+`)
	digitDot         = regexp.MustCompile(`\d\.`)
)

// delimiters end an atom inside a word.
const delimiters = "(){}"

// IsNotation reports whether s has the shape of a move.
func IsNotation(s string) bool {
	return notationPattern.MatchString(s)
}

// Lexer splits movetext into classified tokens. Comment state carries across
// words, so a Lexer is used for one movetext only.
type Lexer struct {
	words     []string
	word      int
	inComment bool
	tokens    []Token
}

// NewLexer creates a lexer over movetext. Runs of whitespace of any kind
// separate words.
func NewLexer(movetext string) *Lexer {
	return &Lexer{words: strings.Fields(movetext)}
}

// Tokenize classifies every word of movetext.
func Tokenize(movetext string) ([]Token, error) {
	return NewLexer(movetext).Tokens()
}

// Tokens classifies the remaining words. A word may glue several items:
// leading "(", a move-number prefix, a notation or annotation, comment
// braces and trailing ")". They are split in the order they appear.
func (l *Lexer) Tokens() ([]Token, error) {
	for l.word < len(l.words) {
		w := l.words[l.word]
		l.word++
		if err := l.classify(w); err != nil {
			return nil, err
		}
	}
	return l.tokens, nil
}

// InComment reports whether the last word left a comment open.
func (l *Lexer) InComment() bool {
	return l.inComment
}

func (l *Lexer) emit(t TokenType, text string) {
	l.tokens = append(l.tokens, Token{Type: t, Text: text, Word: l.word})
}

func (l *Lexer) classify(w string) error {
	for w != "" {
		if l.inComment {
			if j := strings.IndexByte(w, '}'); j >= 0 {
				l.emit(CommentClose, w[:j])
				l.inComment = false
				w = w[j+1:]
			} else {
				l.emit(CommentContinue, w)
				w = ""
			}
			continue
		}

		switch w[0] {
		case '{':
			l.inComment = true
			w = w[1:]
			j := strings.IndexByte(w, '}')
			if j < 0 {
				l.emit(CommentOpen, w)
				w = ""
			} else {
				l.emit(CommentOpen, w[:j])
				w = w[j:]
			}
			continue
		case '}':
			return &pgnerrors.ParseError{
				Err:      pgnerrors.ErrParseFailure,
				Index:    l.word,
				Token:    l.words[l.word-1],
				Expected: "comment opening",
				Got:      "}",
			}
		case '(':
			l.emit(VariationOpen, "(")
			w = w[1:]
			continue
		case ')':
			l.emit(VariationClose, ")")
			w = w[1:]
			continue
		}

		head := w
		if j := strings.IndexAny(w, delimiters); j >= 0 {
			head = w[:j]
		}

		if digitDot.MatchString(head) {
			n, rest, err := l.moveNumber(head)
			if err != nil {
				return err
			}
			l.tokens = append(l.tokens, Token{Type: MoveNumber, Text: head[:len(head)-len(rest)], Number: n, Word: l.word})
			w = w[len(head)-len(rest):]
			continue
		}

		if IsNotation(head) {
			l.emit(Notation, head)
		} else {
			l.emit(Annotation, head)
		}
		w = w[len(head):]
	}
	return nil
}

// moveNumber reads the move-number prefix of head and returns the number
// and what follows the dots.
func (l *Lexer) moveNumber(head string) (int, string, error) {
	m := moveNumberPrefix.FindStringSubmatch(head)
	if m == nil {
		return 0, "", l.malformed(head)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, "", l.malformed(head)
	}
	return n, head[len(m[0]):], nil
}

func (l *Lexer) malformed(head string) error {
	return &pgnerrors.ParseError{
		Err:   pgnerrors.ErrMalformedMoveNumber,
		Index: l.word,
		Token: head,
	}
}

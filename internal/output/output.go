// Package output renders games as canonical movetext, JSON or YAML.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/pgn-movetext-go/internal/chess"
)

// Game is what the serializers need from a game.
type Game interface {
	Tags() chess.Tags
	Result() string
	Tree() [][]chess.TreeMove
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. A maxLineLength of 0 or less
// never breaks lines.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, adding a space or a line break before it if needed.
// A token longer than the line length gets a line of its own.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// FormatMove renders one move. number forces the "N..." prefix on a black
// move; white moves always carry their number.
func FormatMove(m chess.TreeMove, number bool) string {
	var b strings.Builder
	switch {
	case m.Colour == chess.White:
		b.WriteString(strconv.Itoa(m.Number))
		b.WriteString(". ")
	case number:
		b.WriteString(strconv.Itoa(m.Number))
		b.WriteString("... ")
	}
	b.WriteString(m.Name)
	if m.Annotation != "" {
		b.WriteString(" ")
		b.WriteString(m.Annotation)
	}
	if m.Comment != "" {
		b.WriteString(" {")
		b.WriteString(m.Comment)
		b.WriteString("}")
	}
	return b.String()
}

// FormatMovetext renders the nested projection of a variation map. The first
// non-empty main line is the game; the other main lines are alternatives to
// its first move.
func FormatMovetext(lines [][]chess.TreeMove) string {
	first := -1
	for i, line := range lines {
		if len(line) > 0 {
			first = i
			break
		}
	}
	if first < 0 {
		return ""
	}

	var alternatives [][]chess.TreeMove
	for i, line := range lines {
		if i != first {
			alternatives = append(alternatives, line)
		}
	}
	return strings.Join(formatLine(lines[first], alternatives), " ")
}

// formatLine renders one line. The children of move i-1 are alternatives to
// move i and follow it; lead takes that place for move 0.
func formatLine(moves []chess.TreeMove, lead [][]chess.TreeMove) []string {
	var tokens []string
	interrupted := false
	for i, m := range moves {
		tokens = append(tokens, FormatMove(m, i == 0 || interrupted))

		groups := lead
		if i > 0 {
			groups = moves[i-1].Variations
		}
		interrupted = false
		for _, g := range groups {
			if len(g) == 0 {
				continue
			}
			tokens = append(tokens, "("+strings.Join(formatLine(g, nil), " ")+")")
			interrupted = true
		}
	}
	return tokens
}

// FormatTags renders one [Key "Value"] line per tag, in insertion order.
func FormatTags(tags chess.Tags) string {
	lines := make([]string, 0, tags.Len())
	for _, k := range tags.Keys() {
		lines = append(lines, fmt.Sprintf("[%s \"%s\"]", k, escapeTagValue(tags.Get(k))))
	}
	return strings.Join(lines, "\n")
}

func escapeTagValue(v string) string {
	if !strings.ContainsAny(v, `\"`) {
		return v
	}
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(v)
}

// FormatDocument joins the rendered parts of a game: tags, a blank line,
// movetext and the result. Missing parts drop their separator.
func FormatDocument(tags, movetext, result string) string {
	var b strings.Builder
	b.WriteString(tags)
	if tags != "" && (movetext != "" || result != "") {
		b.WriteString("\n\n")
	}
	b.WriteString(movetext)
	if movetext != "" && result != "" {
		b.WriteString(" ")
	}
	b.WriteString(result)
	return b.String()
}

// FormatGame renders a game as a complete document.
func FormatGame(g Game) string {
	return FormatDocument(FormatTags(g.Tags()), FormatMovetext(g.Tree()), g.Result())
}

// WrapMovetext re-flows movetext so that no line exceeds width, breaking only
// between tokens. A width of 0 or less returns text unchanged.
func WrapMovetext(text string, width int) string {
	if width <= 0 {
		return text
	}
	var b strings.Builder
	ow := NewOutputWriter(&b, width)
	for _, token := range strings.Fields(text) {
		ow.Write(token)
	}
	return b.String()
}

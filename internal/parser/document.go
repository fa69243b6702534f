package parser

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/pgn-movetext-go/internal/chess"
)

// DefaultResult is used when movetext does not end with a result token.
const DefaultResult = "*"

var tagPattern = regexp.MustCompile(`^\[\s*([^\s"\]]+)\s+"((?:[^"\\]|\\.)*)"\s*\]$`)

// Document is one parsed game.
type Document struct {
	Tags   chess.Tags
	Result string
	Moves  *chess.VariationMap
}

// IsResult reports whether s is a game termination marker.
func IsResult(s string) bool {
	switch s {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}

// SplitSections separates a game text into its tag section and movetext.
// The tag section is the run of leading lines that open with "["; it ends at
// a blank line or at the first other line.
func SplitSections(text string) (tagSection, movetext string) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	lines := strings.Split(text, "\n")
	n := 0
	for n < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[n]), "[") {
		n++
	}
	return strings.TrimSpace(strings.Join(lines[:n], "\n")), strings.TrimSpace(strings.Join(lines[n:], "\n"))
}

// SplitResult removes a trailing result token from movetext and returns it.
// The result defaults to "*".
func SplitResult(movetext string) (string, string) {
	words := strings.Fields(movetext)
	if n := len(words); n > 0 && IsResult(words[n-1]) {
		return strings.Join(words[:n-1], " "), words[n-1]
	}
	return strings.Join(words, " "), DefaultResult
}

// ParseTags reads "[Key "Value"]" lines. Lines of another shape are skipped.
func (p *Parser) ParseTags(section string) chess.Tags {
	var tags chess.Tags
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := tagPattern.FindStringSubmatch(line)
		if m == nil {
			p.logger.Warn("skipping malformed tag line", zap.String("line", line))
			continue
		}
		tags = tags.With(m[1], unescapeTagValue(m[2]))
	}
	return tags
}

func unescapeTagValue(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// ParseDocument parses the text of one game: an optional tag section, the
// movetext and an optional result.
func (p *Parser) ParseDocument(text string) (*Document, error) {
	tagSection, movetext := SplitSections(text)
	movetext, result := SplitResult(movetext)

	vm, err := p.ParseMovetext(movetext)
	if err != nil {
		return nil, err
	}
	return &Document{
		Tags:   p.ParseTags(tagSection),
		Result: result,
		Moves:  vm,
	}, nil
}

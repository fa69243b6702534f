package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/pgn-movetext-go/internal/chess"
)

// JSONGame represents a game in JSON and YAML format.
type JSONGame struct {
	Tags   []JSONTag    `json:"tags" yaml:"tags"`
	Result string       `json:"result" yaml:"result"`
	Lines  [][]JSONMove `json:"lines" yaml:"lines"`
}

// JSONTag is one tag pair. Tags are exported as a list to keep their order.
type JSONTag struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// JSONMove represents a move in JSON and YAML format.
type JSONMove struct {
	Number     int          `json:"number" yaml:"number"`
	Colour     string       `json:"colour" yaml:"colour"` // "white" or "black"
	Name       string       `json:"name" yaml:"name"`
	Annotation string       `json:"annotation,omitempty" yaml:"annotation,omitempty"`
	Comment    string       `json:"comment,omitempty" yaml:"comment,omitempty"`
	Variations [][]JSONMove `json:"variations,omitempty" yaml:"variations,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to its export form.
func GameToJSON(g Game) *JSONGame {
	tree := g.Tree()
	jg := &JSONGame{
		Tags:   convertTags(g.Tags()),
		Result: g.Result(),
		Lines:  make([][]JSONMove, 0, len(tree)),
	}
	for _, line := range tree {
		jg.Lines = append(jg.Lines, convertMoveList(line))
	}
	return jg
}

func convertTags(tags chess.Tags) []JSONTag {
	out := make([]JSONTag, 0, tags.Len())
	for _, k := range tags.Keys() {
		out = append(out, JSONTag{Key: k, Value: tags.Get(k)})
	}
	return out
}

// convertMoveList converts a move list and its variations.
func convertMoveList(moves []chess.TreeMove) []JSONMove {
	result := make([]JSONMove, 0, len(moves))
	for _, m := range moves {
		jm := JSONMove{
			Number:     m.Number,
			Colour:     m.Colour.String(),
			Name:       m.Name,
			Annotation: m.Annotation,
			Comment:    m.Comment,
		}
		for _, v := range m.Variations {
			jm.Variations = append(jm.Variations, convertMoveList(v))
		}
		result = append(result, jm)
	}
	return result
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// GameToYAML renders a game as a YAML document.
func GameToYAML(g Game) ([]byte, error) {
	return yaml.Marshal(GameToJSON(g))
}

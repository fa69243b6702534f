package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by NewGameWriter.
const (
	FormatPGN       = "pgn"
	FormatJSON      = "json"
	FormatJSONLines = "jsonl"
	FormatYAML      = "yaml"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (PGN, JSON, YAML).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer for format. width only applies to PGN.
func NewGameWriter(w io.Writer, format string, width int) (GameWriter, error) {
	switch format {
	case "", FormatPGN:
		return NewPGNWriter(w, width), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	case FormatJSONLines:
		return NewJSONWriterSingle(w), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// PGNWriter writes games in PGN format, separated by blank lines.
type PGNWriter struct {
	w       io.Writer
	width   int
	written int
}

// NewPGNWriter creates a new PGN writer. A positive width wraps movetext.
func NewPGNWriter(w io.Writer, width int) *PGNWriter {
	return &PGNWriter{
		w:     w,
		width: width,
	}
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(game Game) error {
	movetext := WrapMovetext(FormatMovetext(game.Tree()), pw.width)
	doc := FormatDocument(FormatTags(game.Tags()), movetext, game.Result())

	sep := ""
	if pw.written > 0 {
		sep = "\n"
	}
	if _, err := fmt.Fprintf(pw.w, "%s%s\n", sep, doc); err != nil {
		return err
	}
	pw.written++
	return nil
}

// Flush flushes the PGN writer (no-op for PGN as it writes immediately).
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately
// as one compact line (JSON Lines).
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(game Game) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(GameToJSON(game))
	}
	jw.games = append(jw.games, GameToJSON(game))
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	err := WriteJSON(jw.w, &JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// YAMLWriter writes each game as one document of a YAML stream.
type YAMLWriter struct {
	enc *yaml.Encoder
}

// NewYAMLWriter creates a new YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAMLWriter{enc: enc}
}

// WriteGame writes a game as a YAML document.
func (yw *YAMLWriter) WriteGame(game Game) error {
	return yw.enc.Encode(GameToJSON(game))
}

// Flush is a no-op; documents are written as they are encoded.
func (yw *YAMLWriter) Flush() error {
	return nil
}

// Close terminates the YAML stream.
func (yw *YAMLWriter) Close() error {
	return yw.enc.Close()
}

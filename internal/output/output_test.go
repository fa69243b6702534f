package output_test

import (
	"strings"
	"testing"

	"github.com/lgbarn/pgn-movetext-go/internal/chess"
	"github.com/lgbarn/pgn-movetext-go/internal/output"
	"github.com/lgbarn/pgn-movetext-go/internal/testutil"
)

func white(n int, name string, vars ...[]chess.TreeMove) chess.TreeMove {
	return chess.TreeMove{Number: n, Colour: chess.White, Name: name, Variations: vars}
}

func black(n int, name string, vars ...[]chess.TreeMove) chess.TreeMove {
	return chess.TreeMove{Number: n, Colour: chess.Black, Name: name, Variations: vars}
}

func line(moves ...chess.TreeMove) []chess.TreeMove {
	return moves
}

func TestFormatMove(t *testing.T) {
	tests := []struct {
		name   string
		move   chess.TreeMove
		number bool
		want   string
	}{
		{"white", white(1, "e4"), false, "1. e4"},
		{"white ignores flag", white(12, "Nf3"), true, "12. Nf3"},
		{"black", black(1, "e5"), false, "e5"},
		{"black numbered", black(3, "Nf6"), true, "3... Nf6"},
		{
			name: "annotation before comment",
			move: chess.TreeMove{Number: 8, Colour: chess.Black, Name: "Ne7", Annotation: "N", Comment: "novelty"},
			want: "Ne7 N {novelty}",
		},
		{
			name: "comment only",
			move: chess.TreeMove{Number: 1, Colour: chess.White, Name: "d4", Comment: "A nice first move"},
			want: "1. d4 {A nice first move}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, output.FormatMove(tt.move, tt.number), tt.want)
		})
	}
}

func TestFormatMovetext(t *testing.T) {
	tests := []struct {
		name  string
		lines [][]chess.TreeMove
		want  string
	}{
		{
			name: "no lines",
			want: "",
		},
		{
			name:  "flat",
			lines: [][]chess.TreeMove{line(white(1, "e4"), black(1, "c5"), white(2, "Nf3"))},
			want:  "1. e4 c5 2. Nf3",
		},
		{
			name: "children follow the reply they replace",
			lines: [][]chess.TreeMove{line(
				white(1, "e4", line(black(1, "c5")), line(black(1, "e6"))),
				black(1, "e5"),
				white(2, "Nf3"),
				black(2, "Nc6"),
			)},
			want: "1. e4 e5 (1... c5) (1... e6) 2. Nf3 Nc6",
		},
		{
			name: "extra main lines follow the first move",
			lines: [][]chess.TreeMove{
				line(white(1, "d4"), black(1, "d5")),
				line(white(1, "e4")),
				line(white(1, "Nf3")),
			},
			want: "1. d4 (1. e4) (1. Nf3) 1... d5",
		},
		{
			name: "black variation start",
			lines: [][]chess.TreeMove{line(
				white(1, "e4"),
				black(1, "e5", line(white(2, "Nc3"), black(2, "Nf6"))),
				white(2, "Nf3"),
				black(2, "Nc6"),
			)},
			want: "1. e4 e5 2. Nf3 (2. Nc3 Nf6) 2... Nc6",
		},
		{
			name: "empty child variation renders nothing",
			lines: [][]chess.TreeMove{line(
				white(1, "e4", line()),
				black(1, "e5"),
			)},
			want: "1. e4 e5",
		},
		{
			name: "children of the last move are not rendered",
			lines: [][]chess.TreeMove{line(
				white(1, "e4"),
				black(1, "e5", line(white(2, "Nf3"))),
			)},
			want: "1. e4 e5",
		},
		{
			name: "empty first main line is skipped",
			lines: [][]chess.TreeMove{
				line(),
				line(white(1, "c4"), black(1, "e5")),
			},
			want: "1. c4 e5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, output.FormatMovetext(tt.lines), tt.want)
		})
	}
}

func TestFormatTags(t *testing.T) {
	tags := chess.NewTags("Event", `Club "Open"`, "Site", `C:\chess`, "Date", "2019.08.05")
	want := "[Event \"Club \\\"Open\\\"\"]\n[Site \"C:\\\\chess\"]\n[Date \"2019.08.05\"]"

	testutil.AssertEqual(t, output.FormatTags(tags), want)
	testutil.AssertEqual(t, output.FormatTags(chess.Tags{}), "")
}

func TestFormatDocument(t *testing.T) {
	tests := []struct {
		name                   string
		tags, movetext, result string
		want                   string
	}{
		{"everything", `[Event "A"]`, "1. e4", "1-0", "[Event \"A\"]\n\n1. e4 1-0"},
		{"no tags", "", "1. e4", "*", "1. e4 *"},
		{"no movetext", `[Event "A"]`, "", "*", "[Event \"A\"]\n\n*"},
		{"result only", "", "", "*", "*"},
		{"no result", "", "1. e4", "", "1. e4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, output.FormatDocument(tt.tags, tt.movetext, tt.result), tt.want)
		})
	}
}

func TestWrapMovetext(t *testing.T) {
	text := "1. e4 (1. c4 c5 foo bar (1... e5 2. g3 {foo} (2. Nc3 {foo})) (1... Nf6)) 1... c5"

	testutil.AssertEqual(t, output.WrapMovetext(text, 0), text)

	wrapped := output.WrapMovetext(text, 20)
	for _, l := range strings.Split(wrapped, "\n") {
		testutil.AssertTrue(t, len(l) <= 20, "line %q", l)
	}
	testutil.AssertEqual(t, strings.Join(strings.Fields(wrapped), " "), text)

	testutil.AssertEqual(t, output.WrapMovetext("1. e4", 2), "1.\ne4")
}

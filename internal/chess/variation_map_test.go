package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	pgnerrors "github.com/lgbarn/pgn-movetext-go/internal/errors"
)

// mustBranch places name after cursor and fails the test on error.
func mustBranch(t *testing.T, vm *VariationMap, cursor Move, name string) Move {
	t.Helper()
	m, err := vm.Branch(cursor, Move{Name: name})
	if err != nil {
		t.Fatalf("Branch(%s, %q) error: %v", cursor.Name, name, err)
	}
	return m
}

// names returns the move names of a variation.
func names(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Name
	}
	return out
}

func TestPredicates(t *testing.T) {
	root := RootMove()
	if !IsRoot(root) {
		t.Error("IsRoot(RootMove()) = false, want true")
	}
	if root.Number != 0 || root.Colour != Black || root.Name != "root" {
		t.Errorf("RootMove() = %+v, want number 0, black, name root", root)
	}
	if IsFirstMove(root) {
		t.Error("IsFirstMove(root) = true, want false")
	}

	e4 := Move{ID: NewMoveID(), Number: 1, Colour: White, Name: "e4"}
	c4 := Move{ID: NewMoveID(), Number: 1, Colour: White, Name: "c4"}
	e5 := Move{ID: NewMoveID(), Number: 1, Colour: Black, Name: "e5"}

	if !IsFirstMove(e4) {
		t.Error("IsFirstMove(e4) = false, want true")
	}
	if IsFirstMove(e5) {
		t.Error("IsFirstMove(e5) = true, want false")
	}
	if !HasSameNumberAndColour(e4, c4) {
		t.Error("HasSameNumberAndColour(e4, c4) = false, want true")
	}
	if HasSameNumberAndColour(e4, e5) {
		t.Error("HasSameNumberAndColour(e4, e5) = true, want false")
	}
}

func TestNextPly(t *testing.T) {
	tests := []struct {
		number     int
		colour     Colour
		wantNumber int
		wantColour Colour
	}{
		{0, Black, 1, White},
		{1, White, 1, Black},
		{1, Black, 2, White},
		{22, White, 22, Black},
	}

	for _, tt := range tests {
		n, c := NextPly(tt.number, tt.colour)
		if n != tt.wantNumber || c != tt.wantColour {
			t.Errorf("NextPly(%d, %s) = %d, %s; want %d, %s", tt.number, tt.colour, n, c, tt.wantNumber, tt.wantColour)
		}
	}
}

func TestAddMoveUnknownVariation(t *testing.T) {
	vm := NewVariationMap()
	err := vm.AddMove(Move{ID: NewMoveID(), VariationID: "missing", Name: "e4"})
	if !errors.Is(err, pgnerrors.ErrNotFound) {
		t.Errorf("AddMove error = %v, want ErrNotFound", err)
	}
}

func TestGetVariationAndMoveNotFound(t *testing.T) {
	vm := NewVariationMap()
	if _, err := vm.GetVariation("missing"); !errors.Is(err, pgnerrors.ErrNotFound) {
		t.Errorf("GetVariation error = %v, want ErrNotFound", err)
	}

	v := vm.AddVariation(nil)
	if _, err := vm.GetMove(v.ID(), "missing"); !errors.Is(err, pgnerrors.ErrNotFound) {
		t.Errorf("GetMove error = %v, want ErrNotFound", err)
	}
}

func TestUpdateMoveUnmatchedIsNoop(t *testing.T) {
	vm := NewVariationMap()
	e4 := mustBranch(t, vm, RootMove(), "e4")

	stray := Move{ID: NewMoveID(), VariationID: e4.VariationID, Name: "d4"}
	if err := vm.UpdateMove(stray); err != nil {
		t.Fatalf("UpdateMove error: %v", err)
	}
	if diff := cmp.Diff([]string{"e4"}, names(vm.TheMainLine())); diff != "" {
		t.Errorf("main line mismatch (-want +got):\n%s", diff)
	}
}

func TestBranchPlacement(t *testing.T) {
	vm := NewVariationMap()
	e4 := mustBranch(t, vm, RootMove(), "e4")
	e5 := mustBranch(t, vm, e4, "e5")
	c5 := mustBranch(t, vm, e4, "c5")
	nf3 := mustBranch(t, vm, c5, "Nf3")

	if e4.Number != 1 || e4.Colour != White {
		t.Errorf("e4 = %d %s, want 1 white", e4.Number, e4.Colour)
	}
	if e5.VariationID != e4.VariationID {
		t.Error("e5 should continue the main line")
	}
	if c5.VariationID == e4.VariationID {
		t.Error("c5 should open a new child variation")
	}
	if c5.Number != 1 || c5.Colour != Black {
		t.Errorf("c5 = %d %s, want 1 black", c5.Number, c5.Colour)
	}
	if nf3.VariationID != c5.VariationID || nf3.Number != 2 || nf3.Colour != White {
		t.Errorf("Nf3 = %+v, want continuation of c5 at 2 white", nf3)
	}

	stored, err := vm.GetMove(e4.VariationID, e4.ID)
	if err != nil {
		t.Fatalf("GetMove error: %v", err)
	}
	if diff := cmp.Diff([]VariationID{c5.VariationID}, stored.Variations); diff != "" {
		t.Errorf("e4 variations mismatch (-want +got):\n%s", diff)
	}

	v, err := vm.GetVariation(c5.VariationID)
	if err != nil {
		t.Fatalf("GetVariation error: %v", err)
	}
	parent, ok, err := vm.GetParent(v)
	if err != nil || !ok {
		t.Fatalf("GetParent = %v, %v", ok, err)
	}
	if parent.ID != e4.ID {
		t.Errorf("parent = %s, want e4", parent.Name)
	}
}

func TestBranchFromRootStartsNewMainLine(t *testing.T) {
	vm := NewVariationMap()
	mustBranch(t, vm, RootMove(), "d4")
	mustBranch(t, vm, RootMove(), "e4")
	mustBranch(t, vm, RootMove(), "Nf3")

	lines := vm.MainLines()
	if len(lines) != 3 {
		t.Fatalf("len(MainLines()) = %d, want 3", len(lines))
	}
	var got []string
	for _, line := range lines {
		first, _ := line.First()
		got = append(got, first.Name)
	}
	if diff := cmp.Diff([]string{"d4", "e4", "Nf3"}, got); diff != "" {
		t.Errorf("main line order mismatch (-want +got):\n%s", diff)
	}
}

func TestBranchExplicitNumber(t *testing.T) {
	tests := []struct {
		name       string
		proto      Move
		wantNumber int
		wantColour Colour
	}{
		{"white", Move{Name: "e4", Number: 12, Colour: White}, 12, White},
		{"black", Move{Name: "e5", Number: 1, Colour: Black}, 1, Black},
		{"no number", Move{Name: "d4", Colour: Black}, 1, White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := NewVariationMap()
			m, err := vm.Branch(RootMove(), tt.proto)
			if err != nil {
				t.Fatalf("Branch error: %v", err)
			}
			if m.Number != tt.wantNumber || m.Colour != tt.wantColour {
				t.Errorf("m = %d %s, want %d %s", m.Number, m.Colour, tt.wantNumber, tt.wantColour)
			}
		})
	}
}

func TestBranchIgnoresNumberAfterCursor(t *testing.T) {
	vm := NewVariationMap()
	e5, err := vm.Branch(RootMove(), Move{Name: "e5", Number: 1, Colour: Black})
	if err != nil {
		t.Fatalf("Branch error: %v", err)
	}
	nf3, err := vm.Branch(e5, Move{Name: "Nf3", Number: 7, Colour: Black})
	if err != nil {
		t.Fatalf("Branch error: %v", err)
	}
	if nf3.Number != 2 || nf3.Colour != White {
		t.Errorf("Nf3 = %d %s, want 2 white", nf3.Number, nf3.Colour)
	}
}

func TestPreviousAndNext(t *testing.T) {
	vm := NewVariationMap()
	e4 := mustBranch(t, vm, RootMove(), "e4")
	mustBranch(t, vm, e4, "e5")
	c5 := mustBranch(t, vm, e4, "c5")

	prev, err := vm.Previous(c5)
	if err != nil {
		t.Fatalf("Previous error: %v", err)
	}
	if prev.ID != e4.ID {
		t.Errorf("Previous(c5) = %s, want e4", prev.Name)
	}

	prev, err = vm.Previous(e4)
	if err != nil {
		t.Fatalf("Previous error: %v", err)
	}
	if !IsRoot(prev) {
		t.Errorf("Previous(e4) = %s, want root", prev.Name)
	}

	prev, _ = vm.Previous(RootMove())
	if !IsRoot(prev) {
		t.Error("Previous(root) should be root")
	}

	next, ok, err := vm.NextInVariation(RootMove())
	if err != nil || !ok || next.ID != e4.ID {
		t.Errorf("NextInVariation(root) = %s, %v, %v; want e4", next.Name, ok, err)
	}
	next, ok, err = vm.NextInVariation(e4)
	if err != nil || !ok || next.Name != "e5" {
		t.Errorf("NextInVariation(e4) = %s, %v, %v; want e5", next.Name, ok, err)
	}
	if _, ok, _ := vm.NextInVariation(c5); ok {
		t.Error("NextInVariation(c5) should report no move")
	}
}

func TestFindMove(t *testing.T) {
	vm := NewVariationMap()
	e4 := mustBranch(t, vm, RootMove(), "e4")
	c5 := mustBranch(t, vm, e4, "c5")
	mustBranch(t, vm, e4, "e5")
	g3 := mustBranch(t, vm, c5, "g3")
	mustBranch(t, vm, c5, "Nc3")

	found, ok := vm.FindMove(func(m Move) bool { return m.Name == "Nc3" })
	if !ok || found.Name != "Nc3" {
		t.Errorf("FindMove(Nc3) = %s, %v", found.Name, ok)
	}
	if found.VariationID == g3.VariationID {
		t.Error("Nc3 should live in its own variation")
	}
	if _, ok := vm.FindMove(func(m Move) bool { return m.Name == "foo" }); ok {
		t.Error("FindMove(foo) should fail")
	}
}

func TestTraverseMapFilter(t *testing.T) {
	vm := NewVariationMap()
	e4 := mustBranch(t, vm, RootMove(), "e4")
	mustBranch(t, vm, e4, "c5")
	e5 := mustBranch(t, vm, e4, "e5")
	mustBranch(t, vm, e5, "g3")
	mustBranch(t, vm, e5, "Nc3")

	count := 0
	vm.Traverse(func(Move) { count++ })
	if count != 5 {
		t.Errorf("Traverse visited %d moves, want 5", count)
	}

	mapped := vm.Map(func(m Move) Move {
		m.Colour = White
		m.ID = "hijacked"
		m.Variations = nil
		return m
	})
	mapped.Traverse(func(m Move) {
		if m.Colour != White {
			t.Errorf("mapped %s colour = %s, want white", m.Name, m.Colour)
		}
		if m.ID == "hijacked" {
			t.Errorf("Map should restore id of %s", m.Name)
		}
	})
	stored, _ := mapped.GetMove(e4.VariationID, e4.ID)
	if len(stored.Variations) != 1 {
		t.Errorf("Map should keep e4's variation links, got %d", len(stored.Variations))
	}

	filtered := vm.Filter(func(m Move) bool { return m.Number <= 1 })
	if filtered.Len() != vm.Len() {
		t.Errorf("Filter changed variation count: %d vs %d", filtered.Len(), vm.Len())
	}
	filtered.Traverse(func(m Move) {
		if m.Number > 1 {
			t.Errorf("filtered map kept %s at %d", m.Name, m.Number)
		}
	})
	nc3Line, _ := filtered.GetVariation(mustFind(t, vm, "Nc3").VariationID)
	if !nc3Line.IsEmpty() {
		t.Error("Filter should leave the Nc3 branch empty, not delete it")
	}

	// The source map is untouched.
	count = 0
	vm.Traverse(func(Move) { count++ })
	if count != 5 {
		t.Errorf("source map visited %d moves after Map/Filter, want 5", count)
	}
}

func mustFind(t *testing.T, vm *VariationMap, name string) Move {
	t.Helper()
	m, ok := vm.FindMove(func(m Move) bool { return m.Name == name })
	if !ok {
		t.Fatalf("move %s not found", name)
	}
	return m
}

func TestCloneSharesUntouchedVariations(t *testing.T) {
	vm := NewVariationMap()
	e4 := mustBranch(t, vm, RootMove(), "e4")
	e5 := mustBranch(t, vm, e4, "e5")
	c5 := mustBranch(t, vm, e4, "c5")

	clone := vm.Clone()
	mustBranch(t, clone, c5, "Nf3")
	commented := e5
	commented.Comment = "solid"
	if err := clone.UpdateMove(commented); err != nil {
		t.Fatalf("UpdateMove error: %v", err)
	}

	if vm.index[c5.VariationID] == clone.index[c5.VariationID] {
		t.Error("touched variation should be replaced in the clone")
	}
	orig, _ := vm.GetVariation(c5.VariationID)
	if orig.Len() != 1 {
		t.Errorf("original c5 line has %d moves, want 1", orig.Len())
	}
	origE5, _ := vm.GetMove(e5.VariationID, e5.ID)
	if origE5.Comment != "" {
		t.Errorf("original e5 comment = %q, want empty", origE5.Comment)
	}

	other := vm.Clone()
	if vm.index[e4.VariationID] != other.index[e4.VariationID] {
		t.Error("untouched variations should be shared by reference")
	}
}

func TestVariationAccessorsReturnCopies(t *testing.T) {
	vm := NewVariationMap()
	e4 := mustBranch(t, vm, RootMove(), "e4")
	mustBranch(t, vm, e4, "e5")
	mustBranch(t, vm, e4, "c5")

	v, _ := vm.GetVariation(e4.VariationID)
	moves := v.Moves()
	moves[0].Name = "d4"
	moves[0].Variations[0] = "tampered"

	again, _ := vm.GetMove(e4.VariationID, e4.ID)
	if again.Name != "e4" {
		t.Errorf("stored name = %q, want e4", again.Name)
	}
	if again.Variations[0] == "tampered" {
		t.Error("stored variation links were modified through a copy")
	}
}

func TestTree(t *testing.T) {
	vm := NewVariationMap()
	e4 := mustBranch(t, vm, RootMove(), "e4")
	mustBranch(t, vm, e4, "c5")
	e5 := mustBranch(t, vm, e4, "e5")
	mustBranch(t, vm, e5, "g3")
	mustBranch(t, vm, e5, "Nc3")
	mustBranch(t, vm, RootMove(), "d4")

	tree, err := vm.Tree()
	if err != nil {
		t.Fatalf("Tree error: %v", err)
	}

	type node struct {
		Name       string
		Variations [][]node
	}
	var project func([]TreeMove) []node
	project = func(moves []TreeMove) []node {
		out := make([]node, len(moves))
		for i, m := range moves {
			out[i].Name = m.Name
			for _, v := range m.Variations {
				out[i].Variations = append(out[i].Variations, project(v))
			}
		}
		return out
	}
	var got [][]node
	for _, line := range tree {
		got = append(got, project(line))
	}

	want := [][]node{
		{
			{Name: "e4", Variations: [][]node{
				{
					{Name: "e5", Variations: [][]node{{{Name: "Nc3"}}}},
					{Name: "g3"},
				},
			}},
			{Name: "c5"},
		},
		{{Name: "d4"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tree() mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeDanglingChild(t *testing.T) {
	vm := NewVariationMap()
	e4 := mustBranch(t, vm, RootMove(), "e4")
	e4.Variations = []VariationID{"missing"}
	if err := vm.UpdateMove(e4); err != nil {
		t.Fatalf("UpdateMove error: %v", err)
	}
	if _, err := vm.Tree(); !errors.Is(err, pgnerrors.ErrNotFound) {
		t.Errorf("Tree error = %v, want ErrNotFound", err)
	}
}

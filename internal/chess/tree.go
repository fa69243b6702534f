package chess

import (
	pgnerrors "github.com/lgbarn/pgn-movetext-go/internal/errors"
)

// TreeMove is a Move with its child variations resolved into move lists.
type TreeMove struct {
	ID          MoveID
	VariationID VariationID
	Number      int
	Colour      Colour
	Name        string
	Comment     string
	Annotation  string
	Variations  [][]TreeMove
}

// Tree builds the nested projection of vm: one move list per main line, in
// insertion order, with every child variation expanded recursively. The
// result is computed on each call and shares nothing with vm.
func (vm *VariationMap) Tree() ([][]TreeMove, error) {
	lines := vm.MainLines()
	out := make([][]TreeMove, 0, len(lines))
	seen := make(map[VariationID]bool)
	for _, line := range lines {
		moves, err := vm.treeOf(line.id, seen)
		if err != nil {
			return nil, err
		}
		out = append(out, moves)
	}
	return out, nil
}

func (vm *VariationMap) treeOf(id VariationID, seen map[VariationID]bool) ([]TreeMove, error) {
	if seen[id] {
		return nil, pgnerrors.Wrapf(pgnerrors.ErrInconsistentMap, "variation %s reached twice", id)
	}
	seen[id] = true

	v, err := vm.lookup(id)
	if err != nil {
		return nil, err
	}
	out := make([]TreeMove, len(v.moves))
	for i, m := range v.moves {
		tm := TreeMove{
			ID:          m.ID,
			VariationID: m.VariationID,
			Number:      m.Number,
			Colour:      m.Colour,
			Name:        m.Name,
			Comment:     m.Comment,
			Annotation:  m.Annotation,
		}
		for _, child := range m.Variations {
			moves, err := vm.treeOf(child, seen)
			if err != nil {
				return nil, err
			}
			tm.Variations = append(tm.Variations, moves)
		}
		out[i] = tm
	}
	return out, nil
}

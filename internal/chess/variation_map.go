package chess

import (
	pgnerrors "github.com/lgbarn/pgn-movetext-go/internal/errors"
)

// VariationMap is the owning store of all Variations of a game, keyed by id
// in insertion order. Registered Variation values are never modified: every
// mutation installs a new Variation under the same id, so a map obtained
// from Clone shares all untouched Variations with its source.
type VariationMap struct {
	order []VariationID
	index map[VariationID]*Variation
}

// NewVariationMap creates an empty map.
func NewVariationMap() *VariationMap {
	return &VariationMap{index: make(map[VariationID]*Variation)}
}

// Clone returns a map that shares every Variation with vm. Mutating either
// map afterwards never affects the other.
func (vm *VariationMap) Clone() *VariationMap {
	index := make(map[VariationID]*Variation, len(vm.index))
	for id, v := range vm.index {
		index[id] = v
	}
	return &VariationMap{
		order: append([]VariationID(nil), vm.order...),
		index: index,
	}
}

// Len returns the number of registered variations.
func (vm *VariationMap) Len() int {
	return len(vm.order)
}

// AddVariation creates and registers an empty Variation. If parent is not
// nil the Variation is anchored to it.
func (vm *VariationMap) AddVariation(parent *Move) Variation {
	v := &Variation{id: NewVariationID()}
	if parent != nil {
		v.parentMoveID = parent.ID
		v.parentVariationID = parent.VariationID
	}
	vm.put(v)
	return *v
}

// put registers or replaces v.
func (vm *VariationMap) put(v *Variation) {
	if _, ok := vm.index[v.id]; !ok {
		vm.order = append(vm.order, v.id)
	}
	vm.index[v.id] = v
}

// AddMove appends m to the Variation named by m.VariationID.
func (vm *VariationMap) AddMove(m Move) error {
	v, err := vm.lookup(m.VariationID)
	if err != nil {
		return err
	}
	moves := make([]Move, len(v.moves), len(v.moves)+1)
	copy(moves, v.moves)
	vm.put(v.withMoves(append(moves, m.Clone())))
	return nil
}

// UpdateMove replaces the move with m.ID inside m's Variation. An id that is
// not in the Variation leaves it unchanged.
func (vm *VariationMap) UpdateMove(m Move) error {
	v, err := vm.lookup(m.VariationID)
	if err != nil {
		return err
	}
	i := v.IndexOf(m.ID)
	if i < 0 {
		return nil
	}
	moves := make([]Move, len(v.moves))
	copy(moves, v.moves)
	moves[i] = m.Clone()
	vm.put(v.withMoves(moves))
	return nil
}

// lookup returns the registered Variation pointer. Callers must not modify it.
func (vm *VariationMap) lookup(id VariationID) (*Variation, error) {
	v, ok := vm.index[id]
	if !ok {
		return nil, pgnerrors.Wrapf(pgnerrors.ErrNotFound, "variation %s", id)
	}
	return v, nil
}

// GetVariation returns the Variation with the given id.
func (vm *VariationMap) GetVariation(id VariationID) (Variation, error) {
	v, err := vm.lookup(id)
	if err != nil {
		return Variation{}, err
	}
	return *v, nil
}

// GetMove returns the move moveID from Variation variationID.
func (vm *VariationMap) GetMove(variationID VariationID, moveID MoveID) (Move, error) {
	v, err := vm.lookup(variationID)
	if err != nil {
		return Move{}, err
	}
	i := v.IndexOf(moveID)
	if i < 0 {
		return Move{}, pgnerrors.Wrapf(pgnerrors.ErrNotFound, "move %s in variation %s", moveID, variationID)
	}
	return v.moves[i].Clone(), nil
}

// Refresh returns the stored version of m. The root sentinel is returned as is.
func (vm *VariationMap) Refresh(m Move) (Move, error) {
	if IsRoot(m) {
		return m, nil
	}
	return vm.GetMove(m.VariationID, m.ID)
}

// GetParent returns the move v branches from. ok is false for a main line.
func (vm *VariationMap) GetParent(v Variation) (parent Move, ok bool, err error) {
	if v.IsMainLine() {
		return Move{}, false, nil
	}
	parent, err = vm.GetMove(v.parentVariationID, v.parentMoveID)
	if err != nil {
		return Move{}, false, err
	}
	return parent, true, nil
}

// FindMove returns the first move matching predicate, scanning Variations in
// insertion order and each Variation's moves in sequence.
func (vm *VariationMap) FindMove(predicate func(Move) bool) (Move, bool) {
	for _, id := range vm.order {
		for _, m := range vm.index[id].moves {
			if predicate(m) {
				return m.Clone(), true
			}
		}
	}
	return Move{}, false
}

// Variations returns all Variations in insertion order.
func (vm *VariationMap) Variations() []Variation {
	out := make([]Variation, 0, len(vm.order))
	for _, id := range vm.order {
		out = append(out, *vm.index[id])
	}
	return out
}

// MainLines returns all parentless Variations in insertion order.
func (vm *VariationMap) MainLines() []Variation {
	var out []Variation
	for _, id := range vm.order {
		if v := vm.index[id]; v.IsMainLine() {
			out = append(out, *v)
		}
	}
	return out
}

// TheMainLine returns the moves of the first main line, or nil.
func (vm *VariationMap) TheMainLine() []Move {
	lines := vm.MainLines()
	if len(lines) == 0 {
		return nil
	}
	return lines[0].Moves()
}

// Traverse calls fn for every move of every Variation, flat.
func (vm *VariationMap) Traverse(fn func(Move)) {
	for _, id := range vm.order {
		for _, m := range vm.index[id].moves {
			fn(m.Clone())
		}
	}
}

// Map returns a new map whose moves are fn applied to every move. Ids and
// child-variation links are restored from the source move, so fn can only
// change the other fields.
func (vm *VariationMap) Map(fn func(Move) Move) *VariationMap {
	out := NewVariationMap()
	for _, id := range vm.order {
		v := vm.index[id]
		moves := make([]Move, len(v.moves))
		for i, m := range v.moves {
			mapped := fn(m.Clone())
			mapped.ID = m.ID
			mapped.VariationID = m.VariationID
			mapped.Variations = m.Clone().Variations
			moves[i] = mapped
		}
		out.put(v.withMoves(moves))
	}
	return out
}

// Filter returns a new map keeping only moves that satisfy predicate. Each
// Variation is filtered on its own and is kept even when it ends up empty.
func (vm *VariationMap) Filter(predicate func(Move) bool) *VariationMap {
	out := NewVariationMap()
	for _, id := range vm.order {
		v := vm.index[id]
		var moves []Move
		for _, m := range v.moves {
			if predicate(m.Clone()) {
				moves = append(moves, m)
			}
		}
		out.put(v.withMoves(moves))
	}
	return out
}

// NextInVariation returns the move following m in its own Variation. From the
// root sentinel it returns the first move of the first main line.
func (vm *VariationMap) NextInVariation(m Move) (Move, bool, error) {
	if IsRoot(m) {
		line := vm.TheMainLine()
		if len(line) == 0 {
			return Move{}, false, nil
		}
		return line[0], true, nil
	}
	v, err := vm.lookup(m.VariationID)
	if err != nil {
		return Move{}, false, err
	}
	i := v.IndexOf(m.ID)
	if i < 0 {
		return Move{}, false, pgnerrors.Wrapf(pgnerrors.ErrNotFound, "move %s in variation %s", m.ID, m.VariationID)
	}
	next, ok := v.At(i + 1)
	return next, ok, nil
}

// Previous returns the move played before m: its predecessor in the same
// Variation, the parent move for a Variation's first move, or the root
// sentinel for a main line's first move and for root itself.
func (vm *VariationMap) Previous(m Move) (Move, error) {
	if IsRoot(m) {
		return m, nil
	}
	v, err := vm.lookup(m.VariationID)
	if err != nil {
		return Move{}, err
	}
	i := v.IndexOf(m.ID)
	if i < 0 {
		return Move{}, pgnerrors.Wrapf(pgnerrors.ErrNotFound, "move %s in variation %s", m.ID, m.VariationID)
	}
	if i > 0 {
		return v.moves[i-1].Clone(), nil
	}
	parent, ok, err := vm.GetParent(*v)
	if err != nil {
		return Move{}, err
	}
	if !ok {
		return RootMove(), nil
	}
	return parent, nil
}

// Branch places a new move after cursor and returns it. proto supplies the
// name, comment and annotation. Number and colour follow the cursor by
// NextPly, except that a new main line with a positive proto.Number starts at
// proto.Number and proto.Colour. The target Variation is:
//   - a new main line when cursor is the root sentinel,
//   - a new child Variation registered on cursor when cursor is already
//     followed by a move in its own Variation,
//   - cursor's own Variation otherwise.
func (vm *VariationMap) Branch(cursor Move, proto Move) (Move, error) {
	cursor, err := vm.Refresh(cursor)
	if err != nil {
		return Move{}, err
	}

	number, colour := NextPly(cursor.Number, cursor.Colour)
	if IsRoot(cursor) && proto.Number > 0 {
		number, colour = proto.Number, proto.Colour
	}

	var target VariationID
	if IsRoot(cursor) {
		target = vm.AddVariation(nil).ID()
	} else {
		_, followed, err := vm.NextInVariation(cursor)
		if err != nil {
			return Move{}, err
		}
		if followed {
			target = vm.AddVariation(&cursor).ID()
			if err := vm.UpdateMove(cursor.withVariation(target)); err != nil {
				return Move{}, err
			}
		} else {
			target = cursor.VariationID
		}
	}

	m := Move{
		ID:          NewMoveID(),
		VariationID: target,
		Number:      number,
		Colour:      colour,
		Name:        proto.Name,
		Comment:     proto.Comment,
		Annotation:  proto.Annotation,
	}
	if err := vm.AddMove(m); err != nil {
		return Move{}, err
	}
	return m, nil
}

package chess

// Variation is an ordered ply sequence, optionally anchored to a parent move.
// A Variation value is immutable once registered in a VariationMap: the
// accessors below hand out copies, never the backing slice.
type Variation struct {
	id                VariationID
	parentMoveID      MoveID
	parentVariationID VariationID
	moves             []Move
}

// ID returns the variation's handle.
func (v Variation) ID() VariationID {
	return v.id
}

// ParentMoveID returns the id of the move this variation branches from, or
// "" for a main line.
func (v Variation) ParentMoveID() MoveID {
	return v.parentMoveID
}

// ParentVariationID returns the id of the variation holding the parent move,
// or "" for a main line.
func (v Variation) ParentVariationID() VariationID {
	return v.parentVariationID
}

// IsMainLine returns true if the variation has no parent.
func (v Variation) IsMainLine() bool {
	return v.parentMoveID == "" && v.parentVariationID == ""
}

// Len returns the number of moves.
func (v Variation) Len() int {
	return len(v.moves)
}

// IsEmpty returns true if the variation has no moves.
func (v Variation) IsEmpty() bool {
	return len(v.moves) == 0
}

// Moves returns a copy of the move sequence.
func (v Variation) Moves() []Move {
	out := make([]Move, len(v.moves))
	for i, m := range v.moves {
		out[i] = m.Clone()
	}
	return out
}

// At returns the move at index i.
func (v Variation) At(i int) (Move, bool) {
	if i < 0 || i >= len(v.moves) {
		return Move{}, false
	}
	return v.moves[i].Clone(), true
}

// First returns the first move.
func (v Variation) First() (Move, bool) {
	return v.At(0)
}

// Last returns the last move.
func (v Variation) Last() (Move, bool) {
	return v.At(len(v.moves) - 1)
}

// IndexOf returns the index of the move with the given id, or -1.
func (v Variation) IndexOf(id MoveID) int {
	for i, m := range v.moves {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// withMoves returns a copy of v holding moves.
func (v Variation) withMoves(moves []Move) *Variation {
	return &Variation{
		id:                v.id,
		parentMoveID:      v.parentMoveID,
		parentVariationID: v.parentVariationID,
		moves:             moves,
	}
}

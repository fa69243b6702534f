package chess

import "github.com/google/uuid"

// MoveID is the opaque handle of a Move.
type MoveID string

// VariationID is the opaque handle of a Variation.
type VariationID string

// RootMoveID is reserved for the root sentinel.
const RootMoveID MoveID = "root"

// RootMoveName is the notation carried by the root sentinel.
const RootMoveName = "root"

// NewMoveID returns a fresh move id.
func NewMoveID() MoveID {
	return MoveID(uuid.NewString())
}

// NewVariationID returns a fresh variation id.
func NewVariationID() VariationID {
	return VariationID(uuid.NewString())
}

// Move represents a single ply.
type Move struct {
	ID          MoveID
	VariationID VariationID

	// Move number shared by a white/black pair; 0 for the root sentinel.
	Number int
	Colour Colour

	// The notation token (e.g., "Nf3", "O-O").
	Name string

	Comment    string
	Annotation string

	// Child variations branching immediately after this move, in
	// registration order.
	Variations []VariationID
}

// RootMove returns the sentinel that stands for "no move played". It belongs
// to no Variation and is never stored in a VariationMap.
func RootMove() Move {
	return Move{
		ID:     RootMoveID,
		Number: 0,
		Colour: Black,
		Name:   RootMoveName,
	}
}

// IsRoot returns true if m is the root sentinel.
func IsRoot(m Move) bool {
	return m.ID == RootMoveID
}

// IsFirstMove returns true for white's first move.
func IsFirstMove(m Move) bool {
	return m.Number == 1 && m.Colour == White
}

// HasSameNumberAndColour reports whether a and b occupy the same ply.
func HasSameNumberAndColour(a, b Move) bool {
	return a.Number == b.Number && a.Colour == b.Colour
}

// HasComment returns true if this move has a comment.
func (m Move) HasComment() bool {
	return m.Comment != ""
}

// HasAnnotation returns true if this move has an annotation.
func (m Move) HasAnnotation() bool {
	return m.Annotation != ""
}

// Clone returns a copy of m that shares no slice storage with it.
func (m Move) Clone() Move {
	if m.Variations != nil {
		m.Variations = append([]VariationID(nil), m.Variations...)
	}
	return m
}

// withVariation returns a copy of m with id appended to its child variations.
func (m Move) withVariation(id VariationID) Move {
	vs := make([]VariationID, len(m.Variations), len(m.Variations)+1)
	copy(vs, m.Variations)
	m.Variations = append(vs, id)
	return m
}

// AppendAnnotation returns a copy of m with text space-joined to its annotation.
func (m Move) AppendAnnotation(text string) Move {
	if !m.HasAnnotation() {
		m.Annotation = text
	} else {
		m.Annotation += " " + text
	}
	return m
}

// AppendComment returns a copy of m with text space-joined to its comment.
func (m Move) AppendComment(text string) Move {
	if !m.HasComment() {
		m.Comment = text
	} else {
		m.Comment += " " + text
	}
	return m
}

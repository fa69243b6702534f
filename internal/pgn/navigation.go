package pgn

import "github.com/lgbarn/pgn-movetext-go/internal/chess"

// CurrentMove returns the cursor.
func (g *Game) CurrentMove() chess.Move {
	return g.current.Clone()
}

// Move plays name after the cursor. See MoveWith.
func (g *Game) Move(name string) *Game {
	return g.MoveWith(MoveArgs{Name: name})
}

// MoveWith plays a move after the cursor and puts the cursor on it. If a
// move of the same name already follows the cursor, the cursor moves there
// instead and nothing is added. Otherwise the move starts a new main line
// from the root, opens a new variation when the cursor is already followed,
// or extends the cursor's line.
func (g *Game) MoveWith(args MoveArgs) *Game {
	for _, next := range g.NextMoves() {
		if next.Name == args.Name {
			return g.withCursor(next)
		}
	}

	c := g.clone()
	c.moves = g.moves.Clone()
	c.current = must(c.moves.Branch(g.current, chess.Move{
		Name:       args.Name,
		Comment:    args.Comment,
		Annotation: args.Annotation,
	}))
	return c
}

// Comment sets the comment of the cursor move. At the root it does nothing.
func (g *Game) Comment(text string) *Game {
	return g.updateCurrent(func(m chess.Move) chess.Move {
		m.Comment = text
		return m
	})
}

// Annotate sets the annotation of the cursor move. At the root it does
// nothing.
func (g *Game) Annotate(text string) *Game {
	return g.updateCurrent(func(m chess.Move) chess.Move {
		m.Annotation = text
		return m
	})
}

func (g *Game) updateCurrent(fn func(chess.Move) chess.Move) *Game {
	if chess.IsRoot(g.current) {
		return g
	}
	updated := fn(must(g.moves.Refresh(g.current)))
	c := g.clone()
	c.moves = g.moves.Clone()
	if err := c.moves.UpdateMove(updated); err != nil {
		panic(err)
	}
	c.current = updated
	return c
}

// SelectMove puts the cursor on the first move matching predicate. The game
// is unchanged if nothing matches.
func (g *Game) SelectMove(predicate func(chess.Move) bool) *Game {
	if m, ok := g.moves.FindMove(predicate); ok {
		return g.withCursor(m)
	}
	return g
}

// NextMove steps forward in the cursor's line. At the end of the line it
// does nothing.
func (g *Game) NextMove() *Game {
	next, ok := must2(g.moves.NextInVariation(g.current))
	if !ok {
		return g
	}
	return g.withCursor(next)
}

// PreviousMove steps back. From the first move of a variation it goes to the
// move the variation branches from, from the first move of a main line to
// the root. At the root it does nothing.
func (g *Game) PreviousMove() *Game {
	if chess.IsRoot(g.current) {
		return g
	}
	return g.withCursor(g.previous(g.current))
}

// previous is Previous with a filtered-out parent move read as the root.
func (g *Game) previous(m chess.Move) chess.Move {
	p, err := g.moves.Previous(m)
	if err != nil {
		return chess.RootMove()
	}
	return p
}

// FirstMove jumps to the first move of the cursor's line.
func (g *Game) FirstMove() *Game {
	return g.lineBoundary(chess.Variation.First)
}

// LastMove jumps to the last move of the cursor's line.
func (g *Game) LastMove() *Game {
	return g.lineBoundary(chess.Variation.Last)
}

func (g *Game) lineBoundary(pick func(chess.Variation) (chess.Move, bool)) *Game {
	if chess.IsRoot(g.current) {
		return g
	}
	v := must(g.moves.GetVariation(g.current.VariationID))
	m, ok := pick(v)
	if !ok {
		return g
	}
	return g.withCursor(m)
}

// StartingPosition puts the cursor on the root sentinel.
func (g *Game) StartingPosition() *Game {
	return g.withCursor(chess.RootMove())
}

// NextMoves lists every move reachable in one step. From the root that is the
// first move of every main line. Otherwise it is the move following the
// cursor in its line, then the first move of each variation branching from
// the cursor.
func (g *Game) NextMoves() []chess.Move {
	var out []chess.Move
	if chess.IsRoot(g.current) {
		for _, line := range g.moves.MainLines() {
			if first, ok := line.First(); ok {
				out = append(out, first)
			}
		}
		return out
	}

	cur := must(g.moves.Refresh(g.current))
	if next, ok := must2(g.moves.NextInVariation(cur)); ok {
		out = append(out, next)
	}
	for _, id := range cur.Variations {
		if first, ok := must(g.moves.GetVariation(id)).First(); ok {
			out = append(out, first)
		}
	}
	return out
}

// PreviousMoves returns the line of play leading to the cursor, cursor
// included. It is empty at the root.
func (g *Game) PreviousMoves() []chess.Move {
	var out []chess.Move
	for m := g.current; !chess.IsRoot(m); m = g.previous(m) {
		out = append(out, m)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Traverse calls fn for every move, variation by variation.
func (g *Game) Traverse(fn func(chess.Move)) *Game {
	g.moves.Traverse(fn)
	return g
}

// Find returns the first move matching predicate.
func (g *Game) Find(predicate func(chess.Move) bool) (chess.Move, bool) {
	return g.moves.FindMove(predicate)
}

// Map returns a game whose moves are fn applied to every move. Ids and
// variation links are kept. The cursor follows its mapped value.
func (g *Game) Map(fn func(chess.Move) chess.Move) *Game {
	c := g.clone()
	c.moves = g.moves.Map(fn)
	c.current = must(c.moves.Refresh(g.current))
	return c
}

// Filter returns a game keeping only the moves that satisfy predicate.
// Variations are kept even when they end up empty. If the cursor move is
// removed the cursor goes back to the root.
func (g *Game) Filter(predicate func(chess.Move) bool) *Game {
	c := g.clone()
	c.moves = g.moves.Filter(predicate)
	cur, err := c.moves.Refresh(g.current)
	if err != nil {
		cur = chess.RootMove()
	}
	c.current = cur
	return c
}

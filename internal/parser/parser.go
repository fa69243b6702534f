package parser

import (
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/pgn-movetext-go/internal/chess"
	pgnerrors "github.com/lgbarn/pgn-movetext-go/internal/errors"
)

// frame is one level of the variation stack. cursor is the last move placed
// in the frame, or the move the frame branches from while hasMove is false.
type frame struct {
	cursor  chess.Move
	hasMove bool
}

// Parser builds a VariationMap from movetext.
type Parser struct {
	logger *zap.Logger
}

// NewParser creates a parser. A nil logger discards all output.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// state is the per-call parse state.
type state struct {
	vm      *chess.VariationMap
	frames  []frame
	number  int
	black   bool
	comment []string
	logger  *zap.Logger
}

// ParseMovetext parses movetext without tags or result. An empty movetext
// yields an empty map.
func (p *Parser) ParseMovetext(movetext string) (*chess.VariationMap, error) {
	tokens, err := Tokenize(movetext)
	if err != nil {
		return nil, err
	}

	s := &state{
		vm:     chess.NewVariationMap(),
		frames: []frame{{cursor: chess.RootMove()}},
		logger: p.logger,
	}
	for _, tok := range tokens {
		if err := s.consume(tok); err != nil {
			return nil, err
		}
	}

	if s.comment != nil {
		return nil, &pgnerrors.ParseError{Err: pgnerrors.ErrUnterminatedComment, Expected: "}", Got: "end of movetext"}
	}
	if len(s.frames) > 1 {
		return nil, &pgnerrors.ParseError{Err: pgnerrors.ErrUnbalancedVariation, Expected: ")", Got: "end of movetext"}
	}
	return s.vm, nil
}

func (s *state) top() *frame {
	return &s.frames[len(s.frames)-1]
}

func (s *state) consume(tok Token) error {
	switch tok.Type {
	case MoveNumber:
		s.number = tok.Number
		s.black = strings.HasSuffix(tok.Text, "..")

	case CommentOpen:
		s.comment = []string{}
		s.addCommentText(tok.Text)
	case CommentContinue:
		s.addCommentText(tok.Text)
	case CommentClose:
		s.addCommentText(tok.Text)
		text := strings.Join(s.comment, " ")
		s.comment = nil
		if text == "" {
			return nil
		}
		return s.attach(tok, func(m chess.Move) chess.Move { return m.AppendComment(text) })

	case VariationOpen:
		top := s.top()
		if !top.hasMove {
			return &pgnerrors.ParseError{Err: pgnerrors.ErrOrphanVariation, Index: tok.Word, Token: tok.Text}
		}
		anchor, err := s.vm.Previous(top.cursor)
		if err != nil {
			return err
		}
		s.frames = append(s.frames, frame{cursor: anchor})

	case VariationClose:
		if len(s.frames) == 1 {
			return &pgnerrors.ParseError{Err: pgnerrors.ErrUnbalancedVariation, Index: tok.Word, Token: tok.Text}
		}
		if !s.top().hasMove {
			s.logger.Warn("dropping variation with no moves", zap.Int("word", tok.Word))
		}
		s.frames = s.frames[:len(s.frames)-1]

	case Notation:
		top := s.top()
		proto := chess.Move{Name: tok.Text, Number: s.number, Colour: chess.White}
		if s.black {
			proto.Colour = chess.Black
		}
		m, err := s.vm.Branch(top.cursor, proto)
		if err != nil {
			return err
		}
		if s.number > 0 && (m.Number != s.number || s.black && m.Colour != chess.Black) {
			s.logger.Warn("move number does not match the position",
				zap.Int("number", s.number),
				zap.Bool("black", s.black),
				zap.String("move", m.Name),
				zap.Int("want", m.Number),
				zap.Int("word", tok.Word),
			)
		}
		s.number, s.black = 0, false
		top.cursor = m
		top.hasMove = true

	case Annotation:
		return s.attach(tok, func(m chess.Move) chess.Move { return m.AppendAnnotation(tok.Text) })
	}
	return nil
}

func (s *state) addCommentText(text string) {
	if text != "" {
		s.comment = append(s.comment, text)
	}
}

// attach applies fn to the current move of the top frame. Text with no move
// in its frame has nothing to attach to and is dropped.
func (s *state) attach(tok Token, fn func(chess.Move) chess.Move) error {
	top := s.top()
	if !top.hasMove {
		s.logger.Warn("dropping text with no move to attach to",
			zap.Stringer("type", tok.Type),
			zap.String("text", tok.Text),
			zap.Int("word", tok.Word),
		)
		return nil
	}
	cur, err := s.vm.Refresh(top.cursor)
	if err != nil {
		return err
	}
	updated := fn(cur)
	if err := s.vm.UpdateMove(updated); err != nil {
		return err
	}
	top.cursor = updated
	return nil
}

package game

import (
	"github.com/apex/log"

	"github.com/hailam/chessboard/internal/board"
)

// Select makes the piece at p the selection if it belongs to the side to move,
// caching its destinations. Any other cell clears the selection.
func (s *State) Select(p board.Pos) error {
	if err := board.CheckPos(p); err != nil {
		return err
	}

	piece := s.board.At(p)
	if piece.IsEmpty() || piece.Team != s.turn {
		s.Deselect()
		return nil
	}

	s.selected = p
	s.hasSel = true
	s.dests = s.destinations(p)

	s.logger.WithFields(log.Fields{
		"square":       p.String(),
		"piece":        piece.Name(),
		"destinations": s.dests.String(),
	}).Debug("select")
	return nil
}

// Deselect clears the selection and its cached destinations.
func (s *State) Deselect() {
	s.selected = board.NoPos
	s.hasSel = false
	s.dests = board.EmptySet
}

// ApplyMove moves the piece at from to to, capturing anything there.
// to must be a destination of the piece at from; the cached set is used when
// from is the current selection. On success the selection is cleared and the
// turn passes to the other side.
func (s *State) ApplyMove(from, to board.Pos) (Move, error) {
	if err := board.CheckPos(from); err != nil {
		return Move{}, &board.MoveError{Op: "move", From: from, To: to, Err: err}
	}
	if err := board.CheckPos(to); err != nil {
		return Move{}, &board.MoveError{Op: "move", From: from, To: to, Err: err}
	}

	piece := s.board.At(from)
	if piece.IsEmpty() {
		return Move{}, s.reject(from, to, board.ErrEmptySquare)
	}
	if piece.Team != s.turn {
		return Move{}, s.reject(from, to, board.ErrWrongTurn)
	}

	dests := s.dests
	if !s.hasSel || s.selected != from {
		dests = s.destinations(from)
	}
	if !dests.Has(to) {
		return Move{}, s.reject(from, to, board.ErrIllegalMove)
	}

	moved, captured := s.board.Relocate(from, to)
	m := Move{From: from, To: to, Piece: moved, Captured: captured}

	s.Deselect()
	s.turn = s.turn.Other()
	s.lastMove = m
	s.moveCount++

	fields := log.Fields{
		"move":  m.String(),
		"piece": moved.Name(),
		"turn":  s.turn.String(),
	}
	if m.IsCapture() {
		fields["captured"] = captured.Name()
	}
	s.logger.WithFields(fields).Debug("move")
	return m, nil
}

func (s *State) reject(from, to board.Pos, err error) error {
	s.logger.WithFields(log.Fields{
		"from": from.String(),
		"to":   to.String(),
		"turn": s.turn.String(),
	}).WithError(err).Warn("move rejected")
	return &board.MoveError{Op: "move", From: from, To: to, Err: err}
}

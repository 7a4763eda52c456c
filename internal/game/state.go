// Package game holds the turn-based state of one chess game: the board, whose
// turn it is, the current selection and its cached destinations.
//
// A State is owned by a single control flow (a frontend's update loop) and is
// not safe for concurrent use.
package game

import (
	"fmt"

	"github.com/apex/log"

	"github.com/hailam/chessboard/internal/board"
)

// Move records one applied move.
type Move struct {
	From, To board.Pos
	Piece    board.Piece // the piece after moving (HasMoved set)
	Captured board.Piece // NoPiece if the destination was empty
}

// IsCapture reports whether the move removed an opponent piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return fmt.Sprintf("%s%s%s%s", m.Piece, m.From, sep, m.To)
}

// State is the board plus turn and selection.
type State struct {
	board *board.Board
	turn  board.Team

	selected board.Pos
	hasSel   bool
	dests    board.PosSet

	lastMove  Move
	moveCount int

	kingSafety bool
	logger     log.Interface
}

// Option configures a State.
type Option func(*State)

// WithKingSafety filters destinations that would leave the mover's king capturable.
func WithKingSafety(enabled bool) Option {
	return func(s *State) {
		s.kingSafety = enabled
	}
}

// WithLogger sets the logger used for selection and move events.
func WithLogger(l log.Interface) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a game in the standard starting position with White to move.
func New(opts ...Option) *State {
	s := &State{
		board:    board.StandardSetup(),
		turn:     board.White,
		selected: board.NoPos,
		logger:   log.Log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromPlacement returns a game from a piece-placement string and side to move.
func NewFromPlacement(placement string, turn board.Team, opts ...Option) (*State, error) {
	b, err := board.ParsePlacement(placement)
	if err != nil {
		return nil, err
	}
	s := New(opts...)
	s.board = b
	s.turn = turn
	return s, nil
}

// Reset restores the starting position, keeping options.
func (s *State) Reset() {
	s.board = board.StandardSetup()
	s.turn = board.White
	s.lastMove = Move{}
	s.moveCount = 0
	s.Deselect()
	s.logger.Debug("new game")
}

// SetKingSafety toggles the king-safety filter and refreshes the cached destinations.
func (s *State) SetKingSafety(enabled bool) {
	s.kingSafety = enabled
	if s.hasSel {
		s.dests = s.destinations(s.selected)
	}
}

// KingSafety reports whether the king-safety filter is on.
func (s *State) KingSafety() bool {
	return s.kingSafety
}

// Board returns a copy of the board for rendering.
func (s *State) Board() *board.Board {
	return s.board.Copy()
}

// PieceAt returns the piece at p without copying the board.
func (s *State) PieceAt(p board.Pos) board.Piece {
	return s.board.At(p)
}

// Turn returns the side to move.
func (s *State) Turn() board.Team {
	return s.turn
}

// Selected returns the selected cell, if any.
func (s *State) Selected() (board.Pos, bool) {
	return s.selected, s.hasSel
}

// Destinations returns the cached destinations of the current selection.
func (s *State) Destinations() board.PosSet {
	return s.dests
}

// LastMove returns the most recent move, if any.
func (s *State) LastMove() (Move, bool) {
	return s.lastMove, s.moveCount > 0
}

// MoveCount returns the number of moves applied since the game started.
func (s *State) MoveCount() int {
	return s.moveCount
}

// Material returns the summed piece values of a team.
func (s *State) Material(t board.Team) int {
	return s.board.Material(t)
}

// destinations applies the optional king-safety filter.
func (s *State) destinations(p board.Pos) board.PosSet {
	if s.kingSafety {
		return board.SafeDestinations(s.board, p)
	}
	return board.Destinations(s.board, p)
}

// LegalDestinations returns the cells the piece at p may move to.
// An empty cell yields the empty set.
func (s *State) LegalDestinations(p board.Pos) (board.PosSet, error) {
	if err := board.CheckPos(p); err != nil {
		return board.EmptySet, err
	}
	return s.destinations(p), nil
}

package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for the board and game state.
// Use these with errors.Is() to check for specific conditions.
var (
	// ErrInvalidCoordinate indicates a row or column outside 0..7.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrEmptySquare indicates a move from a cell that holds no piece.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrWrongTurn indicates a move or selection of the side not on turn.
	ErrWrongTurn = errors.New("not this side's turn")

	// ErrIllegalMove indicates a destination the piece cannot reach.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPlacement indicates a malformed piece-placement string.
	ErrInvalidPlacement = errors.New("invalid placement")
)

// CoordinateError records the textual input that failed to map to a cell.
type CoordinateError struct {
	Input string
	Err   error
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

func (e *CoordinateError) Unwrap() error {
	return e.Err
}

// MoveError wraps a move failure with the operation and the squares involved.
type MoveError struct {
	Op   string
	From Pos
	To   Pos
	Err  error
}

func (e *MoveError) Error() string {
	if e.To == NoPos {
		return fmt.Sprintf("%s %s: %v", e.Op, e.From, e.Err)
	}
	return fmt.Sprintf("%s %s-%s: %v", e.Op, e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

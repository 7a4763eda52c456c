package game

import "github.com/hailam/chessboard/internal/board"

// OutcomeKind classifies what a click did.
type OutcomeKind int

const (
	// Cleared means the selection is now empty.
	Cleared OutcomeKind = iota
	// Selected means a piece of the side to move is now selected.
	Selected
	// Moved means the selected piece moved to the clicked cell.
	Moved
)

func (k OutcomeKind) String() string {
	switch k {
	case Selected:
		return "selected"
	case Moved:
		return "moved"
	default:
		return "cleared"
	}
}

// Outcome reports the effect of a click.
type Outcome struct {
	Kind OutcomeKind
	Move Move // set when Kind == Moved
}

// Click applies the single click policy shared by every frontend:
//
//  1. a cached destination of the current selection moves the selected piece there;
//  2. otherwise a piece of the side to move, other than the selected one, becomes the selection;
//  3. anything else clears the selection, including clicking the selected piece again.
func (s *State) Click(p board.Pos) (Outcome, error) {
	if err := board.CheckPos(p); err != nil {
		return Outcome{}, err
	}

	if s.hasSel && s.dests.Has(p) {
		m, err := s.ApplyMove(s.selected, p)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: Moved, Move: m}, nil
	}

	piece := s.board.At(p)
	if !piece.IsEmpty() && piece.Team == s.turn && !(s.hasSel && s.selected == p) {
		if err := s.Select(p); err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: Selected}, nil
	}

	s.Deselect()
	return Outcome{Kind: Cleared}, nil
}

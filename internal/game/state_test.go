package game

import (
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/google/go-cmp/cmp"

	"github.com/hailam/chessboard/internal/board"
)

var P = board.P

func newLogged(opts ...Option) (*State, *memory.Handler) {
	h := memory.New()
	logger := &log.Logger{Handler: h, Level: log.DebugLevel}
	return New(append(opts, WithLogger(logger))...), h
}

func mustPlacement(t *testing.T, placement string, turn board.Team, opts ...Option) *State {
	t.Helper()
	s, err := NewFromPlacement(placement, turn, opts...)
	if err != nil {
		t.Fatalf("NewFromPlacement(%q): %v", placement, err)
	}
	return s
}

func TestNewGame(t *testing.T) {
	s := New()

	if s.Turn() != board.White {
		t.Errorf("Turn() = %v; want White", s.Turn())
	}
	if _, ok := s.Selected(); ok {
		t.Error("new game has a selection")
	}
	if !s.Destinations().IsEmpty() {
		t.Errorf("Destinations() = %v; want empty", s.Destinations())
	}
	if _, ok := s.LastMove(); ok {
		t.Error("new game has a last move")
	}
	if got := s.Board().Placement(); got != board.StartPlacement {
		t.Errorf("placement = %q; want %q", got, board.StartPlacement)
	}
}

func TestEndToEndPawnPush(t *testing.T) {
	s := New()

	if err := s.Select(P(6, 4)); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if diff := cmp.Diff(board.SetOf(P(5, 4), P(4, 4)).Positions(), s.Destinations().Positions()); diff != "" {
		t.Errorf("destinations mismatch (-want +got):\n%s", diff)
	}

	m, err := s.ApplyMove(P(6, 4), P(4, 4))
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}

	if !s.PieceAt(P(6, 4)).IsEmpty() {
		t.Error("(6,4) not empty after the move")
	}
	got := s.PieceAt(P(4, 4))
	if got.Team != board.White || got.Kind != board.Pawn || !got.HasMoved {
		t.Errorf("(4,4) = %+v; want moved white pawn", got)
	}
	if s.Turn() != board.Black {
		t.Errorf("Turn() = %v; want Black", s.Turn())
	}
	if _, ok := s.Selected(); ok {
		t.Error("selection not cleared after move")
	}
	if m.IsCapture() {
		t.Errorf("move %v reported as capture", m)
	}
	if last, ok := s.LastMove(); !ok || last != m {
		t.Errorf("LastMove() = %v, %v; want %v", last, ok, m)
	}
	if s.MoveCount() != 1 {
		t.Errorf("MoveCount() = %d; want 1", s.MoveCount())
	}
}

func TestApplyMoveTurnAndCount(t *testing.T) {
	t.Run("quiet move keeps the count", func(t *testing.T) {
		s := New()
		before := s.Board().Total()
		if _, err := s.ApplyMove(P(7, 6), P(5, 5)); err != nil {
			t.Fatalf("ApplyMove: %v", err)
		}
		if got := s.Board().Total(); got != before {
			t.Errorf("Total() = %d; want %d", got, before)
		}
		if s.Turn() != board.Black {
			t.Errorf("Turn() = %v; want Black", s.Turn())
		}
	})

	t.Run("capture removes exactly one", func(t *testing.T) {
		s := mustPlacement(t, "4k3/8/8/3p4/4P3/8/8/4K3", board.White)
		before := s.Board().Total()
		m, err := s.ApplyMove(P(4, 4), P(3, 3))
		if err != nil {
			t.Fatalf("ApplyMove: %v", err)
		}
		if !m.IsCapture() || m.Captured.Kind != board.Pawn || m.Captured.Team != board.Black {
			t.Errorf("captured = %+v; want black pawn", m.Captured)
		}
		if got := s.Board().Total(); got != before-1 {
			t.Errorf("Total() = %d; want %d", got, before-1)
		}
		if s.Turn() != board.Black {
			t.Errorf("Turn() = %v; want Black", s.Turn())
		}
		if s.Material(board.Black) != 100 {
			t.Errorf("Material(Black) = %d; want 100", s.Material(board.Black))
		}
	})

	t.Run("king capture has no special handling", func(t *testing.T) {
		s := mustPlacement(t, "4k3/4R3/8/8/8/8/8/4K3", board.White)
		if _, err := s.ApplyMove(P(1, 4), P(0, 4)); err != nil {
			t.Fatalf("ApplyMove: %v", err)
		}
		if got := s.Board().Count(board.Black, board.King); got != 0 {
			t.Errorf("black kings = %d; want 0", got)
		}
		if s.Turn() != board.Black {
			t.Errorf("Turn() = %v; want Black", s.Turn())
		}
	})
}

func TestApplyMoveErrors(t *testing.T) {
	tests := []struct {
		name     string
		from, to board.Pos
		want     error
	}{
		{"empty source", P(4, 4), P(3, 4), board.ErrEmptySquare},
		{"wrong turn", P(1, 4), P(3, 4), board.ErrWrongTurn},
		{"unreachable", P(6, 4), P(3, 4), board.ErrIllegalMove},
		{"own piece", P(7, 0), P(6, 0), board.ErrIllegalMove},
		{"off board", P(6, 4), P(8, 4), board.ErrInvalidCoordinate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, h := newLogged()
			_, err := s.ApplyMove(tc.from, tc.to)
			if !errors.Is(err, tc.want) {
				t.Fatalf("ApplyMove err = %v; want %v", err, tc.want)
			}
			var me *board.MoveError
			if !errors.As(err, &me) {
				t.Errorf("err %T is not a *board.MoveError", err)
			}
			if s.Turn() != board.White {
				t.Error("turn changed after a rejected move")
			}
			if s.Board().Placement() != board.StartPlacement {
				t.Error("board changed after a rejected move")
			}
			if tc.want != board.ErrInvalidCoordinate {
				if len(h.Entries) == 0 || h.Entries[len(h.Entries)-1].Level != log.WarnLevel {
					t.Errorf("expected a warn entry, got %d entries", len(h.Entries))
				}
			}
		})
	}
}

func TestApplyMoveUsesSelectionCache(t *testing.T) {
	s := New()
	if err := s.Select(P(6, 4)); err != nil {
		t.Fatalf("Select: %v", err)
	}
	// A move from another piece is validated on its own destinations.
	if _, err := s.ApplyMove(P(6, 3), P(4, 3)); err != nil {
		t.Fatalf("ApplyMove from an unselected piece: %v", err)
	}
	if _, ok := s.Selected(); ok {
		t.Error("selection survived a move")
	}
}

func TestLegalDestinations(t *testing.T) {
	s := New()

	got, err := s.LegalDestinations(P(4, 4))
	if err != nil || !got.IsEmpty() {
		t.Errorf("LegalDestinations(empty) = %v, %v; want empty, nil", got, err)
	}

	// Opponent pieces can be queried too.
	got, err = s.LegalDestinations(P(0, 1))
	if err != nil {
		t.Fatalf("LegalDestinations: %v", err)
	}
	if diff := cmp.Diff([]board.Pos{P(2, 0), P(2, 2)}, got.Positions()); diff != "" {
		t.Errorf("knight destinations mismatch (-want +got):\n%s", diff)
	}

	for _, p := range []board.Pos{P(-1, 0), P(0, 8), P(8, 8)} {
		if _, err := s.LegalDestinations(p); !errors.Is(err, board.ErrInvalidCoordinate) {
			t.Errorf("LegalDestinations(%v) err = %v; want ErrInvalidCoordinate", p, err)
		}
	}
}

func TestSelect(t *testing.T) {
	t.Run("own piece", func(t *testing.T) {
		s, h := newLogged()
		if err := s.Select(P(7, 1)); err != nil {
			t.Fatalf("Select: %v", err)
		}
		if sel, ok := s.Selected(); !ok || sel != P(7, 1) {
			t.Errorf("Selected() = %v, %v; want (7,1)", sel, ok)
		}
		if s.Destinations().Len() != 2 {
			t.Errorf("Destinations() = %v; want 2 cells", s.Destinations())
		}
		if len(h.Entries) != 1 || h.Entries[0].Message != "select" {
			t.Errorf("log entries = %d; want one select entry", len(h.Entries))
		}
	})

	for _, tc := range []struct {
		name string
		p    board.Pos
	}{
		{"empty cell clears", P(4, 4)},
		{"opponent piece clears", P(1, 4)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			if err := s.Select(P(6, 4)); err != nil {
				t.Fatalf("Select: %v", err)
			}
			if err := s.Select(tc.p); err != nil {
				t.Fatalf("Select(%v): %v", tc.p, err)
			}
			if _, ok := s.Selected(); ok {
				t.Error("selection not cleared")
			}
			if !s.Destinations().IsEmpty() {
				t.Errorf("Destinations() = %v; want empty", s.Destinations())
			}
		})
	}

	t.Run("off board", func(t *testing.T) {
		s := New()
		if err := s.Select(P(9, 0)); !errors.Is(err, board.ErrInvalidCoordinate) {
			t.Errorf("Select(9,0) err = %v; want ErrInvalidCoordinate", err)
		}
	})
}

func TestDeselectIdempotent(t *testing.T) {
	s := New()
	if err := s.Select(P(6, 0)); err != nil {
		t.Fatalf("Select: %v", err)
	}

	s.Deselect()
	sel1, ok1 := s.Selected()
	d1 := s.Destinations()

	s.Deselect()
	sel2, ok2 := s.Selected()
	d2 := s.Destinations()

	if ok1 || ok2 || sel1 != sel2 || d1 != d2 || !d2.IsEmpty() {
		t.Errorf("Deselect not idempotent: (%v,%v,%v) vs (%v,%v,%v)", sel1, ok1, d1, sel2, ok2, d2)
	}
}

func TestKingSafetyOption(t *testing.T) {
	const pinned = "4q3/8/8/8/8/4R3/8/4K3"

	t.Run("off by default", func(t *testing.T) {
		s := mustPlacement(t, pinned, board.White)
		got, _ := s.LegalDestinations(P(5, 4))
		if !got.Has(P(5, 0)) {
			t.Errorf("pinned rook should move sideways without the filter: %v", got)
		}
		if _, err := s.ApplyMove(P(5, 4), P(5, 0)); err != nil {
			t.Errorf("ApplyMove: %v", err)
		}
	})

	t.Run("enabled", func(t *testing.T) {
		s := mustPlacement(t, pinned, board.White, WithKingSafety(true))
		got, _ := s.LegalDestinations(P(5, 4))
		if got.Has(P(5, 0)) {
			t.Errorf("pinned rook moved off the pin line: %v", got)
		}
		if _, err := s.ApplyMove(P(5, 4), P(5, 0)); !errors.Is(err, board.ErrIllegalMove) {
			t.Errorf("ApplyMove err = %v; want ErrIllegalMove", err)
		}
	})

	t.Run("toggle refreshes cache", func(t *testing.T) {
		s := mustPlacement(t, pinned, board.White)
		if err := s.Select(P(5, 4)); err != nil {
			t.Fatalf("Select: %v", err)
		}
		before := s.Destinations().Len()
		s.SetKingSafety(true)
		if !s.KingSafety() {
			t.Error("KingSafety() = false after enabling")
		}
		if after := s.Destinations().Len(); after >= before {
			t.Errorf("destinations %d -> %d; want fewer", before, after)
		}
	})
}

func TestReset(t *testing.T) {
	s := New()
	if _, err := s.ApplyMove(P(6, 4), P(4, 4)); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if err := s.Select(P(1, 4)); err != nil {
		t.Fatalf("Select: %v", err)
	}

	s.Reset()

	if s.Turn() != board.White || s.MoveCount() != 0 {
		t.Errorf("after Reset turn=%v moves=%d", s.Turn(), s.MoveCount())
	}
	if _, ok := s.Selected(); ok {
		t.Error("selection survived Reset")
	}
	if got := s.Board().Placement(); got != board.StartPlacement {
		t.Errorf("placement = %q", got)
	}
}

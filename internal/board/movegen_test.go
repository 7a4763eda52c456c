package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// boardWith builds an otherwise empty board holding the given pieces.
func boardWith(t *testing.T, pieces map[Pos]Piece) *Board {
	t.Helper()
	b := NewBoard()
	for p, piece := range pieces {
		if err := b.Set(p, piece); err != nil {
			t.Fatalf("Set(%v): %v", p, err)
		}
	}
	return b
}

func assertDests(t *testing.T, got PosSet, want ...Pos) {
	t.Helper()
	if diff := cmp.Diff(SetOf(want...).Positions(), got.Positions()); diff != "" {
		t.Errorf("destinations mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyCellHasNoDestinations(t *testing.T) {
	b := StandardSetup()
	if got := Destinations(b, P(4, 4)); !got.IsEmpty() {
		t.Errorf("Destinations(empty) = %v; want empty", got)
	}
	if got := Destinations(b, P(-1, 9)); !got.IsEmpty() {
		t.Errorf("Destinations(off-board) = %v; want empty", got)
	}
}

func TestPawnDestinations(t *testing.T) {
	t.Run("white start row both empty", func(t *testing.T) {
		b := StandardSetup()
		assertDests(t, Destinations(b, P(6, 4)), P(5, 4), P(4, 4))
	})

	t.Run("black start row both empty", func(t *testing.T) {
		b := StandardSetup()
		assertDests(t, Destinations(b, P(1, 3)), P(2, 3), P(3, 3))
	})

	t.Run("one step after moving", func(t *testing.T) {
		b := StandardSetup()
		b.Relocate(P(6, 4), P(5, 4))
		assertDests(t, Destinations(b, P(5, 4)), P(4, 4))
	})

	t.Run("blocked directly", func(t *testing.T) {
		b := StandardSetup()
		b.Relocate(P(1, 4), P(5, 4))
		assertDests(t, Destinations(b, P(6, 4)))
	})

	t.Run("double push blocked on second square", func(t *testing.T) {
		b := StandardSetup()
		b.Relocate(P(0, 1), P(4, 4))
		assertDests(t, Destinations(b, P(6, 4)), P(5, 4))
	})

	t.Run("diagonals only with opponent", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{
			P(4, 4): {Team: White, Kind: Pawn, HasMoved: true},
			P(3, 3): NewPiece(Black, Knight),
			P(3, 5): NewPiece(White, Knight),
		})
		assertDests(t, Destinations(b, P(4, 4)), P(3, 3), P(3, 4))
	})

	t.Run("capture while blocked ahead", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{
			P(3, 4): {Team: Black, Kind: Pawn, HasMoved: true},
			P(4, 4): NewPiece(White, Rook),
			P(4, 5): NewPiece(White, Bishop),
		})
		assertDests(t, Destinations(b, P(3, 4)), P(4, 5))
	})

	t.Run("edge column captures one side", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{
			P(6, 0): NewPiece(White, Pawn),
			P(5, 1): NewPiece(Black, Pawn),
		})
		assertDests(t, Destinations(b, P(6, 0)), P(5, 0), P(4, 0), P(5, 1))
	})

	t.Run("far row has no moves", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{
			P(0, 2): {Team: White, Kind: Pawn, HasMoved: true},
			P(7, 2): {Team: Black, Kind: Pawn, HasMoved: true},
		})
		assertDests(t, Destinations(b, P(0, 2)))
		assertDests(t, Destinations(b, P(7, 2)))
	})
}

func TestRookDestinations(t *testing.T) {
	rook := NewPiece(White, Rook)

	t.Run("open board", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{P(4, 4): rook})
		if got := Destinations(b, P(4, 4)).Len(); got != 14 {
			t.Errorf("rook at (4,4) has %d destinations; want 14", got)
		}
	})

	t.Run("same team blocker", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{P(4, 4): rook, P(4, 6): NewPiece(White, Pawn)})
		dests := Destinations(b, P(4, 4))
		if !dests.Has(P(4, 5)) {
			t.Error("(4,5) should be reachable")
		}
		if dests.Has(P(4, 6)) || dests.Has(P(4, 7)) {
			t.Errorf("own blocker or beyond included: %v", dests)
		}
		if got := dests.Len(); got != 12 {
			t.Errorf("rook has %d destinations; want 12", got)
		}
	})

	t.Run("opponent blocker", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{P(4, 4): rook, P(4, 6): NewPiece(Black, Pawn)})
		dests := Destinations(b, P(4, 4))
		if !dests.Has(P(4, 5)) || !dests.Has(P(4, 6)) {
			t.Errorf("(4,5) and capture (4,6) should be reachable: %v", dests)
		}
		if dests.Has(P(4, 7)) {
			t.Error("(4,7) beyond the capture should not be reachable")
		}
		if got := dests.Len(); got != 13 {
			t.Errorf("rook has %d destinations; want 13", got)
		}
	})

	t.Run("boxed in at start", func(t *testing.T) {
		assertDests(t, Destinations(StandardSetup(), P(7, 0)))
	})
}

func TestBishopDestinations(t *testing.T) {
	t.Run("open board", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{P(4, 4): NewPiece(Black, Bishop)})
		if got := Destinations(b, P(4, 4)).Len(); got != 13 {
			t.Errorf("bishop at (4,4) has %d destinations; want 13", got)
		}
	})

	t.Run("blockers", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{
			P(0, 0): NewPiece(Black, Bishop),
			P(2, 2): NewPiece(White, Knight),
		})
		assertDests(t, Destinations(b, P(0, 0)), P(1, 1), P(2, 2))

		b.Set(P(2, 2), NewPiece(Black, Knight))
		assertDests(t, Destinations(b, P(0, 0)), P(1, 1))
	})
}

func TestQueenDestinations(t *testing.T) {
	b := boardWith(t, map[Pos]Piece{P(4, 4): NewPiece(White, Queen)})
	got := Destinations(b, P(4, 4))
	if got.Len() != 27 {
		t.Errorf("queen at (4,4) has %d destinations; want 27", got.Len())
	}

	rookPart := slide(b, P(4, 4), White, rookRays[:])
	bishopPart := slide(b, P(4, 4), White, bishopRays[:])
	if got != rookPart.Union(bishopPart) {
		t.Errorf("queen destinations %v are not rook %v union bishop %v", got, rookPart, bishopPart)
	}

	if start := Destinations(StandardSetup(), P(7, 3)); !start.IsEmpty() {
		t.Errorf("queen at start should be boxed in, got %v", start)
	}
}

func TestKnightDestinations(t *testing.T) {
	t.Run("corner", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{P(0, 0): NewPiece(White, Knight)})
		assertDests(t, Destinations(b, P(0, 0)), P(1, 2), P(2, 1))
	})

	t.Run("centre", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{P(4, 4): NewPiece(White, Knight)})
		if got := Destinations(b, P(4, 4)).Len(); got != 8 {
			t.Errorf("knight at (4,4) has %d destinations; want 8", got)
		}
	})

	t.Run("jumps over pieces at start", func(t *testing.T) {
		assertDests(t, Destinations(StandardSetup(), P(7, 1)), P(5, 0), P(5, 2))
	})

	t.Run("own pieces excluded opponents included", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{
			P(0, 0): NewPiece(White, Knight),
			P(1, 2): NewPiece(White, Pawn),
			P(2, 1): NewPiece(Black, Pawn),
		})
		assertDests(t, Destinations(b, P(0, 0)), P(2, 1))
	})
}

func TestKingDestinations(t *testing.T) {
	t.Run("corner", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{P(0, 0): NewPiece(Black, King)})
		assertDests(t, Destinations(b, P(0, 0)), P(0, 1), P(1, 0), P(1, 1))
	})

	t.Run("centre", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{P(3, 3): NewPiece(Black, King)})
		if got := Destinations(b, P(3, 3)).Len(); got != 8 {
			t.Errorf("king at (3,3) has %d destinations; want 8", got)
		}
	})

	t.Run("may step into attack", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{
			P(7, 4): NewPiece(White, King),
			P(0, 3): NewPiece(Black, Rook),
		})
		if !Destinations(b, P(7, 4)).Has(P(7, 3)) {
			t.Error("king should be allowed onto the attacked d-file")
		}
	})

	t.Run("no castling", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{
			P(7, 4): NewPiece(White, King),
			P(7, 7): NewPiece(White, Rook),
		})
		if Destinations(b, P(7, 4)).Has(P(7, 6)) {
			t.Error("castling destination generated")
		}
	})
}

func TestTeamDestinations(t *testing.T) {
	b := StandardSetup()
	// Knight targets coincide with single pawn pushes.
	if got := TeamDestinations(b, White).Len(); got != 16 {
		t.Errorf("White destinations = %d; want 16", got)
	}
}

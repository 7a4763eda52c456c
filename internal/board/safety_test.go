package board

import "testing"

func TestAttacked(t *testing.T) {
	b := boardWith(t, map[Pos]Piece{
		P(7, 4): NewPiece(White, King),
		P(0, 4): NewPiece(Black, Rook),
		P(5, 2): NewPiece(Black, Pawn),
	})

	if !Attacked(b, P(7, 4), Black) {
		t.Error("king on the rook's file should be attacked")
	}
	if Attacked(b, P(7, 3), Black) {
		t.Error("empty d1 is not a rook destination from e8")
	}

	// Pawns attack only occupied diagonals.
	if Attacked(b, P(6, 1), Black) {
		t.Error("empty diagonal should not count as a pawn attack")
	}
	b.Set(P(6, 1), NewPiece(White, Knight))
	if !Attacked(b, P(6, 1), Black) {
		t.Error("occupied diagonal should count as a pawn attack")
	}
}

func TestSafeDestinations(t *testing.T) {
	t.Run("king cannot step onto an attacked file", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{
			P(7, 4): NewPiece(White, King),
			P(0, 3): NewPiece(Black, Rook),
		})
		safe := SafeDestinations(b, P(7, 4))
		if safe.Has(P(7, 3)) || safe.Has(P(6, 3)) {
			t.Errorf("safe destinations include the d-file: %v", safe)
		}
		assertDests(t, safe, P(6, 4), P(6, 5), P(7, 5))
	})

	t.Run("pinned rook stays on the pin line", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{
			P(7, 4): NewPiece(White, King),
			P(5, 4): NewPiece(White, Rook),
			P(0, 4): NewPiece(Black, Queen),
		})
		assertDests(t, SafeDestinations(b, P(5, 4)), P(6, 4), P(4, 4), P(3, 4), P(2, 4), P(1, 4), P(0, 4))
	})

	t.Run("capturing the checker is safe", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{
			P(7, 4): NewPiece(White, King),
			P(6, 4): NewPiece(Black, Queen),
		})
		assertDests(t, SafeDestinations(b, P(7, 4)), P(6, 4))
	})

	t.Run("no king means no filtering", func(t *testing.T) {
		b := boardWith(t, map[Pos]Piece{
			P(4, 4): NewPiece(White, Rook),
			P(0, 0): NewPiece(Black, Queen),
		})
		if got, want := SafeDestinations(b, P(4, 4)), Destinations(b, P(4, 4)); got != want {
			t.Errorf("SafeDestinations = %v; want %v", got, want)
		}
	})

	t.Run("start position unchanged", func(t *testing.T) {
		b := StandardSetup()
		for _, from := range []Pos{P(6, 4), P(7, 1), P(7, 6)} {
			if got, want := SafeDestinations(b, from), Destinations(b, from); got != want {
				t.Errorf("SafeDestinations(%v) = %v; want %v", from, got, want)
			}
		}
	})
}

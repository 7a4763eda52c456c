package board

// offset is a single (row, col) step.
type offset struct {
	dr, dc int
}

var (
	knightOffsets = [8]offset{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = [8]offset{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	rookRays   = [4]offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopRays = [4]offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Destinations returns the cells the piece at from may move to.
// It returns the empty set for an empty cell or an off-board position.
// No check, pin, castling, en passant or promotion rules are applied.
func Destinations(b *Board, from Pos) PosSet {
	piece := b.At(from)
	if piece.IsEmpty() {
		return EmptySet
	}

	switch piece.Kind {
	case Pawn:
		return pawnDestinations(b, from, piece.Team)
	case Rook:
		return slide(b, from, piece.Team, rookRays[:])
	case Knight:
		return leap(b, from, piece.Team, knightOffsets[:])
	case Bishop:
		return slide(b, from, piece.Team, bishopRays[:])
	case Queen:
		return slide(b, from, piece.Team, rookRays[:]).Union(slide(b, from, piece.Team, bishopRays[:]))
	case King:
		return leap(b, from, piece.Team, kingOffsets[:])
	default:
		return EmptySet
	}
}

// pawnDestinations handles single and double pushes plus diagonal captures.
func pawnDestinations(b *Board, from Pos, us Team) PosSet {
	var dests PosSet
	dir := us.Forward()

	one := from.Add(dir, 0)
	if one.InBounds() && b.IsEmpty(one) {
		dests = dests.Add(one)

		// Double push from the starting row
		two := from.Add(2*dir, 0)
		if from.Row == us.PawnRow() && b.IsEmpty(two) {
			dests = dests.Add(two)
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := from.Add(dir, dc)
		if !to.InBounds() {
			continue
		}
		if target := b.At(to); !target.IsEmpty() && target.Team != us {
			dests = dests.Add(to)
		}
	}

	return dests
}

// leap adds each in-bounds offset target that is empty or holds an opponent.
func leap(b *Board, from Pos, us Team, offsets []offset) PosSet {
	var dests PosSet
	for _, o := range offsets {
		to := from.Add(o.dr, o.dc)
		if !to.InBounds() {
			continue
		}
		if target := b.At(to); target.IsEmpty() || target.Team != us {
			dests = dests.Add(to)
		}
	}
	return dests
}

// slide walks each ray until the edge or the first occupied cell,
// which is included only when it holds an opponent.
func slide(b *Board, from Pos, us Team, rays []offset) PosSet {
	var dests PosSet
	for _, r := range rays {
		for to := from.Add(r.dr, r.dc); to.InBounds(); to = to.Add(r.dr, r.dc) {
			target := b.At(to)
			if target.IsEmpty() {
				dests = dests.Add(to)
				continue
			}
			if target.Team != us {
				dests = dests.Add(to)
			}
			break
		}
	}
	return dests
}

// TeamDestinations returns the union of destinations of every piece of a team.
func TeamDestinations(b *Board, t Team) PosSet {
	var all PosSet
	b.Each(func(p Pos, piece Piece) {
		if piece.Team == t {
			all = all.Union(Destinations(b, p))
		}
	})
	return all
}

package board

// Attacked reports whether any piece of team by could move onto p.
// Pawns only count diagonally, and only when p holds an opponent of by.
func Attacked(b *Board, p Pos, by Team) bool {
	return TeamDestinations(b, by).Has(p)
}

// SafeDestinations filters Destinations down to the moves that do not leave
// the mover's own king capturable. Each candidate is played on a scratch
// copy of the board and the opponent's replies are regenerated.
// A team without a king on the board has nothing to protect.
func SafeDestinations(b *Board, from Pos) PosSet {
	dests := Destinations(b, from)
	if dests.IsEmpty() {
		return dests
	}

	us := b.At(from).Team
	safe := dests
	for _, to := range dests.Positions() {
		scratch := b.Copy()
		scratch.Relocate(from, to)
		king, ok := scratch.Find(us, King)
		if !ok {
			continue
		}
		if Attacked(scratch, king, us.Other()) {
			safe = safe.Remove(to)
		}
	}
	return safe
}

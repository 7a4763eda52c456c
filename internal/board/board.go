package board

import (
	"fmt"
	"strings"
)

// backRank is the order of the major pieces from column 0 to 7.
var backRank = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is an 8x8 grid of cells. An empty cell holds NoPiece.
// Board is a value type: assigning it copies every cell.
type Board struct {
	cells [Size][Size]Piece
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// StandardSetup returns a board with the standard starting arrangement.
func StandardSetup() *Board {
	b := &Board{}
	for _, t := range []Team{White, Black} {
		for col, k := range backRank {
			b.cells[t.BackRow()][col] = NewPiece(t, k)
			b.cells[t.PawnRow()][col] = NewPiece(t, Pawn)
		}
	}
	return b
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// At returns the piece at p, or NoPiece if p is empty or off the board.
func (b *Board) At(p Pos) Piece {
	if !p.InBounds() {
		return NoPiece
	}
	return b.cells[p.Row][p.Col]
}

// IsEmpty reports whether the cell at p holds no piece.
func (b *Board) IsEmpty(p Pos) bool {
	return b.At(p).IsEmpty()
}

// Set places piece at p, replacing whatever was there.
func (b *Board) Set(p Pos, piece Piece) error {
	if err := CheckPos(p); err != nil {
		return err
	}
	b.cells[p.Row][p.Col] = piece
	return nil
}

// Clear empties the cell at p.
func (b *Board) Clear(p Pos) error {
	return b.Set(p, NoPiece)
}

// Relocate moves the piece at from to to, overwriting the destination,
// marking the piece as moved and emptying the source. It returns the
// moved piece and whatever previously stood on to (NoPiece if nothing).
// Relocate does not check legality.
func (b *Board) Relocate(from, to Pos) (moved, captured Piece) {
	moved = b.cells[from.Row][from.Col]
	captured = b.cells[to.Row][to.Col]
	moved.HasMoved = true
	b.cells[to.Row][to.Col] = moved
	b.cells[from.Row][from.Col] = NoPiece
	return moved, captured
}

// Each calls fn for every occupied cell in row-major order.
func (b *Board) Each(fn func(p Pos, piece Piece)) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if piece := b.cells[row][col]; !piece.IsEmpty() {
				fn(Pos{Row: row, Col: col}, piece)
			}
		}
	}
}

// Count returns the number of pieces of the given team and kind.
func (b *Board) Count(t Team, k Kind) int {
	n := 0
	b.Each(func(_ Pos, piece Piece) {
		if piece.Team == t && piece.Kind == k {
			n++
		}
	})
	return n
}

// Total returns the number of pieces on the board.
func (b *Board) Total() int {
	n := 0
	b.Each(func(Pos, Piece) { n++ })
	return n
}

// Material returns the summed piece values of a team.
func (b *Board) Material(t Team) int {
	sum := 0
	b.Each(func(_ Pos, piece Piece) {
		if piece.Team == t {
			sum += piece.Value()
		}
	})
	return sum
}

// Find returns the first cell holding the given team and kind, in row-major order.
func (b *Board) Find(t Team, k Kind) (Pos, bool) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			piece := b.cells[row][col]
			if piece.Kind == k && piece.Team == t {
				return Pos{Row: row, Col: col}, true
			}
		}
	}
	return NoPos, false
}

// String returns a text diagram with row 0 on top.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		fmt.Fprintf(&sb, "%d  ", Size-row)
		for col := 0; col < Size; col++ {
			sb.WriteString(b.cells[row][col].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}

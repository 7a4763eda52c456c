package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartPlacement is the piece-placement string of the standard setup.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement parses the piece-placement field of a FEN string.
// Rows are listed from row 0 (top) to row 7, matching FEN's rank 8 to rank 1.
// A piece that is not on its starting cell is marked as moved.
func ParsePlacement(placement string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(placement), "/")
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: need %d rows, got %d", ErrInvalidPlacement, Size, len(rows))
	}

	b := NewBoard()
	for row, rowStr := range rows {
		col := 0
		for _, c := range rowStr {
			if col >= Size {
				return nil, fmt.Errorf("%w: too many cells in row %d", ErrInvalidPlacement, row)
			}

			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			piece, ok := PieceFromChar(byte(c))
			if !ok {
				return nil, fmt.Errorf("%w: invalid piece character %q", ErrInvalidPlacement, c)
			}
			p := Pos{Row: row, Col: col}
			piece.HasMoved = !onStartCell(piece, p)
			b.cells[row][col] = piece
			col++
		}

		if col != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrInvalidPlacement, row, col)
		}
	}

	return b, nil
}

// onStartCell reports whether piece could still be on a cell it started the game on.
func onStartCell(piece Piece, p Pos) bool {
	if piece.Kind == Pawn {
		return p.Row == piece.Team.PawnRow()
	}
	return p.Row == piece.Team.BackRow() && backRank[p.Col] == piece.Kind
}

// Placement returns the piece-placement field for the board.
func (b *Board) Placement() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		empty := 0
		for col := 0; col < Size; col++ {
			piece := b.cells[row][col]
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < Size-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

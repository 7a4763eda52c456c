// Package board implements the chessboard grid, its pieces and per-piece move generation.
package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the number of rows and columns on the board.
const Size = 8

// Pos addresses one cell of the board.
// Row 0 is the top of the window (Black's back rank), column 0 is the a-file.
type Pos struct {
	Row, Col int
}

// NoPos is returned where no cell applies.
var NoPos = Pos{-1, -1}

// P is shorthand for Pos{row, col}.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// InBounds reports whether the position lies on the board.
func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Add returns the position offset by dr rows and dc columns.
func (p Pos) Add(dr, dc int) Pos {
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// Index returns the row-major cell index (0-63). Only valid for in-bounds positions.
func (p Pos) Index() int {
	return p.Row*Size + p.Col
}

// PosFromIndex is the inverse of Index.
func PosFromIndex(i int) Pos {
	return Pos{Row: i / Size, Col: i % Size}
}

// String returns the algebraic name of the cell (e.g. "e2" for row 6, col 4).
func (p Pos) String() string {
	if !p.InBounds() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, Size-p.Row)
}

// ParsePos parses either algebraic notation ("e2") or "row,col" ("6,4").
func ParsePos(s string) (Pos, error) {
	s = strings.TrimSpace(s)
	if r, c, ok := strings.Cut(s, ","); ok {
		row, err := strconv.Atoi(strings.TrimSpace(r))
		if err != nil {
			return NoPos, &CoordinateError{Input: s, Err: ErrInvalidCoordinate}
		}
		col, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil {
			return NoPos, &CoordinateError{Input: s, Err: ErrInvalidCoordinate}
		}
		p := Pos{Row: row, Col: col}
		if !p.InBounds() {
			return NoPos, &CoordinateError{Input: s, Err: ErrInvalidCoordinate}
		}
		return p, nil
	}

	if len(s) != 2 {
		return NoPos, &CoordinateError{Input: s, Err: ErrInvalidCoordinate}
	}
	file := int(strings.ToLower(s)[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file >= Size || rank < 0 || rank >= Size {
		return NoPos, &CoordinateError{Input: s, Err: ErrInvalidCoordinate}
	}
	return Pos{Row: Size - 1 - rank, Col: file}, nil
}

// CheckPos returns ErrInvalidCoordinate wrapped with the position if it is off the board.
func CheckPos(p Pos) error {
	if p.InBounds() {
		return nil
	}
	return &CoordinateError{Input: fmt.Sprintf("%d,%d", p.Row, p.Col), Err: ErrInvalidCoordinate}
}

// Package layout maps window pixels to board cells.
package layout

import "github.com/hailam/chessboard/internal/board"

// Side panel width in pixels.
const PanelWidth = 240

// Geometry describes how the board is laid out in the window.
// Row 0 is drawn at the top unless Flipped is set.
type Geometry struct {
	SquareSize int
	Flipped    bool
}

// BoardPixels returns the side of the board in pixels.
func (g Geometry) BoardPixels() int {
	return g.SquareSize * board.Size
}

// ScreenSize returns the window size: board plus side panel.
func (g Geometry) ScreenSize() (int, int) {
	return g.BoardPixels() + PanelWidth, g.BoardPixels()
}

// PosAt returns the cell under pixel (x, y), or false outside the board.
func (g Geometry) PosAt(x, y int) (board.Pos, bool) {
	n := g.BoardPixels()
	if g.SquareSize <= 0 || x < 0 || y < 0 || x >= n || y >= n {
		return board.NoPos, false
	}
	row, col := y/g.SquareSize, x/g.SquareSize
	if g.Flipped {
		row, col = board.Size-1-row, board.Size-1-col
	}
	return board.P(row, col), true
}

// Origin returns the top-left pixel of a cell.
func (g Geometry) Origin(p board.Pos) (int, int) {
	row, col := p.Row, p.Col
	if g.Flipped {
		row, col = board.Size-1-row, board.Size-1-col
	}
	return col * g.SquareSize, row * g.SquareSize
}

// Center returns the center pixel of a cell.
func (g Geometry) Center(p board.Pos) (float32, float32) {
	x, y := g.Origin(p)
	half := float32(g.SquareSize) / 2
	return float32(x) + half, float32(y) + half
}

package textui

import (
	"strings"

	"github.com/hailam/chessboard/internal/board"
)

// renderBoard draws the board with row 0 at the top, rank labels on both
// sides and file labels above and below. Without colors the selection is
// bracketed, empty destinations show "*" and capturable pieces are starred.
func (sh *Shell) renderBoard() string {
	st := sh.styles()
	b := sh.state.Board()
	sel, hasSel := sh.state.Selected()
	dests := sh.state.Destinations()

	var sb strings.Builder
	files := "  "
	for col := 0; col < board.Size; col++ {
		files += " " + string(rune('a'+col)) + " "
	}
	sb.WriteString(files + "\n")

	for row := 0; row < board.Size; row++ {
		rank := string(rune('0' + board.Size - row))
		sb.WriteString(rank + " ")
		for col := 0; col < board.Size; col++ {
			p := board.P(row, col)
			piece := b.At(p)
			cell := " " + piece.String() + " "

			style := st.light
			if (row+col)%2 == 1 {
				style = st.dark
			}
			switch {
			case hasSel && p == sel:
				cell = "[" + piece.String() + "]"
				style = st.selected
			case dests.Has(p) && piece.IsEmpty():
				cell = " * "
				style = st.dest
			case dests.Has(p):
				cell = "*" + piece.String() + "*"
				style = st.dest
			}
			sb.WriteString(style.Sprint(cell))
		}
		sb.WriteString(" " + rank + "\n")
	}

	sb.WriteString(files + "\n")
	return sb.String()
}

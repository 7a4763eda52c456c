package assets

import (
	"testing"

	"github.com/hailam/chessboard/internal/board"
)

func TestRasterizeAllPieces(t *testing.T) {
	const size = 48

	for _, team := range []board.Team{board.White, board.Black} {
		for _, kind := range board.Kinds {
			img, err := RasterizePiece(team, kind, size)
			if err != nil {
				t.Fatalf("RasterizePiece(%v, %v): %v", team, kind, err)
			}
			if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
				t.Errorf("%s bounds = %v", PiecePath(team, kind), b)
			}

			opaque := 0
			for i := 3; i < len(img.Pix); i += 4 {
				if img.Pix[i] != 0 {
					opaque++
				}
			}
			if opaque == 0 {
				t.Errorf("%s rendered nothing", PiecePath(team, kind))
			}
		}
	}
}

func TestPiecePath(t *testing.T) {
	if got := PiecePath(board.Black, board.Knight); got != "pieces/black_knight.svg" {
		t.Errorf("PiecePath = %q", got)
	}
}

func TestRasterizeInvalidSize(t *testing.T) {
	if _, err := RasterizePiece(board.White, board.King, 0); err == nil {
		t.Error("expected an error for size 0")
	}
}

package layout

import (
	"testing"

	"github.com/hailam/chessboard/internal/board"
)

func TestPosAt(t *testing.T) {
	tests := []struct {
		name    string
		flipped bool
		x, y    int
		want    board.Pos
		ok      bool
	}{
		{"top left", false, 0, 0, board.P(0, 0), true},
		{"inside a cell", false, 79, 79, board.P(0, 0), true},
		{"next cell", false, 80, 0, board.P(0, 1), true},
		{"white pawn e2", false, 4*80 + 10, 6*80 + 10, board.P(6, 4), true},
		{"bottom right", false, 639, 639, board.P(7, 7), true},
		{"flipped top left", true, 0, 0, board.P(7, 7), true},
		{"flipped e2", true, 3*80 + 10, 1*80 + 10, board.P(6, 4), true},
		{"right edge", false, 640, 10, board.NoPos, false},
		{"panel", false, 700, 300, board.NoPos, false},
		{"negative", false, -1, 5, board.NoPos, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := Geometry{SquareSize: 80, Flipped: tc.flipped}
			got, ok := g.PosAt(tc.x, tc.y)
			if got != tc.want || ok != tc.ok {
				t.Errorf("PosAt(%d, %d) = %v, %v; want %v, %v", tc.x, tc.y, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestOriginRoundTrip(t *testing.T) {
	for _, flipped := range []bool{false, true} {
		g := Geometry{SquareSize: 64, Flipped: flipped}
		for i := 0; i < board.Size*board.Size; i++ {
			p := board.PosFromIndex(i)
			x, y := g.Origin(p)
			got, ok := g.PosAt(x+1, y+1)
			if !ok || got != p {
				t.Fatalf("flipped=%v: PosAt(Origin(%v)) = %v, %v", flipped, p, got, ok)
			}
		}
	}
}

func TestScreenSize(t *testing.T) {
	w, h := Geometry{SquareSize: 80}.ScreenSize()
	if w != 640+PanelWidth || h != 640 {
		t.Errorf("ScreenSize() = %d, %d", w, h)
	}
}

func TestZeroSquareSize(t *testing.T) {
	if _, ok := (Geometry{}).PosAt(0, 0); ok {
		t.Error("zero-size geometry should contain no cells")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 660, Y: 500, W: 200, H: 40}

	tests := []struct {
		x, y int
		want bool
	}{
		{660, 500, true},
		{859, 539, true},
		{760, 520, true},
		{860, 520, false},
		{760, 540, false},
		{659, 520, false},
		{760, 499, false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%d, %d) = %v; want %v", tc.x, tc.y, got, tc.want)
		}
	}

	if (Rect{X: 10, Y: 10}).Contains(10, 10) {
		t.Error("empty rect contains its origin")
	}
}

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/ui/layout"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	Background     color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LegalMoveColor: color.RGBA{130, 151, 105, 200}, // Green dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		Background:     color.RGBA{40, 44, 52, 255},
	}
}

// Highlights is what the renderer marks on top of the squares.
type Highlights struct {
	Selected     board.Pos
	HasSelection bool
	Destinations board.PosSet
	ShowDests    bool
	LastFrom     board.Pos
	LastTo       board.Pos
	HasLastMove  bool
}

// Renderer handles all drawing operations on the board area.
type Renderer struct {
	sprites *SpriteManager
	fonts   *Fonts
	theme   *Theme
	geo     layout.Geometry
}

// NewRenderer creates a renderer for the given geometry.
func NewRenderer(geo layout.Geometry, sprites *SpriteManager, fonts *Fonts) *Renderer {
	return &Renderer{
		sprites: sprites,
		fonts:   fonts,
		theme:   DefaultTheme(),
		geo:     geo,
	}
}

// SetFlipped turns the board around.
func (r *Renderer) SetFlipped(flipped bool) {
	r.geo.Flipped = flipped
}

// Geometry returns the current layout.
func (r *Renderer) Geometry() layout.Geometry {
	return r.geo
}

// DrawBoard draws the chess board squares and the file and rank labels.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := float32(r.geo.SquareSize)
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			p := board.P(row, col)
			x, y := r.geo.Origin(p)

			c := r.theme.LightSquare
			if (row+col)%2 == 1 {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
		}
	}

	r.drawCoordinates(screen)
}

// drawCoordinates labels files along the bottom edge and ranks along the left edge.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := r.fonts.Label
	bottom := board.Size - 1
	if r.geo.Flipped {
		bottom = 0
	}
	left := 0
	if r.geo.Flipped {
		left = board.Size - 1
	}

	for i := 0; i < board.Size; i++ {
		file := board.P(bottom, i)
		x, y := r.geo.Origin(file)
		label := file.String()[:1]
		w, h := MeasureText(label, face)
		r.drawLabel(screen, label, float64(x+r.geo.SquareSize)-w-3, float64(y+r.geo.SquareSize)-h-2, file)

		rank := board.P(i, left)
		x, y = r.geo.Origin(rank)
		r.drawLabel(screen, rank.String()[1:], float64(x)+3, float64(y)+2, rank)
	}
}

// drawLabel draws text in the opposite square color so it stays readable.
func (r *Renderer) drawLabel(screen *ebiten.Image, s string, x, y float64, on board.Pos) {
	c := r.theme.DarkSquare
	if (on.Row+on.Col)%2 == 1 {
		c = r.theme.LightSquare
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, r.fonts.Label, op)
}

// DrawHighlights draws last-move, selection and destination markers.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, b *board.Board, h Highlights) {
	if h.HasLastMove {
		r.highlightSquare(screen, h.LastFrom, r.theme.LastMoveColor)
		r.highlightSquare(screen, h.LastTo, r.theme.LastMoveColor)
	}

	if h.HasSelection {
		r.highlightSquare(screen, h.Selected, r.theme.SelectedSquare)
	}

	if h.ShowDests {
		for _, p := range h.Destinations.Positions() {
			r.drawDestination(screen, p, !b.IsEmpty(p))
		}
	}
}

func (r *Renderer) highlightSquare(screen *ebiten.Image, p board.Pos, c color.RGBA) {
	if !p.InBounds() {
		return
	}
	x, y := r.geo.Origin(p)
	size := float32(r.geo.SquareSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
}

// drawDestination draws a dot on an empty destination and a ring on a capture.
func (r *Renderer) drawDestination(screen *ebiten.Image, p board.Pos, capture bool) {
	cx, cy := r.geo.Center(p)
	size := float32(r.geo.SquareSize)

	if capture {
		vector.StrokeCircle(screen, cx, cy, size*0.45, size*0.07, r.theme.LegalMoveColor, true)
		return
	}
	vector.DrawFilledCircle(screen, cx, cy, size*0.15, r.theme.LegalMoveColor, true)
}

// DrawPieces draws every piece, offset by any running shake animation.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board, anims *AnimationManager) {
	b.Each(func(p board.Pos, piece board.Piece) {
		x, y := r.geo.Origin(p)
		dx, dy := 0.0, 0.0
		if anims != nil {
			dx, dy = anims.ShakeOffset(p)
		}
		r.sprites.DrawPieceAt(screen, piece, float64(x)+dx, float64(y)+dy)
	})
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

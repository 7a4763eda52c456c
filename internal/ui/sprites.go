package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/ui/assets"
)

type spriteKey struct {
	team board.Team
	kind board.Kind
}

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[spriteKey]*ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// NewSpriteManager rasterizes all twelve piece sprites. Any missing or
// unreadable asset is an error; the board cannot be drawn without it.
func NewSpriteManager(size int) (*SpriteManager, error) {
	sm := &SpriteManager{
		pieces:      make(map[spriteKey]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}

	renderSize := int(float64(size) * sm.renderScale)
	for _, team := range []board.Team{board.White, board.Black} {
		for _, kind := range board.Kinds {
			rgba, err := assets.RasterizePiece(team, kind, renderSize)
			if err != nil {
				return nil, err
			}
			sm.pieces[spriteKey{team, kind}] = ebiten.NewImageFromImage(rgba)
		}
	}
	return sm, nil
}

// DrawPieceAt draws a piece with its top-left corner at (x, y).
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y float64) {
	if p.IsEmpty() {
		return
	}
	sprite := sm.pieces[spriteKey{p.Team, p.Kind}]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/ui/layout"
)

// Panel dimensions
const (
	PanelPadding   = 20
	SectionSpacing = 28
	ButtonHeight   = 40
	LineHeight     = 22
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}
	buttonBg        = color.RGBA{50, 54, 60, 255}
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}
	buttonPressedBg = color.RGBA{40, 44, 50, 255}
	accentColor     = color.RGBA{76, 175, 120, 255}
	accentHover     = color.RGBA{96, 195, 140, 255}
	accentPressed   = color.RGBA{56, 155, 100, 255}
	textPrimary     = color.RGBA{240, 240, 245, 255}
	textSecondary   = color.RGBA{160, 165, 175, 255}
	textMuted       = color.RGBA{120, 125, 135, 255}
	dividerColor    = color.RGBA{60, 65, 72, 255}
)

// Panel is the side panel with the game status and controls.
type Panel struct {
	game *Game
	x    int // left edge, the board's right edge
	h    int

	newGameBtn *Button
	flipBtn    *Button
	showDests  *Checkbox
	sound      *Checkbox
	kingSafety *Checkbox
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}
	p.layout(g.renderer.Geometry())
	return p
}

// layout places the controls for a board of the given geometry.
func (p *Panel) layout(geo layout.Geometry) {
	p.x = geo.BoardPixels()
	p.h = geo.BoardPixels()

	contentX := p.x + PanelPadding
	contentW := layout.PanelWidth - PanelPadding*2
	prefs := p.game.prefs

	buttonsY := p.h - PanelPadding - ButtonHeight*2 - 8
	p.newGameBtn = &Button{
		X: contentX, Y: buttonsY, W: contentW, H: ButtonHeight,
		Label:   "New game",
		Primary: true,
		OnClick: p.game.NewGameAction,
	}
	p.flipBtn = &Button{
		X: contentX, Y: buttonsY + ButtonHeight + 8, W: contentW, H: ButtonHeight,
		Label:   "Flip board",
		OnClick: p.game.FlipAction,
	}

	checksY := buttonsY - SectionSpacing - 3*LineHeight - 8
	p.showDests = &Checkbox{
		X: contentX, Y: checksY,
		Label:    "Show moves",
		Checked:  prefs.ShowDestinations,
		OnChange: p.game.SetShowDestinations,
	}
	p.sound = &Checkbox{
		X: contentX, Y: checksY + LineHeight + 4,
		Label:    "Sound",
		Checked:  prefs.SoundEnabled,
		OnChange: p.game.SetSoundEnabled,
	}
	p.kingSafety = &Checkbox{
		X: contentX, Y: checksY + 2*(LineHeight+4),
		Label:    "King safety",
		Checked:  prefs.KingSafety,
		OnChange: p.game.SetKingSafety,
	}
}

// Sync refreshes control state changed from the keyboard.
func (p *Panel) Sync() {
	prefs := p.game.prefs
	p.showDests.Checked = prefs.ShowDestinations
	p.sound.Checked = prefs.SoundEnabled
	p.kingSafety.Checked = prefs.KingSafety
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	handled := false
	for _, btn := range []*Button{p.newGameBtn, p.flipBtn} {
		if btn.Update(input) {
			handled = true
		}
	}
	for _, cb := range []*Checkbox{p.showDests, p.sound, p.kingSafety} {
		if cb.Update(input) {
			handled = true
		}
	}
	return handled
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	fonts := p.game.fonts
	state := p.game.state

	vector.DrawFilledRect(screen, float32(p.x), 0, float32(layout.PanelWidth), float32(p.h), panelBg, false)

	x := p.x + PanelPadding
	w := layout.PanelWidth - PanelPadding*2
	y := PanelPadding

	p.drawText(screen, "Chessboard", x, y, fonts.Bold, textPrimary)
	y += SectionSpacing + 8

	// Turn indicator
	turn := state.Turn()
	swatch := color.RGBA{245, 245, 245, 255}
	if turn == board.Black {
		swatch = color.RGBA{20, 20, 20, 255}
	}
	vector.DrawFilledCircle(screen, float32(x+8), float32(y+8), 8, swatch, true)
	vector.StrokeCircle(screen, float32(x+8), float32(y+8), 8, 1, textMuted, true)
	p.drawText(screen, turn.String()+" to move", x+26, y, fonts.Regular, textPrimary)
	y += SectionSpacing

	DrawDivider(screen, x, y, w)
	y += 12

	if sel, ok := state.Selected(); ok {
		piece := state.PieceAt(sel)
		p.drawText(screen, fmt.Sprintf("Selected %s %s on %s", piece.Team, piece.Kind, sel), x, y, fonts.Regular, textSecondary)
		y += LineHeight
		p.drawText(screen, fmt.Sprintf("%d destinations", state.Destinations().Len()), x, y, fonts.Regular, textMuted)
	} else {
		p.drawText(screen, "No selection", x, y, fonts.Regular, textMuted)
		y += LineHeight
	}
	y += LineHeight

	p.drawText(screen, fmt.Sprintf("Moves played: %d", state.MoveCount()), x, y, fonts.Regular, textSecondary)
	y += LineHeight
	if m, ok := state.LastMove(); ok {
		p.drawText(screen, "Last move: "+m.String(), x, y, fonts.Regular, textSecondary)
	}
	y += LineHeight

	p.drawText(screen, fmt.Sprintf("Material  W %d  B %d", state.Material(board.White), state.Material(board.Black)), x, y, fonts.Regular, textSecondary)
	y += LineHeight + 12

	DrawDivider(screen, x, y, w)
	y += 12
	p.drawText(screen, "Press H for keys and help", x, y, fonts.Label, textMuted)

	for _, cb := range []*Checkbox{p.showDests, p.sound, p.kingSafety} {
		cb.Draw(screen, fonts)
	}
	p.newGameBtn.Draw(screen, fonts)
	p.flipBtn.Draw(screen, fonts)
}

func (p *Panel) drawText(screen *ebiten.Image, s string, x, y int, face *text.GoTextFace, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

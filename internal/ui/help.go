package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Help card dimensions
const (
	HelpWidth  = 400
	HelpHeight = 392
	HelpPadX   = 32
)

var (
	helpDim    = color.RGBA{12, 13, 16, 150}
	helpBg     = color.RGBA{32, 34, 39, 250}
	helpBorder = color.RGBA{70, 75, 85, 255}
)

var helpRules = []string{
	"Click a piece of the side to move.",
	"Click a marked square to move there.",
	"Click anywhere else to clear.",
}

var helpKeys = [][2]string{
	{"Esc", "clear the selection"},
	{"N", "new game"},
	{"F", "flip the board"},
	{"D", "show or hide move dots"},
	{"H", "show this card"},
}

// HelpOverlay is the card shown on first launch and on H. It consumes all
// input while open.
type HelpOverlay struct {
	visible      bool
	needsCapture bool

	fonts    *Fonts
	backdrop *Backdrop
	x, y     int

	closeBtn *Button
}

// NewHelpOverlay centers the card on a screen of the given size.
func NewHelpOverlay(fonts *Fonts, screenW, screenH int) *HelpOverlay {
	ho := &HelpOverlay{
		fonts:    fonts,
		backdrop: NewBackdrop(),
		x:        max(0, (screenW-HelpWidth)/2),
		y:        max(0, (screenH-HelpHeight)/2),
	}
	btnW, btnH := 160, 40
	ho.closeBtn = &Button{
		X:       ho.x + (HelpWidth-btnW)/2,
		Y:       ho.y + HelpHeight - 24 - btnH,
		W:       btnW,
		H:       btnH,
		Label:   "Start playing",
		Primary: true,
		OnClick: ho.Hide,
	}
	return ho
}

// Show opens the card.
func (ho *HelpOverlay) Show() {
	ho.visible = true
	ho.needsCapture = true
}

// Hide closes the card.
func (ho *HelpOverlay) Hide() {
	ho.visible = false
	ho.backdrop.Reset()
}

// IsVisible reports whether the card is open.
func (ho *HelpOverlay) IsVisible() bool {
	return ho.visible
}

// Update handles input and reports whether it was consumed.
func (ho *HelpOverlay) Update(input *InputHandler) bool {
	if !ho.visible {
		return false
	}
	if IsKeyJustPressed(ebiten.KeyEnter) || IsKeyJustPressed(ebiten.KeyEscape) || IsKeyJustPressed(ebiten.KeyH) {
		ho.Hide()
		return true
	}
	ho.closeBtn.Update(input)
	return true
}

// Draw renders the card over a blurred copy of the screen.
func (ho *HelpOverlay) Draw(screen *ebiten.Image) {
	if !ho.visible {
		return
	}

	if ho.needsCapture {
		ho.backdrop.Capture(screen, 3.0)
		ho.needsCapture = false
	}
	ho.backdrop.Draw(screen, helpDim)

	x, y := float32(ho.x), float32(ho.y)
	vector.DrawFilledRect(screen, x, y, HelpWidth, HelpHeight, helpBg, false)
	vector.StrokeRect(screen, x, y, HelpWidth, HelpHeight, 2, helpBorder, false)

	ho.drawCrown(screen)
	ho.drawCentered(screen, "CHESSBOARD", ho.y+64, ho.fonts.Bold, textPrimary)

	ty := ho.y + 104
	for _, line := range helpRules {
		ho.drawText(screen, line, ho.x+HelpPadX, ty, ho.fonts.Regular, textPrimary)
		ty += LineHeight
	}

	ty += 14
	DrawDivider(screen, ho.x+HelpPadX, ty, HelpWidth-HelpPadX*2)
	ty += 14
	for _, k := range helpKeys {
		ho.drawText(screen, k[0], ho.x+HelpPadX, ty, ho.fonts.Bold, accentColor)
		ho.drawText(screen, k[1], ho.x+HelpPadX+64, ty, ho.fonts.Regular, textSecondary)
		ty += LineHeight
	}

	ho.closeBtn.Draw(screen, ho.fonts)
}

// drawCrown draws a small king icon above the title.
func (ho *HelpOverlay) drawCrown(screen *ebiten.Image) {
	cx := float32(ho.x + HelpWidth/2)
	y := float32(ho.y + 22)

	vector.DrawFilledCircle(screen, cx, y+8, 6, accentColor, false)
	vector.DrawFilledRect(screen, cx-8, y+10, 16, 14, accentColor, false)
	vector.DrawFilledRect(screen, cx-1, y-2, 3, 10, accentColor, false)
	vector.DrawFilledRect(screen, cx-4, y+2, 9, 3, accentColor, false)
}

func (ho *HelpOverlay) drawCentered(screen *ebiten.Image, s string, y int, face *text.GoTextFace, clr color.Color) {
	w, _ := MeasureText(s, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(ho.x)+HelpWidth/2-w/2, float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func (ho *HelpOverlay) drawText(screen *ebiten.Image, s string, x, y int, face *text.GoTextFace, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

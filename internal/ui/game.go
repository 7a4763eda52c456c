package ui

import (
	"fmt"

	"github.com/apex/log"
	"github.com/hajimehoshi/ebiten/v2"
	uuid "github.com/satori/go.uuid"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/game"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/ui/layout"
)

// Config carries what the window needs from the caller.
type Config struct {
	State   *game.State
	Prefs   *storage.Preferences
	Storage *storage.Storage // optional; nil disables persistence
	Logger  log.Interface
}

// Game implements ebiten.Game. It owns every piece of window state; nothing
// lives at package level.
type Game struct {
	state   *game.State
	prefs   *storage.Preferences
	storage *storage.Storage
	tracker *storage.Tracker
	logger  log.Interface

	fonts    *Fonts
	renderer *Renderer
	input    *InputHandler
	audio    *AudioManager
	feedback *FeedbackManager
	panel    *Panel
	help     *HelpOverlay
}

// NewGame builds the window state. Failing to load fonts or piece sprites is
// an error; the caller should treat it as fatal.
func NewGame(cfg Config) (*Game, error) {
	if cfg.State == nil {
		cfg.State = game.New()
	}
	if cfg.Prefs == nil {
		cfg.Prefs = storage.DefaultPreferences()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Log
	}

	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	sprites, err := NewSpriteManager(cfg.Prefs.SquareSize)
	if err != nil {
		return nil, fmt.Errorf("ui: load piece sprites: %w", err)
	}

	geo := layout.Geometry{SquareSize: cfg.Prefs.SquareSize, Flipped: cfg.Prefs.Flipped}
	audio := NewAudioManager(cfg.Prefs.SoundEnabled)

	g := &Game{
		state:    cfg.State,
		prefs:    cfg.Prefs,
		storage:  cfg.Storage,
		tracker:  storage.NewTracker(cfg.Storage),
		logger:   cfg.Logger,
		fonts:    fonts,
		renderer: NewRenderer(geo, sprites, fonts),
		input:    NewInputHandler(),
		audio:    audio,
		feedback: NewFeedbackManager(fonts, geo.BoardPixels(), audio),
	}
	g.state.SetKingSafety(g.prefs.KingSafety)
	g.panel = NewPanel(g)
	screenW, screenH := g.ScreenSize()
	g.help = NewHelpOverlay(fonts, screenW, screenH)
	if cfg.Prefs.LastPlayed.IsZero() {
		g.help.Show()
	}
	g.startSession()

	return g, nil
}

// ScreenSize returns the window size in pixels.
func (g *Game) ScreenSize() (int, int) {
	return g.renderer.Geometry().ScreenSize()
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	if g.help.Update(g.input) {
		return nil
	}

	g.handleKeys()

	// Handle panel interactions
	if g.panel.HandleInput(g.input) {
		return nil
	}

	g.handleBoardInput()
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case IsKeyJustPressed(ebiten.KeyEscape):
		g.state.Deselect()
	case IsKeyJustPressed(ebiten.KeyN):
		g.NewGameAction()
	case IsKeyJustPressed(ebiten.KeyF):
		g.FlipAction()
	case IsKeyJustPressed(ebiten.KeyD):
		g.SetShowDestinations(!g.prefs.ShowDestinations)
		g.panel.Sync()
	case IsKeyJustPressed(ebiten.KeyH):
		g.help.Show()
	}
}

// handleBoardInput turns a left click on the board into a game click.
func (g *Game) handleBoardInput() {
	if !g.input.IsLeftJustPressed() {
		return
	}
	mx, my := g.input.MousePosition()
	p, ok := g.renderer.Geometry().PosAt(mx, my)
	if !ok {
		return
	}
	g.click(p)
}

func (g *Game) click(p board.Pos) {
	prev, hadSel := g.state.Selected()

	out, err := g.state.Click(p)
	if err != nil {
		g.logger.WithError(err).WithField("square", p.String()).Warn("click failed")
		return
	}

	switch out.Kind {
	case game.Selected:
		g.feedback.OnSelect()
	case game.Moved:
		g.feedback.OnMove(out.Move)
		g.recordMove(out.Move)
	case game.Cleared:
		piece := g.state.PieceAt(p)
		if piece.IsEmpty() || piece.Team == g.state.Turn() {
			return
		}
		if hadSel {
			mover := g.state.PieceAt(prev)
			g.feedback.OnRejected(prev, fmt.Sprintf("%s on %s cannot reach %s", mover.Kind, prev, p))
			return
		}
		g.feedback.OnRejected(board.NoPos, g.state.Turn().String()+" to move")
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	b := g.state.Board()
	sel, hasSel := g.state.Selected()
	h := Highlights{
		Selected:     sel,
		HasSelection: hasSel,
		Destinations: g.state.Destinations(),
		ShowDests:    g.prefs.ShowDestinations,
	}
	if m, ok := g.state.LastMove(); ok {
		h.LastFrom, h.LastTo, h.HasLastMove = m.From, m.To, true
	}

	g.renderer.DrawBoard(screen)
	g.renderer.DrawHighlights(screen, b, h)
	g.renderer.DrawPieces(screen, b, g.feedback.Animations())
	g.feedback.Draw(screen)
	g.panel.Draw(screen)
	g.help.Draw(screen)
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}

// NewGameAction resets the board and opens a new session.
func (g *Game) NewGameAction() {
	g.state.Reset()
	g.feedback.OnNewGame()
	g.startSession()
}

// FlipAction turns the board around and remembers the choice.
func (g *Game) FlipAction() {
	g.prefs.Flipped = !g.prefs.Flipped
	g.renderer.SetFlipped(g.prefs.Flipped)
	g.savePreferences()
}

// SetShowDestinations toggles the destination markers.
func (g *Game) SetShowDestinations(show bool) {
	g.prefs.ShowDestinations = show
	g.savePreferences()
}

// SetSoundEnabled toggles sound effects.
func (g *Game) SetSoundEnabled(enabled bool) {
	g.prefs.SoundEnabled = enabled
	g.audio.SetEnabled(enabled)
	g.savePreferences()
}

// SetKingSafety toggles filtering of moves that expose the king.
func (g *Game) SetKingSafety(enabled bool) {
	g.prefs.KingSafety = enabled
	g.state.SetKingSafety(enabled)
	if enabled {
		g.feedback.Notify("Moves that expose the king are hidden")
	}
	g.savePreferences()
}

// Close ends the session and saves preferences.
func (g *Game) Close() {
	g.endSession()
	g.savePreferences()
}

func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		g.logger.WithError(err).Warn("save preferences")
	}
}

func (g *Game) startSession() {
	if err := g.tracker.Start(); err != nil {
		g.logger.WithError(err).Warn("start session")
		return
	}
	if id := g.tracker.SessionID(); id != uuid.Nil {
		g.logger.WithField("session", id.String()).Debug("session started")
	}
}

func (g *Game) recordMove(m game.Move) {
	if err := g.tracker.Record(m.IsCapture()); err != nil {
		g.logger.WithError(err).Warn("record move")
	}
}

func (g *Game) endSession() {
	if err := g.tracker.End(); err != nil {
		g.logger.WithError(err).Warn("end session")
	}
}

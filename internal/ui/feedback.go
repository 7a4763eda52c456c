package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/game"
)

const (
	toastFade    = 200 * time.Millisecond
	toastPadding = 12.0
	toastGap     = 8.0
	maxToasts    = 3
)

// ToastType selects the colors of a notice.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
)

type toastStyle struct {
	bg, fg color.RGBA
}

var toastStyles = map[ToastType]toastStyle{
	ToastInfo:    {bg: color.RGBA{50, 100, 150, 220}, fg: color.RGBA{255, 255, 255, 255}},
	ToastWarning: {bg: color.RGBA{180, 140, 20, 220}, fg: color.RGBA{40, 30, 0, 255}},
}

// timed is anything that expires.
type timed struct {
	started time.Time
	ttl     time.Duration
}

func (t timed) age(now time.Time) time.Duration { return now.Sub(t.started) }
func (t timed) live(now time.Time) bool { return t.age(now) < t.ttl }

// prune keeps the live entries of s in place.
func prune[T any](s []T, now time.Time, at func(T) timed) []T {
	kept := s[:0]
	for _, v := range s {
		if at(v).live(now) {
			kept = append(kept, v)
		}
	}
	return kept
}

// Toast is a short notice stacked above the bottom of the board.
type Toast struct {
	timed
	Message string
	Type    ToastType
}

// opacity fades the toast in and out at its ends.
func (t *Toast) opacity(now time.Time) float64 {
	age := t.age(now)
	switch {
	case age < toastFade:
		return float64(age) / float64(toastFade)
	case t.ttl-age < toastFade:
		return math.Max(0, float64(t.ttl-age)/float64(toastFade))
	}
	return 1
}

// ToastManager keeps at most maxToasts notices, newest at the bottom.
type ToastManager struct {
	toasts []*Toast
	fonts  *Fonts
	width  int
	bottom float64
	now    func() time.Time
}

// NewToastManager centers notices over an area width pixels wide whose
// lower edge is at bottom.
func NewToastManager(fonts *Fonts, width, bottom int) *ToastManager {
	return &ToastManager{fonts: fonts, width: width, bottom: float64(bottom), now: time.Now}
}

// Show queues a notice, dropping the oldest when the stack is full.
func (tm *ToastManager) Show(message string, kind ToastType, ttl time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		timed:   timed{started: tm.now(), ttl: ttl},
		Message: message,
		Type:    kind,
	})
	if n := len(tm.toasts); n > maxToasts {
		tm.toasts = tm.toasts[n-maxToasts:]
	}
}

// Update drops expired notices.
func (tm *ToastManager) Update() {
	tm.toasts = prune(tm.toasts, tm.now(), func(t *Toast) timed { return t.timed })
}

// Draw stacks the notices upward from the bottom margin.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	now := tm.now()
	face := tm.fonts.Regular
	y := tm.bottom - 24

	for i := len(tm.toasts) - 1; i >= 0; i-- {
		t := tm.toasts[i]
		a := t.opacity(now)
		style := toastStyles[t.Type]

		w, h := MeasureText(t.Message, face)
		boxW, boxH := w+toastPadding*2, h+toastPadding*2
		x := float64(tm.width)/2 - boxW/2
		y -= boxH

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), fade(style.bg, a), false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+toastPadding, y+toastPadding)
		op.ColorScale.ScaleWithColor(style.fg)
		op.ColorScale.ScaleAlpha(float32(a))
		text.Draw(screen, t.Message, face, op)

		y -= toastGap
	}
}

// fade scales a premultiplied color by a.
func fade(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// Shake wobbles the piece on one cell after a rejected click.
type Shake struct {
	timed
	Pos       board.Pos
	Amplitude float64
}

// AnimationManager tracks the running shakes.
type AnimationManager struct {
	shakes []*Shake
	now    func() time.Time
}

// NewAnimationManager creates an empty animation manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{now: time.Now}
}

// StartShake begins a shake on p, replacing one already running there.
func (am *AnimationManager) StartShake(p board.Pos) {
	am.shakes = prune(am.shakes, am.now(), func(s *Shake) timed {
		if s.Pos == p {
			return timed{}
		}
		return s.timed
	})
	am.shakes = append(am.shakes, &Shake{
		timed:     timed{started: am.now(), ttl: 300 * time.Millisecond},
		Pos:       p,
		Amplitude: 8,
	})
}

// Update drops finished shakes.
func (am *AnimationManager) Update() {
	am.shakes = prune(am.shakes, am.now(), func(s *Shake) timed { return s.timed })
}

// Clear stops everything.
func (am *AnimationManager) Clear() {
	am.shakes = am.shakes[:0]
}

// ShakeOffset is the horizontal displacement of the piece on p.
func (am *AnimationManager) ShakeOffset(p board.Pos) (float64, float64) {
	now := am.now()
	for _, s := range am.shakes {
		if s.Pos != p || !s.live(now) {
			continue
		}
		t := float64(s.age(now)) / float64(s.ttl)
		// damped sine
		return s.Amplitude * math.Exp(-5*t) * math.Sin(40*t), 0
	}
	return 0, 0
}

// FeedbackManager turns click outcomes into sounds, notices and shakes.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager places notices over a square board boardSize pixels wide.
func NewFeedbackManager(fonts *Fonts, boardSize int, audio *AudioManager) *FeedbackManager {
	return &FeedbackManager{
		toasts:     NewToastManager(fonts, boardSize, boardSize),
		animations: NewAnimationManager(),
		audio:      audio,
	}
}

func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

func (fm *FeedbackManager) Draw(screen *ebiten.Image) {
	fm.toasts.Draw(screen)
}

// Animations is read by the renderer when placing pieces.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

func (fm *FeedbackManager) OnSelect() {
	fm.audio.Play(SoundSelect)
}

func (fm *FeedbackManager) OnMove(m game.Move) {
	if m.IsCapture() {
		fm.audio.Play(SoundCapture)
	} else {
		fm.audio.Play(SoundMove)
	}
}

// OnRejected reports a click on an opponent piece. selected is shaken when
// it is on the board.
func (fm *FeedbackManager) OnRejected(selected board.Pos, message string) {
	fm.toasts.Show(message, ToastWarning, 2*time.Second)
	if selected.InBounds() {
		fm.animations.StartShake(selected)
	}
	fm.audio.Play(SoundInvalid)
}

func (fm *FeedbackManager) OnNewGame() {
	fm.animations.Clear()
	fm.Notify("New game: White to move")
	fm.audio.Play(SoundNewGame)
}

// Notify shows an informational notice.
func (fm *FeedbackManager) Notify(message string) {
	fm.toasts.Show(message, ToastInfo, 1500*time.Millisecond)
}

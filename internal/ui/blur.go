package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Kage shader for Gaussian blur (horizontal pass)
// Uses 9-tap Gaussian kernel (fixed size for Kage compatibility)
var blurHorizontalShader = []byte(`
//kage:unit pixels

package main

var Sigma float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
    var result vec4

    result += imageSrc0At(srcPos + vec2(-4*Sigma, 0)) * 0.0162
    result += imageSrc0At(srcPos + vec2(-3*Sigma, 0)) * 0.0540
    result += imageSrc0At(srcPos + vec2(-2*Sigma, 0)) * 0.1218
    result += imageSrc0At(srcPos + vec2(-1*Sigma, 0)) * 0.1954
    result += imageSrc0At(srcPos) * 0.2252
    result += imageSrc0At(srcPos + vec2(1*Sigma, 0)) * 0.1954
    result += imageSrc0At(srcPos + vec2(2*Sigma, 0)) * 0.1218
    result += imageSrc0At(srcPos + vec2(3*Sigma, 0)) * 0.0540
    result += imageSrc0At(srcPos + vec2(4*Sigma, 0)) * 0.0162

    return result
}
`)

var blurVerticalShader = []byte(`
//kage:unit pixels

package main

var Sigma float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
    var result vec4

    result += imageSrc0At(srcPos + vec2(0, -4*Sigma)) * 0.0162
    result += imageSrc0At(srcPos + vec2(0, -3*Sigma)) * 0.0540
    result += imageSrc0At(srcPos + vec2(0, -2*Sigma)) * 0.1218
    result += imageSrc0At(srcPos + vec2(0, -1*Sigma)) * 0.1954
    result += imageSrc0At(srcPos) * 0.2252
    result += imageSrc0At(srcPos + vec2(0, 1*Sigma)) * 0.1954
    result += imageSrc0At(srcPos + vec2(0, 2*Sigma)) * 0.1218
    result += imageSrc0At(srcPos + vec2(0, 3*Sigma)) * 0.0540
    result += imageSrc0At(srcPos + vec2(0, 4*Sigma)) * 0.0162

    return result
}
`)

// Mixes the blurred snapshot toward a flat tint.
var tintShader = []byte(`
//kage:unit pixels

package main

var TintR float
var TintG float
var TintB float
var TintA float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
    blurred := imageSrc0At(srcPos)
    return mix(blurred, vec4(TintR, TintG, TintB, 1.0), TintA)
}
`)

// Backdrop blurs and dims a snapshot of the screen behind a modal. The
// snapshot is taken once per opening so the board does not flicker under it.
type Backdrop struct {
	blurH    *ebiten.Shader
	blurV    *ebiten.Shader
	tint     *ebiten.Shader
	snapshot *ebiten.Image
	work     *ebiten.Image
	captured bool
	enabled  bool
}

// NewBackdrop compiles the blur shaders. When they fail to compile the
// backdrop falls back to a flat translucent fill.
func NewBackdrop() *Backdrop {
	bd := &Backdrop{enabled: true}

	var err error
	if bd.blurH, err = ebiten.NewShader(blurHorizontalShader); err != nil {
		bd.enabled = false
		return bd
	}
	if bd.blurV, err = ebiten.NewShader(blurVerticalShader); err != nil {
		bd.enabled = false
		return bd
	}
	if bd.tint, err = ebiten.NewShader(tintShader); err != nil {
		bd.enabled = false
	}
	return bd
}

// IsEnabled reports whether the shaders are available.
func (bd *Backdrop) IsEnabled() bool {
	return bd != nil && bd.enabled
}

// Captured reports whether a snapshot is held.
func (bd *Backdrop) Captured() bool {
	return bd.captured
}

// Reset drops the snapshot so the next opening captures a fresh one.
func (bd *Backdrop) Reset() {
	bd.captured = false
}

func (bd *Backdrop) ensureImages(w, h int) {
	if bd.snapshot == nil || bd.snapshot.Bounds().Dx() != w || bd.snapshot.Bounds().Dy() != h {
		bd.snapshot = ebiten.NewImage(w, h)
	}
	if bd.work == nil || bd.work.Bounds().Dx() != w || bd.work.Bounds().Dy() != h {
		bd.work = ebiten.NewImage(w, h)
	}
}

// Capture copies screen and blurs it in two passes. sigma is the sample
// spread in pixels.
func (bd *Backdrop) Capture(screen *ebiten.Image, sigma float64) {
	if !bd.IsEnabled() {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return
	}
	bd.ensureImages(w, h)

	bd.work.Clear()
	bd.work.DrawImage(screen, nil)

	bd.snapshot.Clear()
	bd.snapshot.DrawRectShader(w, h, bd.blurH, &ebiten.DrawRectShaderOptions{
		Uniforms: map[string]any{"Sigma": float32(sigma)},
		Images:   [4]*ebiten.Image{bd.work},
	})

	bd.work.Clear()
	bd.work.DrawRectShader(w, h, bd.blurV, &ebiten.DrawRectShaderOptions{
		Uniforms: map[string]any{"Sigma": float32(sigma)},
		Images:   [4]*ebiten.Image{bd.snapshot},
	})

	bd.snapshot.Clear()
	bd.snapshot.DrawImage(bd.work, nil)
	bd.captured = true
}

// Draw paints the blurred snapshot mixed toward tint. tint.A sets how much
// of the tint shows through.
func (bd *Backdrop) Draw(screen *ebiten.Image, tint color.RGBA) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if !bd.IsEnabled() || !bd.captured {
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), tint, false)
		return
	}

	sw, sh := bd.snapshot.Bounds().Dx(), bd.snapshot.Bounds().Dy()
	screen.DrawRectShader(sw, sh, bd.tint, &ebiten.DrawRectShaderOptions{
		Uniforms: map[string]any{
			"TintR": float32(tint.R) / 255,
			"TintG": float32(tint.G) / 255,
			"TintB": float32(tint.B) / 255,
			"TintA": float32(tint.A) / 255,
		},
		Images: [4]*ebiten.Image{bd.snapshot},
	})
}

// Package ui implements the desktop chess board using Ebitengine.
package ui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 18.0
	labelFontSize   = 11.0
)

// Fonts holds the faces used for panel text and board labels.
type Fonts struct {
	Regular *text.GoTextFace
	Bold    *text.GoTextFace
	Label   *text.GoTextFace
}

// LoadFonts parses the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ui: load regular font: %w", err)
	}
	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("ui: load bold font: %w", err)
	}

	return &Fonts{
		Regular: &text.GoTextFace{Source: regularSource, Size: defaultFontSize},
		Bold:    &text.GoTextFace{Source: boldSource, Size: titleFontSize},
		Label:   &text.GoTextFace{Source: boldSource, Size: labelFontSize},
	}, nil
}

// MeasureText returns the width and height of the given text.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}

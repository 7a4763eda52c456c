// Package assets embeds the piece artwork and rasterizes it.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/chessboard/internal/board"
)

//go:embed pieces/*.svg
var pieceAssets embed.FS

// PiecePath returns the embedded path of a piece's artwork,
// named after the piece: "pieces/white_pawn.svg".
func PiecePath(t board.Team, k board.Kind) string {
	return "pieces/" + board.NewPiece(t, k).Name() + ".svg"
}

// RasterizePiece renders a piece's SVG into a size x size RGBA image.
func RasterizePiece(t board.Team, k board.Kind, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("assets: invalid size %d", size)
	}

	path := PiecePath(t, k)
	data, err := pieceAssets.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: parse %s: %w", path, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

package ebiten

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFont loads the bundled monospace font source
func loadFont() *text.GoTextFaceSource {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		log.WithError(err).Fatal("cannot load font")
	}
	return source
}

// getTileFontSize returns the font size for map tiles, scaled to the
// current tile size
func (e *Renderer) getTileFontSize() float64 {
	return baseFontSize * float64(e.tileSize) / defaultTileSize
}

// getTileFontFace returns a cached monospace face for map tiles
func (e *Renderer) getTileFontFace() *text.GoTextFace {
	size := e.getTileFontSize()
	if e.cachedTileFace == nil || e.cachedTileFontSize != size {
		e.cachedTileFontSize = size
		e.cachedTileFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   size,
		}
	}
	return e.cachedTileFace
}

// getUIFontFace returns a cached monospace face for UI text
func (e *Renderer) getUIFontFace() *text.GoTextFace {
	if e.cachedUIFace == nil {
		e.cachedUIFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   14,
		}
	}
	return e.cachedUIFace
}

// drawTileGlyph draws a glyph centered within the tile at pixel x, y
func (e *Renderer) drawTileGlyph(screen *ebiten.Image, glyph string, x, y int, col color.Color) {
	face := e.getTileFontFace()

	w, h := text.Measure(glyph, face, 0)
	offsetX := (float64(e.tileSize) - w) / 2
	offsetY := (float64(e.tileSize) - h) / 2

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+offsetX, float64(y)+offsetY)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, glyph, face, op)
}

// drawUIText draws a line of UI text at pixel x, y
func (e *Renderer) drawUIText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	face := e.getUIFontFace()

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, str, face, op)
}

package draw

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, face font.Face, x, y int, c color.Color) {
	bounds := text.BoundString(face, s) //nolint:staticcheck
	text.Draw(dst, s, face, x, y-bounds.Min.Y, c)
}

// drawCentered draws s horizontally centered on cx with its top at y.
func drawCentered(dst *ebiten.Image, s string, face font.Face, cx, y int, c color.Color) {
	bounds := text.BoundString(face, s) //nolint:staticcheck
	text.Draw(dst, s, face, cx-bounds.Dx()/2, y-bounds.Min.Y, c)
}

func textSize(s string, face font.Face) (int, int) {
	bounds := text.BoundString(face, s) //nolint:staticcheck
	return bounds.Dx(), bounds.Dy()
}

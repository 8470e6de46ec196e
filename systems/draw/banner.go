package draw

import (
	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/fonts"
	"github.com/automoto/driftcircuit/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawBanner renders the active banner at the top center of the screen
func DrawBanner(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if !banner.Visible() {
		return
	}

	face := fonts.Bold.Get()
	msg := systems.ResolvePlaceholders(banner.Text, inputMethod(e))
	textWidth, textHeight := textSize(msg, face)

	padding := cfg.Message.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	screenWidth := float32(screen.Bounds().Dx())
	boxX := (screenWidth - boxWidth) / 2
	boxY := float32(cfg.Message.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.Message.BoxColor, false)
	drawText(screen, msg, face, int(boxX+float32(padding)), int(boxY+float32(padding)), cfg.Message.TextColor)
}

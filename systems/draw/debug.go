package draw

import (
	"fmt"
	"image/color"

	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/tags"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var debugFace = text.NewGoXFace(bitmapfont.Face)

// DrawSpace outlines every broadphase object and prints frame statistics
// when debugging is enabled.
func DrawSpace(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowSpace {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255}
		if obj.HasTags(tags.ResolvVehicle) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvCheckpoint) {
			c = color.RGBA{0, 255, 0, 255}
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	drawDebugInfo(e, screen)
}

func drawDebugInfo(e *ecs.ECS, screen *ebiten.Image) {
	particles, skids := 0, 0
	components.Particle.Each(e.World, func(*donburi.Entry) { particles++ })
	components.SkidMark.Each(e.World, func(*donburi.Entry) { skids++ })

	info := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f  particles: %d  skids: %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), particles, skids)
	if entry, ok := components.Vehicle.First(e.World); ok {
		v := components.Vehicle.Get(entry)
		info += fmt.Sprintf("\ncar: (%.1f, %.1f) heading %.1f speed %.2f drift %.2f",
			v.X, v.Y, v.Heading, v.Speed, v.DriftFactor)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(cfg.HUD.Margin, float64(screen.Bounds().Dy())/2)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(color.RGBA{200, 200, 200, 255})
	text.Draw(screen, info, debugFace, op)
}

package draw

import (
	"image/color"

	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	windshieldColor = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 255}
	damageColor     = color.RGBA{R: 0xff, G: 0, B: 0, A: 128}
)

// DrawVehicle renders the car body rotated by its visual heading, which
// leans into the slide while drifting.
func DrawVehicle(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Vehicle.First(e.World)
	if !ok {
		return
	}
	v := components.Vehicle.Get(entry)
	style := cfg.Style(styleIndex(e))

	w, h := cfg.Vehicle.Width, cfg.Vehicle.Height
	angle := gamemath.DegToRad(v.Heading + v.DriftFactor*cfg.Vehicle.DriftAngleDegrees)

	body := func(lx, ly, lw, lh float64, c color.Color) {
		fillLocalRect(screen, v.X, v.Y, angle, lx, ly, lw, lh, c)
	}

	body(-w/2, -h/2, w, h, style.Primary)
	// Side stripes and bumper
	body(-w/2, -h/2, 4, h, style.Secondary)
	body(w/2-4, -h/2, 4, h, style.Secondary)
	body(-w/2+4, h/2-3, w-8, 3, style.Secondary)
	// Windshield at the front, which is local -y
	body(-w/2+6, -h/2+2, w-12, h/4, windshieldColor)

	if v.Flashing() {
		body(-w/2, -h/2, w, h, damageColor)
	}
}

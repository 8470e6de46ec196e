package draw

import (
	"image/color"
	"math"
	"strconv"

	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/fonts"
	"github.com/automoto/driftcircuit/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	dashCount       = 60
	checkerSize     = 8
	startLineWidth  = 60
	startLineHeight = 40
)

var (
	roadAltColor   = color.RGBA{R: 0x5c, G: 0x5c, B: 0x5c, A: 255}
	decorationTint = [...]color.RGBA{
		{R: 0x1f, G: 0x6b, B: 0x2a, A: 255}, // tree
		{R: 0x3a, G: 0x8c, B: 0x3a, A: 255}, // bush
		{R: 0x7a, G: 0x7a, B: 0x7a, A: 255}, // rock
		{R: 0xff, G: 0x88, B: 0xcc, A: 255}, // flowers
		{R: 0x22, G: 0x22, B: 0x22, A: 255}, // tire stack
		{R: 0xff, G: 0x88, B: 0x00, A: 255}, // cone
	}
)

// DrawTrack paints the grass, the verge, the road band and the dashed
// centerline.
func DrawTrack(e *ecs.ECS, screen *ebiten.Image) {
	trackEntry, ok := components.Track.First(e.World)
	if !ok {
		return
	}
	track := components.Track.Get(trackEntry)
	outer, inner := track.Bounds.Outer, track.Bounds.Inner

	screen.Fill(cfg.HUD.GrassColor)
	fillEllipse(screen, outer, cfg.HUD.VergeColor)

	mid := gamemath.Ellipse{
		CX: outer.CX,
		CY: outer.CY,
		RX: (outer.RX + inner.RX) / 2,
		RY: (outer.RY + inner.RY) / 2,
	}

	if track.Decorated() {
		for _, seg := range track.RoadSegments {
			c := cfg.HUD.RoadColor
			if seg.Type == 1 {
				c = roadAltColor
			}
			fillRotatedRect(screen, seg.X, seg.Y, seg.Width, seg.Height, seg.Angle, c)
		}
	} else {
		strokeEllipse(screen, mid, float32(outer.RX-inner.RX), cfg.HUD.RoadColor)
	}

	fillEllipse(screen, inner, cfg.HUD.GrassColor)

	for i := 0; i < dashCount; i += 2 {
		a0 := float64(i) / dashCount * 2 * math.Pi
		a1 := float64(i+1) / dashCount * 2 * math.Pi
		x0, y0 := mid.Point(a0)
		x1, y1 := mid.Point(a1)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, cfg.HUD.LineColor, true)
	}
}

// DrawDecorations renders the generated scenery around the circuit.
func DrawDecorations(e *ecs.ECS, screen *ebiten.Image) {
	trackEntry, ok := components.Track.First(e.World)
	if !ok {
		return
	}
	for _, d := range components.Track.Get(trackEntry).Decorations {
		c := decorationTint[d.Type%len(decorationTint)]
		x, y := float32(d.X), float32(d.Y)
		s := float32(d.Scale)

		switch d.Type % len(decorationTint) {
		case 0:
			vector.FillCircle(screen, x, y, 14*s, c, true)
			vector.FillCircle(screen, x-3*s, y-3*s, 8*s, fade(cfg.White, 0.15), true)
		case 1:
			vector.FillCircle(screen, x-5*s, y, 7*s, c, true)
			vector.FillCircle(screen, x+5*s, y, 7*s, c, true)
		case 2:
			vector.FillRect(screen, x-6*s, y-5*s, 12*s, 10*s, c, true)
		case 3:
			for i := 0; i < 4; i++ {
				a := float64(i) * math.Pi / 2
				vector.FillCircle(screen, x+float32(math.Cos(a))*4*s, y+float32(math.Sin(a))*4*s, 2*s, c, true)
			}
		case 4:
			vector.StrokeCircle(screen, x, y, 8*s, 4*s, c, true)
		default:
			fillLocalRect(screen, d.X, d.Y, 0, -4*d.Scale, -8*d.Scale, 8*d.Scale, 16*d.Scale, c)
		}
	}
}

// DrawStartLine renders the checkered start/finish line.
func DrawStartLine(e *ecs.ECS, screen *ebiten.Image) {
	trackEntry, ok := components.Track.First(e.World)
	if !ok {
		return
	}
	track := components.Track.Get(trackEntry)

	x0 := track.FinishX - startLineWidth/2
	y0 := track.FinishY - startLineHeight/2
	for row := 0; row*checkerSize < startLineHeight; row++ {
		for col := 0; col*checkerSize < startLineWidth; col++ {
			c := cfg.Black
			if (row+col)%2 == 0 {
				c = cfg.White
			}
			vector.FillRect(screen,
				float32(x0)+float32(col*checkerSize), float32(y0)+float32(row*checkerSize),
				checkerSize, checkerSize, c, false)
		}
	}
}

// DrawCheckpoints renders each checkpoint ring with its number.
func DrawCheckpoints(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Small.Get()

	components.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		cp := components.Checkpoint.Get(entry)
		c := cfg.HUD.PendingColor
		if cp.Passed {
			c = cfg.HUD.PassedColor
		}

		x, y := float32(cp.X), float32(cp.Y)
		vector.FillCircle(screen, x, y, 15, c, true)
		vector.FillCircle(screen, x, y, 10, cfg.Black, true)

		label := strconv.Itoa(cp.Index + 1)
		_, h := textSize(label, face)
		drawCentered(screen, label, face, int(cp.X), int(cp.Y)-h/2, cfg.White)
	})
}

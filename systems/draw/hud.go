package draw

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/automoto/driftcircuit/fonts"
	"github.com/automoto/driftcircuit/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudLine      = 20
	keybindWidth = 230
)

var (
	barBackground = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	keybindLines  = []string{
		"{drive}: drive",
		"{handbr}: handbrake",
		"{start}: start race",
		"{reset}: reset",
		"{car}: change car",
	}
)

// DrawHUD renders the health bar, car status, race clock and key help.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	vehicleEntry, ok := components.Vehicle.First(e.World)
	if !ok {
		return
	}
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	v := components.Vehicle.Get(vehicleEntry)
	session := components.Session.Get(sessionEntry)
	face := fonts.Regular.Get()
	m := cfg.HUD.Margin

	ratio := math.Max(0, v.Health/cfg.Vehicle.MaxHealth)
	vector.FillRect(screen, float32(m), float32(m),
		float32(cfg.HUD.HealthBarWidth), float32(cfg.HUD.HealthBarHeight), barBackground, false)
	vector.FillRect(screen, float32(m), float32(m),
		float32(cfg.HUD.HealthBarWidth*ratio), float32(cfg.HUD.HealthBarHeight), healthColor(ratio), false)
	drawText(screen, fmt.Sprintf("HEALTH: %d%%", int(math.Round(ratio*100))), face,
		int(m+cfg.HUD.HealthBarWidth+m), int(m), cfg.White)

	y := int(m + cfg.HUD.HealthBarHeight + m)
	line := func(s string, c color.Color) {
		drawText(screen, s, face, int(m), y, c)
		y += hudLine
	}

	line(cfg.Style(session.StyleIndex).Name, cfg.White)
	line(fmt.Sprintf("LAP: %d/%d", session.DisplayLap(), session.MaxLaps), cfg.White)
	line(fmt.Sprintf("TIME: %.2fs", session.Elapsed), cfg.White)
	line(fmt.Sprintf("SPEED: %d", int(math.Abs(v.Speed)*cfg.HUD.SpeedScale)), cfg.White)
	if session.HasBest {
		line(fmt.Sprintf("Best: %.2fs", session.BestTime), cfg.HUD.BestTimeColor)
	}
	if v.Drifting {
		line("DRIFT!", cfg.HUD.DriftColor)
	}
	if v.Handbrake {
		line("HANDBRAKE", cfg.HUD.HandbrakeColor)
	}

	drawKeybinds(e, screen)
}

func healthColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.6:
		return cfg.Green
	case ratio > 0.3:
		return cfg.Yellow
	default:
		return cfg.Red
	}
}

func drawKeybinds(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Small.Get()
	method := inputMethod(e)
	m := cfg.HUD.Margin

	h := float64(len(keybindLines)*16) + m
	top := float64(screen.Bounds().Dy()) - m - h
	vector.FillRect(screen, float32(m), float32(top), keybindWidth, float32(h), cfg.HUD.PanelColor, false)

	for i, l := range keybindLines {
		drawText(screen, systems.ResolvePlaceholders(l, method), face,
			int(2*m), int(top+m/2)+i*16, cfg.White)
	}
}

// DrawMinimap renders a scaled view of the circuit in the top-right corner.
func DrawMinimap(e *ecs.ECS, screen *ebiten.Image) {
	trackEntry, ok := components.Track.First(e.World)
	if !ok {
		return
	}
	track := components.Track.Get(trackEntry)
	outer, inner := track.Bounds.Outer, track.Bounds.Inner

	size := cfg.HUD.MinimapSize
	m := cfg.HUD.Margin
	left := float64(screen.Bounds().Dx()) - m - size
	ox, oy := left+size/2, m+size/2
	s := size / (outer.RX * 2.2)
	toMap := func(x, y float64) (float32, float32) {
		return float32(ox + (x-outer.CX)*s), float32(oy + (y-outer.CY)*s)
	}

	vector.FillRect(screen, float32(left), float32(m), float32(size), float32(size), cfg.HUD.PanelColor, false)
	fillPath(screen, ellipsePath(outer, s, ox, oy), cfg.HUD.RoadColor)
	fillPath(screen, ellipsePath(inner, s, ox, oy), cfg.HUD.GrassColor)

	components.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		cp := components.Checkpoint.Get(entry)
		c := cfg.HUD.PendingColor
		if cp.Passed {
			c = cfg.HUD.PassedColor
		}
		x, y := toMap(cp.X, cp.Y)
		vector.FillCircle(screen, x, y, 3, c, true)
	})

	if vehicleEntry, ok := components.Vehicle.First(e.World); ok {
		v := components.Vehicle.Get(vehicleEntry)
		x, y := toMap(v.X, v.Y)
		vector.FillCircle(screen, x, y, 3, cfg.Style(styleIndex(e)).Primary, true)
	}
}

// DrawOverlay prompts to start a race, or shows the result of the last one.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	if session.Running {
		return
	}

	method := inputMethod(e)
	title := fonts.Title.Get()
	face := fonts.Regular.Get()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx, cy := w/2, h/2

	vector.FillRect(screen, float32(cx-220), float32(cy-70), 440, 140, cfg.Overlay, false)

	if !session.Finished() {
		drawCentered(screen, systems.ResolvePlaceholders("PRESS {start} TO RACE!", method), title, cx, cy-40, cfg.White)
		drawCentered(screen, systems.ResolvePlaceholders("Use {drive} to drive", method), face, cx, cy+10, cfg.White)
		drawCentered(screen, systems.ResolvePlaceholders("Hold {handbr} to drift", method), face, cx, cy+35, cfg.White)
		return
	}

	heading, c := "RACE COMPLETE", cfg.White
	if session.Outcome == components.OutcomeNewRecord {
		heading, c = "NEW RECORD!", cfg.HUD.BestTimeColor
	}
	drawCentered(screen, heading, title, cx, cy-50, c)
	drawCentered(screen, fmt.Sprintf("Time: %.2fs", session.Elapsed), face, cx, cy-5, cfg.White)
	if session.HasBest {
		drawCentered(screen, fmt.Sprintf("Best: %.2fs", session.BestTime), face, cx, cy+15, cfg.HUD.BestTimeColor)
	}
	drawCentered(screen, systems.ResolvePlaceholders("PRESS {start} TO RACE AGAIN", method), face, cx, cy+40, cfg.White)
}

func inputMethod(e *ecs.ECS) components.InputMethod {
	if entry, ok := components.Input.First(e.World); ok {
		return components.Input.Get(entry).LastInputMethod
	}
	return components.InputKeyboard
}

// Package draw renders the race world. Every renderer is a read-only
// consumer of simulation state.
package draw

import (
	"image/color"
	"math"

	"github.com/automoto/driftcircuit/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ellipseSegments is the polygon resolution used for ellipses
const ellipseSegments = 96

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := gamemath.Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func pathOptions(c color.Color) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	return op
}

func fillPath(dst *ebiten.Image, p *vector.Path, c color.Color) {
	vector.FillPath(dst, p, &vector.FillOptions{}, pathOptions(c))
}

func strokePath(dst *ebiten.Image, p *vector.Path, width float32, c color.Color) {
	vector.StrokePath(dst, p, &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound}, pathOptions(c))
}

// ellipsePath traces e scaled by s and recentered on (ox, oy).
func ellipsePath(e gamemath.Ellipse, s, ox, oy float64) *vector.Path {
	var p vector.Path
	for i := 0; i <= ellipseSegments; i++ {
		theta := float64(i) / ellipseSegments * 2 * math.Pi
		x, y := e.Point(theta)
		x = ox + (x-e.CX)*s
		y = oy + (y-e.CY)*s
		if i == 0 {
			p.MoveTo(float32(x), float32(y))
			continue
		}
		p.LineTo(float32(x), float32(y))
	}
	p.Close()
	return &p
}

func fillEllipse(dst *ebiten.Image, e gamemath.Ellipse, c color.Color) {
	fillPath(dst, ellipsePath(e, 1, e.CX, e.CY), c)
}

func strokeEllipse(dst *ebiten.Image, e gamemath.Ellipse, width float32, c color.Color) {
	strokePath(dst, ellipsePath(e, 1, e.CX, e.CY), width, c)
}

// fillLocalRect fills a rectangle given in the local frame of a body
// centered on (cx, cy) and rotated by angle radians.
func fillLocalRect(dst *ebiten.Image, cx, cy, angle, lx, ly, lw, lh float64, c color.Color) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	corners := [4][2]float64{{lx, ly}, {lx + lw, ly}, {lx + lw, ly + lh}, {lx, ly + lh}}

	var p vector.Path
	for i, pt := range corners {
		x := cx + pt[0]*cos - pt[1]*sin
		y := cy + pt[0]*sin + pt[1]*cos
		if i == 0 {
			p.MoveTo(float32(x), float32(y))
			continue
		}
		p.LineTo(float32(x), float32(y))
	}
	p.Close()
	fillPath(dst, &p, c)
}

// fillRotatedRect fills a w*h rectangle centered on (cx, cy).
func fillRotatedRect(dst *ebiten.Image, cx, cy, w, h, angle float64, c color.Color) {
	fillLocalRect(dst, cx, cy, angle, -w/2, -h/2, w, h, c)
}

package gamemath

import "math"

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// FootprintCorners returns the four corners of a w*h rectangle centered on
// (cx, cy) and rotated by headingDeg. The order is fixed so callers can
// rely on stable tie-breaking.
func FootprintCorners(cx, cy, w, h, headingDeg float64) [4]Point {
	rad := DegToRad(headingDeg)
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	hw := w / 2
	hh := h / 2

	return [4]Point{
		{X: cx + (cos*hw - sin*hh), Y: cy + (sin*hw + cos*hh)},
		{X: cx + (cos*hw + sin*hh), Y: cy + (sin*hw - cos*hh)},
		{X: cx + (-cos*hw - sin*hh), Y: cy + (-sin*hw + cos*hh)},
		{X: cx + (-cos*hw + sin*hh), Y: cy + (-sin*hw - cos*hh)},
	}
}

// Distance returns the euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

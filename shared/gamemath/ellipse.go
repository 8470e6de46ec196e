package gamemath

import "math"

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	CX, CY float64
	RX, RY float64
}

// Ratio returns the squared normalized distance of (x, y) from the center.
// Points on the boundary have ratio exactly 1.
func (e Ellipse) Ratio(x, y float64) float64 {
	dx := x - e.CX
	dy := y - e.CY
	return (dx*dx)/(e.RX*e.RX) + (dy*dy)/(e.RY*e.RY)
}

// Contains reports whether (x, y) lies inside or on the ellipse.
func (e Ellipse) Contains(x, y float64) bool {
	return e.Ratio(x, y) <= 1
}

// Point returns the boundary point at the parametric angle theta (radians).
func (e Ellipse) Point(theta float64) (x, y float64) {
	return e.CX + math.Cos(theta)*e.RX, e.CY + math.Sin(theta)*e.RY
}

// Scaled returns a concentric ellipse with both radii multiplied by s.
func (e Ellipse) Scaled(s float64) Ellipse {
	return Ellipse{CX: e.CX, CY: e.CY, RX: e.RX * s, RY: e.RY * s}
}

// axisGap is the smallest distance from (x, y) to any of the four axis
// extremes of the ellipse, measured per axis.
func (e Ellipse) axisGap(x, y float64) float64 {
	return math.Min(
		math.Min(math.Abs(x-(e.CX+e.RX)), math.Abs(x-(e.CX-e.RX))),
		math.Min(math.Abs(y-(e.CY+e.RY)), math.Abs(y-(e.CY-e.RY))),
	)
}

// Annulus is the drivable region between two concentric ellipses.
type Annulus struct {
	Outer Ellipse
	Inner Ellipse
}

// Contains reports whether (x, y) is on the drivable surface: inside or on
// the outer boundary and not strictly inside the inner one. Both
// boundaries count as on-track.
func (a Annulus) Contains(x, y float64) bool {
	return a.Outer.Ratio(x, y) <= 1 && a.Inner.Ratio(x, y) >= 1
}

// EdgeDistance approximates the distance from (x, y) to the nearest track
// edge. Off-track points return a non-positive value measured against the
// axis extremes of the violated ellipse. On-track points return a
// non-negative estimate scaled by the smaller radius of each ellipse.
func (a Annulus) EdgeDistance(x, y float64) float64 {
	outer := math.Sqrt(a.Outer.Ratio(x, y))
	if outer > 1 {
		return -a.Outer.axisGap(x, y)
	}

	inner := math.Sqrt(a.Inner.Ratio(x, y))
	if inner < 1 {
		return -a.Inner.axisGap(x, y)
	}

	toOuter := math.Abs(1-outer) * math.Min(a.Outer.RX, a.Outer.RY)
	toInner := math.Abs(1-inner) * math.Min(a.Inner.RX, a.Inner.RY)
	return math.Min(toOuter, toInner)
}

package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount without crossing it.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Forward returns the unit travel vector for a heading in degrees, where 0
// points up the screen and positive angles turn clockwise.
func Forward(headingDeg float64) (dx, dy float64) {
	rad := DegToRad(headingDeg)
	return math.Sin(rad), -math.Cos(rad)
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

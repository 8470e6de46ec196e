package factory

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
)

// GenerateDecorations fills in road tiles along the centerline and scatters
// scenery outside the outer edge and inside the infield. Scatter distances
// follow each ellipse's aspect so nothing lands on the road. Existing
// scenery is replaced.
func GenerateDecorations(track *components.TrackData, rng *rand.Rand) {
	outer := track.Bounds.Outer
	inner := track.Bounds.Inner
	cx, cy := track.Center()
	midRX := (outer.RX + inner.RX) / 2
	midRY := (outer.RY + inner.RY) / 2
	n := cfg.Decorations.RoadSegments

	track.RoadSegments = make([]components.RoadSegment, 0, n)
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * math.Pi
		track.RoadSegments = append(track.RoadSegments, components.RoadSegment{
			X:      cx + math.Cos(angle)*midRX,
			Y:      cy + math.Sin(angle)*midRY,
			Angle:  angle + math.Pi/2,
			Width:  outer.RX - inner.RX,
			Height: 64,
			Type:   (i / 3) % 2,
		})
	}

	track.Decorations = track.Decorations[:0]
	for i := 0; i < cfg.Decorations.OuterCount; i++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := outer.RX + cfg.Decorations.OuterMinGap + rng.Float64()*cfg.Decorations.OuterGapRange
		track.Decorations = append(track.Decorations, components.Decoration{
			X:     cx + math.Cos(angle)*dist,
			Y:     cy + math.Sin(angle)*dist*outer.RY/outer.RX,
			Type:  rng.IntN(cfg.Decorations.Types),
			Scale: 0.8 + rng.Float64()*0.5,
		})
	}
	for i := 0; i < cfg.Decorations.InnerCount; i++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := inner.RX - cfg.Decorations.InnerMinGap - rng.Float64()*cfg.Decorations.InnerGapRange
		track.Decorations = append(track.Decorations, components.Decoration{
			X:     cx + math.Cos(angle)*dist,
			Y:     cy + math.Sin(angle)*dist*inner.RY/inner.RX,
			Type:  rng.IntN(cfg.Decorations.Types),
			Scale: 0.6 + rng.Float64()*0.4,
		})
	}
}

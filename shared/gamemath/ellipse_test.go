package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var oval = Annulus{
	Outer: Ellipse{CX: 500, CY: 350, RX: 420, RY: 320},
	Inner: Ellipse{CX: 500, CY: 350, RX: 180, RY: 120},
}

func TestAnnulusContains(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inner hole on major axis", 650, 350, false},
		{"south straight", 500, 500, true},
		{"center", 500, 350, false},
		{"outer boundary east", 920, 350, true},
		{"outer boundary north", 500, 30, true},
		{"inner boundary east", 680, 350, true},
		{"inner boundary south", 500, 470, true},
		{"just outside outer", 920.01, 350, false},
		{"just inside inner", 679.99, 350, false},
		{"far corner", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, oval.Contains(tt.x, tt.y))
		})
	}
}

func TestAnnulusBoundariesHaveNoGap(t *testing.T) {
	// Every point along the x axis between the inner and outer extremes is on track.
	for x := 680.0; x <= 920.0; x += 0.5 {
		assert.True(t, oval.Contains(x, 350), "x=%v", x)
	}
}

func TestAnnulusEdgeDistance(t *testing.T) {
	t.Run("beyond outer uses outer extremes", func(t *testing.T) {
		assert.InDelta(t, -30, oval.EdgeDistance(950, 350), 1e-9)
	})

	t.Run("inside inner uses inner extremes", func(t *testing.T) {
		assert.InDelta(t, -120, oval.EdgeDistance(500, 350), 1e-9)
	})

	t.Run("on track returns nearest scaled gap", func(t *testing.T) {
		assert.InDelta(t, 80, oval.EdgeDistance(800, 350), 1e-9)
	})

	t.Run("on boundary is zero", func(t *testing.T) {
		assert.InDelta(t, 0, oval.EdgeDistance(920, 350), 1e-9)
	})
}

func TestEllipseScaledPoint(t *testing.T) {
	e := oval.Outer.Scaled(0.8)
	x, y := e.Point(0)
	assert.InDelta(t, 836, x, 1e-9)
	assert.InDelta(t, 350, y, 1e-9)
	assert.True(t, oval.Contains(x, y))
}

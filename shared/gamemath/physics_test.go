package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFriction(t *testing.T) {
	assert.InDelta(t, 0.95, ApplyFriction(1, 0.05), 1e-12)
	assert.InDelta(t, -0.95, ApplyFriction(-1, 0.05), 1e-12)
	assert.Equal(t, 0.0, ApplyFriction(0.03, 0.05))
	assert.Equal(t, 0.0, ApplyFriction(-0.03, 0.05))
	assert.Equal(t, 0.0, ApplyFriction(0, 0.05))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 7.0, Clamp(9, -3.5, 7))
	assert.Equal(t, -3.5, Clamp(-5, -3.5, 7))
	assert.Equal(t, 2.0, Clamp(2, -3.5, 7))
}

func TestForward(t *testing.T) {
	dx, dy := Forward(0)
	assert.InDelta(t, 0, dx, 1e-12)
	assert.InDelta(t, -1, dy, 1e-12)

	dx, dy = Forward(90)
	assert.InDelta(t, 1, dx, 1e-12)
	assert.InDelta(t, 0, dy, 1e-12)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1.0/60))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestFootprintCorners(t *testing.T) {
	t.Run("axis aligned", func(t *testing.T) {
		c := FootprintCorners(0, 0, 32, 24, 0)
		want := [4]Point{{16, 12}, {16, -12}, {-16, 12}, {-16, -12}}
		for i := range want {
			assert.InDelta(t, want[i].X, c[i].X, 1e-9)
			assert.InDelta(t, want[i].Y, c[i].Y, 1e-9)
		}
	})

	t.Run("quarter turn", func(t *testing.T) {
		c := FootprintCorners(100, 100, 32, 24, 90)
		want := [4]Point{{88, 116}, {112, 116}, {88, 84}, {112, 84}}
		for i := range want {
			assert.InDelta(t, want[i].X, c[i].X, 1e-9)
			assert.InDelta(t, want[i].Y, c[i].Y, 1e-9)
		}
	})
}

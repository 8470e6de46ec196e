package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleIndexWraps(t *testing.T) {
	n := len(CarStyles)
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{n - 1, n - 1},
		{n, 0},
		{n + 2, 2},
		{-1, n - 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StyleIndex(tt.in), "index %d", tt.in)
	}
	assert.Equal(t, CarStyles[1].Name, Style(n+1).Name)
}

package gamemath

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveXPushesOutToTouchingEdge(t *testing.T) {
	wall := NewRect(16, 0, 16, 16)

	tests := []struct {
		name      string
		box       Rect
		dx        float64
		wantX     float64
		wantLeft  bool
		wantRight bool
	}{
		{"moving right into wall", NewRect(6, 0, 8, 15), 3, 8, false, true},
		{"moving left into wall", NewRect(33, 0, 8, 15), -3, 32, true, false},
		{"clear of wall", NewRect(0, 0, 8, 15), 2, 2, false, false},
		{"touching edge only", NewRect(6, 0, 8, 15), 2, 8, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, sides := ResolveX(tt.box, tt.dx, []Rect{wall})
			assert.InDelta(t, tt.wantX, got.X, 1e-9)
			assert.Equal(t, tt.wantLeft, sides.Left)
			assert.Equal(t, tt.wantRight, sides.Right)
			assert.False(t, sides.Vertical())
		})
	}
}

func TestResolveYLandsAndBumpsCeiling(t *testing.T) {
	floor := NewRect(0, 32, 16, 16)
	ceiling := NewRect(0, 0, 16, 16)

	got, sides := ResolveY(NewRect(4, 16, 8, 15), 2, []Rect{floor})
	assert.InDelta(t, 17.0, got.Y, 1e-9)
	assert.True(t, sides.Down)
	assert.False(t, sides.Up)

	got, sides = ResolveY(NewRect(4, 17, 8, 15), -2, []Rect{ceiling})
	assert.InDelta(t, 16.0, got.Y, 1e-9)
	assert.True(t, sides.Up)
	assert.False(t, sides.Down)
}

func TestResolveXZeroDeltaRaisesNoFlag(t *testing.T) {
	box := NewRect(10, 0, 8, 15)
	got, sides := ResolveX(box, 0, []Rect{NewRect(12, 0, 16, 16)})
	assert.Equal(t, box, got)
	assert.False(t, sides.Horizontal())
}

func TestResolveXNeverLeavesOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	tile := NewRect(64, 64, 16, 16)

	for i := 0; i < 500; i++ {
		box := NewRect(40+rng.Float64()*48, 50+rng.Float64()*28, 8, 15)
		dx := (rng.Float64() - 0.5) * 16
		if dx == 0 {
			continue
		}
		moved := box
		moved.X += dx
		if !moved.Overlaps(tile) {
			continue
		}

		got, sides := ResolveX(box, dx, []Rect{tile})
		assert.False(t, got.Overlaps(tile), "box %+v dx %v", box, dx)
		assert.NotEqual(t, sides.Left, sides.Right)
		assert.Equal(t, dx > 0, sides.Right)
		assert.Equal(t, dx < 0, sides.Left)
	}
}

package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFriction(t *testing.T) {
	assert.InDelta(t, 0.9, ApplyFriction(1, 0.1), 1e-9)
	assert.InDelta(t, -0.9, ApplyFriction(-1, 0.1), 1e-9)
	assert.Equal(t, 0.0, ApplyFriction(0.05, 0.1))
	assert.Equal(t, 0.0, ApplyFriction(-0.05, 0.1))
}

func TestApplyGravityCapsAtTerminal(t *testing.T) {
	assert.InDelta(t, 0.1, ApplyGravity(0, 0.1, 5), 1e-9)
	assert.Equal(t, 5.0, ApplyGravity(4.95, 0.1, 5))
}

func TestRectOverlapIsStrict(t *testing.T) {
	a := NewRect(0, 0, 16, 16)
	assert.False(t, a.Overlaps(NewRect(16, 0, 16, 16)))
	assert.True(t, a.Overlaps(NewRect(15.5, 0, 16, 16)))
	assert.True(t, a.Contains(Vec2{X: 0, Y: 0}))
	assert.False(t, a.Contains(Vec2{X: 16, Y: 8}))
}

func TestFloorIsNegativeSafe(t *testing.T) {
	assert.Equal(t, -1, Floor(-0.5))
	assert.Equal(t, 0, Floor(0.5))
	assert.Equal(t, -2, Floor(-16.0/16-0.01))
}

package systems

import (
	"testing"

	"github.com/automoto/tileplat/components"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/shared/leveldata"
	"github.com/automoto/tileplat/tilemap"
	"github.com/stretchr/testify/assert"
)

type scriptedIntent struct {
	move    gamemath.Vec2
	reacted []gamemath.Vec2
}

func (i *scriptedIntent) Movement(*Mover) gamemath.Vec2 { return i.move }

func (i *scriptedIntent) React(_ *Mover, movement gamemath.Vec2) []components.SpawnRequest {
	i.reacted = append(i.reacted, movement)
	return nil
}

func newMover(x, y float64) *Mover {
	anim := components.NewAnimationData(cfg.SpritePlayer)
	return &Mover{
		Body: &components.BodyData{Pos: gamemath.Vec2{X: x, Y: y}, W: 8, H: 15},
		Anim: &anim,
	}
}

func TestStepLandsOnFloor(t *testing.T) {
	g := tilemap.New(16)
	floorRow(g, -1, 2, 1)

	m := newMover(0, 0.95)
	m.Body.Vel.Y = 0.5
	intent := &scriptedIntent{}

	Step(m, g, intent)

	assert.Equal(t, 1.0, m.Body.Pos.Y)
	assert.True(t, m.Body.Collisions.Down)
	assert.False(t, m.Body.Collisions.Up)
	assert.Zero(t, m.Body.Vel.Y)
	assert.Len(t, intent.reacted, 1)
}

func TestStepStopsAtWallAndFaces(t *testing.T) {
	g := tilemap.New(16)
	g.Set(tilemap.Cell{X: 1, Y: 0}, leveldata.KindStone, 0)

	m := newMover(0, 0)
	Step(m, g, &scriptedIntent{move: gamemath.Vec2{X: 10}})

	assert.Equal(t, 8.0, m.Body.Pos.X)
	assert.True(t, m.Body.Collisions.Right)
	assert.False(t, m.Body.Flip)

	Step(m, g, &scriptedIntent{move: gamemath.Vec2{X: -1}})
	assert.Equal(t, 7.0, m.Body.Pos.X)
	assert.True(t, m.Body.Flip)
	assert.False(t, m.Body.Collisions.Horizontal())
}

func TestStepGravityCapsAtTerminalVelocity(t *testing.T) {
	g := tilemap.New(16)
	m := newMover(0, 0)
	intent := &scriptedIntent{}

	for i := 0; i < 100; i++ {
		Step(m, g, intent)
	}
	assert.Equal(t, cfg.Physics.TerminalVelocity, m.Body.Vel.Y)
}

func TestStepAdvancesAnimation(t *testing.T) {
	g := tilemap.New(16)
	m := newMover(0, 0)
	Step(m, g, &scriptedIntent{})
	assert.Equal(t, 1, m.Anim.Current.Cursor())
}

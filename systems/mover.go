package systems

import (
	"github.com/automoto/tileplat/components"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SolidQuery is the part of the tile grid that moving bodies collide with.
type SolidQuery interface {
	SolidRectsNear(pos gamemath.Vec2) []gamemath.Rect
	IsSolidAt(p gamemath.Vec2) bool
}

// Mover is everything the shared step touches on an entity.
type Mover struct {
	Body *components.BodyData
	Anim *components.AnimationData
}

func moverOf(e *donburi.Entry) *Mover {
	return &Mover{
		Body: components.Body.Get(e),
		Anim: components.Animation.Get(e),
	}
}

// Intent is what makes a mover a player or an enemy. Movement is asked
// before the step; React sees the resulting collision flags.
type Intent interface {
	Movement(m *Mover) gamemath.Vec2
	React(m *Mover, movement gamemath.Vec2) []components.SpawnRequest
}

// Step moves a body one tick: X is resolved fully before Y, then gravity
// is applied and the animation advanced.
func Step(m *Mover, grid SolidQuery, intent Intent) []components.SpawnRequest {
	b := m.Body
	b.Collisions = gamemath.Sides{}

	movement := intent.Movement(m)
	frameX := movement.X + b.Vel.X
	frameY := movement.Y + b.Vel.Y

	if frameX > 0 {
		b.Flip = false
	} else if frameX < 0 {
		b.Flip = true
	}

	box, sides := gamemath.ResolveX(b.Rect(), frameX, grid.SolidRectsNear(b.Pos))
	b.Pos.X = box.X
	b.Collisions.Left, b.Collisions.Right = sides.Left, sides.Right

	box, sides = gamemath.ResolveY(b.Rect(), frameY, grid.SolidRectsNear(b.Pos))
	b.Pos.Y = box.Y
	b.Collisions.Up, b.Collisions.Down = sides.Up, sides.Down

	b.Vel.Y = gamemath.ApplyGravity(b.Vel.Y, cfg.Physics.Gravity, cfg.Physics.TerminalVelocity)
	if b.Collisions.Vertical() {
		b.Vel.Y = 0
	}

	m.Anim.Current.Update()

	return intent.React(m, movement)
}

// syncObject moves an entity's broad-phase object onto its body.
func syncObject(w donburi.World, e *donburi.Entry, pos gamemath.Vec2) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	components.Space.Get(spaceEntry).Place(obj.Object, pos)
}

func levelOf(w donburi.World) (*components.LevelData, *donburi.Entry, bool) {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil, nil, false
	}
	return components.Level.Get(entry), entry, true
}

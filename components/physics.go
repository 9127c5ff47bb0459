package components

import (
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is an axis-aligned box moved by the shared step. Pos is the
// top-left corner. Flip means facing left.
type BodyData struct {
	Pos        gamemath.Vec2
	Vel        gamemath.Vec2
	W, H       float64
	Flip       bool
	Collisions gamemath.Sides
}

func (b *BodyData) Rect() gamemath.Rect {
	return gamemath.NewRect(b.Pos.X, b.Pos.Y, b.W, b.H)
}

func (b *BodyData) Center() gamemath.Vec2 {
	return b.Rect().Center()
}

// Dir is -1 when facing left and 1 otherwise.
func (b *BodyData) Dir() float64 {
	return gamemath.Direction(b.Flip)
}

var Body = donburi.NewComponentType[BodyData]()

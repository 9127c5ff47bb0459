package components

import (
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its resolv object in the actor space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the resolv space used as the actor broad-phase. resolv cells
// start at zero, so world positions are shifted by Origin.
type SpaceData struct {
	Space  *resolv.Space
	Origin gamemath.Vec2
}

// Place moves obj to a world position and refreshes its cells.
func (s *SpaceData) Place(obj *resolv.Object, pos gamemath.Vec2) {
	obj.X = pos.X - s.Origin.X
	obj.Y = pos.Y - s.Origin.Y
	obj.Update()
}

var Space = donburi.NewComponentType[SpaceData]()

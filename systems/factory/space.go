package factory

import (
	"github.com/automoto/tileplat/archetypes"
	"github.com/automoto/tileplat/components"
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/tilemap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// spaceMarginCells pads the actor space around the level so entities that
// walk or fall off the edge stay inside it until they die.
const spaceMarginCells = 64

// CreateSpace sizes a resolv space to cover the grid plus a margin.
func CreateSpace(w donburi.World, grid *tilemap.Grid) *donburi.Entry {
	min, max, ok := grid.Bounds()
	if !ok {
		min, max = tilemap.Cell{}, tilemap.Cell{}
	}
	ts := grid.TileSize()
	cols := max.X - min.X + 1 + 2*spaceMarginCells
	rows := max.Y - min.Y + 1 + 2*spaceMarginCells

	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(cols*ts, rows*ts, ts, ts),
		Origin: gamemath.Vec2{
			X: float64((min.X - spaceMarginCells) * ts),
			Y: float64((min.Y - spaceMarginCells) * ts),
		},
	})
	return space
}

// addObject registers a new resolv object for e at pos.
func addObject(w donburi.World, e *donburi.Entry, pos gamemath.Vec2, width, height float64, tag string) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	obj := resolv.NewObject(0, 0, width, height, tag)
	obj.Data = e
	space.Space.Add(obj)
	space.Place(obj, pos)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
}

// Destroy removes an entity and its resolv object, if it has one.
func Destroy(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil {
			if spaceEntry, ok := components.Space.First(w); ok {
				components.Space.Get(spaceEntry).Space.Remove(obj.Object)
			}
		}
	}
	e.Remove()
}

package components

import (
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/tilemap"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Grid         *tilemap.Grid
	LeafSpawners []gamemath.Rect
	PlayerSpawn  gamemath.Vec2
}

var Level = donburi.NewComponentType[LevelData]()

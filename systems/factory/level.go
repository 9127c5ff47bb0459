package factory

import (
	"math/rand"

	"github.com/automoto/tileplat/archetypes"
	"github.com/automoto/tileplat/components"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/shared/leveldata"
	"github.com/automoto/tileplat/tilemap"
	"github.com/yohamta/donburi"
)

const (
	spawnerPlayer = 0
	spawnerEnemy  = 1
	leafTree      = 2 // large_decor variant that sheds leaves
)

// CreateLevel populates an empty world from a grid. Spawner tiles are
// removed from the grid and replaced by the player and enemies; trees are
// kept and register a leaf region each. The grid is owned by the world
// afterwards.
func CreateLevel(w donburi.World, grid *tilemap.Grid, rng *rand.Rand) *donburi.Entry {
	level := archetypes.Level.Spawn(w)

	data := components.LevelData{Grid: grid}
	for _, tree := range grid.Extract(leveldata.KindLargeDecor, leafTree, true) {
		data.LeafSpawners = append(data.LeafSpawners, gamemath.NewRect(
			tree.Pos.X+cfg.Effects.LeafInset,
			tree.Pos.Y+cfg.Effects.LeafInset,
			cfg.Effects.LeafRegionW,
			cfg.Effects.LeafRegionH,
		))
	}
	if spawns := grid.Extract(leveldata.KindSpawner, spawnerPlayer, false); len(spawns) > 0 {
		data.PlayerSpawn = spawns[0].Pos
	}
	enemies := grid.Extract(leveldata.KindSpawner, spawnerEnemy, false)

	components.Level.SetValue(level, data)
	components.Random.SetValue(level, components.RandomData{Rand: rng})

	CreateSpace(w, grid)
	CreatePlayer(w, data.PlayerSpawn)
	for _, e := range enemies {
		CreateEnemy(w, e.Pos)
	}

	return level
}

package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/tileplat/components"
	"github.com/automoto/tileplat/shared/leveldata"
	"github.com/automoto/tileplat/systems/factory"
	"github.com/automoto/tileplat/tags"
	"github.com/automoto/tileplat/tilemap"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// floorRow fills cells x0..x1 on row y with stone.
func floorRow(g *tilemap.Grid, x0, x1, y int) {
	for x := x0; x <= x1; x++ {
		g.Set(tilemap.Cell{X: x, Y: y}, leveldata.KindStone, 0)
	}
}

func newTestWorld(t *testing.T, g *tilemap.Grid) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateLevel(w, g, rand.New(rand.NewSource(7)))
	return w
}

func playerOf(t *testing.T, w donburi.World) (*donburi.Entry, *components.PlayerData, *components.BodyData) {
	t.Helper()
	e, ok := tags.Player.First(w)
	require.True(t, ok)
	return e, components.Player.Get(e), components.Body.Get(e)
}

func setInput(w donburi.World, in components.InputData) {
	e, _ := components.Input.First(w)
	components.Input.SetValue(e, in)
}

func countRequests(reqs []components.SpawnRequest) (particles, sparks, projectiles int) {
	for _, r := range reqs {
		switch r.(type) {
		case components.SpawnParticle:
			particles++
		case components.SpawnSpark:
			sparks++
		case components.SpawnProjectile:
			projectiles++
		}
	}
	return particles, sparks, projectiles
}

package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/shared/leveldata"
)

func newFloorGrid() *Grid {
	g := New(16)
	for x := -2; x <= 4; x++ {
		g.Set(Cell{x, 3}, leveldata.KindGrass, 1)
	}
	g.Set(Cell{0, 2}, leveldata.KindDecor, 0)
	return g
}

func TestSolidRectsNearReturnsNeighborhoodSolids(t *testing.T) {
	g := newFloorGrid()

	rects := g.SolidRectsNear(gamemath.Vec2{X: 5, Y: 40})
	assert.ElementsMatch(t, []gamemath.Rect{
		gamemath.NewRect(-16, 48, 16, 16),
		gamemath.NewRect(0, 48, 16, 16),
		gamemath.NewRect(16, 48, 16, 16),
	}, rects)

	assert.Empty(t, g.SolidRectsNear(gamemath.Vec2{X: 5, Y: -100}))
}

func TestSolidRectsNearHandlesNegativeCells(t *testing.T) {
	g := New(16)
	g.Set(Cell{-1, -1}, leveldata.KindStone, 0)

	rects := g.SolidRectsNear(gamemath.Vec2{X: -0.5, Y: -0.5})
	assert.Equal(t, []gamemath.Rect{gamemath.NewRect(-16, -16, 16, 16)}, rects)
}

func TestIsSolidAt(t *testing.T) {
	g := newFloorGrid()

	assert.True(t, g.IsSolidAt(gamemath.Vec2{X: 8, Y: 50}))
	assert.True(t, g.IsSolidAt(gamemath.Vec2{X: -20, Y: 63.9}))
	assert.False(t, g.IsSolidAt(gamemath.Vec2{X: 8, Y: 40}), "decor never collides")
	assert.False(t, g.IsSolidAt(gamemath.Vec2{X: 500, Y: 500}), "empty cells are not solid")
}

func TestExtract(t *testing.T) {
	g := New(16)
	g.Set(Cell{2, 1}, leveldata.KindSpawner, 1)
	g.Set(Cell{5, 1}, leveldata.KindSpawner, 1)
	g.Set(Cell{0, 0}, leveldata.KindSpawner, 0)
	g.AddOffGrid(leveldata.KindSpawner, 1, gamemath.Vec2{X: 3.5, Y: 7})
	g.Set(Cell{3, 3}, leveldata.KindLargeDecor, 2)

	enemies := g.Extract(leveldata.KindSpawner, 1, false)
	require.Len(t, enemies, 3)
	assert.Equal(t, gamemath.Vec2{X: 3.5, Y: 7}, enemies[0].Pos)
	assert.Equal(t, gamemath.Vec2{X: 32, Y: 16}, enemies[1].Pos)
	assert.Equal(t, gamemath.Vec2{X: 80, Y: 16}, enemies[2].Pos)

	_, ok := g.Tile(Cell{2, 1})
	assert.False(t, ok)
	assert.Empty(t, g.OffGrid())
	assert.Empty(t, g.Extract(leveldata.KindSpawner, 1, false))

	trees := g.Extract(leveldata.KindLargeDecor, 2, true)
	require.Len(t, trees, 1)
	assert.Equal(t, gamemath.Vec2{X: 48, Y: 48}, trees[0].Pos)
	_, ok = g.Tile(Cell{3, 3})
	assert.True(t, ok, "keep leaves the tile in place")

	assert.Equal(t, 2, g.Len())
}

func TestLoadAndLevelRoundTrip(t *testing.T) {
	lvl := leveldata.NewLevel(16)
	lvl.Tilemap["1;2"] = leveldata.TileRecord{Type: leveldata.KindStone, Variant: 4, Pos: []float64{1, 2}}
	lvl.Tilemap["-3;2"] = leveldata.TileRecord{Type: leveldata.KindDecor, Variant: 1, Pos: []float64{-3, 2}}
	lvl.OffGrid = append(lvl.OffGrid, leveldata.TileRecord{Type: leveldata.KindLargeDecor, Variant: 0, Pos: []float64{9.5, 1}})

	g, err := Load(lvl)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())
	tile, ok := g.Tile(Cell{1, 2})
	require.True(t, ok)
	assert.Equal(t, 4, tile.Variant)

	assert.Equal(t, lvl, g.Level())
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	lvl := leveldata.NewLevel(16)
	lvl.Tilemap["0;0"] = leveldata.TileRecord{Type: leveldata.Kind(42), Pos: []float64{0, 0}}

	g, err := Load(lvl)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, leveldata.ErrUnknownKind)
}

func TestBounds(t *testing.T) {
	_, _, ok := New(16).Bounds()
	assert.False(t, ok)

	min, max, ok := newFloorGrid().Bounds()
	require.True(t, ok)
	assert.Equal(t, Cell{-2, 2}, min)
	assert.Equal(t, Cell{4, 3}, max)
}

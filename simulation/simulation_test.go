package simulation

import (
	"testing"

	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func place(lvl *leveldata.Level, kind leveldata.Kind, variant, x, y int) {
	lvl.Tilemap[leveldata.CellKey(x, y)] = leveldata.TileRecord{
		Type:    kind,
		Variant: variant,
		Pos:     []float64{float64(x), float64(y)},
	}
}

// arena is a long floor with the player on the left, two enemies further
// along and a tree shedding leaves.
func arena() *leveldata.Level {
	lvl := leveldata.NewLevel(16)
	for x := -5; x <= 40; x++ {
		place(lvl, leveldata.KindGrass, 1, x, 5)
	}
	place(lvl, leveldata.KindSpawner, 0, 0, 4)
	place(lvl, leveldata.KindSpawner, 1, 10, 4)
	place(lvl, leveldata.KindSpawner, 1, 20, 4)
	lvl.OffGrid = append(lvl.OffGrid, leveldata.TileRecord{
		Type:    leveldata.KindLargeDecor,
		Variant: 2,
		Pos:     []float64{48, 40},
	})
	return lvl
}

// script replays a fixed input pattern: run right, jump now and then,
// dash every so often.
func script(tick int) Input {
	return Input{
		Right: tick%200 < 150,
		Left:  tick%200 >= 170,
		Jump:  tick%90 == 10,
		Dash:  tick%120 == 30,
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	lvl := leveldata.NewLevel(16)
	lvl.Tilemap["1;1"] = leveldata.TileRecord{Type: leveldata.KindStone, Pos: []float64{2, 1}}

	_, err := New(lvl)
	require.Error(t, err)
	assert.ErrorIs(t, err, leveldata.ErrKeyMismatch)
}

func TestNewSpawnsFromSpawners(t *testing.T) {
	sim, err := New(arena())
	require.NoError(t, err)

	assert.Equal(t, 2, sim.Counts().Enemies)
	assert.Equal(t, 0.0, sim.Player().Pos.X)
	assert.Equal(t, 64.0, sim.Player().Pos.Y)
	assert.Zero(t, sim.Tick())
}

func TestStepIsDeterministic(t *testing.T) {
	a, err := New(arena(), WithSeed(42))
	require.NoError(t, err)
	b, err := New(arena(), WithSeed(42))
	require.NoError(t, err)

	for tick := 0; tick < 1500; tick++ {
		in := script(tick)
		a.Step(in)
		b.Step(in)
		require.Equal(t, a.Hash(), b.Hash(), "diverged at tick %d", tick)
	}
	assert.Equal(t, a.Counts(), b.Counts())
}

func TestSeedsDiverge(t *testing.T) {
	a, err := New(arena(), WithSeed(1))
	require.NoError(t, err)
	b, err := New(arena(), WithSeed(2))
	require.NoError(t, err)

	differ := false
	for tick := 0; tick < 1000 && !differ; tick++ {
		a.Step(Input{})
		b.Step(Input{})
		differ = a.Hash() != b.Hash()
	}
	assert.True(t, differ)
}

func TestFallingOffResetsLevel(t *testing.T) {
	lvl := leveldata.NewLevel(16)
	place(lvl, leveldata.KindSpawner, 0, 0, 0)
	place(lvl, leveldata.KindSpawner, 1, 30, 0)
	place(lvl, leveldata.KindStone, 0, 30, 1)

	sim, err := New(lvl)
	require.NoError(t, err)

	var res StepResult
	for i := 0; i <= cfg.Player.FallDeathTicks; i++ {
		res = sim.Step(Input{})
	}
	require.True(t, res.Reset)
	assert.Equal(t, 1, sim.Resets())

	p := sim.Player()
	assert.False(t, p.Dead)
	assert.Zero(t, p.AirTime)
	assert.Equal(t, 0.0, p.Pos.Y)
	assert.Equal(t, 1, sim.Counts().Enemies)
}

func TestDashKillsEnemy(t *testing.T) {
	lvl := leveldata.NewLevel(16)
	for x := -2; x <= 10; x++ {
		place(lvl, leveldata.KindStone, 0, x, 1)
	}
	place(lvl, leveldata.KindSpawner, 0, 0, 0)
	place(lvl, leveldata.KindSpawner, 1, 2, 0)

	sim, err := New(lvl)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		sim.Step(Input{})
	}

	kills := 0
	kills += sim.Step(Input{Dash: true}).Kills
	for i := 0; i < 10; i++ {
		kills += sim.Step(Input{}).Kills
	}

	assert.Equal(t, 1, kills)
	counts := sim.Counts()
	assert.Zero(t, counts.Enemies)
	assert.NotZero(t, counts.Sparks)
	assert.NotZero(t, counts.Particles)
}

func TestDrawListFollowsWorld(t *testing.T) {
	sim, err := New(arena())
	require.NoError(t, err)
	sim.Step(Input{})

	cmds := sim.DrawList(sim.Camera())
	assert.NotEmpty(t, cmds)
}

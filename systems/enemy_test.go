package systems

import (
	"math"
	"testing"

	"github.com/automoto/tileplat/components"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/shared/leveldata"
	"github.com/automoto/tileplat/systems/factory"
	"github.com/automoto/tileplat/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// enemyOnPlatform builds a world with a platform spanning cells x0..x1 on
// row 1 and one enemy standing on it at pixel x.
func enemyOnPlatform(t *testing.T, x0, x1 int, x float64) (donburi.World, *donburi.Entry) {
	t.Helper()
	g := tilemap.New(16)
	g.Set(tilemap.Cell{X: -20, Y: -20}, leveldata.KindSpawner, 0)
	floorRow(g, x0, x1, 1)
	w := newTestWorld(t, g)
	return w, factory.CreateEnemy(w, gamemath.Vec2{X: x, Y: 1})
}

func TestEnemyPatrolStaysOnPlatform(t *testing.T) {
	w, e := enemyOnPlatform(t, 0, 2, 16)
	enemy := components.Enemy.Get(e)
	body := components.Body.Get(e)
	enemy.PatrolTimer = 500

	flips := 0
	lastFlip := body.Flip
	for i := 0; i < 300; i++ {
		UpdateEnemy(w, e)
		require.GreaterOrEqual(t, body.Pos.X, 0.0)
		require.LessOrEqual(t, body.Pos.X+body.W, 48.0)
		if body.Flip != lastFlip {
			flips++
			lastFlip = body.Flip
		}
	}
	assert.Equal(t, 1.0, body.Pos.Y)
	assert.Greater(t, flips, 1, "turns around at both ledges")
	assert.Equal(t, cfg.ActionRun, components.Animation.Get(e).Action)
}

func TestEnemyTurnsAtWall(t *testing.T) {
	w, e := enemyOnPlatform(t, -2, 6, 4)
	level, _, _ := levelOf(w)
	level.Grid.Set(tilemap.Cell{X: 1, Y: 0}, leveldata.KindStone, 0)

	components.Enemy.Get(e).PatrolTimer = 10
	body := components.Body.Get(e)

	UpdateEnemy(w, e)
	assert.True(t, body.Flip)
	assert.Equal(t, 4.0, body.Pos.X)
}

func TestEnemyWallCheckAtFeet(t *testing.T) {
	g := tilemap.New(16)
	g.Set(tilemap.Cell{X: -20, Y: -20}, leveldata.KindSpawner, 0)
	// only the lower half of the body overlaps row 0
	g.Set(tilemap.Cell{X: 1, Y: 0}, leveldata.KindStone, 0)
	w := newTestWorld(t, g)
	e := factory.CreateEnemy(w, gamemath.Vec2{X: 4, Y: -10})
	body := components.Body.Get(e)
	require.Less(t, body.Center().Y, 0.0)
	require.GreaterOrEqual(t, body.Pos.Y+body.H-1, 0.0)

	components.Enemy.Get(e).PatrolTimer = 10
	UpdateEnemy(w, e)

	assert.True(t, body.Flip)
	assert.Equal(t, 4.0, body.Pos.X)
	assert.Equal(t, cfg.ActionIdle, components.Animation.Get(e).Action)
}

func TestEnemyShoots(t *testing.T) {
	cases := []struct {
		name      string
		flip      bool
		playerDX  float64
		playerDY  float64
		wantShot  bool
		wantSpeed float64
	}{
		{name: "player ahead to the right", playerDX: 40, wantShot: true, wantSpeed: cfg.Enemy.ProjectileSpeed},
		{name: "player ahead to the left", flip: true, playerDX: -40, wantShot: true, wantSpeed: -cfg.Enemy.ProjectileSpeed},
		{name: "player behind", playerDX: -40},
		{name: "player out of the band", playerDX: 40, playerDY: cfg.Enemy.ShotBand},
		{name: "player level with the muzzle", playerDX: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, e := enemyOnPlatform(t, -10, 10, 16)
			body := components.Body.Get(e)
			body.Flip = tc.flip
			components.Enemy.Get(e).PatrolTimer = 1

			_, _, pb := playerOf(t, w)
			pb.Pos = gamemath.Vec2{X: body.Pos.X + tc.playerDX, Y: body.Pos.Y + tc.playerDY}

			center := body.Center()
			reqs := UpdateEnemy(w, e)
			if !tc.wantShot {
				assert.Empty(t, reqs)
				return
			}

			_, sparks, projectiles := countRequests(reqs)
			require.Equal(t, 1, projectiles)
			assert.Equal(t, cfg.Enemy.MuzzleSparks, sparks)

			shot := reqs[0].(components.SpawnProjectile)
			assert.Equal(t, tc.wantSpeed, shot.Speed)
			assert.InDelta(t, center.X+math.Copysign(cfg.Enemy.MuzzleOffset, tc.wantSpeed), shot.Pos.X, 1)

			for _, r := range reqs[1:] {
				spark := r.(components.SpawnSpark)
				// sparks kick back against the shot
				dx := math.Cos(spark.Angle)
				assert.Less(t, dx*tc.wantSpeed, 0.0)
				assert.GreaterOrEqual(t, spark.Speed, cfg.Effects.SparkBaseSpeed)
			}
		})
	}
}

func TestEnemyIdleStartsPatrolEventually(t *testing.T) {
	w, e := enemyOnPlatform(t, -10, 10, 16)
	enemy := components.Enemy.Get(e)

	started := false
	for i := 0; i < 2000 && !started; i++ {
		UpdateEnemy(w, e)
		started = enemy.Patrolling()
	}
	require.True(t, started)
	assert.GreaterOrEqual(t, enemy.PatrolTimer, cfg.Enemy.PatrolMinTicks-1)
	assert.LessOrEqual(t, enemy.PatrolTimer, cfg.Enemy.PatrolMaxTicks)
}

package systems

import (
	"testing"

	"github.com/automoto/tileplat/components"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/shared/leveldata"
	"github.com/automoto/tileplat/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJump(t *testing.T) {
	t.Run("ground jump spends the jump", func(t *testing.T) {
		p := &components.PlayerData{Jumps: 1}
		b := &components.BodyData{}

		require.True(t, Jump(p, b))
		assert.Equal(t, -cfg.Player.JumpSpeed, b.Vel.Y)
		assert.Zero(t, p.Jumps)

		b.Vel.Y = 0
		assert.False(t, Jump(p, b))
		assert.Zero(t, b.Vel.Y)
	})

	t.Run("wall jump kicks away from the wall", func(t *testing.T) {
		for _, side := range []int{-1, 1} {
			p := &components.PlayerData{WallSlide: true, WallSide: side}
			b := &components.BodyData{}

			require.True(t, Jump(p, b))
			assert.Equal(t, -cfg.Player.WallJumpSpeedX*float64(side), b.Vel.X)
			assert.Equal(t, -cfg.Player.WallJumpSpeedY, b.Vel.Y)
			assert.Zero(t, p.Jumps, "jumps never go negative")
		}
	})
}

func TestDashOnlyFromRest(t *testing.T) {
	p := &components.PlayerData{}
	require.True(t, Dash(p))
	assert.Equal(t, cfg.Player.DashDuration, p.DashTimer)

	p.DashTimer = 30
	assert.False(t, Dash(p))
	assert.Equal(t, 30, p.DashTimer)
}

func TestDashSequence(t *testing.T) {
	g := tilemap.New(16)
	g.Set(tilemap.Cell{X: 0, Y: 0}, leveldata.KindSpawner, 0)
	floorRow(g, -4, 40, 1)
	w := newTestWorld(t, g)
	_, p, b := playerOf(t, w)

	require.True(t, Dash(p))

	total := 0
	for tick := 1; tick <= cfg.Player.DashDuration; tick++ {
		particles, _, _ := countRequests(UpdatePlayer(w))
		total += particles

		switch tick {
		case 1:
			assert.Equal(t, 21, particles, "opening burst plus a trail particle")
			assert.True(t, p.IsDashing())
			assert.InDelta(t, cfg.Player.DashSpeed-cfg.Physics.Friction, b.Vel.X, 1e-9)
		case 9:
			assert.True(t, p.IsDashing())
			assert.InDelta(t, 0.7, b.Vel.X, 1e-9)
		case 10:
			assert.False(t, p.IsDashing())
			assert.Zero(t, particles)
		case 11:
			assert.Equal(t, 20, particles)
		}
	}

	assert.Equal(t, 49, total)
	assert.Zero(t, p.DashTimer)
}

func TestFreeFallKillsPlayer(t *testing.T) {
	g := tilemap.New(16)
	g.Set(tilemap.Cell{X: 0, Y: 0}, leveldata.KindSpawner, 0)
	w := newTestWorld(t, g)
	_, p, _ := playerOf(t, w)

	for i := 0; i < cfg.Player.FallDeathTicks; i++ {
		UpdatePlayer(w)
	}
	assert.False(t, p.Dead)

	UpdatePlayer(w)
	assert.True(t, p.Dead)
}

func TestWallSlide(t *testing.T) {
	g := tilemap.New(16)
	g.Set(tilemap.Cell{X: 0, Y: 0}, leveldata.KindSpawner, 0)
	for y := -3; y <= 3; y++ {
		g.Set(tilemap.Cell{X: 1, Y: y}, leveldata.KindStone, 0)
	}
	w := newTestWorld(t, g)
	e, p, b := playerOf(t, w)
	setInput(w, components.InputData{Right: true})

	for i := 0; i < 9; i++ {
		UpdatePlayer(w)
	}

	assert.Equal(t, 8.0, b.Pos.X)
	assert.True(t, b.Collisions.Right)
	assert.True(t, p.WallSlide)
	assert.Equal(t, 1, p.WallSide)
	assert.True(t, b.Flip, "faces away from the wall")
	assert.LessOrEqual(t, b.Vel.Y, cfg.Player.WallSlideMaxFall)
	assert.Equal(t, cfg.ActionWallSlide, components.Animation.Get(e).Action)

	require.True(t, Jump(p, b))
	assert.Equal(t, -cfg.Player.WallJumpSpeedX, b.Vel.X)
}

func TestPlayerActions(t *testing.T) {
	g := tilemap.New(16)
	g.Set(tilemap.Cell{X: 0, Y: 0}, leveldata.KindSpawner, 0)
	floorRow(g, -4, 40, 1)
	w := newTestWorld(t, g)
	e, p, b := playerOf(t, w)
	anim := components.Animation.Get(e)

	for i := 0; i < 10; i++ {
		UpdatePlayer(w)
	}
	assert.Equal(t, 1.0, b.Pos.Y)
	assert.Equal(t, gamemath.Vec2{}, b.Vel)
	assert.Zero(t, p.AirTime)
	assert.Equal(t, cfg.ActionIdle, anim.Action)
	assert.Equal(t, 1, p.Jumps)

	setInput(w, components.InputData{Right: true})
	UpdatePlayer(w)
	assert.Equal(t, cfg.ActionRun, anim.Action)

	setInput(w, components.InputData{})
	b.Vel.X = 1
	UpdatePlayer(w)
	assert.InDelta(t, 0.9, b.Vel.X, 1e-9)
}

func TestGroundJumpAndLanding(t *testing.T) {
	g := tilemap.New(16)
	g.Set(tilemap.Cell{X: 0, Y: 0}, leveldata.KindSpawner, 0)
	floorRow(g, -4, 40, 1)
	w := newTestWorld(t, g)
	e, p, b := playerOf(t, w)
	anim := components.Animation.Get(e)

	for i := 0; i < 10; i++ {
		UpdatePlayer(w)
	}
	require.True(t, b.Collisions.Down)
	groundY := b.Pos.Y

	setInput(w, components.InputData{Jump: true})
	ApplyInput(w)
	setInput(w, components.InputData{})
	assert.Equal(t, -cfg.Player.JumpSpeed, b.Vel.Y)
	assert.Zero(t, p.Jumps)

	landed := 0
	for tick := 1; tick <= cfg.Player.FallDeathTicks; tick++ {
		UpdatePlayer(w)
		if p.AirTime == cfg.Player.AirborneTicks+1 {
			assert.Equal(t, cfg.ActionJump, anim.Action, "tick %d", tick)
			assert.Zero(t, p.Jumps)
			assert.Less(t, b.Pos.Y, groundY)
		}
		if b.Collisions.Down {
			landed = tick
			break
		}
	}

	require.NotZero(t, landed, "player never landed")
	assert.Greater(t, landed, cfg.Player.AirborneTicks+1)
	assert.Equal(t, 1, p.Jumps, "landing tick restores the jump")
	assert.Zero(t, p.AirTime)
	assert.Equal(t, groundY, b.Pos.Y)
	assert.False(t, p.Dead)
}

func TestApplyInputFiresEdges(t *testing.T) {
	g := tilemap.New(16)
	g.Set(tilemap.Cell{X: 0, Y: 0}, leveldata.KindSpawner, 0)
	w := newTestWorld(t, g)
	_, p, b := playerOf(t, w)

	setInput(w, components.InputData{Jump: true, Dash: true})
	ApplyInput(w)

	assert.Equal(t, -cfg.Player.JumpSpeed, b.Vel.Y)
	assert.Equal(t, cfg.Player.DashDuration, p.DashTimer)
}

func TestSetPositionClearsFall(t *testing.T) {
	g := tilemap.New(16)
	w := newTestWorld(t, g)
	_, p, b := playerOf(t, w)
	p.AirTime = 200
	p.Dead = true

	SetPosition(w, b.Pos)
	assert.Zero(t, p.AirTime)
	assert.False(t, p.Dead)
}

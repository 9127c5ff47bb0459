package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/tileplat/components"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/tags"
	"github.com/yohamta/donburi"
)

type playerIntent struct {
	player *components.PlayerData
	input  components.InputData
	rng    *rand.Rand
}

func (i *playerIntent) Movement(*Mover) gamemath.Vec2 {
	return gamemath.Vec2{X: i.input.MoveX()}
}

func (i *playerIntent) React(m *Mover, movement gamemath.Vec2) []components.SpawnRequest {
	p, b := i.player, m.Body
	p.Moving = movement.X != 0

	p.AirTime++
	if p.AirTime > cfg.Player.FallDeathTicks {
		p.Dead = true
	}
	if b.Collisions.Down {
		p.AirTime = 0
		p.Jumps = cfg.Player.MaxJumps
	}

	p.WallSlide = false
	p.WallSide = 0
	airborne := p.AirTime > cfg.Player.AirborneTicks
	switch {
	case airborne && b.Collisions.Horizontal():
		p.WallSlide = true
		if b.Collisions.Right {
			p.WallSide = 1
		} else {
			p.WallSide = -1
		}
		// face away from the wall
		b.Flip = p.WallSide > 0
		b.Vel.Y = math.Min(b.Vel.Y, cfg.Player.WallSlideMaxFall)
		m.Anim.SetAction(cfg.ActionWallSlide)
	case airborne:
		m.Anim.SetAction(cfg.ActionJump)
	case p.Moving:
		m.Anim.SetAction(cfg.ActionRun)
	default:
		m.Anim.SetAction(cfg.ActionIdle)
	}

	reqs := i.dash(b)

	b.Vel.X = gamemath.ApplyFriction(b.Vel.X, cfg.Physics.Friction)

	return reqs
}

// dash runs one tick of the dash countdown.
func (i *playerIntent) dash(b *components.BodyData) []components.SpawnRequest {
	p := i.player
	if p.DashTimer == 0 {
		return nil
	}

	var reqs []components.SpawnRequest
	center := b.Center()
	if p.DashTimer == cfg.Player.DashDuration || p.DashTimer == cfg.Player.DashActiveThreshold {
		for n := 0; n < cfg.Player.DashBurstCount; n++ {
			angle := i.rng.Float64() * 2 * math.Pi
			speed := i.rng.Float64()*cfg.Player.DashBurstSpeedRange + cfg.Player.DashBurstMinSpeed
			reqs = append(reqs, components.SpawnParticle{
				Kind:   cfg.ParticleBurst,
				Pos:    center,
				Vel:    gamemath.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
				Cursor: i.rng.Intn(cfg.Player.DashParticleFrames),
			})
		}
	}

	p.DashTimer--

	if p.IsDashing() {
		dir := b.Dir()
		b.Vel.X = cfg.Player.DashSpeed * dir
		if p.DashTimer == cfg.Player.DashActiveThreshold+1 {
			b.Vel.X *= cfg.Player.DashHandoff
		}
		reqs = append(reqs, components.SpawnParticle{
			Kind:   cfg.ParticleBurst,
			Pos:    center,
			Vel:    gamemath.Vec2{X: i.rng.Float64() * cfg.Player.DashTrailSpeed * dir},
			Cursor: i.rng.Intn(cfg.Player.DashParticleFrames),
		})
	}
	return reqs
}

// Jump kicks off a wall while sliding, otherwise spends a jump. It reports
// whether anything happened.
func Jump(p *components.PlayerData, b *components.BodyData) bool {
	if p.WallSlide {
		b.Vel.X = -cfg.Player.WallJumpSpeedX * float64(p.WallSide)
		b.Vel.Y = -cfg.Player.WallJumpSpeedY
		if p.Jumps > 0 {
			p.Jumps--
		}
		return true
	}
	if p.Jumps > 0 {
		b.Vel.Y = -cfg.Player.JumpSpeed
		p.Jumps--
		return true
	}
	return false
}

// Dash starts a dash unless one is still counting down.
func Dash(p *components.PlayerData) bool {
	if p.DashTimer != 0 {
		return false
	}
	p.DashTimer = cfg.Player.DashDuration
	return true
}

// SetPosition teleports the player and clears the free-fall state.
func SetPosition(w donburi.World, pos gamemath.Vec2) {
	e, ok := tags.Player.First(w)
	if !ok {
		return
	}
	b := components.Body.Get(e)
	b.Pos = pos
	b.Vel = gamemath.Vec2{}
	p := components.Player.Get(e)
	p.AirTime = 0
	p.Dead = false
	syncObject(w, e, pos)
}

// ApplyInput fires the edge-triggered actions held in the level's input.
func ApplyInput(w donburi.World) {
	_, levelEntry, ok := levelOf(w)
	if !ok {
		return
	}
	e, ok := tags.Player.First(w)
	if !ok {
		return
	}
	in := components.Input.Get(levelEntry)
	p, b := components.Player.Get(e), components.Body.Get(e)
	if in.Jump {
		Jump(p, b)
	}
	if in.Dash {
		Dash(p)
	}
}

// UpdatePlayer steps the player and returns the effects it spawned.
func UpdatePlayer(w donburi.World) []components.SpawnRequest {
	level, levelEntry, ok := levelOf(w)
	if !ok {
		return nil
	}
	e, ok := tags.Player.First(w)
	if !ok {
		return nil
	}

	intent := &playerIntent{
		player: components.Player.Get(e),
		input:  *components.Input.Get(levelEntry),
		rng:    components.Random.Get(levelEntry).Rand,
	}
	reqs := Step(moverOf(e), level.Grid, intent)
	syncObject(w, e, components.Body.Get(e).Pos)
	return reqs
}

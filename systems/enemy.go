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

type enemyIntent struct {
	enemy  *components.EnemyData
	grid   SolidQuery
	target *gamemath.Vec2 // player position, nil without a player
	rng    *rand.Rand

	pending []components.SpawnRequest
}

func (i *enemyIntent) Movement(m *Mover) gamemath.Vec2 {
	e, b := i.enemy, m.Body
	if !e.Patrolling() {
		if i.rng.Float64() < cfg.Enemy.PatrolChance {
			e.PatrolTimer = cfg.Enemy.PatrolMinTicks + i.rng.Intn(cfg.Enemy.PatrolMaxTicks-cfg.Enemy.PatrolMinTicks+1)
		}
		return gamemath.Vec2{}
	}

	var movement gamemath.Vec2
	dir := b.Dir()
	center := b.Center()
	aheadX := center.X + dir*cfg.Enemy.ProbeAhead
	ground := i.grid.IsSolidAt(gamemath.Vec2{X: aheadX, Y: center.Y + cfg.Enemy.ProbeBelow})
	// walls are checked at the feet so a knee-high block still turns it
	wall := i.grid.IsSolidAt(gamemath.Vec2{X: aheadX, Y: b.Pos.Y + b.H - 1})
	if ground && !wall {
		movement.X = dir * cfg.Enemy.PatrolSpeed
	} else {
		b.Flip = !b.Flip
	}

	e.PatrolTimer--
	if e.PatrolTimer == 0 {
		i.pending = append(i.pending, i.shoot(b)...)
	}
	return movement
}

// shoot fires at the player when it is level with the enemy and in front.
func (i *enemyIntent) shoot(b *components.BodyData) []components.SpawnRequest {
	if i.target == nil {
		return nil
	}
	dx := i.target.X - b.Pos.X
	dy := i.target.Y - b.Pos.Y
	if math.Abs(dy) >= cfg.Enemy.ShotBand {
		return nil
	}
	if (b.Flip && dx >= 0) || (!b.Flip && dx <= 0) {
		return nil
	}

	dir := b.Dir()
	center := b.Center()
	muzzle := gamemath.Vec2{X: center.X + dir*cfg.Enemy.MuzzleOffset, Y: center.Y}
	speed := dir * cfg.Enemy.ProjectileSpeed

	reqs := []components.SpawnRequest{
		components.SpawnProjectile{Pos: muzzle, Speed: speed},
	}
	// sparks kick back against the shot
	back := 0.0
	if speed > 0 {
		back = math.Pi
	}
	return append(reqs, sparkFan(i.rng, muzzle, back, cfg.Enemy.MuzzleSparks)...)
}

func (i *enemyIntent) React(m *Mover, movement gamemath.Vec2) []components.SpawnRequest {
	if movement.X != 0 {
		m.Anim.SetAction(cfg.ActionRun)
	} else {
		m.Anim.SetAction(cfg.ActionIdle)
	}
	return i.pending
}

// Enemies snapshots the live enemies in creation order.
func Enemies(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// UpdateEnemy steps one enemy. The player's position is only read.
func UpdateEnemy(w donburi.World, e *donburi.Entry) []components.SpawnRequest {
	if !e.Valid() {
		return nil
	}
	level, levelEntry, ok := levelOf(w)
	if !ok {
		return nil
	}

	intent := &enemyIntent{
		enemy: components.Enemy.Get(e),
		grid:  level.Grid,
		rng:   components.Random.Get(levelEntry).Rand,
	}
	if player, ok := tags.Player.First(w); ok {
		pos := components.Body.Get(player).Pos
		intent.target = &pos
	}

	reqs := Step(moverOf(e), level.Grid, intent)
	syncObject(w, e, components.Body.Get(e).Pos)
	return reqs
}

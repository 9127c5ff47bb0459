package systems

import (
	"math"

	"github.com/automoto/tileplat/components"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/systems/factory"
	"github.com/automoto/tileplat/tags"
	"github.com/yohamta/donburi"
)

// UpdateProjectiles advances projectiles. A projectile stops at the first
// solid tile, expires with age, and kills a player that is not dashing.
// It reports whether the player was hit.
func UpdateProjectiles(w donburi.World) bool {
	level, levelEntry, ok := levelOf(w)
	if !ok {
		return false
	}
	rng := components.Random.Get(levelEntry).Rand

	hit := false
	for _, e := range snapshot(w, tags.Projectile) {
		p := components.Projectile.Get(e)
		p.Pos.X += p.Speed
		p.Age++
		syncObject(w, e, p.Pos)

		switch {
		case level.Grid.IsSolidAt(p.Pos):
			back := 0.0
			if p.Speed > 0 {
				back = math.Pi
			}
			reqs := sparkFan(rng, p.Pos, back, cfg.Effects.ImpactSparks)
			factory.Destroy(w, e)
			factory.Apply(w, reqs)
		case p.Age > cfg.Effects.ProjectileMaxAge:
			factory.Destroy(w, e)
		default:
			if player := projectileTarget(e); player != nil {
				components.Player.Get(player).Dead = true
				center := components.Body.Get(player).Center()
				factory.Destroy(w, e)
				factory.Apply(w, Burst(rng, center))
				hit = true
			}
		}
	}
	return hit
}

// projectileTarget returns the player the projectile is inside of, unless
// the player is dashing through it.
func projectileTarget(e *donburi.Entry) *donburi.Entry {
	obj := components.Object.Get(e)
	check := obj.Check(0, 0, tags.ResolvPlayer)
	if check == nil {
		return nil
	}
	pos := components.Projectile.Get(e).Pos
	for _, o := range check.ObjectsByTags(tags.ResolvPlayer) {
		player, ok := o.Data.(*donburi.Entry)
		if !ok || !player.Valid() {
			continue
		}
		if components.Player.Get(player).IsDashing() {
			continue
		}
		if components.Body.Get(player).Rect().Contains(pos) {
			return player
		}
	}
	return nil
}

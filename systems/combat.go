package systems

import (
	"github.com/automoto/tileplat/components"
	"github.com/automoto/tileplat/systems/factory"
	"github.com/automoto/tileplat/tags"
	"github.com/yohamta/donburi"
)

// DashKill removes the enemy if a dashing player is touching it and blows
// it up. It reports whether the enemy died.
func DashKill(w donburi.World, enemy *donburi.Entry) bool {
	if !enemy.Valid() {
		return false
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok || !components.Player.Get(playerEntry).IsDashing() {
		return false
	}
	_, levelEntry, ok := levelOf(w)
	if !ok {
		return false
	}

	obj := components.Object.Get(playerEntry)
	check := obj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return false
	}

	playerBox := components.Body.Get(playerEntry).Rect()
	for _, o := range check.ObjectsByTags(tags.ResolvEnemy) {
		candidate, ok := o.Data.(*donburi.Entry)
		if !ok || candidate != enemy {
			continue
		}
		body := components.Body.Get(enemy)
		if !playerBox.Overlaps(body.Rect()) {
			return false
		}
		center := body.Center()
		factory.Destroy(w, enemy)
		factory.Apply(w, Explosion(components.Random.Get(levelEntry).Rand, center))
		return true
	}
	return false
}

package factory

import (
	"github.com/automoto/tileplat/archetypes"
	"github.com/automoto/tileplat/components"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/tags"
	"github.com/yohamta/donburi"
)

func CreateEnemy(w donburi.World, pos gamemath.Vec2) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	components.Body.SetValue(enemy, components.BodyData{
		Pos: pos,
		W:   cfg.Enemy.Width,
		H:   cfg.Enemy.Height,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{})
	components.Animation.SetValue(enemy, components.NewAnimationData(cfg.SpriteEnemy))
	addObject(w, enemy, pos, cfg.Enemy.Width, cfg.Enemy.Height, tags.ResolvEnemy)

	return enemy
}

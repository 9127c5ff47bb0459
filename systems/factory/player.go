package factory

import (
	"github.com/automoto/tileplat/archetypes"
	"github.com/automoto/tileplat/components"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/tags"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, pos gamemath.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Body.SetValue(player, components.BodyData{
		Pos: pos,
		W:   cfg.Player.Width,
		H:   cfg.Player.Height,
	})
	components.Player.SetValue(player, components.PlayerData{
		Jumps: cfg.Player.MaxJumps,
	})
	components.Animation.SetValue(player, components.NewAnimationData(cfg.SpritePlayer))
	addObject(w, player, pos, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)

	return player
}

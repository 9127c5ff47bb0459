package systems

import (
	"math"

	"github.com/automoto/tileplat/components"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/tags"
	"github.com/automoto/tileplat/tilemap"
	"github.com/yohamta/donburi"
)

// Anchor says which point of the image X and Y refer to.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorCenter
	AnchorTopRight
)

// DrawCommand is one thing to draw, already in screen space. Sparks carry
// a polygon instead of a sprite.
type DrawCommand struct {
	Sprite  cfg.SpriteKey
	Frame   int
	FlipX   bool
	X, Y    float64
	Anchor  Anchor
	Polygon []gamemath.Vec2
}

// DrawList lists what to draw this frame, back to front.
func DrawList(w donburi.World, camera gamemath.Vec2) []DrawCommand {
	var cmds []DrawCommand

	if level, _, ok := levelOf(w); ok {
		cmds = appendTiles(cmds, level, camera)
	}

	for _, e := range Enemies(w) {
		b, anim := components.Body.Get(e), components.Animation.Get(e)
		cmds = append(cmds, entityCommand(b, anim, camera))

		center := b.Center()
		gun := DrawCommand{
			Sprite: cfg.SpriteKey{Category: cfg.SpriteGun},
			FlipX:  b.Flip,
			X:      center.X + cfg.Enemy.GunOffset - camera.X,
			Y:      center.Y - camera.Y,
		}
		if b.Flip {
			gun.X = center.X - cfg.Enemy.GunOffset - camera.X
			gun.Anchor = AnchorTopRight
		}
		cmds = append(cmds, gun)
	}

	if e, ok := tags.Player.First(w); ok && !components.Player.Get(e).IsDashing() {
		cmds = append(cmds, entityCommand(components.Body.Get(e), components.Animation.Get(e), camera))
	}

	for _, e := range snapshot(w, tags.Projectile) {
		p := components.Projectile.Get(e)
		cmds = append(cmds, DrawCommand{
			Sprite: cfg.SpriteKey{Category: cfg.SpriteProjectile},
			X:      p.Pos.X - camera.X,
			Y:      p.Pos.Y - camera.Y,
			Anchor: AnchorCenter,
		})
	}

	for _, e := range snapshot(w, tags.Spark) {
		s := components.Spark.Get(e)
		cmds = append(cmds, DrawCommand{
			Sprite:  cfg.SpriteKey{Category: cfg.SpriteSpark},
			X:       s.Pos.X - camera.X,
			Y:       s.Pos.Y - camera.Y,
			Polygon: SparkPolygon(s, camera),
		})
	}

	for _, e := range snapshot(w, tags.Particle) {
		p := components.Particle.Get(e)
		cmds = append(cmds, DrawCommand{
			Sprite: cfg.SpriteKey{Category: cfg.SpriteParticle, Index: int(p.Kind)},
			Frame:  p.Anim.Frame(),
			X:      p.Pos.X - camera.X,
			Y:      p.Pos.Y - camera.Y,
			Anchor: AnchorCenter,
		})
	}

	return cmds
}

func appendTiles(cmds []DrawCommand, level *components.LevelData, camera gamemath.Vec2) []DrawCommand {
	for _, t := range level.Grid.OffGrid() {
		cmds = append(cmds, DrawCommand{
			Sprite: cfg.SpriteKey{Category: cfg.TileSprite(t.Kind), Index: t.Variant},
			X:      t.Pos.X - camera.X,
			Y:      t.Pos.Y - camera.Y,
		})
	}
	ts := float64(level.Grid.TileSize())
	level.Grid.Each(func(_ tilemap.Cell, t tilemap.Tile) {
		cmds = append(cmds, DrawCommand{
			Sprite: cfg.SpriteKey{Category: cfg.TileSprite(t.Kind), Index: t.Variant},
			X:      t.Pos.X*ts - camera.X,
			Y:      t.Pos.Y*ts - camera.Y,
		})
	})
	return cmds
}

func entityCommand(b *components.BodyData, anim *components.AnimationData, camera gamemath.Vec2) DrawCommand {
	return DrawCommand{
		Sprite: anim.Sprite(),
		Frame:  anim.Current.Frame(),
		FlipX:  b.Flip,
		X:      b.Pos.X + cfg.Player.SpriteOffsetX - camera.X,
		Y:      b.Pos.Y + cfg.Player.SpriteOffsetY - camera.Y,
	}
}

// SparkPolygon is the diamond a spark is drawn as: long along its heading,
// thin across it, scaled by speed.
func SparkPolygon(s *components.SparkData, camera gamemath.Vec2) []gamemath.Vec2 {
	point := func(rot, length float64) gamemath.Vec2 {
		return gamemath.Vec2{
			X: s.Pos.X + math.Cos(s.Angle+rot)*s.Speed*length - camera.X,
			Y: s.Pos.Y + math.Sin(s.Angle+rot)*s.Speed*length - camera.Y,
		}
	}
	return []gamemath.Vec2{
		point(0, 3),
		point(math.Pi/2, 0.5),
		point(math.Pi, 3),
		point(-math.Pi/2, 0.5),
	}
}

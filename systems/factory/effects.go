package factory

import (
	"github.com/automoto/tileplat/archetypes"
	"github.com/automoto/tileplat/assets/animations"
	"github.com/automoto/tileplat/components"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/tags"
	"github.com/yohamta/donburi"
)

// projectileSize is the box registered in the actor space for a projectile.
const projectileSize = 1

func CreateParticle(w donburi.World, kind cfg.ParticleKind, pos, vel gamemath.Vec2, cursor int) *donburi.Entry {
	def := cfg.ParticleAnimations[kind]
	anim := animations.NewAnimation(def.Frames, def.Duration, def.Loop)
	anim.Seek(cursor)

	particle := archetypes.Particle.Spawn(w)
	components.Particle.SetValue(particle, components.ParticleData{
		Kind: kind,
		Pos:  pos,
		Vel:  vel,
		Anim: anim,
	})
	return particle
}

func CreateSpark(w donburi.World, pos gamemath.Vec2, angle, speed float64) *donburi.Entry {
	spark := archetypes.Spark.Spawn(w)
	components.Spark.SetValue(spark, components.SparkData{
		Pos:   pos,
		Angle: angle,
		Speed: speed,
	})
	return spark
}

func CreateProjectile(w donburi.World, pos gamemath.Vec2, speed float64) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(w)
	components.Projectile.SetValue(projectile, components.ProjectileData{
		Pos:   pos,
		Speed: speed,
	})
	addObject(w, projectile, pos, projectileSize, projectileSize, tags.ResolvProjectile)
	return projectile
}

// Apply creates the entities asked for by spawn requests, in order.
func Apply(w donburi.World, reqs []components.SpawnRequest) {
	for _, req := range reqs {
		switch r := req.(type) {
		case components.SpawnParticle:
			CreateParticle(w, r.Kind, r.Pos, r.Vel, r.Cursor)
		case components.SpawnSpark:
			CreateSpark(w, r.Pos, r.Angle, r.Speed)
		case components.SpawnProjectile:
			CreateProjectile(w, r.Pos, r.Speed)
		}
	}
}

package systems

import (
	"math"

	"github.com/automoto/tileplat/components"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/systems/factory"
	"github.com/automoto/tileplat/tags"
	"github.com/yohamta/donburi"
)

func snapshot(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) []*donburi.Entry {
	var out []*donburi.Entry
	tag.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// UpdateParticles drifts every particle and drops the ones whose animation
// has finished.
func UpdateParticles(w donburi.World) {
	for _, e := range snapshot(w, tags.Particle) {
		p := components.Particle.Get(e)
		p.Pos.X += p.Vel.X
		p.Pos.Y += p.Vel.Y
		p.Anim.Update()
		if p.Kind == cfg.ParticleLeaf {
			p.Pos.X += math.Sin(float64(p.Anim.Cursor())*cfg.Effects.LeafWobbleFreq) * cfg.Effects.LeafWobbleAmp
		}
		if p.Anim.Done() {
			factory.Destroy(w, e)
		}
	}
}

// SpawnLeaves gives every tree one chance per tick to drop a leaf. Bigger
// regions drop more often.
func SpawnLeaves(w donburi.World) {
	level, levelEntry, ok := levelOf(w)
	if !ok {
		return
	}
	rng := components.Random.Get(levelEntry).Rand
	for _, r := range level.LeafSpawners {
		if rng.Float64()*cfg.Effects.LeafChanceDivisor >= r.Area() {
			continue
		}
		pos := gamemath.Vec2{
			X: r.X + rng.Float64()*r.W,
			Y: r.Y + rng.Float64()*r.H,
		}
		factory.CreateParticle(w, cfg.ParticleLeaf, pos, gamemath.Vec2{
			X: cfg.Effects.LeafVelocityX,
			Y: cfg.Effects.LeafVelocityY,
		}, 0)
	}
}

// UpdateSparks moves sparks along their heading and slows them until they
// stop.
func UpdateSparks(w donburi.World) {
	for _, e := range snapshot(w, tags.Spark) {
		s := components.Spark.Get(e)
		s.Pos.X += math.Cos(s.Angle) * s.Speed
		s.Pos.Y += math.Sin(s.Angle) * s.Speed
		s.Speed = math.Max(0, s.Speed-cfg.Effects.SparkDecay)
		if s.Speed == 0 {
			factory.Destroy(w, e)
		}
	}
}

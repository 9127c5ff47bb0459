package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/tileplat/components"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/gamemath"
)

// sparkFan emits n sparks within half a radian of base.
func sparkFan(rng *rand.Rand, pos gamemath.Vec2, base float64, n int) []components.SpawnRequest {
	reqs := make([]components.SpawnRequest, 0, n)
	for k := 0; k < n; k++ {
		reqs = append(reqs, components.SpawnSpark{
			Pos:   pos,
			Angle: rng.Float64() - 0.5 + base,
			Speed: cfg.Effects.SparkBaseSpeed + rng.Float64(),
		})
	}
	return reqs
}

// Burst is the radial spray left by a hit: sparks flying out and particles
// drifting the opposite way.
func Burst(rng *rand.Rand, center gamemath.Vec2) []components.SpawnRequest {
	reqs := make([]components.SpawnRequest, 0, 2*cfg.Effects.ExplosionCount+2)
	for k := 0; k < cfg.Effects.ExplosionCount; k++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := rng.Float64() * cfg.Effects.ExplosionSpeed
		reqs = append(reqs,
			components.SpawnSpark{
				Pos:   center,
				Angle: angle,
				Speed: cfg.Effects.SparkBaseSpeed + rng.Float64(),
			},
			components.SpawnParticle{
				Kind: cfg.ParticleBurst,
				Pos:  center,
				Vel: gamemath.Vec2{
					X: math.Cos(angle+math.Pi) * speed * 0.5,
					Y: math.Sin(angle+math.Pi) * speed * 0.5,
				},
				Cursor: rng.Intn(cfg.Effects.ExplosionFrames),
			},
		)
	}
	return reqs
}

// Explosion is a Burst plus two strong horizontal streaks.
func Explosion(rng *rand.Rand, center gamemath.Vec2) []components.SpawnRequest {
	return append(Burst(rng, center),
		components.SpawnSpark{Pos: center, Angle: 0, Speed: cfg.Effects.StreakBaseSpeed + rng.Float64()},
		components.SpawnSpark{Pos: center, Angle: math.Pi, Speed: cfg.Effects.StreakBaseSpeed + rng.Float64()},
	)
}

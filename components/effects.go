package components

import (
	"github.com/automoto/tileplat/assets/animations"
	"github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ParticleData is a short one-shot animation drifting at a fixed velocity.
type ParticleData struct {
	Kind config.ParticleKind
	Pos  gamemath.Vec2
	Vel  gamemath.Vec2
	Anim animations.Animation
}

var Particle = donburi.NewComponentType[ParticleData]()

// SparkData is a streak that slows down until it disappears.
type SparkData struct {
	Pos   gamemath.Vec2
	Angle float64
	Speed float64
}

var Spark = donburi.NewComponentType[SparkData]()

// ProjectileData travels horizontally at Speed pixels per tick.
type ProjectileData struct {
	Pos   gamemath.Vec2
	Speed float64
	Age   int
}

var Projectile = donburi.NewComponentType[ProjectileData]()

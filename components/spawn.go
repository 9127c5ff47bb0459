package components

import (
	"github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/gamemath"
)

// SpawnRequest is an effect a system asks for during its update. Requests
// are applied by the caller once the update returns.
type SpawnRequest interface {
	spawnRequest()
}

type SpawnParticle struct {
	Kind   config.ParticleKind
	Pos    gamemath.Vec2
	Vel    gamemath.Vec2
	Cursor int
}

type SpawnSpark struct {
	Pos   gamemath.Vec2
	Angle float64
	Speed float64
}

type SpawnProjectile struct {
	Pos   gamemath.Vec2
	Speed float64
}

func (SpawnParticle) spawnRequest()   {}
func (SpawnSpark) spawnRequest()      {}
func (SpawnProjectile) spawnRequest() {}

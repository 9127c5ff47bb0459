package simulation

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"

	"github.com/automoto/tileplat/components"
	"github.com/automoto/tileplat/tags"
	"github.com/yohamta/donburi"
)

type hasher struct {
	h   hash.Hash64
	buf [8]byte
}

func (h *hasher) int(v int) {
	binary.LittleEndian.PutUint64(h.buf[:], uint64(int64(v)))
	h.h.Write(h.buf[:])
}

func (h *hasher) float(v float64) {
	binary.LittleEndian.PutUint64(h.buf[:], math.Float64bits(v))
	h.h.Write(h.buf[:])
}

func (h *hasher) bool(v bool) {
	if v {
		h.int(1)
	} else {
		h.int(0)
	}
}

func (h *hasher) body(b *components.BodyData) {
	h.float(b.Pos.X)
	h.float(b.Pos.Y)
	h.float(b.Vel.X)
	h.float(b.Vel.Y)
	h.bool(b.Flip)
}

// Hash fingerprints the simulation state: tick, player, then every enemy,
// particle, spark and projectile in world order. Runs that diverge in any
// of them hash differently.
func (s *Simulation) Hash() uint64 {
	h := &hasher{h: fnv.New64a()}
	h.int(s.tick)
	h.int(s.resets)

	if e, ok := tags.Player.First(s.world); ok {
		h.body(components.Body.Get(e))
		p := components.Player.Get(e)
		h.int(p.AirTime)
		h.int(p.Jumps)
		h.int(p.DashTimer)
		h.bool(p.WallSlide)
		h.int(int(components.Animation.Get(e).Action))
	}

	tags.Enemy.Each(s.world, func(e *donburi.Entry) {
		h.body(components.Body.Get(e))
		h.int(components.Enemy.Get(e).PatrolTimer)
	})
	tags.Particle.Each(s.world, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		h.int(int(p.Kind))
		h.float(p.Pos.X)
		h.float(p.Pos.Y)
		h.int(p.Anim.Cursor())
	})
	tags.Spark.Each(s.world, func(e *donburi.Entry) {
		sp := components.Spark.Get(e)
		h.float(sp.Pos.X)
		h.float(sp.Pos.Y)
		h.float(sp.Speed)
	})
	tags.Projectile.Each(s.world, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		h.float(p.Pos.X)
		h.float(p.Pos.Y)
		h.int(p.Age)
	})

	return h.h.Sum64()
}

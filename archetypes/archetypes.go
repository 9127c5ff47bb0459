package archetypes

import (
	"github.com/automoto/tileplat/components"
	"github.com/automoto/tileplat/tags"
	"github.com/yohamta/donburi"
)

var (
	Level = newArchetype(
		components.Level,
		components.Input,
		components.Random,
		components.Camera,
	)
	Space = newArchetype(
		components.Space,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Animation,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Animation,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Spark = newArchetype(
		tags.Spark,
		components.Spark,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}

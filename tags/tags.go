package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Particle   = donburi.NewTag().SetName("Particle")
	Spark      = donburi.NewTag().SetName("Spark")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for the actor broad-phase
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
)

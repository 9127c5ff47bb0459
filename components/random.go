package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RandomData is the simulation's only source of randomness. Seeding it
// makes a run reproducible.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()

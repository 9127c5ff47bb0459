package simulation

import (
	"fmt"
	"math/rand"
)

// Script produces the input for a tick of a headless run.
type Script func(tick int) Input

// ScriptNames lists the scripts NewScript knows.
var ScriptNames = []string{"idle", "run", "hop", "random"}

// NewScript builds a named input script. random is seeded so runs repeat.
func NewScript(name string, seed int64) (Script, error) {
	switch name {
	case "idle":
		return func(int) Input { return Input{} }, nil
	case "run":
		return func(int) Input { return Input{Right: true} }, nil
	case "hop":
		// Run right, jumping every second and dashing every three.
		return func(tick int) Input {
			return Input{
				Right: true,
				Jump:  tick%60 == 0,
				Dash:  tick%180 == 90,
			}
		}, nil
	case "random":
		rng := rand.New(rand.NewSource(seed))
		var left, right bool
		return func(tick int) Input {
			if tick%30 == 0 {
				left, right = false, false
				switch rng.Intn(3) {
				case 0:
					left = true
				case 1:
					right = true
				}
			}
			return Input{
				Left:  left,
				Right: right,
				Jump:  rng.Intn(40) == 0,
				Dash:  rng.Intn(120) == 0,
			}
		}, nil
	}
	return nil, fmt.Errorf("unknown script %q (want one of %v)", name, ScriptNames)
}

package components

import "github.com/yohamta/donburi"

// InputData is the input for one tick. Left and Right are held state; Jump
// and Dash are edges that fire once per key press.
type InputData struct {
	Left, Right bool
	Jump, Dash  bool
}

// MoveX is the horizontal movement requested by held keys.
func (i InputData) MoveX() float64 {
	var x float64
	if i.Right {
		x++
	}
	if i.Left {
		x--
	}
	return x
}

var Input = donburi.NewComponentType[InputData]()

package gamemath

// Sides records which edges of a moving box were blocked during a step.
type Sides struct {
	Up, Down, Left, Right bool
}

// Horizontal reports whether the box was blocked on its left or right edge.
func (s Sides) Horizontal() bool {
	return s.Left || s.Right
}

// Vertical reports whether the box landed or hit a ceiling.
func (s Sides) Vertical() bool {
	return s.Up || s.Down
}

// ResolveX moves box horizontally by dx and pushes it out of every
// overlapping solid. The flag set matches the sign of dx; with dx == 0
// the box is left in place and no flag is raised.
func ResolveX(box Rect, dx float64, solids []Rect) (Rect, Sides) {
	var sides Sides
	box.X += dx
	for _, s := range solids {
		if !box.Overlaps(s) {
			continue
		}
		switch {
		case dx > 0:
			box.X = s.Left() - box.W
			sides.Right = true
		case dx < 0:
			box.X = s.Right()
			sides.Left = true
		}
	}
	return box, sides
}

// ResolveY is the vertical counterpart of ResolveX.
func ResolveY(box Rect, dy float64, solids []Rect) (Rect, Sides) {
	var sides Sides
	box.Y += dy
	for _, s := range solids {
		if !box.Overlaps(s) {
			continue
		}
		switch {
		case dy > 0:
			box.Y = s.Top() - box.H
			sides.Down = true
		case dy < 0:
			box.Y = s.Bottom()
			sides.Up = true
		}
	}
	return box, sides
}

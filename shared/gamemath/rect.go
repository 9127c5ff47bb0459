package gamemath

import stdmath "math"

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports strict overlap. Boxes sharing only an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Area is used for the leaf emission probability.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Floor returns the integer cell containing v, rounding toward negative infinity.
func Floor(v float64) int {
	return int(stdmath.Floor(v))
}

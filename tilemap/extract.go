package tilemap

import (
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/shared/leveldata"
)

// Extract finds every tile of the given kind and variant, off-grid tiles
// first, then grid tiles in Cells order. Returned positions are in pixels.
// Unless keep is set the matches are removed from the grid.
func (g *Grid) Extract(kind leveldata.Kind, variant int, keep bool) []Tile {
	var matches []Tile

	remaining := g.offGrid[:0:0]
	for _, t := range g.offGrid {
		if t.Kind == kind && t.Variant == variant {
			matches = append(matches, t)
			if !keep {
				continue
			}
		}
		remaining = append(remaining, t)
	}
	g.offGrid = remaining

	ts := float64(g.tileSize)
	for _, c := range g.Cells() {
		t := g.tiles[c]
		if t.Kind != kind || t.Variant != variant {
			continue
		}
		t.Pos = gamemath.Vec2{X: float64(c.X) * ts, Y: float64(c.Y) * ts}
		matches = append(matches, t)
		if !keep {
			delete(g.tiles, c)
		}
	}
	return matches
}

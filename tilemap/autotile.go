package tilemap

type neighborMask uint8

const (
	maskRight neighborMask = 1 << iota
	maskLeft
	maskUp
	maskDown
)

var cardinals = []struct {
	off  Cell
	mask neighborMask
}{
	{Cell{1, 0}, maskRight},
	{Cell{-1, 0}, maskLeft},
	{Cell{0, -1}, maskUp},
	{Cell{0, 1}, maskDown},
}

// autotileVariants maps a same-kind neighbor set to the sprite variant that
// draws the matching edge or corner piece.
var autotileVariants = map[neighborMask]int{
	maskRight | maskDown:                     0,
	maskRight | maskDown | maskLeft:          1,
	maskLeft | maskDown:                      2,
	maskLeft | maskUp | maskDown:             3,
	maskLeft | maskUp:                        4,
	maskLeft | maskUp | maskRight:            5,
	maskRight | maskUp:                       6,
	maskRight | maskUp | maskDown:            7,
	maskRight | maskLeft | maskUp | maskDown: 8,
}

// Autotile rewrites the variant of every solid tile from its same-kind
// cardinal neighbors. Neighbor sets without an entry keep their variant.
func (g *Grid) Autotile() {
	updates := make(map[Cell]int)
	for c, t := range g.tiles {
		if !t.Solid() {
			continue
		}
		var mask neighborMask
		for _, n := range cardinals {
			if nt, ok := g.tiles[c.Add(n.off)]; ok && nt.Kind == t.Kind {
				mask |= n.mask
			}
		}
		if v, ok := autotileVariants[mask]; ok {
			updates[c] = v
		}
	}
	for c, v := range updates {
		t := g.tiles[c]
		t.Variant = v
		g.tiles[c] = t
	}
}

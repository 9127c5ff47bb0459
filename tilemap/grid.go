// Package tilemap holds the sparse tile grid the simulation collides against.
//
// Grid tiles are keyed by integer cell; off-grid tiles are free-floating
// decoration that never collides. Cells that were never populated are
// simply empty space.
package tilemap

import (
	"fmt"
	"sort"

	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/shared/leveldata"
)

// Cell is a grid coordinate. Both axes are signed.
type Cell struct {
	X, Y int
}

func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}

// Tile is a grid or off-grid tile. Pos is the cell for grid tiles and a
// pixel position for off-grid tiles and for tiles returned by Extract.
type Tile struct {
	Kind    leveldata.Kind
	Variant int
	Pos     gamemath.Vec2
}

func (t Tile) Solid() bool {
	return t.Kind.Solid()
}

// neighborOffsets is the 3x3 block centred on a cell.
var neighborOffsets = [9]Cell{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {0, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

type Grid struct {
	tileSize int
	tiles    map[Cell]Tile
	offGrid  []Tile
}

func New(tileSize int) *Grid {
	return &Grid{
		tileSize: tileSize,
		tiles:    make(map[Cell]Tile),
	}
}

func (g *Grid) TileSize() int {
	return g.tileSize
}

// Set places a grid tile, replacing whatever occupied the cell.
func (g *Grid) Set(cell Cell, kind leveldata.Kind, variant int) {
	g.tiles[cell] = Tile{
		Kind:    kind,
		Variant: variant,
		Pos:     gamemath.Vec2{X: float64(cell.X), Y: float64(cell.Y)},
	}
}

func (g *Grid) Tile(cell Cell) (Tile, bool) {
	t, ok := g.tiles[cell]
	return t, ok
}

func (g *Grid) Remove(cell Cell) {
	delete(g.tiles, cell)
}

func (g *Grid) AddOffGrid(kind leveldata.Kind, variant int, pos gamemath.Vec2) {
	g.offGrid = append(g.offGrid, Tile{Kind: kind, Variant: variant, Pos: pos})
}

// OffGrid returns a copy of the off-grid tiles in placement order.
func (g *Grid) OffGrid() []Tile {
	out := make([]Tile, len(g.offGrid))
	copy(out, g.offGrid)
	return out
}

// Len is the number of grid tiles.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Cells returns the occupied cells ordered by row, then column.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, len(g.tiles))
	for c := range g.tiles {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// Each visits grid tiles in Cells order.
func (g *Grid) Each(fn func(Cell, Tile)) {
	for _, c := range g.Cells() {
		fn(c, g.tiles[c])
	}
}

// Bounds returns the smallest and largest occupied cells.
func (g *Grid) Bounds() (min, max Cell, ok bool) {
	for c := range g.tiles {
		if !ok {
			min, max, ok = c, c, true
			continue
		}
		min.X, min.Y = minInt(min.X, c.X), minInt(min.Y, c.Y)
		max.X, max.Y = maxInt(max.X, c.X), maxInt(max.Y, c.Y)
	}
	return min, max, ok
}

// CellAt returns the cell containing a pixel position.
func (g *Grid) CellAt(p gamemath.Vec2) Cell {
	ts := float64(g.tileSize)
	return Cell{X: gamemath.Floor(p.X / ts), Y: gamemath.Floor(p.Y / ts)}
}

// CellRect is the pixel box covered by a cell.
func (g *Grid) CellRect(c Cell) gamemath.Rect {
	ts := float64(g.tileSize)
	return gamemath.NewRect(float64(c.X)*ts, float64(c.Y)*ts, ts, ts)
}

// SolidRectsNear returns the boxes of solid tiles in the 3x3 block of cells
// around the cell containing pos.
func (g *Grid) SolidRectsNear(pos gamemath.Vec2) []gamemath.Rect {
	center := g.CellAt(pos)
	rects := make([]gamemath.Rect, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		c := center.Add(off)
		if t, ok := g.tiles[c]; ok && t.Solid() {
			rects = append(rects, g.CellRect(c))
		}
	}
	return rects
}

// IsSolidAt reports whether the cell under a pixel position holds a solid tile.
func (g *Grid) IsSolidAt(p gamemath.Vec2) bool {
	t, ok := g.tiles[g.CellAt(p)]
	return ok && t.Solid()
}

// Load builds a grid from a validated level.
func Load(lvl *leveldata.Level) (*Grid, error) {
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("build tile grid: %w", err)
	}
	g := New(lvl.TileSize)
	for _, rec := range lvl.Tilemap {
		g.Set(Cell{X: int(rec.Pos[0]), Y: int(rec.Pos[1])}, rec.Type, rec.Variant)
	}
	for _, rec := range lvl.OffGrid {
		g.AddOffGrid(rec.Type, rec.Variant, gamemath.Vec2{X: rec.Pos[0], Y: rec.Pos[1]})
	}
	return g, nil
}

// Level converts the grid back to the level schema.
func (g *Grid) Level() *leveldata.Level {
	lvl := leveldata.NewLevel(g.tileSize)
	for c, t := range g.tiles {
		lvl.Tilemap[leveldata.CellKey(c.X, c.Y)] = leveldata.TileRecord{
			Type:    t.Kind,
			Variant: t.Variant,
			Pos:     []float64{float64(c.X), float64(c.Y)},
		}
	}
	for _, t := range g.offGrid {
		lvl.OffGrid = append(lvl.OffGrid, leveldata.TileRecord{
			Type:    t.Kind,
			Variant: t.Variant,
			Pos:     []float64{t.Pos.X, t.Pos.Y},
		})
	}
	return lvl
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package leveldata

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"
)

// OffGridLayer is the object group whose objects become off-grid tiles.
const OffGridLayer = "offgrid"

// ImportTMX converts a Tiled map into a level. Tile layers named after a tile
// kind ("grass", "stone", "decor", "large_decor", "spawners") become grid
// tiles; other layers are ignored. A tile's variant is its "variant"
// property when the tileset defines one, otherwise its local tile ID.
// Objects in the "offgrid" group need a "type" property and may carry a
// "variant" property.
func ImportTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	lvl := NewLevel(levelMap.TileWidth)

	for _, layer := range levelMap.Layers {
		kind, err := ParseKind(strings.ToLower(layer.Name))
		if err != nil {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				variant := int(tile.ID)
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if v := tilesetTile.Properties.GetString("variant"); v != "" {
						variant = tilesetTile.Properties.GetInt("variant")
					}
				}

				lvl.Tilemap[CellKey(x, y)] = TileRecord{
					Type:    kind,
					Variant: variant,
					Pos:     []float64{float64(x), float64(y)},
				}
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != OffGridLayer {
			continue
		}
		for _, o := range og.Objects {
			kind, err := ParseKind(o.Properties.GetString("type"))
			if err != nil {
				return nil, fmt.Errorf("load TMX %s: object %d: %w", tmxPath, o.ID, err)
			}
			lvl.OffGrid = append(lvl.OffGrid, TileRecord{
				Type:    kind,
				Variant: o.Properties.GetInt("variant"),
				Pos:     []float64{o.X, o.Y},
			})
		}
	}

	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return lvl, nil
}

// Package leveldata defines the on-disk level schema and converts it to and
// from JSON and Tiled maps. It has no dependencies on ebitengine, donburi, or
// resolv, only pure data.
package leveldata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownKind   = errors.New("unknown tile kind")
	ErrMissingPos    = errors.New("tile record has no position")
	ErrKeyMismatch   = errors.New("tile key does not match its position")
	ErrBadTileSize   = errors.New("tile size must be positive")
	ErrFractionalPos = errors.New("grid tile position is not integral")
)

// Kind is the tile type stored in the "type" field of a tile record.
type Kind int

const (
	KindGrass Kind = iota
	KindStone
	KindDecor
	KindLargeDecor
	KindSpawner
)

var kindNames = map[Kind]string{
	KindGrass:      "grass",
	KindStone:      "stone",
	KindDecor:      "decor",
	KindLargeDecor: "large_decor",
	KindSpawner:    "spawners",
}

// Kinds lists every tile kind in declaration order.
var Kinds = []Kind{KindGrass, KindStone, KindDecor, KindLargeDecor, KindSpawner}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Solid reports whether tiles of this kind collide with entities.
func (k Kind) Solid() bool {
	return k == KindGrass || k == KindStone
}

// ParseKind maps a schema name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(name), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// TileRecord is one tile as stored in a level file. Grid tiles carry an
// integral cell position, off-grid tiles a pixel position.
type TileRecord struct {
	Type    Kind      `json:"type"`
	Variant int       `json:"variant"`
	Pos     []float64 `json:"pos"`
}

// Level is the whole level file.
type Level struct {
	TileSize int                   `json:"tile_size"`
	Tilemap  map[string]TileRecord `json:"tilemap"`
	OffGrid  []TileRecord          `json:"offgrid"`
}

// NewLevel returns an empty level with the given tile size.
func NewLevel(tileSize int) *Level {
	return &Level{
		TileSize: tileSize,
		Tilemap:  make(map[string]TileRecord),
		OffGrid:  []TileRecord{},
	}
}

// CellKey formats a grid cell as the "x;y" key used by the tilemap object.
func CellKey(x, y int) string {
	return strconv.Itoa(x) + ";" + strconv.Itoa(y)
}

// ParseCellKey is the inverse of CellKey.
func ParseCellKey(key string) (x, y int, err error) {
	xs, ys, ok := strings.Cut(key, ";")
	if !ok {
		return 0, 0, fmt.Errorf("malformed tile key %q", key)
	}
	if x, err = strconv.Atoi(xs); err != nil {
		return 0, 0, fmt.Errorf("malformed tile key %q: %w", key, err)
	}
	if y, err = strconv.Atoi(ys); err != nil {
		return 0, 0, fmt.Errorf("malformed tile key %q: %w", key, err)
	}
	return x, y, nil
}

package leveldata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
)

// Decode parses and validates a level. A level that fails validation is
// rejected as a whole.
func Decode(r io.Reader) (*Level, error) {
	var lvl Level
	if err := json.NewDecoder(r).Decode(&lvl); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	if lvl.Tilemap == nil {
		lvl.Tilemap = make(map[string]TileRecord)
	}
	if lvl.OffGrid == nil {
		lvl.OffGrid = []TileRecord{}
	}
	return &lvl, nil
}

// Validate checks every record of the level.
func (l *Level) Validate() error {
	if l.TileSize <= 0 {
		return fmt.Errorf("%w: %d", ErrBadTileSize, l.TileSize)
	}
	for key, rec := range l.Tilemap {
		x, y, err := ParseCellKey(key)
		if err != nil {
			return err
		}
		if len(rec.Pos) != 2 {
			return fmt.Errorf("tile %s: %w", key, ErrMissingPos)
		}
		if rec.Pos[0] != math.Trunc(rec.Pos[0]) || rec.Pos[1] != math.Trunc(rec.Pos[1]) {
			return fmt.Errorf("tile %s: %w", key, ErrFractionalPos)
		}
		if int(rec.Pos[0]) != x || int(rec.Pos[1]) != y {
			return fmt.Errorf("tile %s at %v: %w", key, rec.Pos, ErrKeyMismatch)
		}
		if _, ok := kindNames[rec.Type]; !ok {
			return fmt.Errorf("tile %s: %w", key, ErrUnknownKind)
		}
	}
	for i, rec := range l.OffGrid {
		if len(rec.Pos) != 2 {
			return fmt.Errorf("offgrid tile %d: %w", i, ErrMissingPos)
		}
		if _, ok := kindNames[rec.Type]; !ok {
			return fmt.Errorf("offgrid tile %d: %w", i, ErrUnknownKind)
		}
	}
	return nil
}

// Encode writes the level as indented JSON. Map keys are emitted sorted so
// saving an unchanged level is byte-stable.
func Encode(w io.Writer, l *Level) error {
	if err := l.Validate(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode level: %w", err)
	}
	return nil
}

// Load reads a level from fsys. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, path string) (*Level, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	lvl, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return lvl, nil
}

// LoadFile reads a level from the host filesystem.
func LoadFile(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()

	lvl, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return lvl, nil
}

// SaveFile writes the level to path, replacing any existing file.
func SaveFile(path string, l *Level) error {
	var buf bytes.Buffer
	if err := Encode(&buf, l); err != nil {
		return fmt.Errorf("save level %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save level %s: %w", path, err)
	}
	return nil
}

package leveldata

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLevel = `{
  "tile_size": 16,
  "tilemap": {
    "0;5": {"type": "grass", "variant": 1, "pos": [0, 5]},
    "-1;5": {"type": "stone", "variant": 0, "pos": [-1, 5]},
    "2;4": {"type": "spawners", "variant": 0, "pos": [2, 4]}
  },
  "offgrid": [
    {"type": "large_decor", "variant": 2, "pos": [40.5, 12.25]}
  ]
}`

func TestDecodeSampleLevel(t *testing.T) {
	lvl, err := Decode(strings.NewReader(sampleLevel))
	require.NoError(t, err)

	assert.Equal(t, 16, lvl.TileSize)
	assert.Len(t, lvl.Tilemap, 3)
	assert.Equal(t, KindStone, lvl.Tilemap["-1;5"].Type)
	assert.Equal(t, KindSpawner, lvl.Tilemap["2;4"].Type)
	require.Len(t, lvl.OffGrid, 1)
	assert.Equal(t, KindLargeDecor, lvl.OffGrid[0].Type)
	assert.Equal(t, []float64{40.5, 12.25}, lvl.OffGrid[0].Pos)
}

func TestDecodeRejectsMalformedLevels(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "unknown kind",
			data: `{"tile_size":16,"tilemap":{"0;0":{"type":"lava","variant":0,"pos":[0,0]}},"offgrid":[]}`,
			want: ErrUnknownKind,
		},
		{
			name: "missing pos",
			data: `{"tile_size":16,"tilemap":{"0;0":{"type":"grass","variant":0}},"offgrid":[]}`,
			want: ErrMissingPos,
		},
		{
			name: "key disagrees with pos",
			data: `{"tile_size":16,"tilemap":{"0;0":{"type":"grass","variant":0,"pos":[1,0]}},"offgrid":[]}`,
			want: ErrKeyMismatch,
		},
		{
			name: "fractional grid pos",
			data: `{"tile_size":16,"tilemap":{"0;0":{"type":"grass","variant":0,"pos":[0.5,0]}},"offgrid":[]}`,
			want: ErrFractionalPos,
		},
		{
			name: "zero tile size",
			data: `{"tile_size":0,"tilemap":{},"offgrid":[]}`,
			want: ErrBadTileSize,
		},
		{
			name: "offgrid without pos",
			data: `{"tile_size":16,"tilemap":{},"offgrid":[{"type":"decor","variant":0}]}`,
			want: ErrMissingPos,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := Decode(strings.NewReader(tt.data))
			assert.Nil(t, lvl)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEncodeRoundTripIsStable(t *testing.T) {
	lvl, err := Decode(strings.NewReader(sampleLevel))
	require.NoError(t, err)

	var first bytes.Buffer
	require.NoError(t, Encode(&first, lvl))

	again, err := Decode(bytes.NewReader(first.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, lvl, again)

	var second bytes.Buffer
	require.NoError(t, Encode(&second, again))
	assert.Equal(t, first.String(), second.String())
	assert.Contains(t, first.String(), `"type": "large_decor"`)
}

func TestSaveFileThenLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.json")
	lvl := NewLevel(16)
	lvl.Tilemap[CellKey(3, -2)] = TileRecord{Type: KindGrass, Variant: 8, Pos: []float64{3, -2}}

	require.NoError(t, SaveFile(path, lvl))
	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, lvl, loaded)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseCellKey(t *testing.T) {
	x, y, err := ParseCellKey("-4;17")
	require.NoError(t, err)
	assert.Equal(t, -4, x)
	assert.Equal(t, 17, y)

	_, _, err = ParseCellKey("4,17")
	assert.Error(t, err)
}

func TestImportTMX(t *testing.T) {
	lvl, err := ImportTMX(os.DirFS("testdata"), "level.tmx")
	require.NoError(t, err)

	assert.Equal(t, 16, lvl.TileSize)
	assert.Len(t, lvl.Tilemap, 5)
	assert.Equal(t, TileRecord{Type: KindGrass, Variant: 0, Pos: []float64{0, 2}}, lvl.Tilemap["0;2"])
	assert.Equal(t, 1, lvl.Tilemap["1;2"].Variant)
	assert.Equal(t, 2, lvl.Tilemap["3;2"].Variant)
	assert.Equal(t, KindSpawner, lvl.Tilemap["1;0"].Type)

	require.Len(t, lvl.OffGrid, 1)
	assert.Equal(t, KindDecor, lvl.OffGrid[0].Type)
	assert.Equal(t, 2, lvl.OffGrid[0].Variant)
	assert.Equal(t, []float64{20.5, 8}, lvl.OffGrid[0].Pos)
}

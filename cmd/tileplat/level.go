package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/tileplat/shared/leveldata"
	"github.com/automoto/tileplat/tilemap"
	"github.com/spf13/cobra"
)

var (
	flagOut      string
	flagAutotile bool
)

var autotileCmd = &cobra.Command{
	Use:   "autotile <level.json>",
	Short: "Recompute grass and stone variants from their neighbors",
	Long: `Load a level, pick each grass and stone tile's variant from which of
its neighbors are the same kind, and save it. The file is rewritten in
place unless --out is given.

Examples:
  tileplat autotile levels/0.json
  tileplat autotile draft.json --out levels/1.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAutotile,
}

var importTMXCmd = &cobra.Command{
	Use:   "import-tmx <map.tmx>",
	Short: "Convert a Tiled map into a level",
	Long: `Convert a Tiled map into a level file. Tile layers named grass, stone,
decor, large_decor and spawners become grid tiles; the "offgrid" object
group becomes off-grid tiles. The level is written next to the map with a
.json extension unless --out is given.

Examples:
  tileplat import-tmx maps/cave.tmx --autotile
  tileplat import-tmx maps/cave.tmx --out levels/2.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImportTMX,
}

func init() {
	autotileCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Write to this file instead of the input")
	importTMXCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output level file")
	importTMXCmd.Flags().BoolVar(&flagAutotile, "autotile", false, "Autotile the imported level")
}

func runAutotile(cmd *cobra.Command, args []string) error {
	in := args[0]
	lvl, err := leveldata.LoadFile(in)
	if err != nil {
		return err
	}
	lvl, err = autotile(lvl)
	if err != nil {
		return err
	}

	out := in
	if flagOut != "" {
		out = flagOut
	}
	if err := leveldata.SaveFile(out, lvl); err != nil {
		return err
	}
	logger.Info("level autotiled", "in", in, "out", out, "tiles", len(lvl.Tilemap))
	return nil
}

func runImportTMX(cmd *cobra.Command, args []string) error {
	in := args[0]
	dir, file := filepath.Split(in)
	if dir == "" {
		dir = "."
	}
	lvl, err := leveldata.ImportTMX(os.DirFS(dir), file)
	if err != nil {
		return err
	}
	if flagAutotile {
		if lvl, err = autotile(lvl); err != nil {
			return err
		}
	}

	out := flagOut
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".json"
	}
	if err := leveldata.SaveFile(out, lvl); err != nil {
		return err
	}
	logger.Info("map imported", "in", in, "out", out,
		"tiles", len(lvl.Tilemap), "offgrid", len(lvl.OffGrid))
	return nil
}

func autotile(lvl *leveldata.Level) (*leveldata.Level, error) {
	grid, err := tilemap.Load(lvl)
	if err != nil {
		return nil, fmt.Errorf("autotile: %w", err)
	}
	grid.Autotile()
	return grid.Level(), nil
}

// tileplat runs and inspects a tile-grid platformer.
//
// Usage:
//
//	tileplat play [level]            - Play in a window
//	tileplat simulate [level]        - Run headless and print a summary
//	tileplat autotile <file.json>    - Recompute tile variants
//	tileplat import-tmx <file.tmx>   - Convert a Tiled map to a level
//	tileplat replay <command>        - Record, list, verify, watch and delete replays
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--tuning <path>      - Tuning overrides (default: ~/.tileplat/tuning.yaml)
//	--levels <dir>       - Load levels from a directory instead of the built-in set
//	--seed <value>       - RNG seed (default: 1)
//	--db <path>          - Replay database (default: ~/.tileplat/replays.db)
package main

import (
	"fmt"
	"os"

	"github.com/automoto/tileplat/assets"
	cfg "github.com/automoto/tileplat/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagLogLevel  string
	flagTuning    string
	flagLevelsDir string
	flagSeed      int64
	flagDBPath    string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tileplat",
	Short: "A tile-grid platformer with a headless simulation core",
	Long: `tileplat plays, simulates and edits levels for a small tile-grid
platformer: a player who jumps, wall-slides and dashes through patrolling,
shooting enemies.

Examples:
  tileplat play
  tileplat simulate 0 --ticks 3600 --script random
  tileplat autotile levels/0.json
  tileplat replay list`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "Path to tuning overrides (YAML)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory to load levels from (default: built-in levels)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 1, "RNG seed")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tileplat/replays.db", "Path to replay database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(autotileCmd)
	rootCmd.AddCommand(importTMXCmd)
	rootCmd.AddCommand(replayCmd)
}

// setup builds the logger and applies tuning before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tileplat",
		Level:           level,
	})
	log.SetDefault(logger)

	tuning, err := cfg.LoadTuning(flagTuning)
	if err != nil {
		return err
	}
	tuning.Apply()
	logger.Debug("tuning applied", "path", flagTuning)
	return nil
}

// levelLoader resolves level names against --levels or the built-in set.
func levelLoader() *assets.LevelLoader {
	if flagLevelsDir == "" {
		return assets.NewLevelLoader()
	}
	return assets.NewDirLoader(os.DirFS(flagLevelsDir))
}

// levelArg is the first positional argument, or the first known level.
func levelArg(loader *assets.LevelLoader, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	names, err := loader.Names()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no levels found")
	}
	return names[0], nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/tileplat/assets"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/fonts"
	"github.com/automoto/tileplat/render"
	"github.com/automoto/tileplat/replay"
	"github.com/automoto/tileplat/scenes"
	"github.com/automoto/tileplat/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

const appName = "tileplat"

var (
	flagSprites string
	flagWatch   bool
	flagRecord  bool
	flagMenu    bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level in a window",
	Long: `Open a window and play. Arrows or A/D move, W/X jump, C/Z dash,
R restarts and Escape quits.

With --watch, edits to level files in --levels and to the --tuning file
restart the level with the new data. With --record, each run is saved to
the replay database when it ends.

Examples:
  tileplat play
  tileplat play 0 --record
  tileplat play --levels ./levels --tuning ./tuning.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSprites, "sprites", "", "Directory of sprite images (default: placeholders)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels and tuning when their files change")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save each run to the replay database")
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Start on the level select")
}

func runPlay(cmd *cobra.Command, args []string) error {
	persistence, err := systems.InitPersistence(appName)
	if err != nil {
		logger.Warn("could not initialize persistence", "err", err)
	}
	saved, err := persistence.LoadSettings()
	if err != nil {
		logger.Warn("could not load settings", "err", err)
	}

	loader := levelLoader()
	if len(args) == 0 && saved != nil && saved.LastLevel != "" {
		args = []string{saved.LastLevel}
	}
	name, err := levelArg(loader, args)
	if err != nil {
		return err
	}
	settings := &systems.SavedSettings{Scale: cfg.Display.Scale}
	if saved != nil {
		*settings = *saved
	}
	settings.LastLevel = name
	if err := persistence.SaveSettings(settings); err != nil {
		logger.Warn("could not save settings", "err", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}
	bank, err := newBank()
	if err != nil {
		return err
	}

	conf := scenes.PlayConfig{
		Levels:      loader,
		Level:       name,
		Seed:        flagSeed,
		Logger:      logger,
		Bank:        bank,
		Persistence: persistence,
		Record:      flagRecord,
	}

	if flagWatch {
		watcher, err := newWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()
		conf.Watcher = watcher
	}

	var recordings []*replay.Recording
	if flagRecord {
		conf.Recorded = func(rec *replay.Recording) {
			recordings = append(recordings, rec)
		}
	}

	scenes.ApplySettings(saved)
	ebiten.SetWindowTitle("tileplat")
	ebiten.SetTPS(cfg.Display.TPS)

	game := scenes.NewGameWith(func(sc scenes.SceneChanger) scenes.Scene {
		if flagMenu {
			return scenes.NewMenuScene(sc, conf)
		}
		return scenes.NewPlatformerScene(sc, conf)
	})
	runErr := ebiten.RunGame(game)

	if err := saveRecordings(cmd.Context(), recordings); err != nil {
		logger.Error("could not save recordings", "err", err)
	}
	return runErr
}

func newBank() (*render.Bank, error) {
	if flagSprites == "" {
		return render.NewBank(nil)
	}
	return render.NewBank(os.DirFS(flagSprites))
}

// newWatcher watches the levels directory and the tuning file's directory.
func newWatcher() (*assets.Watcher, error) {
	var dirs []string
	if flagLevelsDir != "" {
		dirs = append(dirs, flagLevelsDir)
	}
	if flagTuning != "" {
		dirs = append(dirs, filepath.Dir(flagTuning))
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("--watch needs --levels or --tuning")
	}
	w, err := assets.NewWatcher(dirs...)
	if err != nil {
		return nil, fmt.Errorf("watch %v: %w", dirs, err)
	}
	logger.Info("watching for changes", "dirs", dirs)
	return w, nil
}

func saveRecordings(ctx context.Context, recordings []*replay.Recording) error {
	if len(recordings) == 0 {
		return nil
	}
	store, err := replay.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, rec := range recordings {
		id, err := store.Save(ctx, rec)
		if err != nil {
			return err
		}
		logger.Info("replay saved", "id", id, "name", rec.Name, "ticks", rec.Ticks())
	}
	return nil
}

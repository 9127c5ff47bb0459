package main

import (
	"errors"
	"fmt"
	"strconv"

	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/fonts"
	"github.com/automoto/tileplat/replay"
	"github.com/automoto/tileplat/scenes"
	"github.com/automoto/tileplat/shared/leveldata"
	"github.com/automoto/tileplat/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagReplayName   string
	flagReplayLevel  string
	flagRecordTicks  int
	flagRecordScript string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Record, list, verify, watch and delete input replays",
	Long: `Replays store the seed and every tick of input of a run, plus the hash
of the state it ended in. Verifying a replay runs it again and checks the
hash, which catches any change to simulation behavior.

Examples:
  tileplat replay record 0 --ticks 1800 --script random
  tileplat replay list
  tileplat replay verify 3
  tileplat replay watch 3`,
}

var replayRecordCmd = &cobra.Command{
	Use:   "record [level]",
	Short: "Record a scripted headless run",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReplayRecord,
}

var replayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved replays",
	Args:  cobra.NoArgs,
	RunE:  runReplayList,
}

var replayVerifyCmd = &cobra.Command{
	Use:   "verify [id...]",
	Short: "Re-run replays and check their final hash (all when no id is given)",
	RunE:  runReplayVerify,
}

var replayWatchCmd = &cobra.Command{
	Use:   "watch <id>",
	Short: "Play a replay back in a window",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplayWatch,
}

var replayDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a replay",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplayDelete,
}

func init() {
	replayRecordCmd.Flags().IntVar(&flagRecordTicks, "ticks", 1800, "Number of ticks to record")
	replayRecordCmd.Flags().StringVar(&flagRecordScript, "script", "random", "Input script")
	replayRecordCmd.Flags().StringVar(&flagReplayName, "name", "", "Replay name (default: level-script-seed)")
	replayListCmd.Flags().StringVar(&flagReplayLevel, "level", "", "Only list replays of this level")

	replayCmd.AddCommand(replayRecordCmd)
	replayCmd.AddCommand(replayListCmd)
	replayCmd.AddCommand(replayVerifyCmd)
	replayCmd.AddCommand(replayWatchCmd)
	replayCmd.AddCommand(replayDeleteCmd)
}

func runReplayRecord(cmd *cobra.Command, args []string) error {
	loader := levelLoader()
	name, err := levelArg(loader, args)
	if err != nil {
		return err
	}
	level, err := loader.Load(name)
	if err != nil {
		return err
	}
	script, err := simulation.NewScript(flagRecordScript, flagSeed)
	if err != nil {
		return err
	}

	rec, err := replay.NewRecorder(level, flagSeed)
	if err != nil {
		return err
	}
	for tick := 0; tick < flagRecordTicks; tick++ {
		rec.Step(script(tick))
	}

	title := flagReplayName
	if title == "" {
		title = fmt.Sprintf("%s-%s-%d", name, flagRecordScript, flagSeed)
	}

	store, err := replay.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	recording := rec.Recording(title, name)
	id, err := store.Save(cmd.Context(), recording)
	if err != nil {
		return err
	}
	fmt.Printf("Saved replay %d %s (%d ticks, hash %016x)\n", id, title, recording.Ticks(), recording.FinalHash)
	return nil
}

func runReplayList(cmd *cobra.Command, args []string) error {
	store, err := replay.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	summaries, err := store.List(cmd.Context(), flagReplayLevel)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tileplat replay record' or 'tileplat play --record' to make one.")
		return nil
	}

	t := newTable("ID", "Name", "Level", "Seed", "Ticks", "Recorded")
	for _, s := range summaries {
		t.Row(
			strconv.FormatInt(s.ID, 10),
			s.Name,
			s.Level,
			strconv.FormatInt(s.Seed, 10),
			strconv.Itoa(s.Ticks),
			s.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t.Render())
	return nil
}

func runReplayVerify(cmd *cobra.Command, args []string) error {
	store, err := replay.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		summaries, err := store.List(cmd.Context(), "")
		if err != nil {
			return err
		}
		for _, s := range summaries {
			ids = append(ids, s.ID)
		}
	}

	loader := levelLoader()
	t := newTable("ID", "Name", "Result")
	failed := 0
	for _, id := range ids {
		rec, err := store.Load(cmd.Context(), id)
		if err != nil {
			return err
		}
		result := okStyle.Render("ok")
		if err := verify(loader.Load, rec); err != nil {
			failed++
			result = badStyle.Render(err.Error())
		}
		t.Row(strconv.FormatInt(id, 10), rec.Name, result)
	}
	fmt.Println(t.Render())

	if failed > 0 {
		return fmt.Errorf("%d of %d replays failed", failed, len(ids))
	}
	return nil
}

// levelFunc loads a level by name.
type levelFunc func(name string) (*leveldata.Level, error)

func verify(load levelFunc, rec *replay.Recording) error {
	level, err := load(rec.Level)
	if err != nil {
		return err
	}
	_, err = replay.Play(level, rec)
	if errors.Is(err, replay.ErrHashMismatch) {
		return fmt.Errorf("diverged: %w", err)
	}
	return err
}

func runReplayWatch(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	store, err := replay.Open(flagDBPath)
	if err != nil {
		return err
	}
	rec, err := store.Load(cmd.Context(), ids[0])
	store.Close()
	if err != nil {
		return err
	}

	level, err := levelLoader().Load(rec.Level)
	if err != nil {
		return err
	}
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}
	bank, err := newBank()
	if err != nil {
		return err
	}

	scenes.ApplySettings(nil)
	ebiten.SetWindowTitle("tileplat replay: " + rec.Name)
	ebiten.SetTPS(cfg.Display.TPS)
	return ebiten.RunGame(scenes.NewGameWith(func(sc scenes.SceneChanger) scenes.Scene {
		return scenes.NewReplayScene(sc, level, rec, bank)
	}))
}

func runReplayDelete(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	store, err := replay.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(cmd.Context(), ids[0]); err != nil {
		return err
	}
	logger.Info("replay deleted", "id", ids[0])
	return nil
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid replay id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

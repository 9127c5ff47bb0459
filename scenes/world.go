package scenes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/automoto/tileplat/assets"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/render"
	"github.com/automoto/tileplat/replay"
	"github.com/automoto/tileplat/simulation"
	"github.com/automoto/tileplat/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// PlayConfig is everything the platformer scene needs from the runner.
type PlayConfig struct {
	Levels      *assets.LevelLoader
	Level       string
	Seed        int64
	Logger      *log.Logger
	Bank        *render.Bank
	Watcher     *assets.Watcher // optional hot reload
	Persistence *systems.Persistence
	Record      bool
	// Recorded receives each finished recording when Record is set.
	Recorded func(*replay.Recording)
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	conf         PlayConfig
	view         worldView
	recorder     *replay.Recorder
	kills        int
	paused       bool
	debug        bool
	err          error
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger, conf PlayConfig) *PlatformerScene {
	if conf.Logger == nil {
		conf.Logger = log.Default()
	}
	return &PlatformerScene{sceneChanger: sc, conf: conf}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return ps.err
	}

	if justPressed(ActionQuit) {
		ps.finish()
		return errQuit
	}
	if justPressed(ActionRestart) {
		ps.restart()
	}
	if justPressed(ActionPause) {
		ps.paused = !ps.paused
	}
	if justPressed(ActionDebug) {
		ps.debug = !ps.debug
	}
	ps.drainWatcher()
	if ps.err != nil {
		return ps.err
	}

	ps.ecs.Update()
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil || ps.view.sim == nil {
		screen.Fill(skyColor)
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	if err := ps.start(); err != nil {
		ps.err = err
		return
	}

	e := ecs.NewECS(ps.view.sim.World())
	e.AddSystem(ps.step)
	ps.view.addRenderers(e)
	e.AddRenderer(layerHUD, ps.drawHUD)
	e.AddRenderer(layerHUD, ps.view.drawFade)
	ps.ecs = e

	ps.conf.Logger.Info("level started", "level", ps.conf.Level, "seed", ps.conf.Seed)
}

// start builds a fresh simulation from the loader's current copy of the level.
func (ps *PlatformerScene) start() error {
	level, err := ps.conf.Levels.Load(ps.conf.Level)
	if err != nil {
		return fmt.Errorf("load level %s: %w", ps.conf.Level, err)
	}

	opts := []simulation.Option{simulation.WithLogger(ps.conf.Logger)}
	var sim *simulation.Simulation
	if ps.conf.Record {
		ps.recorder, err = replay.NewRecorder(level, ps.conf.Seed, opts...)
		if err == nil {
			sim = ps.recorder.Simulation()
		}
	} else {
		sim, err = simulation.New(level, append(opts, simulation.WithSeed(ps.conf.Seed))...)
	}
	if err != nil {
		return fmt.Errorf("start level %s: %w", ps.conf.Level, err)
	}

	if ps.view.bank == nil {
		ps.view = newWorldView(ps.conf.Bank, ps.conf.Seed)
	}
	ps.view.attach(ps.ecs, sim)
	ps.kills = 0
	return nil
}

func (ps *PlatformerScene) step(e *ecs.ECS) {
	if ps.paused {
		return
	}
	in := ReadInput()

	var res simulation.StepResult
	if ps.recorder != nil {
		res = ps.recorder.Step(in)
	} else {
		res = ps.view.sim.Step(in)
	}

	ps.kills += res.Kills
	if res.Reset {
		ps.kills = 0
		ps.view.attach(e, ps.view.sim)
		ps.view.startFade()
	}
}

// restart ends the current run and starts the level over.
func (ps *PlatformerScene) restart() {
	ps.finish()
	if err := ps.start(); err != nil {
		ps.err = err
		return
	}
	ps.view.startFade()
}

// finish hands the run's recording to the runner.
func (ps *PlatformerScene) finish() {
	if ps.recorder == nil || ps.conf.Recorded == nil {
		return
	}
	name := fmt.Sprintf("%s-%s", ps.conf.Level, time.Now().Format("20060102-150405"))
	rec := ps.recorder.Recording(name, ps.conf.Level)
	if rec.Ticks() > 0 {
		ps.conf.Recorded(rec)
	}
	ps.recorder = nil
}

// drainWatcher applies file changes posted since the last tick.
func (ps *PlatformerScene) drainWatcher() {
	w := ps.conf.Watcher
	if w == nil {
		return
	}
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				ps.conf.Watcher = nil
				return
			}
			ps.reload(path)
		case err, ok := <-w.Errors:
			if ok {
				ps.conf.Logger.Warn("watch error", "err", err)
			}
		default:
			return
		}
	}
}

func (ps *PlatformerScene) reload(path string) {
	if assets.IsTuning(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			ps.conf.Logger.Warn("reload failed", "path", path, "err", err)
			return
		}
		t, err := cfg.ParseTuning(data, cfg.CurrentTuning())
		if err != nil {
			ps.conf.Logger.Warn("reload failed", "path", path, "err", err)
			return
		}
		t.Apply()
		ps.conf.Logger.Info("tuning reloaded", "path", path)
		ps.restart()
		return
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if name != ps.conf.Level {
		return
	}
	if _, err := ps.conf.Levels.Load(name); err != nil {
		// Keep playing the last good copy while the file is mid-edit.
		ps.conf.Logger.Warn("reload failed", "path", path, "err", err)
		return
	}
	ps.conf.Logger.Info("level reloaded", "level", name)
	ps.restart()
}

func (ps *PlatformerScene) drawHUD(_ *ecs.ECS, screen *ebiten.Image) {
	sim := ps.view.sim
	render.DrawHUD(screen, render.HUDInfo{
		Level:     ps.conf.Level,
		Tick:      sim.Tick(),
		Resets:    sim.Resets(),
		Kills:     ps.kills,
		Counts:    sim.Counts(),
		DashTimer: sim.Player().DashTimer,
		DashMax:   cfg.Player.DashDuration,
		Recording: ps.recorder != nil,
	})
	if ps.debug {
		render.DrawDebug(screen, sim.World(), sim.Camera())
	}
	if ps.paused {
		render.DrawBanner(screen, "paused")
	}
}

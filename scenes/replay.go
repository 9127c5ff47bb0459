package scenes

import (
	"fmt"
	"sync"

	"github.com/automoto/tileplat/render"
	"github.com/automoto/tileplat/replay"
	"github.com/automoto/tileplat/shared/leveldata"
	"github.com/automoto/tileplat/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ReplayScene plays a recording back tick by tick and reports whether it
// ended in the recorded state.
type ReplayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        *leveldata.Level
	rec          *replay.Recording
	bank         *render.Bank
	view         worldView
	cursor       int
	kills        int
	verdict      string
	err          error
	once         sync.Once
}

func NewReplayScene(sc SceneChanger, level *leveldata.Level, rec *replay.Recording, bank *render.Bank) *ReplayScene {
	return &ReplayScene{sceneChanger: sc, level: level, rec: rec, bank: bank}
}

func (rs *ReplayScene) Update() error {
	rs.once.Do(rs.configure)
	if rs.err != nil {
		return rs.err
	}
	if justPressed(ActionQuit) {
		return errQuit
	}
	rs.ecs.Update()
	return nil
}

func (rs *ReplayScene) Draw(screen *ebiten.Image) {
	if rs.ecs == nil {
		screen.Fill(skyColor)
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *ReplayScene) configure() {
	sim, err := simulation.New(rs.level, simulation.WithSeed(rs.rec.Seed))
	if err != nil {
		rs.err = fmt.Errorf("replay %s: %w", rs.rec.Name, err)
		return
	}
	rs.view = newWorldView(rs.bank, rs.rec.Seed)
	rs.view.attach(nil, sim)

	e := ecs.NewECS(sim.World())
	e.AddSystem(rs.step)
	rs.view.addRenderers(e)
	e.AddRenderer(layerHUD, rs.drawHUD)
	e.AddRenderer(layerHUD, rs.view.drawFade)
	rs.ecs = e
}

func (rs *ReplayScene) step(e *ecs.ECS) {
	if rs.cursor >= len(rs.rec.Inputs) {
		if rs.verdict == "" {
			rs.verdict = "replay verified"
			if rs.view.sim.Hash() != rs.rec.FinalHash {
				rs.verdict = "replay diverged"
			}
		}
		return
	}
	res := rs.view.sim.Step(rs.rec.Inputs[rs.cursor])
	rs.cursor++
	rs.kills += res.Kills
	if res.Reset {
		rs.view.attach(e, rs.view.sim)
		rs.view.startFade()
	}
}

func (rs *ReplayScene) drawHUD(_ *ecs.ECS, screen *ebiten.Image) {
	sim := rs.view.sim
	render.DrawHUD(screen, render.HUDInfo{
		Level:  rs.rec.Name,
		Tick:   sim.Tick(),
		Resets: sim.Resets(),
		Kills:  rs.kills,
		Counts: sim.Counts(),
	})
	if rs.verdict != "" {
		render.DrawBanner(screen, rs.verdict)
	}
}

package scenes

import (
	"image/color"
	"math/rand"

	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/render"
	"github.com/automoto/tileplat/simulation"
	"github.com/automoto/tileplat/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var skyColor = color.RGBA{0x8e, 0xc7, 0xe6, 0xff}

// fadeSeconds is how long the screen takes to clear after a level reset.
const fadeSeconds = 0.5

// worldView draws a simulation with its cloud layer and reset fade. Scenes
// that show a running simulation embed it.
type worldView struct {
	bank   *render.Bank
	sim    *simulation.Simulation
	clouds *systems.Clouds
	fade   *gween.Tween
	alpha  float64
}

func newWorldView(bank *render.Bank, seed int64) worldView {
	return worldView{
		bank:   bank,
		clouds: systems.NewClouds(rand.New(rand.NewSource(seed))),
	}
}

// attach points the view and e at sim's current world.
func (v *worldView) attach(e *ecs.ECS, sim *simulation.Simulation) {
	v.sim = sim
	if e != nil {
		e.World = sim.World()
	}
}

// startFade blacks out the screen and eases it back in.
func (v *worldView) startFade() {
	v.fade = gween.New(1, 0, fadeSeconds, ease.OutQuad)
	v.alpha = 1
}

func (v *worldView) updateEffects(_ *ecs.ECS) {
	v.clouds.Update()
	if v.fade == nil {
		return
	}
	current, finished := v.fade.Update(1 / float32(cfg.Display.TPS))
	v.alpha = float64(current)
	if finished {
		v.fade = nil
		v.alpha = 0
	}
}

func (v *worldView) drawBackground(_ *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(skyColor)
	camera := v.sim.Camera()
	b := screen.Bounds()
	render.Draw(screen, v.bank, v.clouds.DrawList(camera, b.Dx(), b.Dy(), v.bank.Size))
}

func (v *worldView) drawWorld(_ *ecs.ECS, screen *ebiten.Image) {
	render.Draw(screen, v.bank, v.sim.DrawList(v.sim.Camera()))
}

func (v *worldView) drawFade(_ *ecs.ECS, screen *ebiten.Image) {
	render.DrawFade(screen, v.alpha)
}

// addRenderers registers the view's layers on e.
func (v *worldView) addRenderers(e *ecs.ECS) {
	e.AddSystem(v.updateEffects)
	e.AddRenderer(layerBackground, v.drawBackground)
	e.AddRenderer(layerWorld, v.drawWorld)
}

package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/tileplat/fonts"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	menuTextColor     = color.RGBA{0xc8, 0xc8, 0xc8, 0xff}
	menuSelectedColor = color.RGBA{0xff, 0xe0, 0x6a, 0xff}
)

// MenuScene lists the levels and starts the chosen one.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	conf         PlayConfig
	names        []string
	selected     int
	err          error
	once         sync.Once
}

// NewMenuScene creates a level select for conf.Levels. The level named in
// conf.Level starts highlighted.
func NewMenuScene(sc SceneChanger, conf PlayConfig) *MenuScene {
	if conf.Logger == nil {
		conf.Logger = log.Default()
	}
	return &MenuScene{sceneChanger: sc, conf: conf}
}

func (ms *MenuScene) Update() error {
	ms.once.Do(ms.configure)
	if ms.err != nil {
		return ms.err
	}
	if justPressed(ActionQuit) {
		return errQuit
	}
	ms.ecs.Update()
	return nil
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	names, err := ms.conf.Levels.Names()
	if err != nil {
		ms.err = err
		return
	}
	ms.names = names
	for i, name := range names {
		if name == ms.conf.Level {
			ms.selected = i
		}
	}

	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.ecs.AddSystem(ms.updateMenu)
	ms.ecs.AddRenderer(layerHUD, ms.drawMenu)
}

func (ms *MenuScene) updateMenu(_ *ecs.ECS) {
	if len(ms.names) == 0 {
		return
	}
	switch {
	case justPressed(ActionMenuUp):
		ms.selected = (ms.selected - 1 + len(ms.names)) % len(ms.names)
	case justPressed(ActionMenuDown):
		ms.selected = (ms.selected + 1) % len(ms.names)
	case justPressed(ActionMenuSelect):
		conf := ms.conf
		conf.Level = ms.names[ms.selected]
		if ms.conf.Persistence != nil {
			if err := ms.conf.Persistence.SaveSettings(lastLevelSettings(ms.conf, conf.Level)); err != nil {
				ms.conf.Logger.Warn("could not save settings", "err", err)
			}
		}
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, conf))
	}
}

func (ms *MenuScene) drawMenu(_ *ecs.ECS, screen *ebiten.Image) {
	title := fonts.Title.Get()
	text.Draw(screen, "tileplat", title, 24, 40, menuSelectedColor)

	face := fonts.HUD.Get()
	for i, name := range ms.names {
		c := menuTextColor
		label := "  " + name
		if i == ms.selected {
			c = menuSelectedColor
			label = "> " + name
		}
		text.Draw(screen, label, face, 24, 70+i*14, c)
	}
}

// Package scenes hosts the ebiten runner: the Game, its scenes and input.
package scenes

import (
	"errors"
	"image"

	cfg "github.com/automoto/tileplat/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Layers are drawn in order.
const (
	layerBackground ecs.LayerID = iota
	layerWorld
	layerHUD
)

// errQuit ends the game loop from inside a scene.
var errQuit = errors.New("quit")

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// NewGame starts on first. Pass a scene built with the game as its
// changer by using NewGameWith.
func NewGame(first Scene) *Game {
	return &Game{scene: first}
}

// NewGameWith builds the first scene with access to the game.
func NewGameWith(first func(SceneChanger) Scene) *Game {
	g := &Game{}
	g.scene = first(g)
	return g
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	if err := g.scene.Update(); err != nil {
		if errors.Is(err, errQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.Display.Width, cfg.Display.Height)
	return cfg.Display.Width, cfg.Display.Height
}

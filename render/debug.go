package render

import (
	"image/color"

	"github.com/automoto/tileplat/components"
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

var (
	debugPlayer     = color.RGBA{0, 0, 255, 255}
	debugEnemy      = color.RGBA{255, 0, 0, 255}
	debugProjectile = color.RGBA{0, 255, 0, 255}
	debugDefault    = color.RGBA{0, 255, 255, 255}
)

// DrawDebug outlines every object in the actor space.
func DrawDebug(screen *ebiten.Image, w donburi.World, camera gamemath.Vec2) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, obj := range space.Space.Objects() {
		// Back to world coordinates, then to the screen.
		x := obj.X + space.Origin.X - camera.X
		y := obj.Y + space.Origin.Y - camera.Y
		if x+obj.W < 0 || x > width || y+obj.H < 0 || y > height {
			continue
		}

		c := debugDefault
		switch {
		case obj.HasTags(tags.ResolvPlayer):
			c = debugPlayer
		case obj.HasTags(tags.ResolvEnemy):
			c = debugEnemy
		case obj.HasTags(tags.ResolvProjectile):
			c = debugProjectile
		}

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}

package systems

import (
	"github.com/automoto/tileplat/components"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera eases the view toward the player, closing a fixed fraction
// of the gap each tick.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	center := components.Body.Get(playerEntry).Center()

	target := math.NewVec2(
		center.X-float64(cfg.Display.Width)/2,
		center.Y-float64(cfg.Display.Height)/2,
	)
	camera.Position.X += (target.X - camera.Position.X) / cfg.Camera.Smoothing
	camera.Position.Y += (target.Y - camera.Position.Y) / cfg.Camera.Smoothing
}

// SnapCamera centers the view on the player immediately.
func SnapCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	center := components.Body.Get(playerEntry).Center()
	components.Camera.Get(cameraEntry).Position = math.NewVec2(
		center.X-float64(cfg.Display.Width)/2,
		center.Y-float64(cfg.Display.Height)/2,
	)
}

// CameraOffset is the whole-pixel view position used for drawing.
func CameraOffset(w donburi.World) math.Vec2 {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return math.Vec2{}
	}
	pos := components.Camera.Get(cameraEntry).Position
	return math.NewVec2(float64(int(pos.X)), float64(int(pos.Y)))
}

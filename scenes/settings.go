package scenes

import (
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// ApplySettings sizes the window from saved settings, falling back to the
// configured scale.
func ApplySettings(saved *systems.SavedSettings) {
	scale := cfg.Display.Scale
	if saved != nil && saved.Scale > 0 {
		scale = saved.Scale
	}
	ebiten.SetWindowSize(cfg.Display.Width*scale, cfg.Display.Height*scale)
	if saved != nil {
		ebiten.SetFullscreen(saved.Fullscreen)
	}
}

func lastLevelSettings(conf PlayConfig, level string) *systems.SavedSettings {
	saved, err := conf.Persistence.LoadSettings()
	if err != nil || saved == nil {
		saved = &systems.SavedSettings{Scale: cfg.Display.Scale}
	}
	saved.LastLevel = level
	return saved
}

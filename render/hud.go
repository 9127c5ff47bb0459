package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/tileplat/fonts"
	"github.com/automoto/tileplat/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudMargin     = 4
	hudLineHeight = 10
	dashBarWidth  = 40
	dashBarHeight = 3
)

var (
	hudTextColor = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	hudBarBack   = color.RGBA{40, 40, 40, 255}
	hudBarFill   = color.RGBA{0x6a, 0xc8, 0xff, 0xff}
)

// HUDInfo is what the overlay shows.
type HUDInfo struct {
	Level     string
	Tick      int
	Resets    int
	Kills     int
	Counts    simulation.Counts
	DashTimer int
	DashMax   int
	Recording bool
}

// DrawHUD renders the stats overlay in the top-left corner.
func DrawHUD(screen *ebiten.Image, info HUDInfo) {
	face := fonts.HUDSmall.Get()
	lines := []string{
		fmt.Sprintf("%s  t=%d", info.Level, info.Tick),
		fmt.Sprintf("kills %d  resets %d", info.Kills, info.Resets),
		fmt.Sprintf("enemies %d", info.Counts.Enemies),
	}
	if info.Recording {
		lines = append(lines, "REC")
	}
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+hudLineHeight*(i+1), hudTextColor)
	}

	if info.DashMax <= 0 {
		return
	}
	// Dash cooldown bar, full when a dash is available.
	y := float32(hudMargin + hudLineHeight*len(lines) + 4)
	vector.FillRect(screen, hudMargin, y, dashBarWidth, dashBarHeight, hudBarBack, false)
	ratio := 1 - float32(info.DashTimer)/float32(info.DashMax)
	vector.FillRect(screen, hudMargin, y, dashBarWidth*ratio, dashBarHeight, hudBarFill, false)
}

// DrawFade darkens the whole screen by alpha in [0, 1].
func DrawFade(screen *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	a := uint8(min(alpha, 1) * 0xff)
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{0, 0, 0, a}, false)
}

// DrawBanner prints a centered line with the title face.
func DrawBanner(screen *ebiten.Image, msg string) {
	face := fonts.Title.Get()
	bounds := text.BoundString(face, msg)
	b := screen.Bounds()
	x := (b.Dx() - bounds.Dx()) / 2
	y := b.Dy() / 2
	text.Draw(screen, msg, face, x, y, hudTextColor)
}

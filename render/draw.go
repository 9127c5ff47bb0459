package render

import (
	"image/color"

	"github.com/automoto/tileplat/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	drawOp     = &ebiten.DrawImageOptions{}
	sparkColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	whitePixel = func() *ebiten.Image {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		return img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
	}()
)

// Draw renders commands in order.
func Draw(screen *ebiten.Image, bank *Bank, cmds []systems.DrawCommand) {
	for i := range cmds {
		cmd := &cmds[i]
		if cmd.Polygon != nil {
			drawPolygon(screen, cmd)
			continue
		}
		img := bank.Image(cmd.Sprite, cmd.Frame)
		if img == nil {
			continue
		}
		drawSprite(screen, img, cmd)
	}
}

func drawSprite(screen, img *ebiten.Image, cmd *systems.DrawCommand) {
	size := img.Bounds().Size()
	w, h := float64(size.X), float64(size.Y)

	x, y := cmd.X, cmd.Y
	switch cmd.Anchor {
	case systems.AnchorCenter:
		x -= w / 2
		y -= h / 2
	case systems.AnchorTopRight:
		x -= w
	}

	drawOp.GeoM.Reset()
	if cmd.FlipX {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(w, 0)
	}
	drawOp.GeoM.Translate(float64(int(x)), float64(int(y)))
	screen.DrawImage(img, drawOp)
}

func drawPolygon(screen *ebiten.Image, cmd *systems.DrawCommand) {
	var path vector.Path
	for i, p := range cmd.Polygon {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(sparkColor.R) / 0xff
		vs[i].ColorG = float32(sparkColor.G) / 0xff
		vs[i].ColorB = float32(sparkColor.B) / 0xff
		vs[i].ColorA = 1
	}
	screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: false})
}

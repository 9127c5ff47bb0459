// Package render draws simulation draw lists with ebiten.
package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"path"

	cfg "github.com/automoto/tileplat/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Bank resolves sprite keys to images. Tables are dense, indexed by
// category, then variant or action, then frame.
type Bank struct {
	images [cfg.SpriteCategoryCount][][]*ebiten.Image
}

// placeholderSizes is the image size used when no art is loaded.
var placeholderSizes = [cfg.SpriteCategoryCount]image.Point{
	cfg.SpriteGrass:      {16, 16},
	cfg.SpriteStone:      {16, 16},
	cfg.SpriteDecor:      {12, 10},
	cfg.SpriteLargeDecor: {32, 32},
	cfg.SpriteSpawner:    {16, 16},
	cfg.SpritePlayer:     {14, 18},
	cfg.SpriteEnemy:      {14, 18},
	cfg.SpriteParticle:   {3, 3},
	cfg.SpriteGun:        {7, 4},
	cfg.SpriteProjectile: {5, 2},
	cfg.SpriteCloud:      {48, 18},
}

var placeholderColors = [cfg.SpriteCategoryCount]color.RGBA{
	cfg.SpriteGrass:      {0x4c, 0x9a, 0x3a, 0xff},
	cfg.SpriteStone:      {0x6b, 0x6f, 0x7a, 0xff},
	cfg.SpriteDecor:      {0xd9, 0xb3, 0x4f, 0xff},
	cfg.SpriteLargeDecor: {0x2e, 0x6b, 0x2f, 0xff},
	cfg.SpriteSpawner:    {0xff, 0x00, 0xff, 0x80},
	cfg.SpritePlayer:     {0x1e, 0x1e, 0x2e, 0xff},
	cfg.SpriteEnemy:      {0xa8, 0x32, 0x32, 0xff},
	cfg.SpriteParticle:   {0xf5, 0xf5, 0xf5, 0xff},
	cfg.SpriteGun:        {0x30, 0x30, 0x30, 0xff},
	cfg.SpriteProjectile: {0xff, 0xe0, 0x6a, 0xff},
	cfg.SpriteCloud:      {0xff, 0xff, 0xff, 0xc0},
}

// NewBank loads art from fsys laid out as {category}/{variant-or-action}/
// {frame}.png. Anything missing, or everything when fsys is nil, gets a
// flat placeholder.
func NewBank(fsys fs.FS) (*Bank, error) {
	b := &Bank{}
	for c := cfg.SpriteCategory(0); c < cfg.SpriteCategoryCount; c++ {
		if c == cfg.SpriteSpark {
			continue
		}
		variants := cfg.Variants(c)
		b.images[c] = make([][]*ebiten.Image, variants)
		for v := 0; v < variants; v++ {
			key := cfg.SpriteKey{Category: c, Index: v}
			frames, err := loadFrames(fsys, key)
			if err != nil {
				return nil, err
			}
			b.images[c][v] = frames
		}
	}
	return b, nil
}

func loadFrames(fsys fs.FS, key cfg.SpriteKey) ([]*ebiten.Image, error) {
	n := max(cfg.FrameCount(key), 1)
	frames := make([]*ebiten.Image, n)
	for f := 0; f < n; f++ {
		img, err := loadImage(fsys, path.Join(key.String(), fmt.Sprintf("%d.png", f)))
		if err != nil {
			return nil, err
		}
		if img == nil {
			img = placeholder(key, f)
		}
		frames[f] = img
	}
	return frames, nil
}

func loadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	if fsys == nil {
		return nil, nil
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, nil
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", name, err)
	}
	return ebiten.NewImageFromImage(src), nil
}

// placeholder is a flat box; animated frames pulse slightly so motion
// reads on screen.
func placeholder(key cfg.SpriteKey, frame int) *ebiten.Image {
	size := placeholderSizes[key.Category]
	if key.Category == cfg.SpriteLargeDecor && key.Index == 2 {
		size = image.Point{X: 31, Y: 26}
	}
	img := ebiten.NewImage(size.X, size.Y)
	c := placeholderColors[key.Category]
	if frame%2 == 1 {
		c.R, c.G, c.B = c.R/8*7, c.G/8*7, c.B/8*7
	}
	img.Fill(c)
	return img
}

// Image returns the frame for key, clamping out-of-range frames. It is nil
// for keys the bank has no table for.
func (b *Bank) Image(key cfg.SpriteKey, frame int) *ebiten.Image {
	if key.Category < 0 || key.Category >= cfg.SpriteCategoryCount {
		return nil
	}
	variants := b.images[key.Category]
	if key.Index < 0 || key.Index >= len(variants) {
		return nil
	}
	frames := variants[key.Index]
	if len(frames) == 0 {
		return nil
	}
	return frames[max(0, min(frame, len(frames)-1))]
}

// Size reports the size of a key's first frame.
func (b *Bank) Size(key cfg.SpriteKey) (int, int) {
	img := b.Image(key, 0)
	if img == nil {
		return 0, 0
	}
	s := img.Bounds().Size()
	return s.X, s.Y
}

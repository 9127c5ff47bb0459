package systems

import (
	"math"
	"math/rand"
	"sort"

	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/gamemath"
)

type cloud struct {
	pos     gamemath.Vec2
	variant int
	speed   float64
	depth   float64
}

// Clouds is the parallax background layer. Deeper clouds scroll slower and
// are drawn first.
type Clouds struct {
	clouds []cloud
}

func NewClouds(rng *rand.Rand) *Clouds {
	variants := cfg.Variants(cfg.SpriteCloud)
	c := &Clouds{clouds: make([]cloud, cfg.Clouds.Count)}
	for i := range c.clouds {
		c.clouds[i] = cloud{
			pos: gamemath.Vec2{
				X: rng.Float64() * cfg.Clouds.Spread,
				Y: rng.Float64() * cfg.Clouds.Spread,
			},
			variant: rng.Intn(max(variants, 1)),
			speed:   rng.Float64()*cfg.Clouds.SpeedRange + cfg.Clouds.MinSpeed,
			depth:   rng.Float64()*cfg.Clouds.DepthRange + cfg.Clouds.MinDepth,
		}
	}
	sort.SliceStable(c.clouds, func(i, j int) bool {
		return c.clouds[i].depth < c.clouds[j].depth
	})
	return c
}

func (c *Clouds) Update() {
	for i := range c.clouds {
		c.clouds[i].pos.X += c.clouds[i].speed
	}
}

// DrawList places every cloud on screen, wrapping around the edges. size
// reports the image size of a cloud sprite.
func (c *Clouds) DrawList(camera gamemath.Vec2, screenW, screenH int, size func(cfg.SpriteKey) (int, int)) []DrawCommand {
	cmds := make([]DrawCommand, 0, len(c.clouds))
	for _, cl := range c.clouds {
		key := cfg.SpriteKey{Category: cfg.SpriteCloud, Index: cl.variant}
		w, h := size(key)
		x := cl.pos.X - camera.X*cl.depth
		y := cl.pos.Y - camera.Y*cl.depth
		cmds = append(cmds, DrawCommand{
			Sprite: key,
			X:      wrap(x, float64(screenW+w)) - float64(w),
			Y:      wrap(y, float64(screenH+h)) - float64(h),
		})
	}
	return cmds
}

// wrap is a modulo that is never negative.
func wrap(v, m float64) float64 {
	if m <= 0 {
		return v
	}
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}

package config

import (
	"fmt"

	"github.com/automoto/tileplat/shared/leveldata"
)

// SpriteCategory is the first half of a sprite key.
type SpriteCategory int

const (
	SpriteGrass SpriteCategory = iota
	SpriteStone
	SpriteDecor
	SpriteLargeDecor
	SpriteSpawner
	SpritePlayer
	SpriteEnemy
	SpriteParticle
	SpriteGun
	SpriteProjectile
	SpriteCloud
	SpriteSpark // drawn as a polygon, never blitted
	SpriteCategoryCount
)

var spriteCategoryNames = [SpriteCategoryCount]string{
	SpriteGrass:      "grass",
	SpriteStone:      "stone",
	SpriteDecor:      "decor",
	SpriteLargeDecor: "large_decor",
	SpriteSpawner:    "spawners",
	SpritePlayer:     "player",
	SpriteEnemy:      "enemy",
	SpriteParticle:   "particle",
	SpriteGun:        "gun",
	SpriteProjectile: "projectile",
	SpriteCloud:      "clouds",
	SpriteSpark:      "spark",
}

func (c SpriteCategory) String() string {
	if c < 0 || c >= SpriteCategoryCount {
		return "unknown"
	}
	return spriteCategoryNames[c]
}

// SpriteKey identifies one image set. Index is a tile variant, an ActionID
// for entities or a ParticleKind for particles.
type SpriteKey struct {
	Category SpriteCategory
	Index    int
}

// String renders the key as "{category}/{variant-or-action}".
func (k SpriteKey) String() string {
	switch k.Category {
	case SpritePlayer, SpriteEnemy:
		return k.Category.String() + "/" + ActionID(k.Index).String()
	case SpriteParticle:
		return k.Category.String() + "/" + ParticleKind(k.Index).String()
	default:
		return fmt.Sprintf("%s/%d", k.Category, k.Index)
	}
}

// TileSprite maps a tile kind to its sprite category.
func TileSprite(kind leveldata.Kind) SpriteCategory {
	switch kind {
	case leveldata.KindGrass:
		return SpriteGrass
	case leveldata.KindStone:
		return SpriteStone
	case leveldata.KindDecor:
		return SpriteDecor
	case leveldata.KindLargeDecor:
		return SpriteLargeDecor
	default:
		return SpriteSpawner
	}
}

// AnimationDef describes one animation: Frames images shown Duration ticks each.
type AnimationDef struct {
	Frames   int
	Duration int
	Loop     bool
}

// EntityAnimations is indexed by SpriteCategory (player/enemy) then ActionID.
var EntityAnimations = map[SpriteCategory][ActionCount]AnimationDef{
	SpritePlayer: {
		ActionIdle:      {Frames: 22, Duration: 6, Loop: true},
		ActionRun:       {Frames: 8, Duration: 4, Loop: true},
		ActionJump:      {Frames: 1, Duration: 5, Loop: true},
		ActionWallSlide: {Frames: 1, Duration: 5, Loop: true},
	},
	SpriteEnemy: {
		ActionIdle:      {Frames: 16, Duration: 6, Loop: true},
		ActionRun:       {Frames: 8, Duration: 4, Loop: true},
		ActionJump:      {Frames: 16, Duration: 6, Loop: true},
		ActionWallSlide: {Frames: 16, Duration: 6, Loop: true},
	},
}

// ParticleAnimations is indexed by ParticleKind.
var ParticleAnimations = [ParticleKindCount]AnimationDef{
	ParticleLeaf:  {Frames: 18, Duration: 20, Loop: false},
	ParticleBurst: {Frames: 4, Duration: 5, Loop: false},
}

// SpriteFrames is how many images each sprite key resolves to. Tile
// categories list one image per variant.
var SpriteFrames = map[SpriteCategory][]int{
	SpriteGrass:      {1, 1, 1, 1, 1, 1, 1, 1, 1},
	SpriteStone:      {1, 1, 1, 1, 1, 1, 1, 1, 1},
	SpriteDecor:      {1, 1, 1, 1},
	SpriteLargeDecor: {1, 1, 1},
	SpriteSpawner:    {1, 1},
	SpriteGun:        {1},
	SpriteProjectile: {1},
	SpriteCloud:      {1, 1},
}

// Variants returns the number of sprite variants a category has.
func Variants(c SpriteCategory) int {
	switch c {
	case SpritePlayer, SpriteEnemy:
		return int(ActionCount)
	case SpriteParticle:
		return int(ParticleKindCount)
	}
	return len(SpriteFrames[c])
}

// FrameCount returns how many images key resolves to.
func FrameCount(key SpriteKey) int {
	switch key.Category {
	case SpritePlayer, SpriteEnemy:
		return EntityAnimations[key.Category][key.Index].Frames
	case SpriteParticle:
		return ParticleAnimations[key.Index].Frames
	}
	frames := SpriteFrames[key.Category]
	if key.Index < 0 || key.Index >= len(frames) {
		return 0
	}
	return frames[key.Index]
}

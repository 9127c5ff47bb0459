package components

import (
	"github.com/automoto/tileplat/assets/animations"
	"github.com/automoto/tileplat/config"
	"github.com/yohamta/donburi"
)

// AnimationData pairs an entity's current action with its frame cursor.
type AnimationData struct {
	Category config.SpriteCategory
	Action   config.ActionID
	Current  animations.Animation
}

// NewAnimationData starts an entity of the given sprite category on Idle.
func NewAnimationData(category config.SpriteCategory) AnimationData {
	a := AnimationData{Category: category, Action: config.ActionIdle}
	a.Current = newEntityAnimation(category, config.ActionIdle)
	return a
}

// SetAction switches animations. Setting the current action again keeps the
// cursor where it is.
func (a *AnimationData) SetAction(action config.ActionID) {
	if a.Action == action {
		return
	}
	a.Action = action
	a.Current = newEntityAnimation(a.Category, action)
}

// Sprite is the key the renderer resolves to an image set.
func (a *AnimationData) Sprite() config.SpriteKey {
	return config.SpriteKey{Category: a.Category, Index: int(a.Action)}
}

func newEntityAnimation(category config.SpriteCategory, action config.ActionID) animations.Animation {
	def := config.EntityAnimations[category][action]
	return animations.NewAnimation(def.Frames, def.Duration, def.Loop)
}

var Animation = donburi.NewComponentType[AnimationData]()

package config

// ActionID is the animation action an entity is currently showing.
type ActionID int

const (
	ActionIdle ActionID = iota
	ActionRun
	ActionJump
	ActionWallSlide
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionIdle:      "idle",
	ActionRun:       "run",
	ActionJump:      "jump",
	ActionWallSlide: "wall_slide",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParticleKind selects a particle's animation and behavior.
type ParticleKind int

const (
	ParticleLeaf ParticleKind = iota
	ParticleBurst
	ParticleKindCount
)

var particleNames = map[ParticleKind]string{
	ParticleLeaf:  "leaf",
	ParticleBurst: "particle",
}

func (k ParticleKind) String() string {
	if name, ok := particleNames[k]; ok {
		return name
	}
	return "unknown"
}

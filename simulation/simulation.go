// Package simulation runs the platformer one fixed tick at a time, without
// any window or audio. The runner and the replay tools both drive it.
package simulation

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/automoto/tileplat/components"
	cfg "github.com/automoto/tileplat/config"
	"github.com/automoto/tileplat/shared/gamemath"
	"github.com/automoto/tileplat/shared/leveldata"
	"github.com/automoto/tileplat/systems"
	"github.com/automoto/tileplat/systems/factory"
	"github.com/automoto/tileplat/tags"
	"github.com/automoto/tileplat/tilemap"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// Input is one tick of player input. Left and Right are held; Jump and
// Dash fire once per press.
type Input struct {
	Left, Right bool
	Jump, Dash  bool
}

// StepResult reports what happened during a tick.
type StepResult struct {
	Tick  int
	Kills int
	Hit   bool // a projectile hit the player
	Reset bool // the player died and the level was rebuilt
}

// Counts is the number of live entities by kind.
type Counts struct {
	Enemies     int
	Particles   int
	Sparks      int
	Projectiles int
}

// PlayerView is a read-only copy of the player's state.
type PlayerView struct {
	Pos       gamemath.Vec2
	Vel       gamemath.Vec2
	Flip      bool
	Action    cfg.ActionID
	AirTime   int
	Jumps     int
	WallSlide bool
	DashTimer int
	Dashing   bool
	Dead      bool
}

type Option func(*Simulation)

// WithSeed fixes the random source. Equal seeds and equal inputs give
// equal runs.
func WithSeed(seed int64) Option {
	return func(s *Simulation) {
		s.seed = seed
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// Simulation owns the world built from a level and steps it.
type Simulation struct {
	level  *leveldata.Level
	world  donburi.World
	rng    *rand.Rand
	seed   int64
	tick   int
	resets int
	logger *log.Logger
}

// New validates the level and builds the first world from it. The level is
// kept as the pristine copy every reset starts from.
func New(level *leveldata.Level, opts ...Option) (*Simulation, error) {
	s := &Simulation{
		level: level,
		seed:  1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.rng = rand.New(rand.NewSource(s.seed))

	if err := s.build(); err != nil {
		return nil, err
	}
	systems.SnapCamera(s.world)
	return s, nil
}

func (s *Simulation) build() error {
	grid, err := tilemap.Load(s.level)
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	w := donburi.NewWorld()
	factory.CreateLevel(w, grid, s.rng)
	s.world = w
	return nil
}

// Reset rebuilds the world from the pristine level. The random source and
// the camera carry over.
func (s *Simulation) Reset() error {
	var camera gamemath.Vec2
	if e, ok := components.Camera.First(s.world); ok {
		camera = components.Camera.Get(e).Position
	}
	if err := s.build(); err != nil {
		return err
	}
	if e, ok := components.Camera.First(s.world); ok {
		components.Camera.Get(e).Position = camera
	}
	s.resets++
	s.logger.Debug("level reset", "tick", s.tick, "resets", s.resets)
	return nil
}

// Step advances the world by one tick.
func (s *Simulation) Step(in Input) StepResult {
	w := s.world
	res := StepResult{Tick: s.tick}

	if e, ok := components.Input.First(w); ok {
		components.Input.SetValue(e, components.InputData{
			Left:  in.Left,
			Right: in.Right,
			Jump:  in.Jump,
			Dash:  in.Dash,
		})
	}
	systems.ApplyInput(w)

	factory.Apply(w, systems.UpdatePlayer(w))

	for _, e := range systems.Enemies(w) {
		factory.Apply(w, systems.UpdateEnemy(w, e))
		if systems.DashKill(w, e) {
			res.Kills++
			s.logger.Debug("enemy killed", "tick", s.tick)
		}
	}

	systems.UpdateParticles(w)
	systems.SpawnLeaves(w)
	res.Hit = systems.UpdateProjectiles(w)
	systems.UpdateSparks(w)
	systems.UpdateCamera(w)

	s.tick++

	if s.Player().Dead {
		if err := s.Reset(); err != nil {
			s.logger.Error("reset failed", "err", err)
		} else {
			res.Reset = true
		}
	}
	return res
}

// Tick is the number of steps taken so far.
func (s *Simulation) Tick() int {
	return s.tick
}

// Resets is how many times the level has been rebuilt.
func (s *Simulation) Resets() int {
	return s.resets
}

// World exposes the live world for renderers. It is replaced on reset.
func (s *Simulation) World() donburi.World {
	return s.world
}

func (s *Simulation) Player() PlayerView {
	e, ok := tags.Player.First(s.world)
	if !ok {
		return PlayerView{}
	}
	b := components.Body.Get(e)
	p := components.Player.Get(e)
	return PlayerView{
		Pos:       b.Pos,
		Vel:       b.Vel,
		Flip:      b.Flip,
		Action:    components.Animation.Get(e).Action,
		AirTime:   p.AirTime,
		Jumps:     p.Jumps,
		WallSlide: p.WallSlide,
		DashTimer: p.DashTimer,
		Dashing:   p.IsDashing(),
		Dead:      p.Dead,
	}
}

func (s *Simulation) Counts() Counts {
	return Counts{
		Enemies:     count(s.world, tags.Enemy),
		Particles:   count(s.world, tags.Particle),
		Sparks:      count(s.world, tags.Spark),
		Projectiles: count(s.world, tags.Projectile),
	}
}

func count(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}

// Camera is the whole-pixel view offset.
func (s *Simulation) Camera() gamemath.Vec2 {
	return systems.CameraOffset(s.world)
}

// DrawList lists the frame's draw commands relative to camera.
func (s *Simulation) DrawList(camera gamemath.Vec2) []systems.DrawCommand {
	return systems.DrawList(s.world, camera)
}

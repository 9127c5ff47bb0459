// Package replay records simulation input and plays it back. Recordings
// are kept in SQLite with their input encoded as MessagePack.
package replay

import (
	"errors"
	"fmt"

	"github.com/automoto/tileplat/shared/leveldata"
	"github.com/automoto/tileplat/simulation"
	"github.com/vmihailenco/msgpack/v5"
)

const tapeVersion = 1

var (
	ErrNotFound     = errors.New("replay: recording not found")
	ErrHashMismatch = errors.New("replay: final hash mismatch")
	ErrBadTape      = errors.New("replay: unsupported tape")
)

const (
	keyLeft = 1 << iota
	keyRight
	keyJump
	keyDash
)

func packInput(in simulation.Input) uint8 {
	var b uint8
	if in.Left {
		b |= keyLeft
	}
	if in.Right {
		b |= keyRight
	}
	if in.Jump {
		b |= keyJump
	}
	if in.Dash {
		b |= keyDash
	}
	return b
}

func unpackInput(b uint8) simulation.Input {
	return simulation.Input{
		Left:  b&keyLeft != 0,
		Right: b&keyRight != 0,
		Jump:  b&keyJump != 0,
		Dash:  b&keyDash != 0,
	}
}

// tape is the encoded form of a recording's input.
type tape struct {
	Version int     `msgpack:"v"`
	Seed    int64   `msgpack:"s"`
	Frames  []uint8 `msgpack:"f"`
}

// Recording is one recorded run: the seed, every tick's input and the
// hash the run ended on.
type Recording struct {
	ID        int64
	Name      string
	Level     string
	Seed      int64
	Inputs    []simulation.Input
	FinalHash uint64
}

func (r *Recording) Ticks() int {
	return len(r.Inputs)
}

func encodeTape(seed int64, inputs []simulation.Input) ([]byte, error) {
	t := tape{Version: tapeVersion, Seed: seed, Frames: make([]uint8, len(inputs))}
	for i, in := range inputs {
		t.Frames[i] = packInput(in)
	}
	data, err := msgpack.Marshal(&t)
	if err != nil {
		return nil, fmt.Errorf("encode tape: %w", err)
	}
	return data, nil
}

func decodeTape(data []byte) (int64, []simulation.Input, error) {
	var t tape
	if err := msgpack.Unmarshal(data, &t); err != nil {
		return 0, nil, fmt.Errorf("decode tape: %w", err)
	}
	if t.Version != tapeVersion {
		return 0, nil, fmt.Errorf("%w: version %d", ErrBadTape, t.Version)
	}
	inputs := make([]simulation.Input, len(t.Frames))
	for i, b := range t.Frames {
		inputs[i] = unpackInput(b)
	}
	return t.Seed, inputs, nil
}

// Recorder wraps a simulation and keeps every input it is stepped with.
type Recorder struct {
	sim    *simulation.Simulation
	seed   int64
	inputs []simulation.Input
}

func NewRecorder(level *leveldata.Level, seed int64, opts ...simulation.Option) (*Recorder, error) {
	opts = append(opts, simulation.WithSeed(seed))
	sim, err := simulation.New(level, opts...)
	if err != nil {
		return nil, err
	}
	return &Recorder{sim: sim, seed: seed}, nil
}

func (r *Recorder) Step(in simulation.Input) simulation.StepResult {
	r.inputs = append(r.inputs, in)
	return r.sim.Step(in)
}

func (r *Recorder) Simulation() *simulation.Simulation {
	return r.sim
}

// Recording snapshots what has been recorded so far.
func (r *Recorder) Recording(name, level string) *Recording {
	inputs := make([]simulation.Input, len(r.inputs))
	copy(inputs, r.inputs)
	return &Recording{
		Name:      name,
		Level:     level,
		Seed:      r.seed,
		Inputs:    inputs,
		FinalHash: r.sim.Hash(),
	}
}

// Play runs a recording against a level and returns the simulation it
// ended in. The final hash must match the one recorded.
func Play(level *leveldata.Level, rec *Recording, opts ...simulation.Option) (*simulation.Simulation, error) {
	opts = append(opts, simulation.WithSeed(rec.Seed))
	sim, err := simulation.New(level, opts...)
	if err != nil {
		return nil, err
	}
	for _, in := range rec.Inputs {
		sim.Step(in)
	}
	if got := sim.Hash(); got != rec.FinalHash {
		return sim, fmt.Errorf("%w: recorded %016x, got %016x", ErrHashMismatch, rec.FinalHash, got)
	}
	return sim, nil
}

package simulation

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/DebuggersLV/ants.debuggers.lv/pkg/behavior"
	"github.com/DebuggersLV/ants.debuggers.lv/pkg/geometry"
	golog "github.com/tochemey/goakt/v3/log"
)

// World owns the whole simulation state: space, field, agents, objects and clock.
// It is not safe for concurrent use; WorldActor serialises access to it.
type World struct {
	cfg     *Config
	torus   geometry.Torus
	field   *Field
	clock   *Clock
	agents  []Agent
	objects []Object

	rng    *rand.Rand
	sink   RenderSink
	logger golog.Logger
}

// Option customises a World at creation.
type Option func(*World)

// WithRand replaces the random source seeded from Config.Seed.
func WithRand(r *rand.Rand) Option {
	return func(w *World) { w.rng = r }
}

// WithSink sets where a Snapshot is delivered after every step.
func WithSink(s RenderSink) Option {
	return func(w *World) { w.sink = s }
}

// WithLogger sets the logger used for pick and drop events.
func WithLogger(l golog.Logger) Option {
	return func(w *World) { w.logger = l }
}

// NewWorld validates cfg, scatters agents and objects, and runs the first emission.
func NewWorld(cfg *Config, opts ...Option) (*World, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	torus := geometry.Torus{Width: cfg.WorldWidth, Height: cfg.WorldHeight}
	w := &World{
		cfg:     cfg,
		torus:   torus,
		field:   NewField(torus, cfg.BroadcastRadius),
		clock:   NewClock(cfg.TimeStep, cfg.AvailableTime),
		agents:  make([]Agent, cfg.NumAgents),
		objects: make([]Object, cfg.NumObjects),
		sink:    DiscardSink,
		logger:  golog.DiscardLogger,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		w.rng = rand.New(rand.NewPCG(seed, seed))
	}

	w.scatter()
	w.field.Rebuild(w.objects)
	return w, nil
}

// scatter places everything uniformly on integer coordinates.
// The upper bound is inclusive and folded back onto the torus.
func (w *World) scatter() {
	for i := range w.agents {
		w.agents[i] = Agent{
			Pos:       w.randomPoint(),
			Direction: w.rng.Float64(),
			Load:      None,
		}
	}
	for i := range w.objects {
		w.objects[i] = Object{
			Pos:    w.randomPoint(),
			Picked: None,
		}
	}
}

func (w *World) randomPoint() geometry.Vector2D {
	x := float64(w.rng.IntN(w.torus.Width + 1))
	y := float64(w.rng.IntN(w.torus.Height + 1))
	return w.torus.Wrap(geometry.Vector2D{X: x, Y: y})
}

// Advance runs one step: every agent moves, carries and maybe picks or
// drops, then the field is rebuilt and the snapshot delivered.
// Agents sense the field emitted at the end of the previous step.
// Advance does nothing once the clock has halted.
func (w *World) Advance() {
	if w.clock.Halted() {
		return
	}

	now := w.clock.Now()
	action := behavior.Schedule(now)
	for i := range w.agents {
		w.move(i, now)
		w.carry(i)
		switch action {
		case behavior.Pick:
			w.pick(i)
		case behavior.Drop:
			w.drop(i)
		}
	}

	w.field.Rebuild(w.objects)
	w.clock.Tick()
	w.sink.Render(w.snapshot(now))
}

// RunFor advances at most n steps, stopping early if the clock halts,
// and returns how many steps ran.
func (w *World) RunFor(n uint64) uint64 {
	var ran uint64
	for ; ran < n && !w.clock.Halted(); ran++ {
		w.Advance()
	}
	return ran
}

// Halted reports whether the simulation reached its time budget.
func (w *World) Halted() bool {
	return w.clock.Halted()
}

// Now returns the current simulation time.
func (w *World) Now() float64 {
	return w.clock.Now()
}

// Agents returns a copy of the agents.
func (w *World) Agents() []Agent {
	return append([]Agent(nil), w.agents...)
}

// Objects returns a copy of the objects.
func (w *World) Objects() []Object {
	return append([]Object(nil), w.objects...)
}

// Carried returns the number of objects currently held.
func (w *World) Carried() int {
	n := 0
	for i := range w.agents {
		if w.agents[i].Carrying() {
			n++
		}
	}
	return n
}

// Snapshot is what a renderer gets once per step.
type Snapshot struct {
	Time    float64
	Halted  bool
	Width   int
	Height  int
	Agents  []Body
	Objects []Body
	Carried int

	AgentColor  color.RGBA
	ObjectColor color.RGBA
}

// Snapshot returns the current state for rendering.
func (w *World) Snapshot() *Snapshot {
	return w.snapshot(w.clock.Now())
}

func (w *World) snapshot(now float64) *Snapshot {
	snap := &Snapshot{
		Time:        now,
		Halted:      w.clock.Halted(),
		Width:       w.torus.Width,
		Height:      w.torus.Height,
		Agents:      make([]Body, len(w.agents)),
		Objects:     make([]Body, len(w.objects)),
		AgentColor:  w.cfg.AgentColor.Color(),
		ObjectColor: w.cfg.ObjectColor.Color(),
	}
	for i, a := range w.agents {
		snap.Agents[i] = Body{Pos: a.Pos, Radius: w.cfg.AgentSize, Held: a.Carrying()}
		if a.Carrying() {
			snap.Carried++
		}
	}
	for i, o := range w.objects {
		snap.Objects[i] = Body{Pos: o.Pos, Radius: w.cfg.ObjectSize, Held: o.Held()}
	}
	return snap
}

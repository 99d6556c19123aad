package simulation

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// WorldActor owns a World and advances it one message at a time, so the
// frame driver and any other caller never touch the state concurrently.
//
// Messages:
//   - *emptypb.Empty (Tell): advance one step.
//   - *wrapperspb.UInt64Value (Ask): advance up to Value steps, replies
//     *wrapperspb.BoolValue set to true once the clock has halted.
type WorldActor struct {
	cfg        *Config
	opts       []Option
	world      *World
	snapshotCh chan *Snapshot
	// --- Benchmark Stats ---
	stepCount   int64
	lastLogTime time.Time
	haltLogged  bool
}

var _ actor.Actor = (*WorldActor)(nil)

// NewWorldActor creates the world logic unit. Snapshots are pushed to
// snapshotCh through a ChannelSink; a nil channel disables them.
func NewWorldActor(snapshotCh chan *Snapshot, cfg *Config, opts ...Option) *WorldActor {
	return &WorldActor{
		cfg:         cfg,
		opts:        opts,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

// Tick is the message that advances the world by one step.
func Tick() *emptypb.Empty {
	return &emptypb.Empty{}
}

// RunSteps is the request that advances the world by up to n steps.
func RunSteps(n uint64) *wrapperspb.UInt64Value {
	return wrapperspb.UInt64(n)
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	opts := []Option{WithLogger(ctx.ActorSystem().Logger())}
	if w.snapshotCh != nil {
		opts = append(opts, WithSink(ChannelSink(w.snapshotCh)))
	}
	world, err := NewWorld(w.cfg, append(opts, w.opts...)...)
	if err != nil {
		return fmt.Errorf("failed to create world: %w", err)
	}
	w.world = world
	ctx.ActorSystem().Logger().Infof("World is ready: %dx%d, %d agents, %d objects, broadcast %.1f",
		w.cfg.WorldWidth, w.cfg.WorldHeight, w.cfg.NumAgents, w.cfg.NumObjects, w.cfg.BroadcastRadius)
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Info("World Started.")

	case *emptypb.Empty:
		w.advance(ctx, 1)

	case *wrapperspb.UInt64Value:
		w.advance(ctx, msg.GetValue())
		ctx.Response(wrapperspb.Bool(w.world.Halted()))

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) advance(ctx *actor.ReceiveContext, n uint64) {
	w.stepCount += int64(w.world.RunFor(n))

	w.logBenchmarks(ctx)
	if w.world.Halted() && !w.haltLogged {
		w.haltLogged = true
		ctx.Logger().Infof("Simulation halted at t=%s with %d objects carried",
			humanize.Commaf(w.world.Now()), w.world.Carried())
	}
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 STEP RATE: %s/sec | t=%s | carried: %d",
			humanize.Comma(w.stepCount), humanize.Commaf(w.world.Now()), w.world.Carried())
		w.stepCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is shutdown...")
	return nil
}

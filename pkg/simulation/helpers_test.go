package simulation

import (
	"math/rand/v2"
	"testing"

	"github.com/DebuggersLV/ants.debuggers.lv/pkg/geometry"
)

// constSource makes rand.Float64 return the same draw every time:
// constSource(0) yields 0 and ^constSource(0) yields just under 1.
// IntN may spin forever on constSource(0), so only call pick and drop
// directly with alwaysLow.
type constSource uint64

func (s constSource) Uint64() uint64 { return uint64(s) }

var (
	alwaysLow  = rand.New(constSource(0))
	alwaysHigh = rand.New(^constSource(0))
	// steady draws Float64() == 0 like alwaysLow, and IntN(101) == 50,
	// so Advance can run on it: agents only turn when t%50 == 0.
	steady = rand.New(constSource(1 << 63))
)

// inBounds reports whether v lies inside [0, Width) x [0, Height).
func inBounds(torus geometry.Torus, v geometry.Vector2D) bool {
	return v.X >= 0 && v.X < float64(torus.Width) && v.Y >= 0 && v.Y < float64(torus.Height)
}

// smallConfig is a 100x100 world with still agents and broadcast radius 4.
func smallConfig() *Config {
	return &Config{
		WorldWidth:      100,
		WorldHeight:     100,
		NumAgents:       1,
		AgentSpeed:      0,
		AgentSize:       5,
		NumObjects:      1,
		ObjectSize:      3,
		BroadcastRadius: 4,
		TimeStep:        1,
		AvailableTime:   1000,
	}
}

func newTestWorld(t *testing.T, cfg *Config) *World {
	t.Helper()
	w, err := NewWorld(cfg, WithRand(rand.New(rand.NewPCG(1, 2))))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func placeAgent(w *World, i int, x, y float64) {
	w.agents[i].Pos = geometry.Vector2D{X: x, Y: y}
}

func placeObject(w *World, i int, x, y float64) {
	w.objects[i].Pos = geometry.Vector2D{X: x, Y: y}
}

// hold makes agent a carry object o, in both directions of the relation.
func hold(w *World, a, o int) {
	w.agents[a].Load = o
	w.objects[o].Picked = a
	w.objects[o].Pos = w.agents[a].Pos
}

// parkObjects stacks objects [from, len) on one far away point.
func parkObjects(w *World, from int, x, y float64) {
	for i := from; i < len(w.objects); i++ {
		placeObject(w, i, x, y)
		w.objects[i].Picked = None
	}
}

// checkBijection fails if the load/picked relation is not one-to-one.
func checkBijection(t *testing.T, w *World) {
	t.Helper()
	for a, agent := range w.agents {
		if agent.Load == None {
			continue
		}
		if got := w.objects[agent.Load].Picked; got != a {
			t.Fatalf("agent %d loads object %d, but the object is picked by %d", a, agent.Load, got)
		}
	}
	for o, obj := range w.objects {
		if obj.Picked == None {
			continue
		}
		if got := w.agents[obj.Picked].Load; got != o {
			t.Fatalf("object %d is picked by agent %d, but the agent loads %d", o, obj.Picked, got)
		}
	}
}

package simulation

import (
	"github.com/DebuggersLV/ants.debuggers.lv/pkg/behavior"
	"github.com/DebuggersLV/ants.debuggers.lv/pkg/geometry"
)

// ============================================================================
// Movement
// ============================================================================

// move advances agent i along its heading and, with a small chance, picks a
// new heading. The chance comes from a modulus redrawn on every check, so
// turns happen at irregular intervals.
func (w *World) move(i int, now float64) {
	a := &w.agents[i]
	step := geometry.FromHeading(a.Direction, w.cfg.AgentSpeed*w.cfg.TimeStep)
	a.Pos = w.torus.Wrap(a.Pos.Add(step))

	if behavior.ShouldTurn(now, w.rng.IntN(behavior.MaxTurnModulus+1)) {
		a.Direction = w.rng.Float64()
	}
}

// carry keeps a held object on top of its carrier.
func (w *World) carry(i int) {
	a := &w.agents[i]
	if a.Carrying() {
		w.objects[a.Load].Pos = a.Pos
	}
}

// ============================================================================
// Pick / Drop
// ============================================================================

// pick lets an empty-handed agent grab the object whose signal is strongest
// where it stands. It reports whether the agent picked something.
func (w *World) pick(i int) bool {
	a := &w.agents[i]
	if a.Carrying() {
		return false
	}

	distinct := w.CountDistinct(i)
	if distinct == 0 {
		return false
	}
	closest := w.Closest(i)
	// carried objects still emit; another agent's load is off limits
	if w.objects[closest].Held() {
		return false
	}
	if !behavior.Accept(w.rng.Float64(), behavior.PickThreshold(distinct, len(w.objects))) {
		return false
	}

	o := &w.objects[closest]
	o.Pos = a.Pos
	o.Picked = i
	a.Load = closest
	w.logger.Debugf("agent %d picked object %d at %s", i, closest, a.Pos)
	return true
}

// drop releases the carried object where the agent stands, provided at
// least one other object is sensed there.
func (w *World) drop(i int) bool {
	a := &w.agents[i]
	if !a.Carrying() {
		return false
	}

	distinct := w.CountDistinct(i)
	if distinct <= 1 {
		return false
	}
	if !behavior.Accept(w.rng.Float64(), behavior.DropThreshold(distinct, len(w.objects))) {
		return false
	}

	o := &w.objects[a.Load]
	o.Pos = a.Pos
	o.Picked = None
	w.logger.Debugf("agent %d dropped object %d at %s", i, a.Load, a.Pos)
	a.Load = None
	return true
}

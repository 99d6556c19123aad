// Package behavior holds the decision rules of a foraging agent.
// The rules are pure functions of the sensed density and the clock, so the
// simulation package owns all state and randomness.
package behavior

import "math"

// Action is what an agent attempts on a given step besides moving.
type Action int

const (
	Idle Action = iota
	Pick
	Drop
)

func (a Action) String() string {
	switch a {
	case Pick:
		return "pick"
	case Drop:
		return "drop"
	default:
		return "idle"
	}
}

const (
	// PickEvery and DropEvery are the clock periods on which pick and drop are attempted.
	PickEvery = 17
	DropEvery = 7

	// PickBase is the pick probability with nothing sensed; every distinct
	// neighbour lowers it by 1/total.
	PickBase = 0.25
	// DropBase is the drop probability floor; every distinct neighbour raises it.
	DropBase = 0.75

	// MaxTurnModulus bounds the freshly drawn modulus of the heading-change check.
	MaxTurnModulus = 100
)

// Schedule returns the action attempted at time now.
// Pick wins when both periods divide now.
func Schedule(now float64) Action {
	if math.Mod(now, PickEvery) == 0 {
		return Pick
	}
	if math.Mod(now, DropEvery) == 0 {
		return Drop
	}
	return Idle
}

// PickThreshold is the upper bound a uniform draw must stay under for a pick
// to succeed. It shrinks as more distinct objects are sensed and goes
// negative, making the pick impossible, once distinct/total exceeds PickBase.
func PickThreshold(distinct, total int) float64 {
	return PickBase - float64(distinct)/float64(total)
}

// DropThreshold is the drop counterpart of PickThreshold. It exceeds 1 quickly,
// so a drop is near certain once it is attempted.
func DropThreshold(distinct, total int) float64 {
	return DropBase + float64(distinct)/float64(total)
}

// Accept reports whether the draw u in [0,1) falls under threshold.
func Accept(u, threshold float64) bool {
	return u < threshold
}

// ShouldTurn reports whether an agent picks a new heading at time now, given
// a modulus drawn uniformly from [0, MaxTurnModulus] for this very check.
// A zero modulus never triggers a turn.
func ShouldTurn(now float64, modulus int) bool {
	if modulus == 0 {
		return false
	}
	return math.Mod(now, float64(modulus)) == 0
}

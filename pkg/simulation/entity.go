package simulation

import "github.com/DebuggersLV/ants.debuggers.lv/pkg/geometry"

// None marks an empty Load or Picked slot.
const None = -1

// Agent is a forager. Its index in the World is its identity.
type Agent struct {
	Pos       geometry.Vector2D
	Direction float64 // heading as a fraction of a full turn, in [0,1)
	Load      int     // index of the carried object, or None
}

// Carrying reports whether the agent holds an object.
func (a *Agent) Carrying() bool {
	return a.Load != None
}

// Object is an item that agents gather. It never moves on its own.
type Object struct {
	Pos    geometry.Vector2D
	Picked int // index of the holding agent, or None
}

// Held reports whether some agent carries the object.
func (o *Object) Held() bool {
	return o.Picked != None
}

// Body is the read-only view of an agent or object handed to renderers.
type Body struct {
	Pos    geometry.Vector2D
	Radius float64
	Held   bool // for agents: carrying; for objects: being carried
}

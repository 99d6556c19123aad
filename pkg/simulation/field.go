package simulation

import (
	"math"

	"github.com/DebuggersLV/ants.debuggers.lv/pkg/geometry"
)

const (
	// ringStep is the radial distance between two emission rings.
	ringStep = 0.5
	// arcStep is the angular step of a ring as a fraction of a full turn (50 samples).
	arcStep = 0.02
)

// Field is the shared signal grid objects broadcast onto.
// Each cell holds the ids stamped on it, in emission order and with repeats,
// during the latest Rebuild.
type Field struct {
	torus     geometry.Torus
	broadcast float64
	cells     [][]int // column-major: cells[x*Height+y]
}

// NewField creates an empty field covering the torus.
func NewField(torus geometry.Torus, broadcast float64) *Field {
	return &Field{
		torus:     torus,
		broadcast: broadcast,
		cells:     make([][]int, torus.Width*torus.Height),
	}
}

// Rebuild discards the previous signal and lets every object emit again.
func (f *Field) Rebuild(objects []Object) {
	// Keep capacity, the same cells get stamped every step.
	for i := range f.cells {
		f.cells[i] = f.cells[i][:0]
	}
	for id := range objects {
		f.emit(id, objects[id].Pos)
	}
}

// emit stamps id on rings of growing radius around origin.
// The sample count per ring is fixed, so larger rings are sparser; repeats
// on the same cell are kept since sensing relies on their multiplicity.
func (f *Field) emit(id int, origin geometry.Vector2D) {
	for r := 1.0; r < f.broadcast; r += ringStep {
		// k accumulates in floating point, which yields 50 samples
		for k := 0.0; k < 1; k += arcStep {
			angle := k * 2 * math.Pi
			x := geometry.WrapIndex(geometry.RoundHalfUp(origin.X+r*math.Sin(angle)), f.torus.Width)
			y := geometry.WrapIndex(geometry.RoundHalfUp(origin.Y+r*math.Cos(angle)), f.torus.Height)
			idx := x*f.torus.Height + y
			f.cells[idx] = append(f.cells[idx], id)
		}
	}
}

// At returns the raw signal at cell (x, y). The slice is owned by the field
// and is only valid until the next Rebuild.
func (f *Field) At(x, y int) []int {
	return f.cells[x*f.torus.Height+y]
}

// Sample returns the raw signal in the cell containing pos.
func (f *Field) Sample(pos geometry.Vector2D) []int {
	return f.At(f.torus.Cell(pos))
}

// Stamps returns the total number of ids currently on the field.
func (f *Field) Stamps() int {
	n := 0
	for _, c := range f.cells {
		n += len(c)
	}
	return n
}

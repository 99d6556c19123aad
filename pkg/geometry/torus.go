package geometry

import "math"

// Torus is a rectangular domain whose opposite edges are adjacent.
type Torus struct {
	Width  int
	Height int
}

// Wrap folds coord back into [0, dim) with a single additive correction.
// Callers guarantee that coord is never more than one span out of range.
func Wrap(coord, dim float64) float64 {
	if coord < 0 {
		coord += dim
		// -1e-18 + dim rounds to dim in float64
		if coord >= dim {
			return 0
		}
		return coord
	}
	if coord >= dim {
		return coord - dim
	}
	return coord
}

// WrapIndex is the integer form of Wrap, used for grid cells.
func WrapIndex(i, dim int) int {
	if i < 0 {
		return dim + i
	}
	if i >= dim {
		return i - dim
	}
	return i
}

// RoundHalfUp rounds x to the nearest integer, with halves going towards +Inf.
// math.Round sends -2.5 to -3; cell lookups need -2.
// floor(x+0.5) is not used: the addition rounds 0.49999999999999994 up to 1.
func RoundHalfUp(x float64) int {
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return int(f)
}

// Wrap folds a position onto the torus.
func (t Torus) Wrap(v Vector2D) Vector2D {
	return Vector2D{
		X: Wrap(v.X, float64(t.Width)),
		Y: Wrap(v.Y, float64(t.Height)),
	}
}

// Cell returns the grid cell a continuous position falls into.
func (t Torus) Cell(v Vector2D) (int, int) {
	return WrapIndex(RoundHalfUp(v.X), t.Width), WrapIndex(RoundHalfUp(v.Y), t.Height)
}

package geometry

import (
	"fmt"
	"math"
)

// Epsilon Precision constant used by Eq.
const (
	Epsilon = 1e-9
)

// Vector2D represents a point (or displacement) on the foraging plane.
// Fields are public because they are plain data; renderers read them directly.
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FromHeading returns the displacement of length distance along a heading
// given as a fraction of a full turn.
// A heading of 0 points along +Y and a quarter turn points along +X,
// so X uses the sine and Y the cosine of the angle.
func FromHeading(turn, distance float64) Vector2D {
	angle := turn * 2 * math.Pi
	return Vector2D{
		X: distance * math.Sin(angle),
		Y: distance * math.Cos(angle),
	}
}

// String implements the fmt.Stringer interface.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Add adds two vectors and returns the result.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Eq checks if two vectors are approximately equal using the Epsilon constant.
func (v Vector2D) Eq(other Vector2D) bool {
	return math.Abs(v.X-other.X) <= Epsilon && math.Abs(v.Y-other.Y) <= Epsilon
}

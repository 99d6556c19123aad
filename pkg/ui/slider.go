package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider picks a value in [Min, Max] by dragging along its width.
// A positive Step snaps the value to multiples of Step above Min.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	Step     float64
	X, Y     float64
	W, H     float64
}

func NewSlider(x, y, width float64, label string, min, max, value, step float64) *Slider {
	return &Slider{
		Label: label,
		Value: value,
		Min:   min,
		Max:   max,
		Step:  step,
		X:     x,
		Y:     y,
		W:     width,
		H:     12,
	}
}

// Int returns the value rounded to the nearest integer.
func (s *Slider) Int() int {
	return int(math.Round(s.Value))
}

// valueAt maps a cursor abscissa to a clamped, snapped value.
func (s *Slider) valueAt(mx float64) float64 {
	v := s.Min + (mx-s.X)/s.W*(s.Max-s.Min)
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	return math.Max(s.Min, math.Min(s.Max, v))
}

func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if contains(s.X, s.Y, s.W, s.H, mx, my) {
		s.Value = s.valueAt(float64(mx))
	}
}

func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	ratio := (s.Value - s.Min) / (s.Max - s.Min)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}

func (s *Slider) GetHeight() float64 {
	return s.H
}

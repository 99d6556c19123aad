package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button calls OnClick once per press.
type Button struct {
	Label         string
	X, Y          float64
	Width, Height float64
	OnClick       func()
	Disabled      bool
	pressed       bool

	BGColor    color.RGBA
	HoverColor color.RGBA
}

func NewButton(x, y, width float64, label string, onClick func()) *Button {
	return &Button{
		Label:      label,
		X:          x,
		Y:          y,
		Width:      width,
		Height:     18,
		OnClick:    onClick,
		BGColor:    color.RGBA{R: 80, G: 120, B: 180, A: 255},
		HoverColor: color.RGBA{R: 100, G: 150, B: 220, A: 255},
	}
}

func (b *Button) hovered() bool {
	mx, my := ebiten.CursorPosition()
	return contains(b.X, b.Y, b.Width, b.Height, mx, my)
}

func (b *Button) Update() {
	if !b.Disabled && b.hovered() && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !b.pressed && b.OnClick != nil {
			b.OnClick()
		}
		b.pressed = true
		return
	}
	b.pressed = false
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BGColor
	switch {
	case b.Disabled:
		bg = color.RGBA{R: 70, G: 70, B: 75, A: 255}
	case b.hovered():
		bg = b.HoverColor
	}

	vector.FillRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bg, true)
	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		1, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
	// DebugPrint glyphs are 6px wide
	textX := b.X + (b.Width-float64(6*len(b.Label)))/2
	ebitenutil.DebugPrintAt(screen, b.Label, int(textX), int(b.Y+1))
}

func (b *Button) GetHeight() float64 {
	return b.Height
}

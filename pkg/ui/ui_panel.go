package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	labelHeight = 16
	rowGap      = 6
	margin      = 8
)

// UIWidget is anything the panel can stack.
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
}

// contains reports whether the cursor (mx, my) is inside the rectangle.
func contains(x, y, w, h float64, mx, my int) bool {
	fx, fy := float64(mx), float64(my)
	return fx >= x && fx <= x+w && fy >= y && fy <= y+h
}

// UIPanel stacks labelled widgets in a column, top to bottom.
// Widgets are positioned once, when added.
type UIPanel struct {
	Title         string
	X, Y          float64
	Width         float64
	Widgets       []UIWidget
	Labels        []string // "" draws no label line
	Hidden        bool
	BGColor       color.RGBA
	BorderColor   color.RGBA
	contentHeight float64
}

func NewUIPanel(x, y, width float64, title string) *UIPanel {
	return &UIPanel{
		Title:         title,
		X:             x,
		Y:             y,
		Width:         width,
		BGColor:       color.RGBA{R: 40, G: 40, B: 45, A: 200},
		BorderColor:   color.RGBA{R: 100, G: 100, B: 110, A: 255},
		contentHeight: labelHeight + rowGap,
	}
}

// next reserves a row and returns where its widget goes.
func (p *UIPanel) next(label string) (x, y float64) {
	y = p.Y + margin + p.contentHeight
	if label != "" {
		y += labelHeight
	}
	return p.X + margin, y
}

func (p *UIPanel) add(label string, w UIWidget) {
	p.Widgets = append(p.Widgets, w)
	p.Labels = append(p.Labels, label)
	if label != "" {
		p.contentHeight += labelHeight
	}
	p.contentHeight += w.GetHeight() + rowGap
}

func (p *UIPanel) AddSlider(label string, min, max, value, step float64) *Slider {
	x, y := p.next(label)
	s := NewSlider(x, y, p.Width-2*margin, label, min, max, value, step)
	p.add(label, s)
	return s
}

func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	x, y := p.next(label)
	c := NewCheckbox(x, y, label, value)
	p.add(label, c)
	return c
}

func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	x, y := p.next("")
	b := NewButton(x, y, p.Width-2*margin, label, onClick)
	p.add("", b)
	return b
}

// Height is the panel's full height, margins included.
func (p *UIPanel) Height() float64 {
	return p.contentHeight + 2*margin
}

func (p *UIPanel) Update() {
	if p.Hidden {
		return
	}
	for _, w := range p.Widgets {
		w.Update()
	}
}

func (p *UIPanel) Draw(screen *ebiten.Image) {
	if p.Hidden {
		return
	}
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height()),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height()),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+margin), int(p.Y+margin))
	y := p.Y + margin + labelHeight + rowGap
	for i, w := range p.Widgets {
		if p.Labels[i] != "" {
			ebitenutil.DebugPrintAt(screen, p.Labels[i], int(p.X+margin), int(y))
			y += labelHeight
		}
		w.Draw(screen)
		y += w.GetHeight() + rowGap
	}
}

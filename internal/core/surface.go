package core

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// surface fills the desktop window and reports secondary taps.
type surface struct {
	widget.BaseWidget
	onSecondary func(pos fyne.Position)
}

func newSurface(onSecondary func(pos fyne.Position)) *surface {
	s := &surface{onSecondary: onSecondary}
	s.ExtendBaseWidget(s)
	return s
}

func (s *surface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Black))
}

func (s *surface) TappedSecondary(ev *fyne.PointEvent) {
	if s.onSecondary != nil {
		s.onSecondary(ev.AbsolutePosition)
	}
}

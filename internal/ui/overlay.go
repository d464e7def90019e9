//go:build ebiten

package ui

import (
	"image/color"

	"ecosim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	graphWidth  = 200
	graphHeight = 80
	graphMargin = 8
)

// Overlay draws a population graph on top of the simulation when toggled
// with the 1 key.
type Overlay struct {
	sim     core.Sim
	history *History
	show    bool

	backdrop *ebiten.Image
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, history: NewHistory(graphWidth)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	o.backdrop = ebiten.NewImage(graphWidth, graphHeight)
	o.backdrop.Fill(color.RGBA{R: 0, G: 0, B: 0, A: 170})
	return o
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Record samples the sim's population after a step.
func (o *Overlay) Record() {
	if provider, ok := o.sim.(core.ParameterProvider); ok {
		o.history.PushSnapshot(provider.Parameters())
	}
}

// Clear drops the recorded history, e.g. after a reset.
func (o *Overlay) Clear() { o.history.Reset() }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.history.Len() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(graphMargin, graphMargin)
	screen.DrawImage(o.backdrop, op)

	herb, carn := o.history.Series(graphHeight - 1)
	o.drawSeries(screen, herb, color.RGBA{R: 90, G: 220, B: 90, A: 255})
	o.drawSeries(screen, carn, color.RGBA{R: 230, G: 90, B: 80, A: 255})
}

func (o *Overlay) drawSeries(screen *ebiten.Image, vals []int, col color.RGBA) {
	for i, v := range vals {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(graphMargin+i), float64(graphMargin+graphHeight-1-v))
		op.ColorScale.ScaleWithColor(col)
		screen.DrawImage(o.pixel, op)
	}
}

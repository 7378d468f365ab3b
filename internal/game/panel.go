package game

import (
	"github.com/iburimskiy/circular-convolution/internal/config"
	"github.com/iburimskiy/circular-convolution/internal/scene"
)

type buttonID int

const (
	buttonConvolute buttonID = iota
	buttonReset
	buttonStep
	buttonPresets
	buttonCount
)

var buttonLabels = [buttonCount]string{
	buttonConvolute: "Convolute",
	buttonReset:     "Reset",
	buttonStep:      "Step",
	buttonPresets:   "Presets",
}

// panel is the side column with the input form and buttons.
type panel struct {
	labels  map[scene.Field][2]int
	fields  map[scene.Field]rect
	buttons [buttonCount]rect
}

func newPanel(canvasSize int) panel {
	p := panel{
		labels: map[scene.Field][2]int{},
		fields: map[scene.Field]rect{},
	}

	x := canvasSize + config.PanelPadding
	w := config.PanelWidth - 2*config.PanelPadding
	y := config.PanelPadding * 2
	for _, f := range scene.Fields() {
		p.labels[f] = [2]int{x, y}
		y += 16
		p.fields[f] = rect{x: x, y: y, w: w, h: config.FieldHeight}
		y += config.FieldHeight + config.PanelRowSpace
	}

	y += config.PanelRowSpace
	for b := buttonID(0); b < buttonCount; b++ {
		p.buttons[b] = rect{x: x, y: y, w: config.ButtonWidth, h: config.ButtonHeight}
		y += config.ButtonHeight + config.PanelRowSpace
		if b == buttonReset {
			// keep Step apart from the load/reset pair
			y += config.ButtonHeight
		}
	}

	return p
}

func (p panel) fieldAt(x, y int) (scene.Field, bool) {
	for f, r := range p.fields {
		if r.contains(x, y) {
			return f, true
		}
	}
	return scene.NoField, false
}

func (p panel) buttonAt(x, y int) (buttonID, bool) {
	for b, r := range p.buttons {
		if r.contains(x, y) {
			return buttonID(b), true
		}
	}
	return buttonCount, false
}

package game

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/circular-convolution/internal/config"
	"github.com/iburimskiy/circular-convolution/internal/scene"
)

// debug font cell size
const (
	charWidth  = 6
	charHeight = 16
)

var (
	backgroundColor = color.RGBA{R: 18, G: 20, B: 28, A: 255}
	panelColor      = color.RGBA{R: 28, G: 32, B: 44, A: 255}
	outerRingColor  = color.RGBA{R: 80, G: 130, B: 255, A: 255}
	innerRingColor  = color.RGBA{R: 240, G: 80, B: 80, A: 255}
	bubbleFill      = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	axisColor       = color.RGBA{R: 100, G: 110, B: 130, A: 255}
	errorColor      = color.RGBA{R: 255, G: 120, B: 120, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawRings(screen)
	g.drawPanel(screen)
	g.drawPlot(screen)
	g.drawWaveform(screen)
}

func (g *Game) drawRings(screen *ebiten.Image) {
	c := g.canvas
	center := float32(c.Center())
	vector.StrokeCircle(screen, center, center, float32(c.OuterRadius()), 2, outerRingColor, true)
	vector.StrokeCircle(screen, center, center, float32(c.InnerRadius()), 2, innerRingColor, true)

	for _, b := range c.Bubbles(g.ctrl.Geometry(), g.ctrl.Animator().Lag()) {
		outline := outerRingColor
		if b.Ring == scene.InnerRing {
			outline = innerRingColor
		}
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), bubbleFill, true)
		vector.StrokeCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), 1.5, outline, true)

		g.drawLabel(screen, b.Label, b.X, b.Y)
	}

	if n := g.ctrl.Len(); n > 0 {
		progress := g.ctrl.Progress()
		info := fmt.Sprintf("N=%d  step %d/%d  rotation %s (target %s)", n, progress.StepIndex, n,
			formatAngle(g.ctrl.Animator().Current()), formatAngle(progress.RotationDeg))
		ebitenutil.DebugPrintAt(screen, info, 8, 8)
	}
}

// drawLabel prints dark text centred on a light bubble. The debug font is
// white, so labels are rendered once into cached images and tinted.
func (g *Game) drawLabel(screen *ebiten.Image, label string, cx, cy float64) {
	w := len(label) * charWidth
	img, ok := g.labels[label]
	if !ok {
		img = ebiten.NewImage(w, charHeight)
		ebitenutil.DebugPrint(img, label)
		g.labels[label] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(w)/2, cy-float64(charHeight)/2)
	op.ColorScale.Scale(0.1, 0.1, 0.1, 1)
	screen.DrawImage(img, op)
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	size := g.settings.Window.Size
	vector.DrawFilledRect(screen, float32(size), 0, config.PanelWidth, float32(size), panelColor, false)

	form := g.ctrl.Form()
	for _, f := range scene.Fields() {
		at := g.panel.labels[f]
		ebitenutil.DebugPrintAt(screen, form.Label(f), at[0], at[1])

		r := g.panel.fields[f]
		border := axisColor
		text := form.Value(f)
		if form.Focus() == f {
			border = color.RGBA{R: 200, G: 210, B: 240, A: 255}
			text += "_"
		}
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), color.RGBA{R: 12, G: 14, B: 20, A: 255}, false)
		vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, border, false)

		// show the tail when the text is wider than the field
		if maxChars := (r.w - 8) / charWidth; len(text) > maxChars {
			text = text[len(text)-maxChars:]
		}
		ebitenutil.DebugPrintAt(screen, text, r.x+4, r.y+(r.h-charHeight)/2)
	}

	for b := buttonID(0); b < buttonCount; b++ {
		g.drawButton(screen, b)
	}

	status := g.ctrl.Status()
	x := size + config.PanelPadding
	y := size - 3*charHeight
	if status.Failed() {
		vector.DrawFilledRect(screen, float32(x-4), float32(y-2), config.PanelWidth-2*config.PanelPadding+8, charHeight+4, color.RGBA{R: 70, G: 20, B: 20, A: 255}, false)
		vector.StrokeRect(screen, float32(x-4), float32(y-2), config.PanelWidth-2*config.PanelPadding+8, charHeight+4, 1, errorColor, false)
	}
	for i, line := range scene.WrapText(status.Text, (config.PanelWidth-2*config.PanelPadding)/charWidth) {
		ebitenutil.DebugPrintAt(screen, line, x, y+i*charHeight)
	}
}

func (g *Game) drawButton(screen *ebiten.Image, b buttonID) {
	r := g.panel.buttons[b]

	var bgColor color.Color
	switch {
	case g.pressedButton == b && g.hoveredButton == b:
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	case g.hoveredButton == b:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	default:
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 2, borderColor, false)

	text := buttonLabels[b]
	textX := r.x + (r.w-len(text)*charWidth)/2
	textY := r.y + (r.h-charHeight)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *Game) plotArea() scene.Rect {
	x := float64(g.settings.Window.Size + config.PanelWidth + config.PlotPadding)
	return scene.Rect{
		X: x,
		Y: config.PlotPadding,
		W: config.PlotWidth - 2*config.PlotPadding,
		H: float64(g.settings.Window.Size) * 0.6,
	}
}

func (g *Game) drawPlot(screen *ebiten.Image) {
	area := g.plotArea()
	results := g.ctrl.Progress().Results
	p := scene.LayoutPlot(area, results, g.ctrl.Len())

	ebitenutil.DebugPrintAt(screen, "CC output", int(area.X), int(area.Y)-charHeight-4)
	ebitenutil.DebugPrintAt(screen, "Time, samples", int(area.X+area.W)-13*charWidth, int(area.Y+area.H)+charHeight+4)

	vector.StrokeRect(screen, float32(area.X), float32(area.Y), float32(area.W), float32(area.H), 1, axisColor, false)
	for _, t := range p.Ticks {
		vector.StrokeLine(screen, float32(area.X-4), float32(t.Y), float32(area.X), float32(t.Y), 1, axisColor, false)
		label := strconv.Itoa(t.Value)
		ebitenutil.DebugPrintAt(screen, label, int(area.X)-6-len(label)*charWidth, int(t.Y)-charHeight/2)
	}
	vector.StrokeLine(screen, float32(area.X), float32(p.ZeroY), float32(area.X+area.W), float32(p.ZeroY), 1, axisColor, false)

	for _, s := range p.Stems {
		stemColor := scene.StemColor(s.Index, max(len(results), g.ctrl.Len()))

		vector.StrokeLine(screen, float32(s.X), float32(s.BaseY), float32(s.X), float32(s.TopY), 2, stemColor, true)
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.TopY), 4, stemColor, true)

		idx := strconv.Itoa(s.Index)
		ebitenutil.DebugPrintAt(screen, idx, int(s.X)-len(idx)*charWidth/2, int(area.Y+area.H)+2)
	}
}

func (g *Game) drawWaveform(screen *ebiten.Image) {
	wave := g.cue.waveform()
	if len(wave) < 2 {
		return
	}

	area := g.plotArea()
	top := area.Y + area.H + 3*charHeight
	height := float64(g.settings.Window.Size) - top - config.PlotPadding
	if height <= 0 {
		return
	}
	mid := top + height/2

	vector.StrokeRect(screen, float32(area.X), float32(top), float32(area.W), float32(height), 1, axisColor, false)
	dx := area.W / float64(len(wave)-1)
	for i := 1; i < len(wave); i++ {
		y0 := mid - wave[i-1]*height/2
		y1 := mid - wave[i]*height/2
		a := uint8(80 + 175*i/len(wave))
		vector.StrokeLine(screen, float32(area.X+float64(i-1)*dx), float32(y0), float32(area.X+float64(i)*dx), float32(y1), 1, color.RGBA{R: 120, G: 220, B: 160, A: a}, false)
	}
}

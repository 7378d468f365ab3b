package game

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/circular-convolution/internal/config"
	"github.com/iburimskiy/circular-convolution/internal/scene"
)

// Game is the ebiten front end of the visualizer.
type Game struct {
	settings config.Settings
	ctrl     *scene.Controller
	canvas   scene.Canvas
	panel    panel
	cue      *cue
	dialogs  *dialogs
	log      *slog.Logger
	labels   map[string]*ebiten.Image

	// input
	runes         []rune
	hoveredButton buttonID
	pressedButton buttonID
	nextPreset    int
}

func New(settings config.Settings, log *slog.Logger) *Game {
	g := &Game{
		settings:      settings,
		ctrl:          scene.NewController(log, settings.Animation.RotateRateDeg),
		canvas:        scene.Canvas{Size: float64(settings.Window.Size)},
		panel:         newPanel(settings.Window.Size),
		cue:           newCue(settings.Sound, log),
		dialogs:       newDialogs(settings.Dialogs.Enabled, log),
		log:           log,
		labels:        map[string]*ebiten.Image{},
		hoveredButton: buttonCount,
		pressedButton: buttonCount,
	}
	g.ctrl.OnStep(g.cue.play)
	return g
}

// Prefill puts signals into the form, as if typed.
func (g *Game) Prefill(first, second, zeros string) {
	f := g.ctrl.Form()
	f.SetValue(scene.FieldFirst, first)
	f.SetValue(scene.FieldSecond, second)
	f.SetValue(scene.FieldZeros, zeros)
}

// Convolute loads the form, as the Convolute button does.
func (g *Game) Convolute() {
	g.report(g.ctrl.Convolute())
}

// WindowSize is the size of the canvas, side panel and plot together.
func (g *Game) WindowSize() (int, int) {
	return g.settings.Window.Size + config.PanelWidth + config.PlotWidth, g.settings.Window.Size
}

func (g *Game) Update() error {
	if name, ok := g.dialogs.takePicked(); ok {
		g.applyPreset(name)
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.hoveredButton = buttonCount
	if b, ok := g.panel.buttonAt(mouseX, mouseY); ok {
		g.hoveredButton = b
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressedButton = g.hoveredButton
		if f, ok := g.panel.fieldAt(mouseX, mouseY); ok {
			g.ctrl.Form().SetFocus(f)
		} else if g.hoveredButton == buttonCount {
			g.ctrl.Form().SetFocus(scene.NoField)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressedButton != buttonCount && g.pressedButton == g.hoveredButton {
			g.press(g.pressedButton)
		}
		g.pressedButton = buttonCount
	}

	if quit := g.handleKeys(); quit {
		return ebiten.Termination
	}

	g.ctrl.Animator().Update()
	return nil
}

func (g *Game) handleKeys() bool {
	form := g.ctrl.Form()
	focused := form.Focus() != scene.NoField

	g.runes = ebiten.AppendInputChars(g.runes[:0])
	form.Type(g.runes)

	if repeating(ebiten.KeyBackspace) {
		form.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		form.NextFocus()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.press(buttonConvolute)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || (!focused && inpututil.IsKeyJustPressed(ebiten.KeySpace)) {
		g.press(buttonStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.press(buttonReset)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if !focused {
			return true
		}
		form.SetFocus(scene.NoField)
	}
	return false
}

func (g *Game) press(b buttonID) {
	switch b {
	case buttonConvolute:
		g.report(g.ctrl.Convolute())
	case buttonReset:
		g.report(g.ctrl.Reset())
	case buttonStep:
		g.report(g.ctrl.Step())
	case buttonPresets:
		g.pickPreset()
	}
}

func (g *Game) pickPreset() {
	names := g.settings.PresetNames()
	if len(names) == 0 {
		return
	}
	if g.settings.Dialogs.Enabled {
		g.dialogs.choosePreset(names)
		return
	}
	// without dialogs the button cycles through the presets
	g.applyPreset(names[g.nextPreset%len(names)])
	g.nextPreset++
}

func (g *Game) applyPreset(name string) {
	p, ok := g.settings.FindPreset(name)
	if !ok {
		g.log.Warn("unknown preset", "name", name)
		return
	}
	g.ctrl.ApplyPreset(p)
	g.report(g.ctrl.Convolute())
}

func (g *Game) report(m scene.Message) {
	if m.Failed() {
		g.dialogs.showError(m.Text)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

// Close stops any cue still playing.
func (g *Game) Close() {
	g.cue.close()
}

// repeating reports a key press and then auto-repeat after a short hold.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	const delay, interval = 30, 3
	return d == 1 || (d >= delay && (d-delay)%interval == 0)
}

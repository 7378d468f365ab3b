package scene

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/iburimskiy/circular-convolution/internal/config"
	"github.com/iburimskiy/circular-convolution/internal/convolution"
)

// Message is the outcome of a user action, ready for the status line.
// Err is set when the action was rejected.
type Message struct {
	Text string
	Err  error
}

func (m Message) Failed() bool { return m.Err != nil }

// StepListener is told about every produced sample, e.g. to play a cue.
type StepListener func(out convolution.StepOutcome, results []int)

// Controller is the only caller of its engine; every user action goes
// through it so engine calls are never interleaved.
type Controller struct {
	engine   *convolution.Engine
	form     *Form
	animator *Animator
	log      *slog.Logger
	onStep   StepListener
	status   Message
}

func NewController(log *slog.Logger, rotateRateDeg float64) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		engine:   convolution.NewEngine(),
		form:     NewForm(),
		animator: NewAnimator(rotateRateDeg),
		log:      log,
		status:   Message{Text: "Enter two signals and press Convolute"},
	}
}

func (c *Controller) Form() *Form { return c.form }

func (c *Controller) Animator() *Animator { return c.animator }

func (c *Controller) Status() Message { return c.status }

func (c *Controller) OnStep(fn StepListener) { c.onStep = fn }

func (c *Controller) Geometry() convolution.Geometry { return c.engine.CurrentGeometry() }

// Progress is a snapshot of the engine state for one frame.
func (c *Controller) Progress() convolution.State { return c.engine.State() }

func (c *Controller) Results() []int { return c.engine.ResultsSoFar() }

func (c *Controller) StepIndex() int { return c.engine.StepIndex() }

func (c *Controller) Len() int { return c.engine.Len() }

func (c *Controller) SpacingDeg() float64 { return c.engine.SpacingDeg() }

// ApplyPreset fills the form from a preset without loading it.
func (c *Controller) ApplyPreset(p config.Preset) {
	c.form.SetValue(FieldFirst, p.First)
	c.form.SetValue(FieldSecond, p.Second)
	zeros := ""
	if p.Zeros > 0 {
		zeros = fmt.Sprint(p.Zeros)
	}
	c.form.SetValue(FieldZeros, zeros)
	c.log.Debug("preset applied", "name", p.Name)
}

// Convolute loads the form's signals into the engine.
func (c *Controller) Convolute() Message {
	first, second := c.form.Value(FieldFirst), c.form.Value(FieldSecond)

	a, err := convolution.ParseSignal(first)
	if err == nil && len(a) == 0 {
		err = convolution.ErrEmptyInput
	}
	if err != nil {
		return c.fail("convolute", fmt.Errorf("first signal: %w", err))
	}
	b, err := convolution.ParseSignal(second)
	if err == nil && len(b) == 0 {
		err = convolution.ErrEmptyInput
	}
	if err != nil {
		return c.fail("convolute", fmt.Errorf("second signal: %w", err))
	}
	zeros, err := convolution.ParsePadding(c.form.Value(FieldZeros))
	if err != nil {
		return c.fail("convolute", fmt.Errorf("padded zeros: %w", err))
	}

	if err := c.engine.Load(a, b, zeros); err != nil {
		return c.fail("convolute", err)
	}
	c.animator.Snap(c.engine.RotationDeg())

	c.log.Info("signals loaded", "first", first, "second", second, "zeros", zeros, "n", c.engine.Len())
	return c.ok(fmt.Sprintf("Loaded N=%d, press Step", c.engine.Len()))
}

// Step advances the convolution by one sample.
func (c *Controller) Step() Message {
	out, err := c.engine.Step()
	if err != nil {
		return c.fail("step", err)
	}
	c.animator.Target(c.engine.RotationDeg())

	results := c.engine.ResultsSoFar()
	c.log.Info("step", "k", out.Index, "y", out.Value, "complete", out.Complete)
	if c.onStep != nil {
		c.onStep(out, results)
	}

	text := fmt.Sprintf("y[%d] = %d", out.Index, out.Value)
	if out.Complete {
		text += " (complete)"
	}
	return c.ok(text)
}

// Reset clears the engine and the plot. The form keeps its text.
func (c *Controller) Reset() Message {
	c.engine.Reset()
	c.animator.Snap(0)
	c.log.Info("reset")
	return c.ok("Reset")
}

func (c *Controller) ok(text string) Message {
	c.status = Message{Text: text}
	return c.status
}

func (c *Controller) fail(action string, err error) Message {
	c.status = Message{Text: UserMessage(err), Err: err}
	c.log.Warn(action+" rejected", "err", err)
	return c.status
}

// UserMessage turns an error from the engine or the parser into the text
// shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, convolution.ErrEmptyInput):
		return "Please input both signals!"
	case errors.Is(err, convolution.ErrLengthMismatch):
		return "Make sure the signals have the same length!"
	case errors.Is(err, convolution.ErrNegativePadding):
		return "The number of padded zeros must not be negative"
	case errors.Is(err, convolution.ErrNotLoaded):
		return "Press Convolute first"
	case errors.Is(err, convolution.ErrSequenceComplete):
		return "Convolution complete, press Reset or Convolute"
	case errors.Is(err, convolution.ErrValueRange):
		return "Values are too large to convolve exactly"
	case errors.Is(err, convolution.ErrInvalidValue):
		return "Signals must be comma separated integers: " + err.Error()
	default:
		return err.Error()
	}
}

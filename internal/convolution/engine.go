package convolution

import (
	"fmt"
	"math"
)

const fullTurnDeg = 360.0

// Sample is one value of a sequence and its angular position on its ring.
type Sample struct {
	Value    int
	AngleDeg float64
}

// Geometry is a snapshot of both rings for rendering.
type Geometry struct {
	Fixed    []Sample
	Rotating []Sample
}

// State is the progress of the convolution since the last load.
type State struct {
	StepIndex   int
	Results     []int
	RotationDeg float64
}

// StepOutcome is returned by Step so a renderer knows what changed.
type StepOutcome struct {
	Index    int
	Value    int
	Rotating []Sample
	Complete bool
}

type Engine struct {
	fixed    []Sample
	rotating []Sample
	spacing  float64
	state    State
}

func NewEngine() *Engine {
	return &Engine{}
}

// Load parses both signals and loads them with zeroPad zeros appended to each.
// The engine is left untouched when any input is rejected.
func (e *Engine) Load(fixed, rotating []string, zeroPad int) error {
	a, err := toInts(fixed)
	if err != nil {
		return fmt.Errorf("first signal: %w", err)
	}
	b, err := toInts(rotating)
	if err != nil {
		return fmt.Errorf("second signal: %w", err)
	}

	return e.LoadValues(a, b, zeroPad)
}

// LoadValues is Load for values that are already integers.
func (e *Engine) LoadValues(fixed, rotating []int, zeroPad int) error {
	if len(fixed) == 0 || len(rotating) == 0 {
		return ErrEmptyInput
	}
	if zeroPad < 0 {
		return fmt.Errorf("%w: %d", ErrNegativePadding, zeroPad)
	}
	if len(fixed) != len(rotating) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(fixed)+zeroPad, len(rotating)+zeroPad)
	}

	n := len(fixed) + zeroPad
	a := make([]int, n)
	b := make([]int, n)
	copy(a, fixed)
	copy(b, rotating)
	// every output sample must fit in an int before anything is replaced
	if _, err := Circular(a, b); err != nil {
		return err
	}

	e.Reset()
	e.spacing = fullTurnDeg / float64(n)
	e.fixed = make([]Sample, n)
	e.rotating = make([]Sample, n)
	for i := 0; i < n; i++ {
		e.fixed[i] = Sample{Value: a[i], AngleDeg: e.slotAngle(-i)}
		e.rotating[i] = Sample{Value: b[i], AngleDeg: e.slotAngle(i)}
	}

	return nil
}

// Reset drops both sequences and all progress.
func (e *Engine) Reset() {
	e.fixed = nil
	e.rotating = nil
	e.spacing = 0
	e.state = State{}
}

// Step computes the next output sample and turns the inner ring by one slot.
// Once all N samples are produced it fails with ErrSequenceComplete and
// changes nothing.
func (e *Engine) Step() (StepOutcome, error) {
	n := len(e.fixed)
	if n == 0 {
		return StepOutcome{}, ErrNotLoaded
	}

	k := e.state.StepIndex
	if k >= n {
		return StepOutcome{Index: k, Complete: true}, fmt.Errorf("%w: %d of %d steps taken", ErrSequenceComplete, k, n)
	}

	y := 0
	for j := 0; j < n; j++ {
		p, ok := mulInt(e.fixed[j].Value, e.rotating[mod(k-j, n)].Value)
		if ok {
			y, ok = addInt(y, p)
		}
		if !ok {
			return StepOutcome{Index: k}, fmt.Errorf("%w: y[%d]", ErrValueRange, k)
		}
	}

	e.state.Results = append(e.state.Results, y)
	e.state.StepIndex++
	e.state.RotationDeg = -float64(e.state.StepIndex) * e.spacing
	for j := range e.rotating {
		e.rotating[j].AngleDeg = e.slotAngle(j - e.state.StepIndex)
	}

	return StepOutcome{
		Index:    k,
		Value:    y,
		Rotating: cloneSamples(e.rotating),
		Complete: e.state.StepIndex == n,
	}, nil
}

// CurrentGeometry returns copies of both rings.
func (e *Engine) CurrentGeometry() Geometry {
	return Geometry{
		Fixed:    cloneSamples(e.fixed),
		Rotating: cloneSamples(e.rotating),
	}
}

// ResultsSoFar returns a copy of the produced samples in step order.
func (e *Engine) ResultsSoFar() []int {
	out := make([]int, len(e.state.Results))
	copy(out, e.state.Results)
	return out
}

// State returns a copy of the current progress.
func (e *Engine) State() State {
	s := e.state
	s.Results = e.ResultsSoFar()
	return s
}

func (e *Engine) Len() int { return len(e.fixed) }

func (e *Engine) Loaded() bool { return len(e.fixed) > 0 }

func (e *Engine) StepIndex() int { return e.state.StepIndex }

func (e *Engine) Complete() bool { return e.Loaded() && e.state.StepIndex >= len(e.fixed) }

// SpacingDeg is the angle between neighbouring samples on a ring.
func (e *Engine) SpacingDeg() float64 { return e.spacing }

// RotationDeg is the cumulative inner ring rotation since the last load.
// It is not normalized, so a renderer can animate towards it.
func (e *Engine) RotationDeg() float64 { return e.state.RotationDeg }

// slotAngle is the normalized angle of ring slot i. Working in whole slots
// keeps angles exact multiples of the spacing however many steps are taken.
func (e *Engine) slotAngle(i int) float64 {
	return float64(mod(i, len(e.fixed))) * e.spacing
}

func cloneSamples(s []Sample) []Sample {
	if s == nil {
		return nil
	}
	out := make([]Sample, len(s))
	copy(out, s)
	return out
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// NormalizeDeg maps any angle into [0, 360).
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, fullTurnDeg)
	if deg < 0 {
		deg += fullTurnDeg
	}
	if deg >= fullTurnDeg {
		deg = 0
	}
	return deg
}

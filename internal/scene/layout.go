package scene

import (
	"math"
	"strconv"

	"github.com/iburimskiy/circular-convolution/internal/config"
	"github.com/iburimskiy/circular-convolution/internal/convolution"
)

type Ring int

const (
	OuterRing Ring = iota
	InnerRing
)

// Bubble is one labeled sample drawn on a ring.
type Bubble struct {
	X, Y   float64
	Radius float64
	Label  string
	Ring   Ring
}

// Canvas is the square drawing area of the rings.
type Canvas struct {
	Size float64
}

func (c Canvas) Center() float64 { return c.Size / 2 }

func (c Canvas) OuterRadius() float64 { return c.Size * config.OuterRadiusRatio }

func (c Canvas) InnerRadius() float64 { return c.Size * config.InnerRadiusRatio }

func (c Canvas) BubbleRadius() float64 { return c.Size * config.BubbleRadiusRatio }

// Bubbles places every sample of both rings. lagDeg is added to the inner
// ring so an animation in progress draws it short of its final position.
func (c Canvas) Bubbles(g convolution.Geometry, lagDeg float64) []Bubble {
	out := make([]Bubble, 0, len(g.Fixed)+len(g.Rotating))
	for _, s := range g.Fixed {
		out = append(out, c.bubble(s.Value, c.OuterRadius(), s.AngleDeg, OuterRing))
	}
	for _, s := range g.Rotating {
		angle := convolution.NormalizeDeg(s.AngleDeg + lagDeg)
		out = append(out, c.bubble(s.Value, c.InnerRadius(), angle, InnerRing))
	}
	return out
}

func (c Canvas) bubble(v int, radius, angle float64, ring Ring) Bubble {
	x, y := convolution.Polar(radius, angle)
	return Bubble{
		X:      c.Center() + x,
		Y:      c.Center() + y,
		Radius: c.BubbleRadius(),
		Label:  strconv.Itoa(v),
		Ring:   ring,
	}
}

// Rect is an axis aligned rectangle in screen space.
type Rect struct {
	X, Y, W, H float64
}

// Stem is one drawn output sample: a vertical line from the zero axis to
// the value, topped by a marker.
type Stem struct {
	X     float64
	BaseY float64
	TopY  float64
	Index int
	Value int
}

// Tick is a labeled y axis position.
type Tick struct {
	Y     float64
	Value int
}

// Plot is the laid out stem plot of the results so far.
type Plot struct {
	Area  Rect
	ZeroY float64
	Stems []Stem
	Ticks []Tick
}

// LayoutPlot scales results into area. slots is the total number of samples
// the plot will eventually hold, so stems keep their place as it fills up.
func LayoutPlot(area Rect, results []int, slots int) Plot {
	if slots < len(results) {
		slots = len(results)
	}
	if slots == 0 {
		slots = 1
	}

	lo, hi := 0, 0
	for _, v := range results {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	step := TickStep(hi-lo, config.PlotTicks)
	lo = floorTo(lo, step)
	hi = ceilTo(hi, step)
	if lo == hi {
		hi = lo + step
	}

	scaleY := func(v int) float64 {
		return area.Y + area.H - float64(v-lo)/float64(hi-lo)*area.H
	}

	p := Plot{Area: area, ZeroY: scaleY(0)}
	slotW := area.W / float64(slots)
	for i, v := range results {
		p.Stems = append(p.Stems, Stem{
			X:     area.X + (float64(i)+0.5)*slotW,
			BaseY: p.ZeroY,
			TopY:  scaleY(v),
			Index: i,
			Value: v,
		})
	}
	for v := lo; v <= hi; v += step {
		p.Ticks = append(p.Ticks, Tick{Y: scaleY(v), Value: v})
	}
	return p
}

// TickStep picks an integer tick spacing of 1, 2 or 5 times a power of ten
// that splits span into at most n intervals.
func TickStep(span, n int) int {
	if n < 1 {
		n = 1
	}
	if span <= n {
		return 1
	}
	raw := float64(span) / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if step := m * mag; step >= raw {
			return int(math.Round(step))
		}
	}
	return int(math.Round(10 * mag))
}

func floorTo(v, step int) int {
	q := v / step
	if v%step != 0 && v < 0 {
		q--
	}
	return q * step
}

func ceilTo(v, step int) int {
	q := v / step
	if v%step != 0 && v > 0 {
		q++
	}
	return q * step
}

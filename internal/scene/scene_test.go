package scene

import (
	"image/color"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/circular-convolution/internal/config"
	"github.com/iburimskiy/circular-convolution/internal/convolution"
)

func newTestController() *Controller {
	return NewController(slog.New(slog.NewTextHandler(io.Discard, nil)), 3)
}

func fill(c *Controller, first, second, zeros string) {
	c.Form().SetValue(FieldFirst, first)
	c.Form().SetValue(FieldSecond, second)
	c.Form().SetValue(FieldZeros, zeros)
}

func TestControllerRunsConvolution(t *testing.T) {
	c := newTestController()
	fill(c, "1,2,3", "4,5,6", "")

	var heard []int
	c.OnStep(func(out convolution.StepOutcome, results []int) {
		heard = append(heard, out.Value)
		assert.Len(t, results, out.Index+1)
	})

	m := c.Convolute()
	require.False(t, m.Failed(), m.Text)
	assert.Equal(t, 3, c.Len())

	for i := 0; i < 3; i++ {
		m = c.Step()
		require.False(t, m.Failed(), m.Text)
	}
	assert.Contains(t, m.Text, "complete")
	assert.Equal(t, []int{31, 31, 28}, c.Results())
	assert.Equal(t, []int{31, 31, 28}, heard)

	m = c.Step()
	assert.ErrorIs(t, m.Err, convolution.ErrSequenceComplete)
	assert.Equal(t, 3, c.StepIndex())
	assert.Equal(t, m, c.Status())
}

func TestControllerMessages(t *testing.T) {
	cases := []struct {
		name                 string
		first, second, zeros string
		want                 string
	}{
		{"blank first", "", "1,2", "", "Please input both signals!"},
		{"blank second", "1,2", "  ", "", "Please input both signals!"},
		{"mismatch", "1,2,3", "4,5", "2", "Make sure the signals have the same length!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestController()
			fill(c, tc.first, tc.second, tc.zeros)
			m := c.Convolute()
			assert.True(t, m.Failed())
			assert.Equal(t, tc.want, m.Text)
			assert.Equal(t, 0, c.Len())
		})
	}
}

func TestControllerBadToken(t *testing.T) {
	c := newTestController()
	fill(c, "1,,3", "4,5,6", "")
	m := c.Convolute()
	assert.ErrorIs(t, m.Err, convolution.ErrInvalidValue)
	assert.Contains(t, m.Text, "comma separated integers")
}

func TestControllerStepBeforeLoad(t *testing.T) {
	c := newTestController()
	m := c.Step()
	assert.ErrorIs(t, m.Err, convolution.ErrNotLoaded)
	assert.Equal(t, "Press Convolute first", m.Text)
}

func TestControllerResetKeepsForm(t *testing.T) {
	c := newTestController()
	fill(c, "1,2", "3,4", "1")
	require.False(t, c.Convolute().Failed())
	require.False(t, c.Step().Failed())

	c.Reset()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Results())
	assert.Zero(t, c.Animator().Current())
	assert.False(t, c.Animator().Busy())
	assert.Equal(t, "1,2", c.Form().Value(FieldFirst))
}

func TestControllerStepAnimates(t *testing.T) {
	c := newTestController()
	fill(c, "1,2,3,4", "1,2,3,4", "")
	require.False(t, c.Convolute().Failed())
	require.False(t, c.Step().Failed())

	a := c.Animator()
	assert.True(t, a.Busy())
	assert.InDelta(t, 90, a.Lag(), 1e-9)

	frames := 0
	for a.Update() {
		frames++
	}
	assert.Equal(t, 30, frames)
	assert.InDelta(t, -90, a.Current(), 1e-9)
	assert.Zero(t, a.Lag())
}

func TestApplyPreset(t *testing.T) {
	c := newTestController()
	c.ApplyPreset(config.Preset{Name: "p", First: "1,1", Second: "2,2", Zeros: 3})
	assert.Equal(t, "3", c.Form().Value(FieldZeros))

	c.ApplyPreset(config.Preset{Name: "q", First: "1", Second: "2"})
	assert.Equal(t, "", c.Form().Value(FieldZeros))
	assert.Equal(t, "1", c.Form().Value(FieldFirst))
}

func TestFormTyping(t *testing.T) {
	f := NewForm()
	f.Type([]rune("12"))
	assert.Equal(t, "", f.Value(FieldFirst), "no focus, no input")

	f.NextFocus()
	assert.Equal(t, FieldFirst, f.Focus())
	f.Type([]rune("1, -2,x3"))
	assert.Equal(t, "1, -2,3", f.Value(FieldFirst))
	f.Backspace()
	assert.Equal(t, "1, -2,", f.Value(FieldFirst))

	f.SetFocus(FieldZeros)
	f.Type([]rune("-4,2"))
	assert.Equal(t, "42", f.Value(FieldZeros))

	f.NextFocus()
	assert.Equal(t, FieldFirst, f.Focus())
	f.SetFocus(Field(9))
	assert.Equal(t, NoField, f.Focus())
	f.Backspace()
}

func TestAnimatorSnapsOnLastFrame(t *testing.T) {
	a := NewAnimator(7)
	a.Target(-20)
	require.True(t, a.Update())
	require.True(t, a.Update())
	assert.InDelta(t, -14, a.Current(), 1e-12)
	require.True(t, a.Update())
	assert.Equal(t, -20.0, a.Current())
	assert.False(t, a.Update())
}

func TestBubbles(t *testing.T) {
	e := convolution.NewEngine()
	require.NoError(t, e.LoadValues([]int{1, 2, 3, 4}, []int{5, 6, 7, 8}, 0))

	c := Canvas{Size: 600}
	bs := c.Bubbles(e.CurrentGeometry(), 0)
	require.Len(t, bs, 8)

	// outer ring: index 1 sits at 270 degrees, straight up on screen
	assert.Equal(t, OuterRing, bs[1].Ring)
	assert.Equal(t, "2", bs[1].Label)
	assert.InDelta(t, 300, bs[1].X, 1e-9)
	assert.InDelta(t, 300-240, bs[1].Y, 1e-9)

	// inner ring: index 1 at 90 degrees, straight down
	assert.Equal(t, InnerRing, bs[5].Ring)
	assert.InDelta(t, 300, bs[5].X, 1e-9)
	assert.InDelta(t, 300+180, bs[5].Y, 1e-9)
	assert.InDelta(t, 18, bs[5].Radius, 1e-9)

	// a lag of a full slot draws the ring where it was before the step
	_, err := e.Step()
	require.NoError(t, err)
	lagged := c.Bubbles(e.CurrentGeometry(), 90)
	assert.InDelta(t, bs[5].X, lagged[5].X, 1e-9)
	assert.InDelta(t, bs[5].Y, lagged[5].Y, 1e-9)
}

func TestLayoutPlot(t *testing.T) {
	area := Rect{X: 10, Y: 20, W: 300, H: 100}
	p := LayoutPlot(area, []int{31, -9}, 3)

	require.Len(t, p.Stems, 2)
	assert.InDelta(t, 60, p.Stems[0].X, 1e-9)
	assert.InDelta(t, 160, p.Stems[1].X, 1e-9)
	for _, s := range p.Stems {
		assert.Equal(t, p.ZeroY, s.BaseY)
		assert.GreaterOrEqual(t, s.TopY, area.Y)
		assert.LessOrEqual(t, s.TopY, area.Y+area.H)
	}
	assert.Less(t, p.Stems[0].TopY, p.ZeroY)
	assert.Greater(t, p.Stems[1].TopY, p.ZeroY)

	require.NotEmpty(t, p.Ticks)
	assert.Equal(t, -10, p.Ticks[0].Value)
	assert.Equal(t, 40, p.Ticks[len(p.Ticks)-1].Value)
	assert.InDelta(t, area.Y+area.H, p.Ticks[0].Y, 1e-9)
	assert.InDelta(t, area.Y, p.Ticks[len(p.Ticks)-1].Y, 1e-9)
}

func TestLayoutPlotEmpty(t *testing.T) {
	p := LayoutPlot(Rect{W: 100, H: 50}, nil, 0)
	assert.Empty(t, p.Stems)
	assert.Equal(t, []Tick{{Y: 50, Value: 0}, {Y: 0, Value: 1}}, p.Ticks)
}

func TestTickStep(t *testing.T) {
	cases := map[[2]int]int{
		{0, 5}:    1,
		{5, 5}:    1,
		{31, 5}:   10,
		{12, 5}:   5,
		{9, 5}:    2,
		{1000, 5}: 200,
		{3, 0}:    5,
	}
	for in, want := range cases {
		assert.Equal(t, want, TickStep(in[0], in[1]), "%v", in)
	}
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{"short"}, WrapText("short", 10))
	assert.Equal(t, []string{"Make sure", "the", "signals"}, WrapText("Make sure the signals", 9))
	assert.Equal(t, []string{"abcd", "efgh", "ij k"}, WrapText("abcdefghij k", 4))
	assert.Equal(t, []string{"anything"}, WrapText("anything", 0))
}

func TestHSV(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, A: 255}, HSV(0, 1, 1))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, HSV(120, 1, 1))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, HSV(-120, 1, 1))
	assert.Equal(t, color.RGBA{R: 255, G: 255, A: 255}, HSV(420, 1, 1))
	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, HSV(200, 0, 0.5))
}

func TestStemColor(t *testing.T) {
	assert.Equal(t, HSV(0, 0.7, 0.95), StemColor(0, 4))
	assert.Equal(t, HSV(150, 0.7, 0.95), StemColor(2, 4))
	assert.Equal(t, StemColor(0, 1), StemColor(0, 0))
	assert.NotEqual(t, StemColor(0, 6), StemColor(5, 6))
}

func TestControllerProgress(t *testing.T) {
	c := newTestController()
	fill(c, "1,2,3", "4,5,6", "")
	require.False(t, c.Convolute().Failed())
	require.False(t, c.Step().Failed())

	p := c.Progress()
	assert.Equal(t, 1, p.StepIndex)
	assert.Equal(t, []int{31}, p.Results)
	assert.InDelta(t, -120, p.RotationDeg, 1e-9)
	assert.InDelta(t, 120, c.Animator().Lag(), 1e-9)

	p.Results[0] = 0
	assert.Equal(t, []int{31}, c.Results())
}

func TestControllerValueRangeMessage(t *testing.T) {
	c := newTestController()
	fill(c, "4000000000", "4000000000", "")
	m := c.Convolute()
	assert.ErrorIs(t, m.Err, convolution.ErrValueRange)
	assert.Equal(t, "Values are too large to convolve exactly", m.Text)
}

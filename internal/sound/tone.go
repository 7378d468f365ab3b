package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	MinPitchHz = 220.0
	MaxPitchHz = 880.0

	// share of the tone spent fading in and out
	envelopeShare = 0.15
)

// Tone is a short sine burst with a linear attack and release, played once
// per convolution step.
type Tone struct {
	freq    float64
	gain    float64
	rate    beep.SampleRate
	total   int
	pos     int
	fadeLen int
}

func NewTone(sr beep.SampleRate, freq, gain float64, d time.Duration) *Tone {
	total := sr.N(d)
	fade := int(float64(total) * envelopeShare)
	if fade < 1 {
		fade = 1
	}
	return &Tone{
		freq:    freq,
		gain:    clamp01(gain),
		rate:    sr,
		total:   total,
		fadeLen: fade,
	}
}

func (t *Tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}

	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		phase := 2 * math.Pi * t.freq * float64(t.pos) / float64(t.rate)
		v := math.Sin(phase) * t.gain * t.envelope(t.pos)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}

	return n, true
}

func (t *Tone) Err() error { return nil }

// Len is the tone length in samples.
func (t *Tone) Len() int { return t.total }

func (t *Tone) envelope(pos int) float64 {
	switch {
	case pos < t.fadeLen:
		return float64(pos) / float64(t.fadeLen)
	case pos >= t.total-t.fadeLen:
		return float64(t.total-1-pos) / float64(t.fadeLen)
	default:
		return 1
	}
}

// PitchFor maps a result sample onto [MinPitchHz, MaxPitchHz] by its
// magnitude relative to peak, the largest magnitude seen so far.
func PitchFor(value, peak int) float64 {
	if peak == 0 {
		return MinPitchHz
	}
	ratio := clamp01(math.Abs(float64(value)) / math.Abs(float64(peak)))
	return MinPitchHz + ratio*(MaxPitchHz-MinPitchHz)
}

// Peak returns the largest magnitude in values.
func Peak(values []int) int {
	peak := 0
	for _, v := range values {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

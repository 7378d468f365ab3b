package game

import (
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/circular-convolution/internal/config"
	"github.com/iburimskiy/circular-convolution/internal/convolution"
	"github.com/iburimskiy/circular-convolution/internal/sound"
)

// cue plays a short tone for every produced sample, pitched by its size
// relative to the largest sample so far.
type cue struct {
	format   beep.Format
	duration time.Duration
	tap      *sound.Tap
	enabled  bool
	log      *slog.Logger
}

func newCue(s config.SoundSettings, log *slog.Logger) *cue {
	c := &cue{
		format: beep.Format{
			SampleRate:  beep.SampleRate(config.SampleRate),
			NumChannels: 2,
			Precision:   2,
		},
		duration: time.Duration(s.DurationMS) * time.Millisecond,
		tap:      sound.NewTap(config.WaveformSamples),
		log:      log,
	}
	if !s.Enabled {
		return c
	}

	bufferSize := c.format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(c.format.SampleRate, bufferSize); err != nil {
		log.Warn("audio unavailable, step cue disabled", "err", err)
		return c
	}
	c.enabled = true
	return c
}

func (c *cue) play(out convolution.StepOutcome, results []int) {
	if !c.enabled {
		return
	}

	freq := sound.PitchFor(out.Value, sound.Peak(results))
	tone := sound.NewTone(c.format.SampleRate, freq, 0.4, c.duration)

	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	speaker.Play(c.tap.Wrap(tone))
	c.log.Debug("cue", "freq", freq, "k", out.Index)
}

func (c *cue) waveform() []float64 {
	return c.tap.Snapshot(config.WaveformSamples)
}

func (c *cue) close() {
	if !c.enabled {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

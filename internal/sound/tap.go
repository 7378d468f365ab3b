package sound

import (
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last N mono samples into a ring
// buffer so the renderer can draw the waveform of what was just played.
type Tap struct {
	Source    beep.Streamer
	buffer    []float64
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func NewTap(ringSize int) *Tap {
	if ringSize < 1 {
		ringSize = 1
	}
	return &Tap{buffer: make([]float64, ringSize)}
}

// Wrap points the tap at a new source and returns the tap for chaining.
func (t *Tap) Wrap(src beep.Streamer) *Tap {
	t.mu.Lock()
	t.Source = src
	t.mu.Unlock()
	return t
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	t.mu.RLock()
	src := t.Source
	t.mu.RUnlock()
	if src == nil {
		return 0, false
	}

	n, ok := src.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = (samples[i][0] + samples[i][1]) * 0.5
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.filled += n
		if t.filled > len(t.buffer) {
			t.filled = len(t.buffer)
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.Source == nil {
		return nil
	}
	return t.Source.Err()
}

// Snapshot returns up to the last n recorded samples, oldest first.
func (t *Tap) Snapshot(n int) []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > t.filled {
		n = t.filled
	}
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := 0; i < n; i++ {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}

package game

import (
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/ncruces/zenity"
)

// dialogs shows native dialogs off the frame loop. Results come back on a
// channel that Update drains, so only the game goroutine touches the form.
type dialogs struct {
	enabled bool
	open    atomic.Bool
	picked  chan string
	log     *slog.Logger
}

func newDialogs(enabled bool, log *slog.Logger) *dialogs {
	return &dialogs{
		enabled: enabled,
		picked:  make(chan string, 1),
		log:     log,
	}
}

func (d *dialogs) showError(text string) {
	if !d.enabled || !d.open.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer d.open.Store(false)
		if err := zenity.Error(text, zenity.Title("Error"), zenity.ErrorIcon); err != nil {
			d.log.Debug("error dialog", "err", err)
		}
	}()
}

func (d *dialogs) choosePreset(names []string) {
	if len(names) == 0 || !d.enabled || !d.open.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer d.open.Store(false)
		name, err := zenity.List("Choose a pair of signals", names, zenity.Title("Presets"))
		if err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				d.log.Warn("preset dialog", "err", err)
			}
			return
		}
		select {
		case d.picked <- name:
		default:
		}
	}()
}

// takePicked returns a preset chosen since the last call, if any.
func (d *dialogs) takePicked() (string, bool) {
	select {
	case name := <-d.picked:
		return name, true
	default:
		return "", false
	}
}

package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/iburimskiy/circular-convolution/internal/convolution"
)

// Options are the command line flags.
type Options struct {
	ConfigPath string
	First      string
	Second     string
	Zeros      string
	Headless   bool
	LogLevel   string
}

func ParseFlags(args []string, output io.Writer) (Options, error) {
	var o Options
	fs := flag.NewFlagSet("circconv", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.ConfigPath, "config", "", "path to YAML config file")
	fs.StringVar(&o.First, "first", "", "first signal, comma separated integers")
	fs.StringVar(&o.Second, "second", "", "second signal, comma separated integers")
	fs.StringVar(&o.Zeros, "zeros", "", "number of zeros padded to both signals")
	fs.BoolVar(&o.Headless, "headless", false, "print the convolution steps instead of opening a window")
	fs.StringVar(&o.LogLevel, "log-level", "", "log level: error, warn, info, debug (overrides config)")
	err := fs.Parse(args)
	return o, err
}

// HasSignals reports whether either signal was given on the command line.
func (o Options) HasSignals() bool {
	return o.First != "" || o.Second != ""
}

// RunHeadless loads both signals, steps to the end and prints every sample.
func RunHeadless(o Options, log *slog.Logger, out io.Writer) error {
	a, err := convolution.ParseSignal(o.First)
	if err != nil {
		return fmt.Errorf("first signal: %w", err)
	}
	b, err := convolution.ParseSignal(o.Second)
	if err != nil {
		return fmt.Errorf("second signal: %w", err)
	}
	zeros, err := convolution.ParsePadding(o.Zeros)
	if err != nil {
		return fmt.Errorf("zeros: %w", err)
	}

	e := convolution.NewEngine()
	if err := e.Load(a, b, zeros); err != nil {
		return err
	}
	log.Info("signals loaded", "n", e.Len(), "spacing_deg", e.SpacingDeg())

	for !e.Complete() {
		step, err := e.Step()
		if err != nil {
			return err
		}
		log.Debug("step", "k", step.Index, "y", step.Value, "rotation_deg", e.RotationDeg())
		fmt.Fprintf(out, "y[%d] = %d\n", step.Index, step.Value)
	}
	fmt.Fprintf(out, "result: %v\n", e.ResultsSoFar())
	return nil
}

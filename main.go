package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/circular-convolution/internal/cli"
	"github.com/iburimskiy/circular-convolution/internal/config"
	"github.com/iburimskiy/circular-convolution/internal/game"
)

func run(args []string) error {
	o, err := cli.ParseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	settings, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	levelName := settings.Logging.Level
	if o.LogLevel != "" {
		levelName = o.LogLevel
	}
	level, err := cli.ParseLogLevel(levelName)
	if err != nil {
		return err
	}
	log := cli.SetupLogger(os.Stderr, level)

	if o.Headless {
		return cli.RunHeadless(o, log, os.Stdout)
	}

	g := game.New(settings, log)
	defer g.Close()
	if o.HasSignals() {
		g.Prefill(o.First, o.Second, o.Zeros)
		g.Convolute()
	}

	w, h := g.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Circular Convolution Visualizer - Enter: Convolute, Right/Space: Step, Ctrl+R: Reset, Esc: Quit")
	ebiten.SetTPS(config.TicksPerSecond)

	log.Info("starting", "window", settings.Window.Size, "sound", settings.Sound.Enabled, "presets", len(settings.Presets))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "circconv:", err)
		os.Exit(1)
	}
}

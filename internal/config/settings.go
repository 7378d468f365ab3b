package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is the optional YAML configuration of the visualizer.
// Anything left out keeps the value from Default.
type Settings struct {
	Window    WindowSettings    `yaml:"window"`
	Animation AnimationSettings `yaml:"animation"`
	Sound     SoundSettings     `yaml:"sound"`
	Dialogs   DialogSettings    `yaml:"dialogs"`
	Logging   LoggingSettings   `yaml:"logging"`
	Presets   []Preset          `yaml:"presets,omitempty"`
}

type WindowSettings struct {
	Size int `yaml:"size"`
}

type AnimationSettings struct {
	RotateRateDeg float64 `yaml:"rotate_rate_deg"`
}

type SoundSettings struct {
	Enabled    bool `yaml:"enabled"`
	DurationMS int  `yaml:"duration_ms"`
}

type DialogSettings struct {
	Enabled bool `yaml:"enabled"`
}

type LoggingSettings struct {
	Level string `yaml:"level"`
}

// Preset is a named pair of signals offered by the Presets button.
type Preset struct {
	Name   string `yaml:"name"`
	First  string `yaml:"first"`
	Second string `yaml:"second"`
	Zeros  int    `yaml:"zeros,omitempty"`
}

func Default() Settings {
	return Settings{
		Window:    WindowSettings{Size: DefaultWindowSize},
		Animation: AnimationSettings{RotateRateDeg: DefaultRotateRateDeg},
		Sound:     SoundSettings{Enabled: true, DurationMS: DefaultToneMillis},
		Dialogs:   DialogSettings{Enabled: true},
		Logging:   LoggingSettings{Level: "info"},
		Presets: []Preset{
			{Name: "Textbook 3x3", First: "1,2,3", Second: "4,5,6"},
			{Name: "Impulse", First: "1,0,0,0", Second: "1,2,3,4"},
			{Name: "Boxcar with padding", First: "1,1,1", Second: "1,1,1", Zeros: 2},
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Settings, error) {
	s := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("parse config: %w", err)
	}

	if err := s.Validate(); err != nil {
		return s, err
	}

	return s, nil
}

func (s Settings) Validate() error {
	if s.Window.Size < MinWindowSize || s.Window.Size > MaxWindowSize {
		return fmt.Errorf("window.size %d out of range [%d, %d]", s.Window.Size, MinWindowSize, MaxWindowSize)
	}
	if s.Animation.RotateRateDeg <= 0 {
		return fmt.Errorf("animation.rotate_rate_deg must be positive, got %v", s.Animation.RotateRateDeg)
	}
	if s.Sound.DurationMS <= 0 {
		return fmt.Errorf("sound.duration_ms must be positive, got %d", s.Sound.DurationMS)
	}
	switch strings.ToLower(s.Logging.Level) {
	case "error", "warn", "warning", "info", "debug":
	default:
		return fmt.Errorf("logging.level %q must be error, warn, info or debug", s.Logging.Level)
	}
	for i, p := range s.Presets {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("presets[%d]: name is required", i)
		}
		if p.Zeros < 0 {
			return fmt.Errorf("presets[%d] %q: zeros must not be negative", i, p.Name)
		}
	}

	return nil
}

// PresetNames lists preset names in file order.
func (s Settings) PresetNames() []string {
	names := make([]string, len(s.Presets))
	for i, p := range s.Presets {
		names[i] = p.Name
	}
	return names
}

// FindPreset looks a preset up by name.
func (s Settings) FindPreset(name string) (Preset, bool) {
	for _, p := range s.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

package config

const (
	DefaultWindowSize = 600
	MinWindowSize     = 300
	MaxWindowSize     = 750

	// Ring geometry, as fractions of the canvas size
	OuterRadiusRatio  = 2.0 / 5.0
	InnerRadiusRatio  = 3.0 / 10.0
	BubbleRadiusRatio = 3.0 / 100.0

	// Side panel with the form and buttons
	PanelWidth    = 220
	FieldHeight   = 24
	ButtonWidth   = 120
	ButtonHeight  = 32
	PanelPadding  = 16
	PanelRowSpace = 10

	// Stem plot
	PlotWidth   = 360
	PlotPadding = 40
	PlotTicks   = 5

	// Animation
	DefaultRotateRateDeg = 3.0
	TicksPerSecond       = 60

	// Step cue
	DefaultToneMillis = 120
	SampleRate        = 44100
	WaveformSamples   = 1024
)

package scene

import (
	"image/color"
	"math"
)

const (
	stemHueSpan    = 300.0
	stemSaturation = 0.7
	stemValue      = 0.95
)

// StemColor spreads the stems of a plot with slots samples over the hue
// circle, stopping short of red again so the first and last differ.
func StemColor(index, slots int) color.RGBA {
	if slots < 1 {
		slots = 1
	}
	return HSV(float64(index)/float64(slots)*stemHueSpan, stemSaturation, stemValue)
}

// HSV converts hue in degrees, saturation and value in [0, 1] to an opaque
// colour.
func HSV(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	channel := func(n float64) uint8 {
		k := math.Mod(n+h/60, 6)
		c := v - v*s*math.Max(0, math.Min(k, math.Min(4-k, 1)))
		return uint8(math.Round(c * 255))
	}
	return color.RGBA{R: channel(5), G: channel(3), B: channel(1), A: 255}
}

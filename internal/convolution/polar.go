package convolution

import "math"

// Polar converts a ring position to an offset from the ring centre.
// Screen y grows downwards, so positive angles run clockwise on screen.
func Polar(radius, angleDeg float64) (x, y float64) {
	rad := angleDeg * math.Pi / 180
	return radius * math.Cos(rad), radius * math.Sin(rad)
}

package game

import "fmt"

// formatAngle formats a rotation in degrees with one decimal
func formatAngle(deg float64) string {
	return fmt.Sprintf("%.1f deg", deg)
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x <= r.x+r.w && y >= r.y && y <= r.y+r.h
}

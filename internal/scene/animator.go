package scene

import "math"

// Animator eases the drawn inner ring rotation towards the engine's
// rotation at a fixed number of degrees per frame, so the engine never waits
// on the renderer.
type Animator struct {
	rate    float64
	current float64
	target  float64
}

func NewAnimator(rateDeg float64) *Animator {
	if rateDeg <= 0 {
		rateDeg = 1
	}
	return &Animator{rate: rateDeg}
}

// Target sets a new rotation to animate towards.
func (a *Animator) Target(deg float64) { a.target = deg }

// Snap jumps to deg without animating.
func (a *Animator) Snap(deg float64) {
	a.current = deg
	a.target = deg
}

// Update advances one frame and reports whether the rotation changed.
// The last frame lands exactly on the target.
func (a *Animator) Update() bool {
	d := a.target - a.current
	if d == 0 {
		return false
	}
	if math.Abs(d) <= a.rate {
		a.current = a.target
		return true
	}
	a.current += math.Copysign(a.rate, d)
	return true
}

func (a *Animator) Busy() bool { return a.current != a.target }

func (a *Animator) Current() float64 { return a.current }

// Lag is how far the drawn rotation trails the target.
func (a *Animator) Lag() float64 { return a.current - a.target }

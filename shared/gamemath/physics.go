package gamemath

import "math"

// Damp applies friction to a velocity component. Magnitudes below snap become
// exactly zero so velocities never decay forever.
func Damp(v, friction, snap float64) float64 {
	if v < snap && v > -snap {
		return 0
	}
	return v * friction
}

// Phase returns the oscillation factor in [-1, 1] for a tile moving with the
// given rate multiplier. A zero multiplier means 1. The argument grows with
// both the step size and the elapsed time.
func Phase(dt, elapsed, multiplier, rate float64) float64 {
	if multiplier == 0 {
		multiplier = 1
	}
	return math.Sin(dt * elapsed * multiplier * rate)
}

// Direction returns -1, 0 or 1 from the horizontal input.
func Direction(forward, backward bool) int {
	d := 0
	if forward {
		d++
	}
	if backward {
		d--
	}
	return d
}

// ClampMax limits v to max.
func ClampMax(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}

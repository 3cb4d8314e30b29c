package gamemath

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRect is returned for rectangles with a non-positive size or a
// non-finite coordinate.
var ErrInvalidRect = errors.New("invalid rectangle")

// AABB is an axis-aligned rectangle. X and Y are the top-left corner.
type AABB struct {
	X, Y, W, H float64
}

// Intersects reports whether a and b overlap. Rectangles that only share an
// edge do not intersect.
func (a AABB) Intersects(b AABB) bool {
	return a.X < b.X+b.W &&
		b.X < a.X+a.W &&
		a.Y < b.Y+b.H &&
		b.Y < a.Y+a.H
}

// Translate returns a copy of a shifted by (dx, dy).
func (a AABB) Translate(dx, dy float64) AABB {
	a.X += dx
	a.Y += dy
	return a
}

// Center returns the midpoint of a.
func (a AABB) Center() (float64, float64) {
	return a.X + a.W/2, a.Y + a.H/2
}

func (a AABB) Right() float64  { return a.X + a.W }
func (a AABB) Bottom() float64 { return a.Y + a.H }

// Validate rejects rectangles that would poison the physics with NaNs or
// zero-area collisions.
func (a AABB) Validate() error {
	for _, v := range [...]float64{a.X, a.Y, a.W, a.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value in %+v", ErrInvalidRect, a)
		}
	}
	if a.W <= 0 || a.H <= 0 {
		return fmt.Errorf("%w: size %gx%g", ErrInvalidRect, a.W, a.H)
	}
	return nil
}

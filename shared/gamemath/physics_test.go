package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDampSnapsSmallVelocities(t *testing.T) {
	for _, v := range []float64{0.999, -0.999, 0.5, 0, -0.0001} {
		assert.Exactly(t, 0.0, Damp(v, 0.95, 1), "v=%v", v)
	}
}

func TestDampAppliesFriction(t *testing.T) {
	assert.InDelta(t, 9.5, Damp(10, 0.95, 1), 1e-12)
	assert.InDelta(t, -0.95, Damp(-1, 0.95, 1), 1e-12)
}

func TestPhaseDefaultsMultiplier(t *testing.T) {
	assert.Equal(t, Phase(1.0/60, 500, 1, 0.1), Phase(1.0/60, 500, 0, 0.1))
	assert.InDelta(t, math.Sin(1.0/60*500*0.75*0.1), Phase(1.0/60, 500, 0.75, 0.1), 1e-12)
	assert.Equal(t, 0.0, Phase(1.0/60, 0, 1, 0.1))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, 1, Direction(true, false))
	assert.Equal(t, -1, Direction(false, true))
	assert.Equal(t, 0, Direction(true, true))
	assert.Equal(t, 0, Direction(false, false))
}

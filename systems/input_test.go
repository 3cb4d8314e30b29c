package systems

import (
	"testing"

	"github.com/leondejong/platform-game/components"
	"github.com/leondejong/platform-game/config/frontend"
	"github.com/stretchr/testify/assert"
)

func TestGetAction(t *testing.T) {
	var input components.InputData

	input.Current[frontend.ActionJump] = true
	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(&input, frontend.ActionJump))

	input.Previous[frontend.ActionJump] = true
	assert.Equal(t, components.ActionState{Pressed: true}, GetAction(&input, frontend.ActionJump))

	input.Current[frontend.ActionJump] = false
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(&input, frontend.ActionJump))
}

func TestIntentFromInput(t *testing.T) {
	var input components.InputData
	input.Current[frontend.ActionMoveRight] = true
	input.Current[frontend.ActionDown] = true
	press(&input, frontend.ActionJump)

	in := intentFrom(&input)
	assert.True(t, in.Forward)
	assert.False(t, in.Backward)
	assert.True(t, in.Down)
	assert.True(t, in.Up)
	assert.True(t, in.UpEdge)

	// Holding jump is not a new edge
	input.Previous = input.Current
	in = intentFrom(&input)
	assert.True(t, in.Up)
	assert.False(t, in.UpEdge)
}

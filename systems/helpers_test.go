package systems

import (
	"testing"

	"github.com/leondejong/platform-game/components"
	cfg "github.com/leondejong/platform-game/config"
	"github.com/leondejong/platform-game/config/frontend"
	"github.com/leondejong/platform-game/shared/leveldata"
	"github.com/leondejong/platform-game/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestGame(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	_, err := factory.CreateGame(e, cfg.Default(), "builtin", leveldata.Default().Scale(cfg.PixelsPerMeter))
	require.NoError(t, err)
	return e
}

// press marks action as pressed this frame and released in the previous one.
func press(input *components.InputData, action frontend.ActionID) {
	input.Previous[action] = false
	input.Current[action] = true
}

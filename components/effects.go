package components

import (
	"github.com/leondejong/platform-game/effects"
	"github.com/yohamta/donburi"
)

// ExplosionData holds the player's death effect for rendering. The simulation
// drives it; renderers only read it.
type ExplosionData struct {
	Explosion *effects.Explosion
}

var Explosion = donburi.NewComponentType[ExplosionData]()

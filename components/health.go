package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HealthBarData eases the displayed health toward the player's health.
type HealthBarData struct {
	Tween  *gween.Tween
	Shown  float32 // value currently drawn
	Target float32 // value the tween is heading to
}

var HealthBar = donburi.NewComponentType[HealthBarData]()

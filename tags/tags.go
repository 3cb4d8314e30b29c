package tags

import "github.com/yohamta/donburi"

var (
	Game   = donburi.NewTag().SetName("Game")
	Player = donburi.NewTag().SetName("Player")
	HUD    = donburi.NewTag().SetName("HUD")
)

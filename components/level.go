package components

import (
	"github.com/leondejong/platform-game/core"
	"github.com/leondejong/platform-game/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name    string // TMX path, or "builtin"
	Data    *leveldata.Data
	Catalog *core.Catalog
}

var Level = donburi.NewComponentType[LevelData]()

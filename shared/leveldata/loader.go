package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files.
const (
	GroupTiles      = "tiles"
	GroupBackground = "background"
	GroupSpawn      = "spawn"
)

// LoadTMX parses a TMX file into level data. Coordinates are taken as-is from
// the map (pixels). Tiles come from the "tiles" object group in file order;
// the archetype is the object's "archetype" property, or its name when the
// property is missing. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Data, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &Data{}
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupTiles:
			for _, o := range og.Objects {
				archetype := o.Properties.GetString("archetype")
				if archetype == "" {
					archetype = o.Name
				}
				data.Tiles = append(data.Tiles, Placement{
					X:         o.X,
					Y:         o.Y,
					W:         o.Width,
					H:         o.Height,
					Archetype: archetype,
				})
			}
		case GroupBackground:
			for _, o := range og.Objects {
				data.Decorations = append(data.Decorations, Decoration{
					X:     o.X,
					Y:     o.Y,
					W:     o.Width,
					H:     o.Height,
					Color: o.Properties.GetString("color"),
				})
			}
		case GroupSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				data.Spawn = &Point{X: o.X, Y: o.Y}
			}
		}
	}

	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", tmxPath, err)
	}
	return data, nil
}

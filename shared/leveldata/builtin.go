package leveldata

// Default returns the built-in level in meters.
func Default() *Data {
	return &Data{
		Decorations: []Decoration{
			{X: 0, Y: 0, W: 60, H: 30, Color: "air"},
			{X: 0, Y: 12, W: 30, H: 18, Color: "sand"},
			{X: 30, Y: 12, W: 30, H: 18, Color: "rock"},
		},
		Tiles: []Placement{
			// Top left
			{X: 0, Y: 12, W: 8, H: 3, Archetype: "earth"},
			{X: 0, Y: 11, W: 8, H: 1, Archetype: "grass"},
			{X: 22, Y: 12, W: 8, H: 3, Archetype: "earth"},
			{X: 22, Y: 11, W: 8, H: 1, Archetype: "grass"},
			{X: 12.5, Y: 8, W: 5, H: 1, Archetype: "platformH"},
			{X: 25.5, Y: 9.2, W: 1, H: 1.8, Archetype: "enemy"},
			// Top right
			{X: 35, Y: 5, W: 3, H: 1, Archetype: "stone"},
			{X: 34, Y: 6, W: 4, H: 1, Archetype: "stone"},
			{X: 33, Y: 7, W: 5, H: 1, Archetype: "stone"},
			{X: 32, Y: 8, W: 6, H: 1, Archetype: "stone"},
			{X: 31, Y: 9, W: 7, H: 1, Archetype: "stone"},
			{X: 30, Y: 10, W: 8, H: 9, Archetype: "stone"},
			{X: 43, Y: 0, W: 4, H: 13, Archetype: "stone"},
			{X: 52, Y: 5, W: 3, H: 14, Archetype: "stone"},
			{X: 38, Y: 17, W: 14, H: 2, Archetype: "stone"},
			{X: 30, Y: 19, W: 25, H: 1, Archetype: "stone"},
			{X: 38, Y: 5, W: 14, H: 12, Archetype: "water"},
			{X: 55, Y: 16, W: 5, H: 1, Archetype: "platformV"},
			// Bottom right
			{X: 30, Y: 27, W: 15, H: 3, Archetype: "stone"},
			{X: 30, Y: 26, W: 15, H: 1, Archetype: "ice"},
			{X: 45, Y: 29, W: 15, H: 1, Archetype: "lava"},
			{X: 49, Y: 20, W: 1, H: 9, Archetype: "ladder"},
			{X: 37, Y: 24.2, W: 1, H: 1.8, Archetype: "enemy"},
			// Bottom left
			{X: 0, Y: 27, W: 8, H: 3, Archetype: "earth"},
			{X: 22, Y: 27, W: 8, H: 3, Archetype: "earth"},
			{X: 8, Y: 29, W: 14, H: 1, Archetype: "earth"},
			{X: 8, Y: 28, W: 14, H: 1, Archetype: "spikes"},
			{X: 0, Y: 26, W: 8, H: 1, Archetype: "conveyorR"},
			{X: 22, Y: 26, W: 8, H: 1, Archetype: "conveyorL"},
			{X: 12.5, Y: 20, W: 5, H: 1, Archetype: "slime"},
			{X: 2, Y: 24.5, W: 1, H: 1, Archetype: "health"},
			{X: 5, Y: 24.5, W: 1, H: 1, Archetype: "health"},
			{X: 24, Y: 24.5, W: 1, H: 1, Archetype: "health"},
			{X: 27, Y: 24.5, W: 1, H: 1, Archetype: "health"},
		},
	}
}

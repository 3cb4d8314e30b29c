package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leondejong/platform-game/config"
	"github.com/leondejong/platform-game/fonts"
	"github.com/leondejong/platform-game/scenes"
	"github.com/leondejong/platform-game/shared/leveldata"
	"github.com/leondejong/platform-game/systems"
)

const builtinLevel = "builtin"

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	width  int
	height int
	scene  Scene
}

func NewGame(c *config.Config, levelName string, data *leveldata.Data) *Game {
	return &Game{
		width:  int(c.Level.Width),
		height: int(c.Level.Height),
		scene:  scenes.NewPlatformerScene(c, levelName, data),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, g.width, g.height)
	return g.width, g.height
}

// loadLevel reads a TMX file, or returns the built-in level when path is
// empty. TMX coordinates are already in pixels.
func loadLevel(path string) (string, *leveldata.Data, error) {
	if path == "" {
		return builtinLevel, leveldata.Default().Scale(config.PixelsPerMeter), nil
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	data, err := leveldata.LoadTMX(os.DirFS(dir), base)
	if err != nil {
		return "", nil, err
	}
	return base, data, nil
}

func main() {
	levelPath := flag.String("level", "", "Path to a TMX level (empty = built-in level)")
	debug := flag.Bool("debug", false, "Show the debug overlay from the start")
	flag.Parse()

	c := config.Default()
	c.Debug.Overlay = *debug

	name, data, err := loadLevel(*levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Settings and quicksaves are optional
	_ = systems.InitPersistence()

	ebiten.SetWindowSize(int(c.Level.Width), int(c.Level.Height))
	ebiten.SetWindowTitle("Platform Game")

	if err := ebiten.RunGame(NewGame(c, name, data)); err != nil {
		log.Fatal(err)
	}
}

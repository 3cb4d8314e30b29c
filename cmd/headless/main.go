// Command headless runs the simulation without a window and logs where the
// player ends up. It is used to check levels and physics tuning from a shell.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/leondejong/platform-game/config"
	"github.com/leondejong/platform-game/core"
	"github.com/leondejong/platform-game/effects"
	"github.com/leondejong/platform-game/shared/leveldata"
)

func main() {
	steps := flag.Int("steps", 600, "Fixed steps to run (ignored when -realtime is set)")
	realtime := flag.Duration("realtime", 0, "Run against the wall clock for this long instead")
	forward := flag.Bool("forward", false, "Hold the forward key")
	backward := flag.Bool("backward", false, "Hold the backward key")
	levelPath := flag.String("level", "", "Path to a TMX level (empty = built-in level)")
	archetypes := flag.Bool("archetypes", false, "List the tile archetypes a level may use and exit")
	flag.Parse()

	c := config.Default()
	catalog := core.NewCatalog(c)
	if *archetypes {
		for _, name := range catalog.Names() {
			fmt.Println(name)
		}
		return
	}

	data := leveldata.Default().Scale(config.PixelsPerMeter)
	if *levelPath != "" {
		dir, base := filepath.Split(*levelPath)
		if dir == "" {
			dir = "."
		}
		var err error
		if data, err = leveldata.LoadTMX(os.DirFS(dir), base); err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
	}

	level, err := core.NewLevel(c, catalog, data)
	if err != nil {
		log.Fatalf("Failed to build level: %v", err)
	}
	player, err := core.NewPlayer(c, level, effects.NewExplosion(c.Explosion))
	if err != nil {
		log.Fatalf("Failed to create player: %v", err)
	}
	sim := core.NewSimulation(c, level, player)
	sim.SetIntent(core.Intent{Forward: *forward, Backward: *backward})

	if *realtime > 0 {
		runRealtime(sim, *realtime)
	} else {
		for i := 0; i < *steps; i++ {
			sim.Step()
		}
	}

	p := sim.Player
	log.Printf("steps=%d elapsed=%.0fms state=%s", sim.Steps(), sim.Elapsed(), p.State())
	log.Printf("position=(%.1f, %.1f) velocity=(%.1f, %.1f) health=%.1f",
		p.Rect.X, p.Rect.Y, p.VX, p.VY, p.Health)
	for _, t := range p.Tiles() {
		log.Printf("touching %s at (%.0f, %.0f)", t.Archetype.Name, t.Rect.X, t.Rect.Y)
	}
}

// runRealtime drives the simulation from a ticker until d has passed or the
// process is interrupted.
func runRealtime(sim *core.Simulation, d time.Duration) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	ticker := time.NewTicker(time.Second / config.FPS)
	defer ticker.Stop()

	log.Printf("Running for %s at %d frames/s", d, config.FPS)
	err := sim.Run(ctx, ticker.C)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Println("Interrupted")
	}
}

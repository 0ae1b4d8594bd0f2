//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"forestfire/internal/app"
	"forestfire/internal/forest"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	fcfg, err := cfg.Resolve()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	sim, err := forest.New(fcfg)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	game := app.New(sim, cfg.Scale)
	size := sim.Size()

	ebiten.SetWindowTitle("forestfire: " + fcfg.Params.Summary())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Printf("forest closed after %d ticks", sim.Tick())
}

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sidestep/config"
	"github.com/milk9111/sidestep/sim"
)

func main() {
	configPath := flag.String("config", "", "YAML config file; watched for tuning changes")
	debug := flag.Bool("debug", false, "draw ground probe rays and contact info")
	tps := flag.Int("tps", 60, "simulation ticks per second")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	s, err := sim.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var watcher *config.Watcher
	if *configPath != "" {
		watcher, err = config.NewWatcher(*configPath)
		if err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("sidestep")

	game := NewGame(s, cfg, watcher, *debug)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

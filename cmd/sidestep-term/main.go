package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/milk9111/sidestep/config"
	"github.com/milk9111/sidestep/sim"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	fps := flag.Int("fps", 30, "frames per second")
	mute := flag.Bool("mute", false, "disable the landing tone")
	logPath := flag.String("log", "sidestep-term.log", "log file; the terminal is busy drawing")
	flag.Parse()

	if f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	s, err := sim.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	v, err := NewViewer(s, !*mute)
	if err != nil {
		log.Fatal(err)
	}
	if err := v.Run(time.Second / time.Duration(max(*fps, 1))); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/sidestep/config"
	"github.com/milk9111/sidestep/input"
	"github.com/milk9111/sidestep/sim"
	"gopkg.in/yaml.v3"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	scriptName := flag.String("script", "walk_and_hop", "tengo input script: a path, or the name of an embedded script")
	frames := flag.Int("frames", 600, "frames to simulate")
	dt := flag.Float64("dt", 1.0/60, "seconds per frame")
	out := flag.String("out", "-", "where to write the final snapshot as YAML; - for stdout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	src, err := input.LoadScript(*scriptName)
	if err != nil {
		log.Fatal(err)
	}
	script, err := input.NewScript(*scriptName, src)
	if err != nil {
		log.Fatal(err)
	}
	s, err := sim.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	snap, err := Run(s, script, *frames, *dt)
	if err != nil {
		log.Fatal(err)
	}
	if err := writeSnapshot(*out, snap); err != nil {
		log.Fatal(err)
	}
}

// Run steps s for the given number of frames, logging grounded transitions,
// and returns the final snapshot.
func Run(s *sim.Simulation, src input.Source, frames int, dt float64) (sim.Snapshot, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return sim.Snapshot{}, err
	}
	for i := 0; i < frames; i++ {
		dir, err := src.Direction(s.Frame(), snap)
		if err != nil {
			return sim.Snapshot{}, err
		}
		events, err := s.Step(dt, dir)
		if err != nil {
			return sim.Snapshot{}, err
		}
		if snap, err = s.Snapshot(); err != nil {
			return sim.Snapshot{}, err
		}
		for _, evt := range events {
			log.Printf("frame %d: %s at (%.2f, %.2f)", s.Frame(), evt.Kind, snap.Body.X, snap.Body.Y)
		}
	}
	return snap, nil
}

func writeSnapshot(path string, snap sim.Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

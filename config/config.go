// Package config loads the simulation tuning record from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalidConfig = errors.New("config: invalid")

// Grounding selects how collider contacts combine into the grounded flag.
type Grounding string

const (
	// GroundingAny grounds the body when any collider reports a top contact.
	GroundingAny Grounding = "any"
	// GroundingLastWrite replays the first prototype's loop, which clears the
	// flag per collider and stops at the first top contact. Same result as
	// GroundingAny.
	GroundingLastWrite Grounding = "last_write"
)

type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type Config struct {
	Player  PlayerConfig  `yaml:"player"`
	Arena   ArenaConfig   `yaml:"arena"`
	Physics PhysicsConfig `yaml:"physics"`
	Probe   ProbeConfig   `yaml:"probe"`
}

type PlayerConfig struct {
	Size     Vec2    `yaml:"size"`
	Spawn    Vec2    `yaml:"spawn"`
	MaxSpeed Vec2    `yaml:"max_speed"`
	Gravity  float64 `yaml:"gravity"`
}

type ArenaConfig struct {
	// Bounds is the full inner size; walls are centered on its edges.
	Bounds        Vec2    `yaml:"bounds"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// HalfExtent returns the distance from the arena center to each wall center.
func (a ArenaConfig) HalfExtent() Vec2 {
	return Vec2{X: a.Bounds.X / 2, Y: a.Bounds.Y / 2}
}

type PhysicsConfig struct {
	// PositionClamp bounds the body's horizontal position after every step.
	PositionClamp Range     `yaml:"position_clamp"`
	Grounding     Grounding `yaml:"grounding"`
}

type ProbeConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Rays        int     `yaml:"rays"`
	SkinWidth   float64 `yaml:"skin_width"`
	MaxDistance float64 `yaml:"max_distance"`
}

// Default returns the embedded reference configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic("config: embedded default.yaml: " + err.Error())
	}
	return cfg
}

// Load reads path over the defaults, so a file only needs the keys it changes.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot step with.
func (c Config) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{finite(c.Player.Size.X) && c.Player.Size.X > 0 && finite(c.Player.Size.Y) && c.Player.Size.Y > 0, "player.size must be positive"},
		{finite(c.Player.Spawn.X) && finite(c.Player.Spawn.Y), "player.spawn must be finite"},
		{finite(c.Player.MaxSpeed.X) && finite(c.Player.MaxSpeed.Y), "player.max_speed must be finite"},
		{finite(c.Player.Gravity) && c.Player.Gravity >= 0, "player.gravity must be non-negative"},
		{finite(c.Arena.Bounds.X) && c.Arena.Bounds.X > 0 && finite(c.Arena.Bounds.Y) && c.Arena.Bounds.Y > 0, "arena.bounds must be positive"},
		{finite(c.Arena.WallThickness) && c.Arena.WallThickness > 0, "arena.wall_thickness must be positive"},
		{finite(c.Physics.PositionClamp.Min) && finite(c.Physics.PositionClamp.Max) && c.Physics.PositionClamp.Min <= c.Physics.PositionClamp.Max, "physics.position_clamp needs min <= max"},
		{c.Physics.Grounding == GroundingAny || c.Physics.Grounding == GroundingLastWrite, fmt.Sprintf("physics.grounding %q is not one of any, last_write", c.Physics.Grounding)},
		{c.Probe.Rays >= 0 && (!c.Probe.Enabled || c.Probe.Rays >= 1), "probe.rays must be at least 1 when enabled"},
		{finite(c.Probe.SkinWidth) && c.Probe.SkinWidth >= 0, "probe.skin_width must be non-negative"},
		{finite(c.Probe.MaxDistance) && c.Probe.MaxDistance >= 0, "probe.max_distance must be non-negative"},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, check.what)
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

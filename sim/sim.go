// Package sim runs the per-frame controller pipeline for the single player
// body: input, motion, collision, physics, then the ground probe.
package sim

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sidestep/config"
	"github.com/milk9111/sidestep/ecs"
	"github.com/milk9111/sidestep/ecs/component"
	"github.com/milk9111/sidestep/ecs/entity"
	"github.com/milk9111/sidestep/ecs/system"
)

var (
	// ErrMissingEntity means the world does not hold exactly one player body,
	// or the player lost a component it needs.
	ErrMissingEntity = ecs.ErrMissingEntity
	// ErrInvalidTimestep rejects negative, NaN or infinite frame times.
	ErrInvalidTimestep = errors.New("sim: invalid timestep")
)

// Simulation is not safe for concurrent use.
type Simulation struct {
	cfg    config.Config
	world  *ecs.World
	player ecs.Entity

	input     *system.InputSystem
	collision *system.CollisionSystem
	physics   *system.PhysicsSystem
	scheduler *ecs.Scheduler

	frame int
}

// New builds the player and arena described by cfg.
func New(cfg config.Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	w := ecs.NewWorld()
	if _, err := entity.NewPlayer(w, cfg.Player, cfg.Probe); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if _, err := entity.BuildArena(w, cfg.Arena); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	return FromWorld(w, cfg)
}

// FromWorld wires the pipeline around an already populated world. The world
// must hold exactly one entity with a Player component.
func FromWorld(w *ecs.World, cfg config.Config) (*Simulation, error) {
	player, err := ecs.Single(w, component.PlayerComponent.Kind())
	if err != nil {
		return nil, fmt.Errorf("sim: resolve player: %w", err)
	}

	s := &Simulation{
		cfg:       cfg,
		world:     w,
		player:    player,
		input:     system.NewInputSystem(player),
		collision: system.NewCollisionSystem(player, policyFor(cfg.Physics.Grounding)),
		physics:   system.NewPhysicsSystem(player, clampFor(cfg.Physics.PositionClamp)),
	}
	// Collision reads last frame's position and its verdict is consumed by
	// physics in the same frame.
	s.scheduler = ecs.NewScheduler(
		s.input,
		system.NewMotionSystem(player),
		s.collision,
		s.physics,
		system.NewGroundProbeSystem(player),
	)
	return s, nil
}

func (s *Simulation) World() *ecs.World {
	return s.world
}

func (s *Simulation) Player() ecs.Entity {
	return s.player
}

// Frame returns the number of completed steps.
func (s *Simulation) Frame() int {
	return s.frame
}

func (s *Simulation) Config() config.Config {
	return s.cfg
}

// Contacts returns the collider contacts found during the last step.
func (s *Simulation) Contacts() []system.Contact {
	return s.collision.Contacts()
}

// Step advances one frame of dt seconds with the given direction intent and
// returns the grounded transitions it produced. dt is checked before any
// state changes.
func (s *Simulation) Step(dt float64, dir cp.Vector) ([]ecs.CollisionEvent, error) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimestep, dt)
	}
	if !s.world.IsAlive(s.player) {
		return nil, fmt.Errorf("sim: player %s: %w", s.player, ErrMissingEntity)
	}

	s.input.Set(dir)
	if err := s.scheduler.Update(s.world, dt); err != nil {
		return nil, fmt.Errorf("sim: frame %d: %w", s.frame, err)
	}
	s.frame++
	return s.world.Events().Drain(), nil
}

// ApplyTuning swaps in speed, gravity, clamp, grounding and probe settings.
// Player size and arena geometry are fixed for the run.
func (s *Simulation) ApplyTuning(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	player, err := ecs.MustGet(s.world, s.player, component.PlayerComponent.Kind())
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	gravity, err := ecs.MustGet(s.world, s.player, component.GravityScaleComponent.Kind())
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}

	if cfg.Arena != s.cfg.Arena || cfg.Player.Size != s.cfg.Player.Size {
		log.Printf("sim: arena and player size changes apply on restart only")
	}

	player.MaxSpeed = cfg.Player.MaxSpeed.Vector()
	gravity.Scale = cfg.Player.Gravity
	s.physics.Clamp = clampFor(cfg.Physics.PositionClamp)
	s.collision.Policy = policyFor(cfg.Physics.Grounding)

	probe, ok := ecs.Get(s.world, s.player, component.GroundProbeComponent.Kind())
	if !ok {
		probe = &component.GroundProbe{}
		if err := ecs.Add(s.world, s.player, component.GroundProbeComponent.Kind(), probe); err != nil {
			return fmt.Errorf("sim: ground probe: %w", err)
		}
	}
	probe.Rays = 0
	if cfg.Probe.Enabled {
		probe.Rays = cfg.Probe.Rays
	}
	probe.SkinWidth = cfg.Probe.SkinWidth
	probe.MaxDistance = cfg.Probe.MaxDistance

	s.cfg.Player.MaxSpeed = cfg.Player.MaxSpeed
	s.cfg.Player.Gravity = cfg.Player.Gravity
	s.cfg.Physics = cfg.Physics
	s.cfg.Probe = cfg.Probe
	return nil
}

func policyFor(g config.Grounding) system.GroundingPolicy {
	if g == config.GroundingLastWrite {
		return system.GroundLastWrite
	}
	return system.GroundAny
}

func clampFor(r config.Range) system.Clamp {
	return system.Clamp{Min: r.Min, Max: r.Max}
}

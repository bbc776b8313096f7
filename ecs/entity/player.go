package entity

import (
	"fmt"

	"github.com/milk9111/sidestep/config"
	"github.com/milk9111/sidestep/ecs"
	"github.com/milk9111/sidestep/ecs/component"
)

// NewPlayer creates the dynamic body at its spawn point, airborne and at rest.
func NewPlayer(w *ecs.World, cfg config.PlayerConfig, probe config.ProbeConfig) (ecs.Entity, error) {
	e := w.CreateEntity()
	err := addAll(w, e,
		func() error {
			return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{MaxSpeed: cfg.MaxSpeed.Vector()})
		},
		func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: cfg.Spawn.X, Y: cfg.Spawn.Y})
		},
		func() error {
			return ecs.Add(w, e, component.ExtentComponent.Kind(), &component.Extent{Width: cfg.Size.X, Height: cfg.Size.Y})
		},
		func() error {
			return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
		},
		func() error {
			return ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: cfg.Gravity})
		},
		func() error {
			return ecs.Add(w, e, component.GroundedComponent.Kind(), &component.Grounded{})
		},
		func() error {
			return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
		},
	)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	if probe.Enabled {
		gp := &component.GroundProbe{Rays: probe.Rays, SkinWidth: probe.SkinWidth, MaxDistance: probe.MaxDistance}
		if err := ecs.Add(w, e, component.GroundProbeComponent.Kind(), gp); err != nil {
			return 0, fmt.Errorf("player: ground probe: %w", err)
		}
	}
	return e, nil
}

func addAll(w *ecs.World, e ecs.Entity, steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			w.DestroyEntity(e)
			return err
		}
	}
	return nil
}

package sim

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sidestep/ecs"
	"github.com/milk9111/sidestep/ecs/component"
)

// Box is a center-origin rectangle for renderers.
type Box struct {
	Name   string  `yaml:"name,omitempty"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (b Box) BB() cp.BB {
	return cp.NewBBForExtents(cp.Vector{X: b.X, Y: b.Y}, b.Width/2, b.Height/2)
}

type Body struct {
	Box       `yaml:",inline"`
	VelocityX float64            `yaml:"velocity_x"`
	VelocityY float64            `yaml:"velocity_y"`
	Grounded  bool               `yaml:"grounded"`
	Probe     []component.RayHit `yaml:"-"`
}

// Snapshot is the read-only view handed to renderers once per frame.
type Snapshot struct {
	Frame     int   `yaml:"frame"`
	Body      Body  `yaml:"body"`
	Colliders []Box `yaml:"colliders"`
}

func (s *Simulation) Snapshot() (Snapshot, error) {
	w := s.world
	transform, err := ecs.MustGet(w, s.player, component.TransformComponent.Kind())
	if err != nil {
		return Snapshot{}, fmt.Errorf("sim: snapshot: %w", err)
	}
	extent, err := ecs.MustGet(w, s.player, component.ExtentComponent.Kind())
	if err != nil {
		return Snapshot{}, fmt.Errorf("sim: snapshot: %w", err)
	}
	vel, err := ecs.MustGet(w, s.player, component.VelocityComponent.Kind())
	if err != nil {
		return Snapshot{}, fmt.Errorf("sim: snapshot: %w", err)
	}
	grounded, err := ecs.MustGet(w, s.player, component.GroundedComponent.Kind())
	if err != nil {
		return Snapshot{}, fmt.Errorf("sim: snapshot: %w", err)
	}

	snap := Snapshot{
		Frame: s.frame,
		Body: Body{
			Box:       Box{Name: "player", X: transform.X, Y: transform.Y, Width: extent.Width, Height: extent.Height},
			VelocityX: vel.X,
			VelocityY: vel.Y,
			Grounded:  grounded.Value,
		},
	}
	if probe, ok := ecs.Get(w, s.player, component.GroundProbeComponent.Kind()); ok {
		snap.Body.Probe = append([]component.RayHit(nil), probe.Hits...)
	}

	ecs.ForEach3(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), component.ExtentComponent.Kind(),
		func(_ ecs.Entity, c *component.Collider, t *component.Transform, ext *component.Extent) {
			snap.Colliders = append(snap.Colliders, Box{Name: c.Name, X: t.X, Y: t.Y, Width: ext.Width, Height: ext.Height})
		})
	return snap, nil
}

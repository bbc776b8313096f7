package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sidestep/ecs"
	"github.com/milk9111/sidestep/ecs/component"
)

// GroundProbeSystem refreshes the player's ground rays after the physics step.
// It is diagnostic only and never touches the grounded flag.
type GroundProbeSystem struct {
	player ecs.Entity
}

func NewGroundProbeSystem(player ecs.Entity) *GroundProbeSystem {
	return &GroundProbeSystem{player: player}
}

func (s *GroundProbeSystem) Update(w *ecs.World, _ float64) error {
	probe, ok := ecs.Get(w, s.player, component.GroundProbeComponent.Kind())
	if !ok {
		return nil
	}
	body, err := BodyBounds(w, s.player)
	if err != nil {
		return err
	}
	probe.Hits = CastGroundRays(body, SolidBounds(w), probe.Rays, probe.SkinWidth, probe.MaxDistance)
	return nil
}

// SolidBounds returns the boxes of every solid collider in registration order.
func SolidBounds(w *ecs.World) []cp.BB {
	var out []cp.BB
	ecs.ForEach3(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), component.ExtentComponent.Kind(),
		func(_ ecs.Entity, c *component.Collider, t *component.Transform, ext *component.Extent) {
			if c.Kind == component.ColliderSolid {
				out = append(out, ext.Bounds(*t))
			}
		})
	return out
}

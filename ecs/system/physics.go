package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sidestep/ecs"
	"github.com/milk9111/sidestep/ecs/component"
)

// Clamp is a closed horizontal range for the player's position.
type Clamp struct {
	Min float64
	Max float64
}

// PhysicsSystem moves the player: a linear fall while airborne, then the
// frame's velocity, then the horizontal clamp. There is no vertical clamp.
type PhysicsSystem struct {
	player ecs.Entity
	Clamp  Clamp
}

func NewPhysicsSystem(player ecs.Entity, clamp Clamp) *PhysicsSystem {
	return &PhysicsSystem{player: player, Clamp: clamp}
}

// Advance applies one step to pos and returns the new position.
func Advance(pos, vel cp.Vector, gravity float64, grounded bool, dt float64, clamp Clamp) cp.Vector {
	if !grounded {
		pos.Y -= dt * gravity
	}
	pos.X += vel.X
	pos.Y += vel.Y
	pos.X = cp.Clamp(pos.X, clamp.Min, clamp.Max)
	return pos
}

func (s *PhysicsSystem) Update(w *ecs.World, dt float64) error {
	transform, err := ecs.MustGet(w, s.player, component.TransformComponent.Kind())
	if err != nil {
		return err
	}
	vel, err := ecs.MustGet(w, s.player, component.VelocityComponent.Kind())
	if err != nil {
		return err
	}
	grounded, err := ecs.MustGet(w, s.player, component.GroundedComponent.Kind())
	if err != nil {
		return err
	}

	gravity, err := ecs.MustGet(w, s.player, component.GravityScaleComponent.Kind())
	if err != nil {
		return err
	}

	pos := Advance(
		cp.Vector{X: transform.X, Y: transform.Y},
		cp.Vector{X: vel.X, Y: vel.Y},
		gravity.Scale, grounded.Value, dt, s.Clamp,
	)
	transform.X, transform.Y = pos.X, pos.Y
	return nil
}

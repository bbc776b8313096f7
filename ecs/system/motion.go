package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sidestep/ecs"
	"github.com/milk9111/sidestep/ecs/component"
)

// Integrate returns the velocity for one frame: dt * dir * maxSpeed per axis.
func Integrate(dt float64, dir, maxSpeed cp.Vector) cp.Vector {
	return cp.Vector{
		X: dt * dir.X * maxSpeed.X,
		Y: dt * dir.Y * maxSpeed.Y,
	}
}

// MotionSystem turns the player's input into this frame's velocity.
type MotionSystem struct {
	player ecs.Entity
}

func NewMotionSystem(player ecs.Entity) *MotionSystem {
	return &MotionSystem{player: player}
}

func (s *MotionSystem) Update(w *ecs.World, dt float64) error {
	player, err := ecs.MustGet(w, s.player, component.PlayerComponent.Kind())
	if err != nil {
		return err
	}
	input, err := ecs.MustGet(w, s.player, component.InputComponent.Kind())
	if err != nil {
		return err
	}
	vel, err := ecs.MustGet(w, s.player, component.VelocityComponent.Kind())
	if err != nil {
		return err
	}

	v := Integrate(dt, cp.Vector{X: input.MoveX, Y: input.MoveY}, player.MaxSpeed)
	vel.X, vel.Y = v.X, v.Y
	return nil
}

package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sidestep/ecs"
	"github.com/milk9111/sidestep/ecs/component"
)

// Direction maps held keys to a direction intent. Left subtracts and right
// adds, so holding both cancels. There is no downward input.
func Direction(left, right, up bool) cp.Vector {
	var dir cp.Vector
	if left {
		dir.X -= 1
	}
	if right {
		dir.X += 1
	}
	if up {
		dir.Y += 1
	}
	return dir
}

// Saturate clamps a raw intent to [-1, 1] horizontally and [0, 1] vertically.
func Saturate(dir cp.Vector) cp.Vector {
	return cp.Vector{X: cp.Clamp(dir.X, -1, 1), Y: cp.Clamp(dir.Y, 0, 1)}
}

// InputSystem copies the direction sampled by an input collaborator onto the
// player's Input component.
type InputSystem struct {
	player  ecs.Entity
	pending cp.Vector
}

func NewInputSystem(player ecs.Entity) *InputSystem {
	return &InputSystem{player: player}
}

// Set stores the intent for the next Update.
func (s *InputSystem) Set(dir cp.Vector) {
	s.pending = Saturate(dir)
}

func (s *InputSystem) Update(w *ecs.World, _ float64) error {
	input, err := ecs.MustGet(w, s.player, component.InputComponent.Kind())
	if err != nil {
		return err
	}
	input.MoveX = s.pending.X
	input.MoveY = s.pending.Y
	return nil
}

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sidestep/ecs/system"
	"github.com/milk9111/sidestep/sim"
)

// Keyboard samples held arrow keys, with A/D/W as alternates.
type Keyboard struct{}

func (Keyboard) Direction(int, sim.Snapshot) (cp.Vector, error) {
	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	up := ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	return system.Direction(left, right, up), nil
}
